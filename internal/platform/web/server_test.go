package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/vovakirdan/tile-arcade/internal/core"
	_ "github.com/vovakirdan/tile-arcade/internal/games/colormatch"
	_ "github.com/vovakirdan/tile-arcade/internal/games/isomap"
	"github.com/vovakirdan/tile-arcade/internal/registry"
	"github.com/vovakirdan/tile-arcade/internal/storage"
)

func newTestServer(t *testing.T) (*httptest.Server, *storage.Store) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	srv := httptest.NewServer(NewServer("", store).Handler())
	t.Cleanup(srv.Close)
	return srv, store
}

func dial(t *testing.T, srv *httptest.Server, path string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + path
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("Dial(%s) failed: %v", path, err)
	}
	resp.Body.Close()
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readMap(t *testing.T, conn *websocket.Conn) map[string]any {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	var msg map[string]any
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("ReadJSON() failed: %v", err)
	}
	return msg
}

func TestGamesListing(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + URIGames)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var games []registry.GameInfo
	if err := json.NewDecoder(resp.Body).Decode(&games); err != nil {
		t.Fatal(err)
	}

	headless := map[string]bool{}
	for _, g := range games {
		headless[g.ID] = g.Headless
	}
	if !headless["colormatch"] || !headless["isomap"] {
		t.Errorf("games = %+v", games)
	}
}

func TestScores(t *testing.T) {
	srv, store := newTestServer(t)

	for _, score := range []int{30, 90, 60} {
		if _, err := store.SaveScore("colormatch", score); err != nil {
			t.Fatal(err)
		}
	}

	resp, err := http.Get(srv.URL + "/scores/colormatch?limit=2")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	var body scoresBody
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if len(body.Scores) != 2 || body.Scores[0].Score != 90 || body.Scores[1].Score != 60 {
		t.Errorf("scores = %+v", body.Scores)
	}

	tests := []struct {
		path string
		want int
	}{
		{"/scores/nope", http.StatusNotFound},
		{"/scores/colormatch?limit=0", http.StatusBadRequest},
		{"/scores/isomap", http.StatusOK},
	}
	for _, tt := range tests {
		resp, err := http.Get(srv.URL + tt.path)
		if err != nil {
			t.Fatal(err)
		}
		resp.Body.Close()
		if resp.StatusCode != tt.want {
			t.Errorf("GET %s = %d, want %d", tt.path, resp.StatusCode, tt.want)
		}
	}
}

func TestPlayUnknownGame(t *testing.T) {
	srv, _ := newTestServer(t)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/play/nope"
	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	if err == nil {
		t.Fatal("dial should fail for an unknown game")
	}
	if resp == nil || resp.StatusCode != http.StatusNotFound {
		t.Errorf("resp = %+v", resp)
	}
}

func TestPlayColorMatch(t *testing.T) {
	srv, _ := newTestServer(t)
	conn := dial(t, srv, "/play/colormatch?seed=7&player=ana")

	first := readMap(t, conn)
	if first["game"] != "colormatch" || first["attempts"] != float64(0) {
		t.Fatalf("initial snapshot = %v", first)
	}

	if err := conn.WriteJSON(core.Select(0, 0)); err != nil {
		t.Fatal(err)
	}
	snap := readMap(t, conn)
	if snap["attempts"] != float64(1) {
		t.Errorf("attempts = %v, want 1", snap["attempts"])
	}
	cells := snap["cells"].([]any)
	cell := cells[0].([]any)[0].(map[string]any)
	if cell["eliminated"] != true {
		t.Error("selected cell should be eliminated")
	}

	// Selecting it again is rejected and changes nothing.
	if err := conn.WriteJSON(core.Select(0, 0)); err != nil {
		t.Fatal(err)
	}
	if msg := readMap(t, conn); msg["error"] == nil {
		t.Errorf("want an error, got %v", msg)
	}

	if err := conn.WriteJSON(core.Move(1, 0)); err != nil {
		t.Fatal(err)
	}
	if msg := readMap(t, conn); !strings.Contains(msg["error"].(string), "unsupported") {
		t.Errorf("move should be unsupported, got %v", msg)
	}

	if err := conn.WriteJSON(core.Reset()); err != nil {
		t.Fatal(err)
	}
	if snap := readMap(t, conn); snap["attempts"] != float64(0) || snap["remaining"] != float64(48) {
		t.Errorf("after reset = %v", snap)
	}
}

func TestPlayIsoMapSavesAbandonedRun(t *testing.T) {
	srv, store := newTestServer(t)
	conn := dial(t, srv, "/play/isomap?player=bo")
	readMap(t, conn)

	if err := conn.WriteJSON(core.Move(1, 1)); err != nil {
		t.Fatal(err)
	}
	if msg := readMap(t, conn); msg["error"] == nil {
		t.Errorf("want an error, got %v", msg)
	}

	for range 2 {
		if err := conn.WriteJSON(core.Move(1, 0)); err != nil {
			t.Fatal(err)
		}
		readMap(t, conn)
	}
	if err := conn.WriteJSON(core.Event{Kind: core.EventNone}); err != nil {
		t.Fatal(err)
	}
	snap := readMap(t, conn)
	actor := snap["actor"].(map[string]any)
	inv := actor["inventory"].(map[string]any)
	if inv["coins"] != float64(1) || snap["moves"] != float64(2) {
		t.Errorf("snapshot = %v", snap)
	}

	// Reset is not supported in place, so the server starts a fresh run.
	if err := conn.WriteJSON(core.Reset()); err != nil {
		t.Fatal(err)
	}
	if snap := readMap(t, conn); snap["moves"] != float64(0) {
		t.Errorf("after reset moves = %v", snap["moves"])
	}

	deadline := time.Now().Add(5 * time.Second)
	for {
		results, err := store.RecentResults("isomap", 10)
		if err != nil {
			t.Fatal(err)
		}
		if len(results) == 1 {
			r := results[0]
			if r.Outcome != "abandoned" || r.Player != "bo" || r.Attempts != 2 {
				t.Errorf("result = %+v", r)
			}
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("got %d results, want 1", len(results))
		}
		time.Sleep(10 * time.Millisecond)
	}
}
