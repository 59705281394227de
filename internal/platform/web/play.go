package web

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/websocket"
	"github.com/matryer/way"

	"github.com/vovakirdan/tile-arcade/internal/core"
	"github.com/vovakirdan/tile-arcade/internal/registry"
	"github.com/vovakirdan/tile-arcade/internal/storage"
)

const maxMessageSize = 4096

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// handlePlay upgrades to a websocket and runs one session per connection.
// Query parameters: player names saved results, seed fixes the board.
func (s *Server) handlePlay(w http.ResponseWriter, r *http.Request) {
	gameID := way.Param(r.Context(), "game")

	seed := time.Now().UnixNano()
	if v := r.URL.Query().Get("seed"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorBody{Error: "seed must be an integer"})
			return
		}
		seed = n
	}

	session, err := registry.NewSession(gameID, seed)
	if err != nil {
		writeJSON(w, http.StatusNotFound, errorBody{Error: err.Error()})
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", "err", err)
		return
	}
	defer conn.Close()
	conn.SetReadLimit(maxMessageSize)

	p := &play{
		server:  s,
		conn:    conn,
		gameID:  gameID,
		player:  r.URL.Query().Get("player"),
		session: session,
		started: time.Now(),
	}
	if p.player == "" {
		p.player = "web"
	}

	s.logger.Info("play started", "game", gameID, "player", p.player, "remote", r.RemoteAddr)
	p.run()
	s.logger.Info("play ended", "game", gameID, "player", p.player, "events", p.events)
}

// play is one websocket connection bound to one session.
type play struct {
	server  *Server
	conn    *websocket.Conn
	gameID  string
	player  string
	session registry.Session
	started time.Time
	events  int  // Accepted events since the last reset
	saved   bool // Whether the current game's result is stored
}

func (p *play) run() {
	defer p.finish()

	if err := p.conn.WriteJSON(p.session.Snapshot()); err != nil {
		return
	}

	for {
		var ev core.Event
		if err := p.conn.ReadJSON(&ev); err != nil {
			var closeErr *websocket.CloseError
			if !errors.As(err, &closeErr) {
				p.server.logger.Debug("read failed", "err", err)
			}
			return
		}

		if err := p.apply(ev); err != nil {
			if werr := p.conn.WriteJSON(errorBody{Error: err.Error()}); werr != nil {
				return
			}
			continue
		}
		if err := p.conn.WriteJSON(p.session.Snapshot()); err != nil {
			return
		}
	}
}

// apply resolves one event. Games that cannot reset in place get a fresh
// session instead.
func (p *play) apply(ev core.Event) error {
	err := p.session.Apply(ev)

	var unsupported *core.UnsupportedEventError
	if ev.Kind == core.EventReset && errors.As(err, &unsupported) {
		session, nerr := registry.NewSession(p.gameID, time.Now().UnixNano())
		if nerr != nil {
			return nerr
		}
		p.session = session
		err = nil
	}
	if err != nil {
		return err
	}

	if ev.Kind == core.EventReset {
		if !p.saved && p.events > 0 {
			p.save("abandoned")
		}
		p.events = 0
		p.saved = false
		p.started = time.Now()
		return nil
	}

	if ev.Kind != core.EventNone && ev.Kind != "" {
		p.events++
	}
	if st := p.session.State(); st.GameOver && !p.saved {
		p.save(st.Status.String())
	}
	return nil
}

// finish records a game left unfinished by a disconnect.
func (p *play) finish() {
	if !p.saved && p.events > 0 {
		p.save("abandoned")
	}
}

func (p *play) save(outcome string) {
	p.saved = true
	store := p.server.store
	if store == nil {
		return
	}

	st := p.session.State()
	if st.GameOver && st.Score > 0 {
		if _, err := store.SaveScore(p.gameID, st.Score); err != nil {
			p.server.logger.Warn("score not saved", "game", p.gameID, "err", err)
		}
	}
	_, err := store.SaveResult(storage.Result{
		GameID:   p.gameID,
		Player:   p.player,
		Outcome:  outcome,
		Score:    st.Score,
		Attempts: p.events,
		Duration: time.Since(p.started),
	})
	if err != nil {
		p.server.logger.Warn("result not saved", "game", p.gameID, "err", err)
	}
}
