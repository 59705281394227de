package web

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/matryer/way"

	"github.com/vovakirdan/tile-arcade/internal/registry"
	"github.com/vovakirdan/tile-arcade/internal/storage"
)

const defaultScoreLimit = 10

// errorBody is the JSON shape of every error reply, HTTP or websocket.
type errorBody struct {
	Error string `json:"error"`
}

// scoresBody is the reply of GET /scores/:game.
type scoresBody struct {
	Game   string               `json:"game"`
	Scores []storage.ScoreEntry `json:"scores"`
	Stats  *storage.GameStats   `json:"stats,omitempty"`
}

func (s *Server) handleGames(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, registry.List())
}

func (s *Server) handleScores(w http.ResponseWriter, r *http.Request) {
	gameID := way.Param(r.Context(), "game")
	if !registry.Exists(gameID) {
		writeJSON(w, http.StatusNotFound, errorBody{Error: "unknown game " + strconv.Quote(gameID)})
		return
	}
	if s.store == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorBody{Error: "scores are not recorded"})
		return
	}

	limit := defaultScoreLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			writeJSON(w, http.StatusBadRequest, errorBody{Error: "limit must be a positive integer"})
			return
		}
		limit = n
	}

	scores, err := s.store.TopScores(gameID, limit)
	if err != nil {
		s.logger.Error("top scores", "game", gameID, "err", err)
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: "cannot read scores"})
		return
	}
	stats, err := s.store.GetGameStats(gameID)
	if err != nil {
		s.logger.Warn("game stats", "game", gameID, "err", err)
		stats = nil
	}

	if scores == nil {
		scores = []storage.ScoreEntry{}
	}
	writeJSON(w, http.StatusOK, scoresBody{Game: gameID, Scores: scores, Stats: stats})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
