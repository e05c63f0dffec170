/*
Package api
File: handlers.go
Description:
    Contains the HTTP handlers for the REST API.
    These functions decode JSON requests, validate them against the running
    colony, and return JSON responses.

    Key Responsibilities:
    - Input Validation (Is the JSON valid? Do the location and variant exist?)
    - Queuing deployment orders for the next turn
    - Manual turn stepping and game resets
    - Mapping game errors onto HTTP status codes
*/

package api

import (
	"encoding/json"
	"log"
	"math/rand"
	"net/http"
	"strconv"
	"time"

	"github.com/pkg/errors"

	"github.com/everforgeworks/colony-defense/internal/game"
	"github.com/everforgeworks/colony-defense/internal/hog"
)

// Request DTOs

type DeployRequest struct {
	Location string `json:"location"`
	Variant  string `json:"variant"`
}

type RemoveRequest struct {
	Location string `json:"location"`
}

// StepResponse is returned by a manual step.
type StepResponse struct {
	Outcome  string        `json:"outcome"`
	Snapshot game.Snapshot `json:"snapshot"`
}

// HogResponse reports one finished game of Hog.
type HogResponse struct {
	Score0 int `json:"score0"`
	Score1 int `json:"score1"`
	Winner int `json:"winner"`
}

// Server binds the handlers to a session and the spectator hub.
type Server struct {
	session *game.Session
	hub     *Hub
}

// NewServer creates a Server. hub may be nil.
func NewServer(session *game.Session, hub *Hub) *Server {
	return &Server{session: session, hub: hub}
}

// Routes registers every endpoint on a new mux.
func (s *Server) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	// Information Endpoints
	mux.HandleFunc("/api/colony", s.HandleGetColony)
	mux.HandleFunc("/api/defenders", s.HandleGetDefenders)
	mux.HandleFunc("/api/orders", s.HandleGetOrders)

	// Action Endpoints
	mux.HandleFunc("/api/defenders/deploy", s.HandleDeploy)
	mux.HandleFunc("/api/defenders/remove", s.HandleRemove)
	mux.HandleFunc("/api/colony/step", s.HandleStep)
	mux.HandleFunc("/api/colony/reset", s.HandleReset)
	mux.HandleFunc("/api/hog/play", HandleHogPlay)

	// Real-Time WebSocket Endpoint
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		if s.hub == nil {
			http.Error(w, "Spectator feed disabled", http.StatusServiceUnavailable)
			return
		}
		ServeWs(s.hub, w, r)
	})
	return mux
}

// HandleGetColony returns the current snapshot.
func (s *Server) HandleGetColony(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.session.Snapshot())
}

// HandleGetDefenders returns the deployable variants and their stats.
func (s *Server) HandleGetDefenders(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, game.DefenderKinds())
}

// HandleGetOrders returns the orders waiting for the next turn.
func (s *Server) HandleGetOrders(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.session.Pending())
}

// HandleDeploy queues a defender for the next deployment phase.
func (s *Server) HandleDeploy(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req DeployRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	order, err := s.session.Enqueue(game.OrderDeploy, req.Location, req.Variant)
	if err != nil {
		writeGameError(w, err)
		return
	}
	writeJSON(w, http.StatusAccepted, order)
}

// HandleRemove queues a removal for the next deployment phase.
func (s *Server) HandleRemove(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req RemoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	order, err := s.session.Enqueue(game.OrderRemove, req.Location, "")
	if err != nil {
		writeGameError(w, err)
		return
	}
	writeJSON(w, http.StatusAccepted, order)
}

// HandleStep advances the colony one turn immediately.
func (s *Server) HandleStep(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	outcome, snap := s.session.Step()
	s.Announce(outcome, snap)
	writeJSON(w, http.StatusOK, StepResponse{Outcome: outcome.String(), Snapshot: snap})
}

// HandleReset starts a new game with the loaded configuration.
func (s *Server) HandleReset(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := s.session.Restart(); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	log.Printf("COLONY: Reset, new session %s", s.session.ID())
	writeJSON(w, http.StatusOK, s.session.Snapshot())
}

// Announce publishes a finished turn to spectators.
func (s *Server) Announce(outcome game.Outcome, snap game.Snapshot) {
	s.hub.Publish(MsgTurnPulse, snap)
	if outcome != game.Continuing {
		log.Printf("COLONY: Game %s on turn %d", outcome, snap.Turn)
		s.hub.Publish(MsgGameOver, map[string]interface{}{
			"session_id": snap.SessionID,
			"outcome":    outcome.String(),
			"turn":       snap.Turn,
		})
	}
}

// HandleHogPlay plays one game of Hog between two named strategies.
// Query: strategy0, strategy1 ("bacon", "swap", "always:N"), optional goal and seed.
func HandleHogPlay(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	s0, err := hog.ParseStrategy(orDefault(q.Get("strategy0"), "bacon"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s1, err := hog.ParseStrategy(orDefault(q.Get("strategy1"), "always:5"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	goal := hog.GoalScore
	if v := q.Get("goal"); v != "" {
		if goal, err = strconv.Atoi(v); err != nil || goal <= 0 {
			http.Error(w, "Invalid goal", http.StatusBadRequest)
			return
		}
	}
	seed := time.Now().UnixNano()
	if v := q.Get("seed"); v != "" {
		if seed, err = strconv.ParseInt(v, 10, 64); err != nil {
			http.Error(w, "Invalid seed", http.StatusBadRequest)
			return
		}
	}

	set := hog.FairDiceSet(rand.New(rand.NewSource(seed)))
	score0, score1, err := hog.Play(s0, s1, goal, set)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	log.Printf("HOG: %d to %d", score0, score1)
	writeJSON(w, http.StatusOK, HogResponse{Score0: score0, Score1: score1, Winner: hog.Winner(score0, score1)})
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeGameError maps the game's error taxonomy onto status codes.
func writeGameError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, game.ErrUnknownLocation), errors.Is(err, game.ErrUnknownVariant):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, game.ErrInsufficientFood):
		http.Error(w, err.Error(), http.StatusPaymentRequired)
	case errors.Is(err, game.ErrOccupancyConflict), errors.Is(err, game.ErrNotPresent):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		http.Error(w, err.Error(), http.StatusBadRequest)
	}
}
