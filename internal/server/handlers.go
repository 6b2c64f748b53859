package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/jyyae86/badminton-8somes/internal/badminton"
	"github.com/jyyae86/badminton-8somes/internal/db"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type createTournamentRequest struct {
	Mode     string      `json:"mode"`
	Players  []string    `json:"players"`
	Teams    [][2]string `json:"teams,omitempty"`
	EntryFee *int        `json:"entryFee,omitempty"`
}

type recordScoreRequest struct {
	Score1 int `json:"score1"`
	Score2 int `json:"score2"`
}

type sideBetRequest struct {
	Side1 [2]string `json:"side1"`
	Side2 [2]string `json:"side2"`
	Stake int       `json:"stake"`
}

type settleSideBetRequest struct {
	Outcome string `json:"outcome"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func hasDuplicates(players []string) bool {
	seen := make(map[string]bool, len(players))
	for _, p := range players {
		if seen[p] {
			return true
		}
		seen[p] = true
	}
	return false
}

// validTeamPartition checks that a custom partition holds 6 pairs of
// distinct players covering the player list exactly. The generator itself
// does not re-validate this, so the boundary must.
func validTeamPartition(players []string, teams [][2]string) bool {
	if len(teams) != 6 {
		return false
	}
	want := make(map[string]bool, len(players))
	for _, p := range players {
		want[p] = true
	}
	seen := make(map[string]bool)
	for _, team := range teams {
		for _, p := range team {
			if !want[p] || seen[p] {
				return false
			}
			seen[p] = true
		}
	}
	return len(seen) == len(players)
}

func (s *Server) handleCreateTournament(w http.ResponseWriter, r *http.Request) {
	var req createTournamentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if hasDuplicates(req.Players) {
		writeError(w, http.StatusBadRequest, "player names must be distinct")
		return
	}

	entryFee := s.cfg.Tournament.EntryFee
	if req.EntryFee != nil {
		entryFee = *req.EntryFee
	}

	var schedule *badminton.Schedule
	var err error
	switch req.Mode {
	case badminton.ModeEightPlayers:
		schedule, err = badminton.GenerateEightPlayerSchedule(req.Players)
	case badminton.ModeTwelveTeams:
		if req.Teams != nil && !validTeamPartition(req.Players, req.Teams) {
			writeError(w, http.StatusBadRequest, "teams must be 6 disjoint pairs covering all players")
			return
		}
		schedule, err = badminton.GenerateTwelvePlayerSchedule(req.Players, req.Teams)
	default:
		writeError(w, http.StatusBadRequest, "mode must be players8 or teams12")
		return
	}
	if err != nil {
		if errors.Is(err, badminton.ErrInvalidPlayerCount) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	t := &Tournament{
		ID:       uuid.NewString(),
		Mode:     req.Mode,
		EntryFee: entryFee,
		Schedule: schedule,
	}
	s.store.Add(t)

	if s.db != nil {
		if _, err := db.SaveSchedule(s.db, t.ID, t.Mode, t.EntryFee, schedule); err != nil {
			log.Printf("Failed to persist tournament %s: %v", t.ID, err)
		}
	}
	if s.js != nil {
		if err := badminton.SendScheduleUpdateToNATS(s.js, t.ID, schedule); err != nil {
			log.Printf("Failed to publish schedule for tournament %s: %v", t.ID, err)
		}
	}

	writeJSON(w, http.StatusCreated, t)
}

func (s *Server) handleGetTournament(w http.ResponseWriter, r *http.Request) {
	t, ok := s.store.Snapshot(mux.Vars(r)["id"])
	if !ok {
		writeError(w, http.StatusNotFound, "tournament not found")
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (s *Server) handleRecordScore(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	gameID, err := strconv.Atoi(vars["gameID"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "gameID must be an integer")
		return
	}

	var req recordScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Score1 < 0 || req.Score2 < 0 {
		writeError(w, http.StatusBadRequest, "scores must be non-negative")
		return
	}

	game, err := s.store.RecordScore(vars["id"], gameID, req.Score1, req.Score2)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	if s.db != nil {
		if err := db.SaveScore(s.db, vars["id"], gameID, req.Score1, req.Score2); err != nil {
			log.Printf("Failed to persist score for tournament %s: %v", vars["id"], err)
		}
	}
	if s.js != nil {
		if err := badminton.SendGameUpdateToNATS(s.js, vars["id"], &game); err != nil {
			log.Printf("Failed to publish game update for tournament %s: %v", vars["id"], err)
		}
	}

	writeJSON(w, http.StatusOK, game)
}

func (s *Server) handleStandings(w http.ResponseWriter, r *http.Request) {
	t, ok := s.store.Snapshot(mux.Vars(r)["id"])
	if !ok {
		writeError(w, http.StatusNotFound, "tournament not found")
		return
	}
	if t.Schedule.TeamMode() {
		writeJSON(w, http.StatusOK, badminton.ComputeTeamStatistics(t.Schedule))
		return
	}
	writeJSON(w, http.StatusOK, badminton.ComputePlayerStatistics(t.Schedule))
}

func (s *Server) handlePayouts(w http.ResponseWriter, r *http.Request) {
	t, ok := s.store.Snapshot(mux.Vars(r)["id"])
	if !ok {
		writeError(w, http.StatusNotFound, "tournament not found")
		return
	}
	payouts := badminton.ComputePayoutsWithSideBets(t.Schedule, t.EntryFee, t.SideBets)
	writeJSON(w, http.StatusOK, payouts)
}

func (s *Server) handleCreateSideBet(w http.ResponseWriter, r *http.Request) {
	var req sideBetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Stake <= 0 {
		writeError(w, http.StatusBadRequest, "stake must be positive")
		return
	}

	index, err := s.store.AddSideBet(mux.Vars(r)["id"], badminton.SideBet{
		Side1: badminton.Side(req.Side1),
		Side2: badminton.Side(req.Side2),
		Stake: req.Stake,
	})
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, map[string]int{"index": index})
}

func (s *Server) handleSettleSideBet(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	index, err := strconv.Atoi(vars["index"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "index must be an integer")
		return
	}

	var req settleSideBetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := s.store.SettleSideBet(vars["id"], index, req.Outcome); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
