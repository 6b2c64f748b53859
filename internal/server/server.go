package server

import (
	"log"
	"net/http"

	"github.com/jyyae86/badminton-8somes/config"

	"github.com/gorilla/mux"
	"github.com/nats-io/nats.go"
	"gorm.io/gorm"
)

type Server struct {
	cfg    *config.Config
	store  *Store
	db     *gorm.DB
	js     nats.JetStreamContext
	router *mux.Router
}

// New wires the tournament API. db and js may be nil; persistence and
// event publishing are then skipped.
func New(cfg *config.Config, gdb *gorm.DB, js nats.JetStreamContext) *Server {
	s := &Server{
		cfg:   cfg,
		store: NewStore(),
		db:    gdb,
		js:    js,
	}
	s.router = s.routes()
	return s
}

func (s *Server) Router() *mux.Router {
	return s.router
}

func (s *Server) routes() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/tournaments", s.handleCreateTournament).Methods("POST")
	r.HandleFunc("/tournaments/{id}", s.handleGetTournament).Methods("GET")
	r.HandleFunc("/tournaments/{id}/games/{gameID}/score", s.handleRecordScore).Methods("POST")
	r.HandleFunc("/tournaments/{id}/standings", s.handleStandings).Methods("GET")
	r.HandleFunc("/tournaments/{id}/payouts", s.handlePayouts).Methods("GET")
	r.HandleFunc("/tournaments/{id}/sidebets", s.handleCreateSideBet).Methods("POST")
	r.HandleFunc("/tournaments/{id}/sidebets/{index}/settle", s.handleSettleSideBet).Methods("POST")
	return r
}

func StartServer(cfg *config.Config, gdb *gorm.DB, js nats.JetStreamContext) {
	s := New(cfg, gdb, js)

	port := ":" + cfg.Server.Port
	log.Printf("Server is listening on port%s", port)
	if err := http.ListenAndServe(port, s.Router()); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
