package main

import (
	"log"

	"github.com/jyyae86/badminton-8somes/config"
	"github.com/jyyae86/badminton-8somes/internal/db"
	"github.com/jyyae86/badminton-8somes/internal/nats"
	"github.com/jyyae86/badminton-8somes/internal/server"
	temporal "github.com/jyyae86/badminton-8somes/internal/workflow"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	gdb, err := db.InitDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := db.Migrate(); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	natsConn, js, err := nats.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to NATS: %v", err)
	}
	defer natsConn.Close()

	if err := nats.ConfigureStream(js, &cfg.NATS.Stream); err != nil {
		log.Fatalf("Failed to configure JetStream: %v", err)
	}

	temporal.StartWorker(cfg)

	server.StartServer(cfg, gdb, js)
}
