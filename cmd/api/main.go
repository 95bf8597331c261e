package main

import (
	"log"

	"github.com/basquehq/basque-backend/internal/config"
	"github.com/basquehq/basque-backend/internal/db"
	"github.com/basquehq/basque-backend/internal/model"
	"github.com/basquehq/basque-backend/internal/server"
	"github.com/joho/godotenv"
)

var (
	gitSHA    = "dev"
	buildTime = "unknown"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}

	srv := server.New(nil, cfg, gitSHA, buildTime)
	addr := ":" + cfg.Port

	errCh := make(chan error, 1)

	go func() {
		log.Printf("starting server on %s", addr)
		errCh <- srv.Start(addr)
	}()

	// Connect in the background so a slow Cloud SQL handshake does not
	// delay the health endpoint; repos answer ErrDBNotReady until then.
	go func() {
		conn, err := db.Connect(cfg)
		if err != nil {
			log.Printf("db connect error: %v", err)
			return
		}
		srv.SetDB(conn)
		if err := conn.AutoMigrate(&model.User{}, &model.Action{}, &model.CompletedAction{}); err != nil {
			log.Printf("auto migrate error: %v", err)
		}
	}()

	if err := <-errCh; err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
