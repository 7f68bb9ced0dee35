package main

import (
	"context"
	"log"

	"ai-supportbot-be/internal/bootstrap"
	"ai-supportbot-be/internal/config"
	"ai-supportbot-be/internal/server"
	"ai-supportbot-be/pkg/database"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Database
	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to open store: %v", err)
	}

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg)

	// 4. Start Background Jobs
	if err := container.JobService.Consume(context.Background()); err != nil {
		log.Printf("Background job consumer error: %v", err)
	}

	// 5. Run Server
	srv := server.New(cfg, container)
	log.Fatal(srv.Run())
}
