package main

import (
	"context"
	"log"

	"github.com/kizzylord/portfolio-backend/config"
	"github.com/kizzylord/portfolio-backend/internal/bootstrap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	db, err := bootstrap.OpenDB(context.Background(), bootstrap.DBOptions{
		Path:        cfg.Database.Path,
		BusyTimeout: cfg.Database.BusyTimeoutMS,
	})
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	defer db.Close()

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: "portfolio-backend",
		Version:     cfg.App.Version,
		DB:          db,
	})

	log.Printf("listening on :%s", cfg.Server.Port)
	log.Fatal(r.Run(":" + cfg.Server.Port))
}
