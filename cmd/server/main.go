package main

import (
	"fmt"
	"log"

	"teamcheck/internal/config"
	"teamcheck/internal/database"
	"teamcheck/internal/server"
)

func main() {
	cfg := config.Load()
	database.Init(cfg.DBDSN, cfg.AdminUsername, cfg.AdminPassword)

	r := server.NewRouter(cfg)

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	log.Printf("starting server on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
