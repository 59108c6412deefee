package main

import (
	"errors"
	"log"
	"net/http"

	"github.com/joho/godotenv"

	"github.com/quizrush/quizrush-backend/internal/config"
	"github.com/quizrush/quizrush-backend/internal/game"
	"github.com/quizrush/quizrush-backend/internal/server"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	cfg := config.LoadConfig()
	hub := game.NewHub(cfg)
	srv := server.NewServer(cfg, hub)

	log.Printf("Server running on port %s", cfg.Port)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("Server error: %v", err)
	}
}
