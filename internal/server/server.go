package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/quizrush/quizrush-backend/internal/config"
	"github.com/quizrush/quizrush-backend/internal/game"
)

type Server struct {
	port string
	hub  *game.Hub
}

func NewServer(cfg *config.Config, hub *game.Hub) *http.Server {
	s := &Server{
		port: cfg.Port,
		hub:  hub,
	}

	return &http.Server{
		Addr:         fmt.Sprintf(":%s", s.port),
		Handler:      s.RegisterRoutes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
}
