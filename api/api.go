// Package api exposes the story memory service over HTTP.
package api

import (
	"github.com/charmbracelet/log"
	"github.com/gofiber/fiber/v2"

	"github.com/fablemind/fablemind/internal/memory"
)

// Config holds HTTP server configuration.
type Config struct {
	ListenAddr string
}

// Server is the HTTP boundary in front of the story memory service.
type Server struct {
	config Config
	memory *memory.Service
	logger *log.Logger
	app    *fiber.App
}

// NewServer creates the HTTP server. The memory service is injected so it
// can be shared with CLI commands.
func NewServer(config Config, svc *memory.Service, logger *log.Logger) *Server {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	s := &Server{
		config: config,
		memory: svc,
		logger: logger,
		app:    app,
	}

	app.Get("/ping", s.handlePing)
	app.Post("/stories", s.handleAddStory)
	app.Post("/stories/characters", s.handleExtractCharacters)
	app.Post("/answer", s.handleAnswer)

	return s
}

// Run starts the HTTP server on the configured address.
func (s *Server) Run() error {
	s.logger.Info("starting HTTP server", "listen", s.config.ListenAddr)
	return s.app.Listen(s.config.ListenAddr)
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}
