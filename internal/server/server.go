// Package server implements the persistence service: a small fiber app over
// a single JSON document holding the note and template collections.
package server

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog"

	"github.com/goliatone/go-notecanvas/internal/config"
)

// Server wraps the fiber app and the document store.
type Server struct {
	app   *fiber.App
	cfg   *config.Config
	store *DocumentStore
	log   zerolog.Logger
}

// New builds the server and its routes.
func New(cfg *config.Config, log zerolog.Logger) (*Server, error) {
	store, err := NewDocumentStore(cfg.Store.DataFile)
	if err != nil {
		return nil, err
	}

	app := fiber.New(fiber.Config{
		AppName:      "notecanvas persistence service",
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	})

	s := &Server{
		app:   app,
		cfg:   cfg,
		store: store,
		log:   log,
	}
	s.setupMiddleware()
	s.setupRoutes()
	return s, nil
}

func (s *Server) setupMiddleware() {
	s.app.Use(recover.New())
	s.app.Use(cors.New(cors.Config{
		AllowOrigins: s.cfg.CORS.AllowOrigins,
		AllowHeaders: s.cfg.CORS.AllowHeaders,
		AllowMethods: "GET, PUT, DELETE, OPTIONS",
	}))
	s.app.Use(func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		s.log.Info().
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("latency", time.Since(start)).
			Msg("request")
		return err
	})
}

func (s *Server) setupRoutes() {
	s.app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := s.app.Group("/api")
	api.Get("/notes", s.getNotes)
	api.Put("/notes", s.putNotes)
	api.Get("/templates", s.getTemplates)
	api.Put("/templates", s.putTemplate)
	api.Delete("/templates/:id", s.deleteTemplate)
}

func (s *Server) getNotes(c *fiber.Ctx) error {
	doc, err := s.store.Load()
	if err != nil {
		return s.internalError(c, err)
	}
	return c.JSON(doc.Notes)
}

// putNotes replaces the note collection wholesale. A body whose notes field
// is missing or not an array is rejected.
func (s *Server) putNotes(c *fiber.Ctx) error {
	var body struct {
		Notes json.RawMessage `json:"notes"`
	}
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid JSON body")
	}
	if !isJSONArray(body.Notes) {
		return badRequest(c, "notes must be an array")
	}

	var notes []json.RawMessage
	if err := json.Unmarshal(body.Notes, &notes); err != nil {
		return badRequest(c, "notes must be an array")
	}
	if err := s.store.ReplaceNotes(notes); err != nil {
		return s.internalError(c, err)
	}
	return c.JSON(fiber.Map{"saved": len(notes)})
}

func (s *Server) getTemplates(c *fiber.Ctx) error {
	doc, err := s.store.Load()
	if err != nil {
		return s.internalError(c, err)
	}
	return c.JSON(doc.Templates)
}

// putTemplate upserts one template by id. id and name are required.
func (s *Server) putTemplate(c *fiber.Ctx) error {
	var body struct {
		Template map[string]any `json:"template"`
	}
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid JSON body")
	}

	id, _ := body.Template["id"].(string)
	name, _ := body.Template["name"].(string)
	if strings.TrimSpace(id) == "" || strings.TrimSpace(name) == "" {
		return badRequest(c, "template id and name are required")
	}

	if err := s.store.UpsertTemplate(body.Template); err != nil {
		return s.internalError(c, err)
	}
	return c.JSON(fiber.Map{"id": id})
}

func (s *Server) deleteTemplate(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := s.store.DeleteTemplate(id); err != nil {
		return s.internalError(c, err)
	}
	return c.JSON(fiber.Map{"id": id})
}

func (s *Server) internalError(c *fiber.Ctx, err error) error {
	s.log.Error().Err(err).Str("path", c.Path()).Msg("request failed")
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "internal error",
	})
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
}

func isJSONArray(raw json.RawMessage) bool {
	trimmed := strings.TrimSpace(string(raw))
	return strings.HasPrefix(trimmed, "[")
}

// App exposes the fiber app for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// Start runs the listener until SIGINT or SIGTERM, then shuts down
// gracefully.
func (s *Server) Start() error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		s.log.Info().Msg("shutting down")
		if err := s.app.ShutdownWithTimeout(30 * time.Second); err != nil {
			s.log.Error().Err(err).Msg("shutdown failed")
		}
	}()

	s.log.Info().Str("port", s.cfg.Server.Port).Str("data", s.cfg.Store.DataFile).
		Msg("persistence service listening")
	if err := s.app.Listen(s.cfg.Server.Port); err != nil {
		return fmt.Errorf("server: listen: %w", err)
	}
	return nil
}

// Shutdown stops the server.
func (s *Server) Shutdown() error {
	return s.app.ShutdownWithTimeout(30 * time.Second)
}
