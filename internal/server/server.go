// Package server exposes the matching contract over HTTP. It is a thin
// transport: request decoding, auth, request-scoped logging; all decisions
// stay in the match package.
package server

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jobsift/jobsift/internal/domain"
	"github.com/jobsift/jobsift/internal/logger"
	"github.com/jobsift/jobsift/internal/match"
)

// MatchRequest is the body of POST /v1/match.
type MatchRequest struct {
	Profile  domain.UserProfile  `json:"profile"`
	Jobs     []domain.JobPosting `json:"jobs"`
	Limit    int                 `json:"limit"`
	MinScore *float64            `json:"min_score"`
}

// MatchResponse is the reply: ranked results plus bookkeeping.
type MatchResponse struct {
	SearchID string               `json:"search_id"`
	Count    int                  `json:"count"`
	Results  []domain.MatchResult `json:"results"`
}

// Config holds the HTTP surface settings.
type Config struct {
	Address string `mapstructure:"address"`
	// Token guards the match endpoint when non-empty; clients send it as
	// a bearer token.
	Token string `mapstructure:"-"`
	// Timeout bounds one match request end to end.
	Timeout time.Duration `mapstructure:"timeout"`
}

// Server hosts the fiber app around one matching service.
type Server struct {
	cfg     Config
	service *match.Service
	log     *zap.Logger
	app     *fiber.App
}

// New builds the server and its routes.
func New(cfg Config, service *match.Service, log *zap.Logger) *Server {
	if cfg.Address == "" {
		cfg.Address = ":8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if log == nil {
		log = zap.NewNop()
	}

	s := &Server{cfg: cfg, service: service, log: log}
	s.app = fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ReadTimeout:           cfg.Timeout,
	})

	s.app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	s.app.Post("/v1/match", s.handleMatch)

	return s
}

// Listen blocks serving requests until Shutdown is called.
func (s *Server) Listen() error {
	s.log.Info("http server listening", zap.String("address", s.cfg.Address))
	return s.app.Listen(s.cfg.Address)
}

// Shutdown drains in-flight requests and stops the listener.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

func (s *Server) handleMatch(c *fiber.Ctx) error {
	if s.cfg.Token != "" && c.Get("Authorization") != "Bearer "+s.cfg.Token {
		return fiber.NewError(fiber.StatusUnauthorized, "invalid token")
	}

	var req MatchRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body: "+err.Error())
	}

	requestID := uuid.NewString()
	log := logger.WithFields(s.log, zap.String("request_id", requestID))

	minScore := -1.0
	if req.MinScore != nil {
		minScore = *req.MinScore
	}

	ctx, cancel := context.WithTimeout(c.Context(), s.cfg.Timeout)
	defer cancel()

	started := time.Now()
	results, err := s.service.Search(ctx, req.Profile, req.Jobs, req.Limit, minScore)
	if err != nil {
		log.Error("search failed", zap.Error(err))
		return fiber.NewError(fiber.StatusInternalServerError, "search failed")
	}

	log.Info("match request served",
		zap.Int("candidates", len(req.Jobs)),
		zap.Int("matched", len(results)),
		zap.Duration("elapsed", time.Since(started)),
	)

	return c.JSON(MatchResponse{
		SearchID: requestID,
		Count:    len(results),
		Results:  results,
	})
}
