// Package server exposes the text analysis use cases over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"textlab/config"
	"textlab/internal/logger"
	"textlab/internal/usecase"
)

// Services are the use cases the handlers dispatch to.
type Services struct {
	Text         *usecase.TextUseCase
	Perplexity   *usecase.PerplexityUseCase
	EditDistance *usecase.EditDistanceUseCase
	Morph        *usecase.MorphUseCase
}

type Server struct {
	config   config.ServerConfig
	services *Services
	log      logger.Logger
	router   *gin.Engine
}

func NewServer(cfg config.ServerConfig, services *Services, log logger.Logger) *Server {
	if log == nil {
		log = logger.GetDefault()
	}
	s := &Server{
		config:   cfg,
		services: services,
		log:      log,
	}
	s.router = s.buildRouter()
	return s
}

// Handler returns the HTTP handler serving every route.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) buildRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(LoggerMiddleware(s.log))
	router.Use(CORSMiddleware(s.config.AllowOrigins))
	router.Use(TimeoutMiddleware(s.config.RequestTimeout))

	router.GET("/", s.handleHealth)

	api := router.Group("/api")
	api.POST("/tokenize", s.handleTokenize)
	api.POST("/analyze", s.handleAnalyze)
	api.POST("/perplexity", s.handlePerplexity)
	api.POST("/edit-distance", s.handleEditDistance)
	api.POST("/morph-analysis", s.handleMorph)

	return router
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.config.Addr,
		Handler:      s.router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("Starting HTTP server", "address", fmt.Sprintf("http://%s", s.config.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.log.Debug("Received shutdown signal, initiating graceful shutdown")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	s.log.Info("Server shutdown completed successfully")
	return nil
}
