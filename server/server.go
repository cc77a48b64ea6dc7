// Package server exposes the arrivals pipeline over HTTP: per-line
// estimates as JSON, a health probe, and Prometheus metrics.
package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"mta/subway-arrivals/arrivals"
	"mta/subway-arrivals/config"
	"mta/subway-arrivals/metrics"
)

// Provider delivers a finite, already-fully-received batch of raw records,
// or reports a fetch error before the pipeline is invoked. Both feed
// clients implement it.
type Provider interface {
	Fetch(lines []string) ([]arrivals.RawRecord, error)
}

// Server serves arrival estimates for one configured provider.
type Server struct {
	cfg          config.AppConfig
	provider     Provider
	providerName string
	collector    *metrics.Collector
	httpServer   *http.Server
}

// New assembles a server. collector may not be nil; pass a fresh one.
func New(cfg config.AppConfig, provider Provider, providerName string, collector *metrics.Collector) *Server {
	return &Server{
		cfg:          cfg,
		provider:     provider,
		providerName: providerName,
		collector:    collector,
	}
}

// Handler returns the route mux, exposed for tests.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/arrivals.json", s.handleArrivals)
	mux.Handle("/metrics", s.collector.Handler())
	return mux
}

// Start begins listening in the background.
func (s *Server) Start() {
	addr := fmt.Sprintf(":%d", s.cfg.Server.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()
	log.Info().Str("addr", addr).Str("provider", s.providerName).Msg("server listening")
}

// HandleGracefulShutdown blocks until SIGINT or SIGTERM, then drains the
// server with a timeout.
func (s *Server) HandleGracefulShutdown() {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	log.Info().Msg("shutdown signal received")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("server shutdown error")
		} else {
			log.Info().Msg("server shut down successfully")
		}
	}
}
