package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"mta/subway-arrivals/arrivals"
)

type arrivalsResponse struct {
	GeneratedAt string                  `json:"generatedAt"`
	Provider    string                  `json:"provider"`
	Lines       []arrivals.LineEstimate `json:"lines"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type healthResponse struct {
	Status string `json:"status"`
}

// handleArrivals answers GET /api/arrivals.json?lines=F,6. Without a lines
// parameter the configured default lines are used. Unknown line codes are
// rejected before any feed is fetched.
func (s *Server) handleArrivals(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	started := time.Now()

	lines := s.cfg.Lines
	if raw := r.URL.Query().Get("lines"); raw != "" {
		lines = splitLines(raw)
	}
	if len(lines) == 0 {
		writeError(w, http.StatusBadRequest, "no lines requested")
		return
	}
	for _, line := range lines {
		if !s.cfg.IsSupportedLine(line) {
			msg := fmt.Sprintf("line %q not supported. Use: %s", line, strings.Join(s.cfg.SupportedLines(), ", "))
			writeError(w, http.StatusBadRequest, msg)
			return
		}
	}

	s.collector.FeedFetches.WithLabelValues(s.providerName).Inc()
	raw, err := s.provider.Fetch(lines)
	if err != nil {
		s.collector.FeedFetchErrors.WithLabelValues(s.providerName).Inc()
		log.Error().Err(err).Str("provider", s.providerName).Msg("feed fetch failed")
		writeError(w, http.StatusBadGateway, "upstream feed unavailable")
		return
	}

	// One sampled instant for the whole invocation.
	now := time.Now()
	opts := arrivals.Options{
		MinUsefulMinutes:     s.cfg.Pipeline.MinUsefulMinutes,
		MergeDistanceMinutes: s.cfg.Pipeline.MergeDistanceMinutes,
		MaxArrivals:          s.cfg.Pipeline.MaxArrivals,
	}
	normalized := arrivals.Normalize(raw, lines, now)
	deduped := arrivals.Dedupe(normalized)
	estimates := arrivals.Select(deduped, lines, opts)

	s.collector.RecordsSeen.Add(float64(len(raw)))
	s.collector.RecordsKept.Add(float64(len(deduped)))
	if skipped := len(raw) - len(normalized); skipped > 0 {
		log.Debug().Int("skipped", skipped).Int("total", len(raw)).Msg("skipped malformed records")
	}

	resp := arrivalsResponse{
		GeneratedAt: now.UTC().Format(time.RFC3339),
		Provider:    s.providerName,
		Lines:       estimates,
	}
	_ = json.NewEncoder(w).Encode(resp)
	s.collector.RequestDuration.Observe(time.Since(started).Seconds())
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(healthResponse{Status: "ok"})
}

func writeError(w http.ResponseWriter, code int, msg string) {
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(errorResponse{Error: msg})
}

func splitLines(raw string) []string {
	parts := strings.Split(raw, ",")
	lines := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.ToUpper(strings.TrimSpace(p))
		if p != "" {
			lines = append(lines, p)
		}
	}
	return lines
}
