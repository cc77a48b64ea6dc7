package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"mta/subway-arrivals/arrivals"
	"mta/subway-arrivals/config"
	"mta/subway-arrivals/metrics"
)

// fakeProvider returns canned records or a canned error.
type fakeProvider struct {
	records []arrivals.RawRecord
	err     error
}

func (f *fakeProvider) Fetch(lines []string) ([]arrivals.RawRecord, error) {
	return f.records, f.err
}

func testServerConfig() config.AppConfig {
	return config.AppConfig{
		Server:   config.ServerConfig{Port: 8080},
		Pipeline: config.PipelineConfig{MinUsefulMinutes: 1, MergeDistanceMinutes: 2, MaxArrivals: 3},
		Provider: "mta",
		Lines:    []string{"F", "6"},
		MTA: config.MTAConfig{Stops: map[string]config.StopPair{
			"F": {Uptown: "MTASBWY_D18N", Downtown: "MTASBWY_D18S"},
			"6": {Uptown: "MTASBWY_634N", Downtown: "MTASBWY_634S"},
		}},
	}
}

func newTestServer(p Provider) *Server {
	return New(testServerConfig(), p, "mta", metrics.NewCollector())
}

func inMinutes(m int) int64 {
	return time.Now().Add(time.Duration(m) * time.Minute).UnixMilli()
}

func TestHandleArrivals(t *testing.T) {
	p := &fakeProvider{records: []arrivals.RawRecord{
		{Line: "F", TripID: "t1", Headsign: "Uptown", PredictedMillis: inMinutes(5)},
		{Line: "F", TripID: "t2", Headsign: "Downtown", PredictedMillis: inMinutes(8)},
	}}
	srv := newTestServer(p)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/arrivals.json?lines=F,6", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Provider string                  `json:"provider"`
		Lines    []arrivals.LineEstimate `json:"lines"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if resp.Provider != "mta" {
		t.Errorf("expected provider mta, got %q", resp.Provider)
	}
	if len(resp.Lines) != 2 {
		t.Fatalf("expected 2 line estimates, got %d", len(resp.Lines))
	}
	if resp.Lines[0].Line != "F" || resp.Lines[1].Line != "6" {
		t.Errorf("expected requested order [F 6], got %q %q", resp.Lines[0].Line, resp.Lines[1].Line)
	}
	if len(resp.Lines[0].Uptown) != 1 || len(resp.Lines[0].Downtown) != 1 {
		t.Errorf("expected one arrival each way for F, got %+v", resp.Lines[0])
	}
	if resp.Lines[1].Uptown == nil || resp.Lines[1].Downtown == nil {
		t.Error("no-data line must serialize empty arrays, not null")
	}
}

func TestHandleArrivals_DefaultLines(t *testing.T) {
	p := &fakeProvider{}
	srv := newTestServer(p)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/arrivals.json", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp struct {
		Lines []arrivals.LineEstimate `json:"lines"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if len(resp.Lines) != 2 {
		t.Errorf("expected configured default lines, got %d estimates", len(resp.Lines))
	}
}

func TestHandleArrivals_UnsupportedLine(t *testing.T) {
	srv := newTestServer(&fakeProvider{})

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/arrivals.json?lines=Z", nil))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unsupported line, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "not supported") {
		t.Errorf("expected unsupported-line message, got %s", rec.Body.String())
	}
}

func TestHandleArrivals_LowercaseLines(t *testing.T) {
	srv := newTestServer(&fakeProvider{})

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/arrivals.json?lines=f", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("lowercase line codes should be accepted, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestHandleArrivals_FetchFailure(t *testing.T) {
	srv := newTestServer(&fakeProvider{err: errors.New("connection refused")})

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/arrivals.json?lines=F", nil))

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502 on fetch failure, got %d", rec.Code)
	}
}

func TestHandleHealth(t *testing.T) {
	srv := newTestServer(&fakeProvider{})

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "ok") {
		t.Errorf("expected ok status, got %s", rec.Body.String())
	}
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newTestServer(&fakeProvider{})

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 from /metrics, got %d", rec.Code)
	}
}
