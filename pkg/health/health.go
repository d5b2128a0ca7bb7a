// Package health exposes liveness and readiness endpoints with pluggable
// dependency checks.
package health

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"
)

// Check probes one dependency; a nil return means healthy.
type Check func(ctx context.Context) error

// Result is the outcome of a single dependency check.
type Result struct {
	Healthy bool   `json:"healthy"`
	Error   string `json:"error,omitempty"`
}

// Report is the JSON body returned by the readiness endpoint.
type Report struct {
	Healthy   bool              `json:"healthy"`
	Timestamp time.Time         `json:"timestamp"`
	Checks    map[string]Result `json:"checks,omitempty"`
}

// Registry holds named dependency checks.
type Registry struct {
	mu     sync.RWMutex
	checks map[string]Check
}

// NewRegistry creates an empty check registry.
func NewRegistry() *Registry {
	return &Registry{checks: make(map[string]Check)}
}

// Register adds a named dependency check.
func (g *Registry) Register(name string, c Check) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.checks[name] = c
}

// Live always reports 200 while the process is running.
func (g *Registry) Live() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeReport(w, http.StatusOK, Report{Healthy: true, Timestamp: time.Now().UTC()})
	}
}

// Ready runs every registered check and reports 200 or 503.
func (g *Registry) Ready() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		g.mu.RLock()
		checks := make(map[string]Check, len(g.checks))
		for name, c := range g.checks {
			checks[name] = c
		}
		g.mu.RUnlock()

		report := Report{
			Healthy:   true,
			Timestamp: time.Now().UTC(),
			Checks:    make(map[string]Result, len(checks)),
		}
		for name, c := range checks {
			if err := c(ctx); err != nil {
				report.Checks[name] = Result{Healthy: false, Error: err.Error()}
				report.Healthy = false
			} else {
				report.Checks[name] = Result{Healthy: true}
			}
		}

		status := http.StatusOK
		if !report.Healthy {
			status = http.StatusServiceUnavailable
		}
		writeReport(w, status, report)
	}
}

func writeReport(w http.ResponseWriter, status int, report Report) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(report)
}
