package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"sync"

	"github.com/aretw0/cellsweep/pkg/config"
	"github.com/aretw0/cellsweep/pkg/grid"
	"github.com/aretw0/cellsweep/pkg/ports"
	"github.com/aretw0/cellsweep/pkg/registry"
	"github.com/aretw0/cellsweep/pkg/runner"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MaxStepsPerRequest bounds the n parameter of POST /step.
const MaxStepsPerRequest = 1000

// Server exposes one Simulation over HTTP.
// Requests are serialised because a Simulation is single-threaded.
type Server struct {
	mu       sync.Mutex
	sim      ports.Simulator
	patterns *registry.Registry
	gatherer prometheus.Gatherer
	logger   *slog.Logger
}

// Option configures a Server.
type Option func(*Server)

// WithRegistry enables POST /reset?pattern=name and GET /patterns.
func WithRegistry(r *registry.Registry) Option {
	return func(s *Server) {
		s.patterns = r
	}
}

// WithGatherer serves the gathered metrics on GET /metrics.
func WithGatherer(g prometheus.Gatherer) Option {
	return func(s *Server) {
		s.gatherer = g
	}
}

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewHandler creates a new HTTP handler for the simulation.
func NewHandler(sim ports.Simulator, opts ...Option) http.Handler {
	s := &Server{
		sim:    sim,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Get("/healthz", s.GetHealth)
	r.Get("/grid", s.GetGrid)
	r.Post("/step", s.Step)
	r.Post("/reset", s.Reset)
	if s.patterns != nil {
		r.Get("/patterns", s.GetPatterns)
	}
	if s.gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	}
	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetHealth handles the GET /healthz request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.logger, http.StatusOK, map[string]string{"status": "ok"})
}

// GetGrid handles the GET /grid request.
func (s *Server) GetGrid(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	frame := runner.NewFrame(s.sim.Generation(), s.sim.Grid(), nil)
	s.mu.Unlock()

	writeJSON(w, s.logger, http.StatusOK, frame)
}

// Step handles the POST /step?n=k request and returns the last produced frame.
// Changes are relative to the grid before the request.
func (s *Server) Step(w http.ResponseWriter, r *http.Request) {
	n := 1
	if raw := r.URL.Query().Get("n"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 || v > MaxStepsPerRequest {
			http.Error(w, fmt.Sprintf("n must be an integer in [1, %d]", MaxStepsPerRequest), http.StatusBadRequest)
			return
		}
		n = v
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	before := s.sim.Grid()
	frames, err := s.sim.Run(r.Context(), n)
	if err != nil {
		http.Error(w, fmt.Sprintf("Step error: %v", err), http.StatusInternalServerError)
		s.logger.Error("Step failed", "error", err, "generation", s.sim.Generation())
		return
	}

	last := frames[len(frames)-1]
	changes, err := grid.Diff(before, last)
	if err != nil {
		http.Error(w, fmt.Sprintf("Step error: %v", err), http.StatusInternalServerError)
		return
	}
	s.logger.Debug("Step", "n", n, "generation", s.sim.Generation(), "changes", len(changes))
	writeJSON(w, s.logger, http.StatusOK, runner.NewFrame(s.sim.Generation(), last, changes))
}

// Reset handles the POST /reset request. The grid comes from ?pattern=name or from a
// JSON pattern document in the body.
func (s *Server) Reset(w http.ResponseWriter, r *http.Request) {
	p, err := s.resolvePattern(r)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, errPatternNotFound) {
			status = http.StatusNotFound
		}
		http.Error(w, err.Error(), status)
		s.logger.Warn("Reset: pattern rejected", "error", err)
		return
	}

	g, err := p.Grid()
	if err != nil {
		http.Error(w, fmt.Sprintf("Invalid pattern: %v", err), http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.sim.Reset(g); err != nil {
		http.Error(w, fmt.Sprintf("Reset error: %v", err), http.StatusInternalServerError)
		return
	}
	writeJSON(w, s.logger, http.StatusOK, runner.NewFrame(0, s.sim.Grid(), nil))
}

// GetPatterns handles the GET /patterns request.
func (s *Server) GetPatterns(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.logger, http.StatusOK, s.patterns.Names())
}

var errPatternNotFound = errors.New("pattern not found")

func (s *Server) resolvePattern(r *http.Request) (config.Pattern, error) {
	if name := r.URL.Query().Get("pattern"); name != "" {
		if s.patterns == nil {
			return config.Pattern{}, fmt.Errorf("%w: %s", errPatternNotFound, name)
		}
		p, err := s.patterns.Get(name)
		if err != nil {
			return config.Pattern{}, fmt.Errorf("%w: %s", errPatternNotFound, name)
		}
		return p, nil
	}

	var raw map[string]any
	dec := json.NewDecoder(io.LimitReader(r.Body, 1<<20))
	if err := dec.Decode(&raw); err != nil {
		return config.Pattern{}, fmt.Errorf("invalid request body: %w", err)
	}
	return config.Decode(raw)
}

func writeJSON(w http.ResponseWriter, logger *slog.Logger, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("response encode failed", "error", err)
	}
}
