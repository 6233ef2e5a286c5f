package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/aretw0/lsys"
	"github.com/aretw0/lsys/internal/presentation/graph"
	"github.com/aretw0/lsys/pkg/adapters/svg"
	"github.com/aretw0/lsys/pkg/domain"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// DefaultMaxSymbols bounds expansion for network clients unless an option
// passed to NewHandler overrides it.
const DefaultMaxSymbols = 1 << 20

// Server renders one configured L-system on demand.
// Every request builds its own System and canvas; nothing is shared between requests.
type Server struct {
	Config  domain.Config
	Options []lsys.Option
	Logger  *slog.Logger
}

// NewHandler creates the HTTP handler for cfg. Metrics are served from gatherer
// when it is not nil. Expansion is capped at DefaultMaxSymbols; a
// lsys.WithMaxSymbols option in opts replaces that cap.
func NewHandler(cfg domain.Config, gatherer prometheus.Gatherer, logger *slog.Logger, opts ...lsys.Option) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	server := &Server{
		Config:  cfg,
		Options: append([]lsys.Option{lsys.WithMaxSymbols(DefaultMaxSymbols)}, opts...),
		Logger:  logger,
	}

	r := chi.NewRouter()
	r.Get("/health", server.GetHealth)
	r.Get("/info", server.GetInfo)
	r.Get("/expand", server.GetExpand)
	r.Get("/render.svg", server.GetRender)
	r.Get("/summary", server.GetSummary)
	r.Get("/graph", server.GetGraph)
	if gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}
	return r
}

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{"status": "ok"})
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{
		"app":     "lsys-http",
		"version": lsys.Version,
	})
}

// GetExpand handles the GET /expand request, returning the expanded symbols as text.
func (s *Server) GetExpand(w http.ResponseWriter, r *http.Request) {
	sys, depth, ok := s.system(w, r)
	if !ok {
		return
	}

	symbols, err := sys.Expand(r.Context(), depth)
	if err != nil {
		s.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(symbols))
}

// GetRender handles the GET /render.svg request.
// Optional query parameters: depth, stroke, width, background.
func (s *Server) GetRender(w http.ResponseWriter, r *http.Request) {
	sys, depth, ok := s.system(w, r)
	if !ok {
		return
	}

	var svgOpts []svg.Option
	q := r.URL.Query()
	if stroke := q.Get("stroke"); stroke != "" {
		svgOpts = append(svgOpts, svg.WithStroke(stroke))
	}
	if bg := q.Get("background"); bg != "" {
		svgOpts = append(svgOpts, svg.WithBackground(bg))
	}
	if raw := q.Get("width"); raw != "" {
		width, err := strconv.ParseFloat(raw, 64)
		if err != nil || width <= 0 {
			http.Error(w, fmt.Sprintf("invalid width %q", raw), http.StatusBadRequest)
			return
		}
		svgOpts = append(svgOpts, svg.WithStrokeWidth(width))
	}

	symbols, err := sys.Expand(r.Context(), depth)
	if err != nil {
		s.writeError(w, err)
		return
	}
	canvas := svg.New(svgOpts...)
	if _, err := sys.Interpret(r.Context(), symbols, canvas); err != nil {
		s.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	if _, err := canvas.WriteTo(w); err != nil {
		s.Logger.Error("svg write failed", "error", err)
	}
}

// GetSummary handles the GET /summary request, rendering without a drawing.
func (s *Server) GetSummary(w http.ResponseWriter, r *http.Request) {
	sys, depth, ok := s.system(w, r)
	if !ok {
		return
	}

	symbols, err := sys.Expand(r.Context(), depth)
	if err != nil {
		s.writeError(w, err)
		return
	}
	summary, err := sys.Interpret(r.Context(), symbols, nopCanvas{})
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, summary)
}

// GetGraph handles the GET /graph request, returning the rule graph in Mermaid syntax.
func (s *Server) GetGraph(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(graph.GenerateMermaid(s.Config.Axiom, s.Config.Rules)))
}

// system builds a System for the request, honoring the depth query parameter.
func (s *Server) system(w http.ResponseWriter, r *http.Request) (*lsys.System, int, bool) {
	depth := s.Config.Depth
	if raw := r.URL.Query().Get("depth"); raw != "" {
		d, err := strconv.Atoi(raw)
		if err != nil {
			http.Error(w, fmt.Sprintf("invalid depth %q", raw), http.StatusBadRequest)
			return nil, 0, false
		}
		depth = d
	}
	return lsys.New(s.Config, s.Options...), depth, true
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrInvalidDepth):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrSymbolLimit):
		status = http.StatusRequestEntityTooLarge
	case errors.Is(err, domain.ErrStackUnderflow):
		status = http.StatusUnprocessableEntity
	}
	if status == http.StatusInternalServerError {
		s.Logger.Error("request failed", "error", err)
	}
	http.Error(w, err.Error(), status)
}

func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.Logger.Error("encode failed", "error", err)
	}
}

type nopCanvas struct{}

func (nopCanvas) DrawLine(from, to domain.Point) {}
