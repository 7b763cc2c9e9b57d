// Package http exposes the piece catalog and the orientation enumerator
// over a JSON API.
package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/arbaregni/pentominoes"
	"github.com/arbaregni/pentominoes/internal/logging"
	"github.com/arbaregni/pentominoes/pkg/grid"
	"github.com/arbaregni/pentominoes/pkg/ports"
	"github.com/arbaregni/pentominoes/pkg/symmetry"
)

// Catalog defines the piece lookups the API needs.
type Catalog interface {
	Pieces() []pentominoes.Piece
	Get(name string) (pentominoes.Piece, error)
	Len() int
}

// Server holds the handlers' dependencies.
type Server struct {
	Catalog Catalog
	Logger  *slog.Logger
}

// NewHandler creates the HTTP handler for the API, with request logging
// and Prometheus instrumentation attached. Metrics are registered on a
// per-handler registry and served under /metrics.
func NewHandler(cat Catalog, logger *slog.Logger) http.Handler {
	if logger == nil {
		logger = logging.NewNop()
	}
	srv := &Server{Catalog: cat, Logger: logger}

	reg := prometheus.NewRegistry()
	m := newMetrics(reg)

	r := chi.NewRouter()
	r.Use(srv.logRequests)
	r.Use(m.instrument)

	r.Get("/healthz", srv.health)
	r.Get("/info", srv.info)
	r.Get("/pieces", srv.listPieces)
	r.Get("/pieces/{name}", srv.getPiece)
	r.Post("/orientations", srv.orientations)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	return r
}

// -- DTOs --

type pieceSummary struct {
	Name         string `json:"name"`
	Cells        int    `json:"cells"`
	Orientations int    `json:"orientations"`
}

type piecesResponse struct {
	Pieces []pieceSummary `json:"pieces"`
}

type orientationPayload struct {
	Rows  []string `json:"rows"`
	Cells string   `json:"cells"`
}

type pieceDetail struct {
	Name         string               `json:"name"`
	Rows         []string             `json:"rows"`
	Cells        int                  `json:"cells"`
	Orientations []orientationPayload `json:"orientations"`
}

type orientationsRequest struct {
	Rows []string `json:"rows"`
}

type orientationsResponse struct {
	Count        int                  `json:"count"`
	Orientations []orientationPayload `json:"orientations"`
}

func toPayload(s grid.Shape) orientationPayload {
	return orientationPayload{Rows: s.Rows(), Cells: s.String()}
}

// -- Handlers --

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) info(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"app":     "pentominoes-http",
		"version": strings.TrimSpace(pentominoes.Version),
		"pieces":  s.Catalog.Len(),
	})
}

func (s *Server) listPieces(w http.ResponseWriter, r *http.Request) {
	pieces := s.Catalog.Pieces()
	resp := piecesResponse{Pieces: make([]pieceSummary, len(pieces))}
	for i, p := range pieces {
		resp.Pieces[i] = pieceSummary{
			Name:         p.Name(),
			Cells:        p.Shape().Len(),
			Orientations: len(p.Orientations()),
		}
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) getPiece(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	piece, err := s.Catalog.Get(name)
	if err != nil {
		if errors.Is(err, ports.ErrPieceNotFound) {
			s.writeError(w, http.StatusNotFound, err.Error())
			return
		}
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	orientations := piece.Orientations()
	resp := pieceDetail{
		Name:         piece.Name(),
		Rows:         piece.Shape().Rows(),
		Cells:        piece.Shape().Len(),
		Orientations: make([]orientationPayload, len(orientations)),
	}
	for i, o := range orientations {
		resp.Orientations[i] = toPayload(o)
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) orientations(w http.ResponseWriter, r *http.Request) {
	var body orientationsRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	shape, err := grid.Parse(body.Rows...)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	orientations := symmetry.Orientations(shape)
	resp := orientationsResponse{
		Count:        len(orientations),
		Orientations: make([]orientationPayload, len(orientations)),
	}
	for i, o := range orientations {
		resp.Orientations[i] = toPayload(o)
	}
	s.writeJSON(w, http.StatusOK, resp)
}

// -- Helpers --

func (s *Server) writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.Logger.Error("failed to encode response", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, code int, msg string) {
	s.writeJSON(w, code, map[string]string{"error": msg})
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.Logger.Debug("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
		)
	})
}
