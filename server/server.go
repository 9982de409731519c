// Package server exposes a running match over HTTP: prometheus metrics and
// the latest snapshot as JSON.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/automoto/platfight/core"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const shutdownTimeout = 5 * time.Second

// SnapshotSource is the part of core.World the router reads. It must be safe
// to call from request goroutines.
type SnapshotSource interface {
	Snapshot() *core.Snapshot
}

// Server serves one match's state while its loop runs elsewhere.
type Server struct {
	source SnapshotSource
	http   *http.Server
}

func NewServer(source SnapshotSource, quiet bool) *Server {
	return &Server{
		source: source,
		http: &http.Server{
			Handler:           NewRouter(source, quiet),
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

// NewRouter builds the HTTP routes. It starts nothing, so tests can mount it
// on httptest.NewServer.
func NewRouter(source SnapshotSource, quiet bool) *chi.Mux {
	r := chi.NewRouter()
	if !quiet {
		r.Use(middleware.Logger)
	}
	r.Use(middleware.Recoverer)

	h := &handlers{source: source}
	r.Get("/healthz", h.handleHealth)
	r.Get("/snapshot", h.handleSnapshot)
	r.Get("/snapshot/players/{index}", h.handlePlayer)
	r.Handle("/metrics", promhttp.Handler())
	return r
}

// Start listens on addr in the background. The listener is bound before
// Start returns, so a bad address fails here.
func (s *Server) Start(addr string) (net.Addr, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}
	go func() {
		if err := s.http.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("[server] HTTP error: %v", err)
		}
	}()
	log.Printf("[server] Listening on %s", ln.Addr())
	return ln.Addr(), nil
}

// Stop shuts the HTTP server down, waiting briefly for open requests.
func (s *Server) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return s.http.Shutdown(ctx)
}

type handlers struct {
	source SnapshotSource
}

func (h *handlers) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"frame":  h.source.Snapshot().Frame,
	})
}

func (h *handlers) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.source.Snapshot())
}

func (h *handlers) handlePlayer(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "player index must be a number"})
		return
	}
	p, ok := h.source.Snapshot().Player(index)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "no such player"})
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[server] Encode response: %v", err)
	}
}
