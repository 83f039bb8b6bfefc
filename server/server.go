// Package server exposes the analyzer over HTTP for host dashboards.
// Documents are posted as raw HTML, analyzed synchronously, and held in an
// in-memory session store; the dashboard consumes the normalized result
// and owns all presentation.
package server

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/gaurav-prasanna/deckparse/core"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

// Server is the HTTP API server for deckparse.
type Server struct {
	router   chi.Router
	analyzer core.Analyzer
	store    *Store
	log      *slog.Logger
	maxBytes int64
}

// NewServer creates and configures the HTTP server.
func NewServer(analyzer core.Analyzer, store *Store, log *slog.Logger, maxBytes int64) *Server {
	s := &Server{
		analyzer: analyzer,
		store:    store,
		log:      log,
		maxBytes: maxBytes,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	r.Get("/health", s.handleHealth)

	r.Post("/api/documents", s.handleImport)
	r.Get("/api/documents", s.handleList)
	r.Get("/api/documents/{docID}", s.handleGet)
	r.Delete("/api/documents/{docID}", s.handleDelete)

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

// handleImport analyzes the posted HTML and registers the result.
func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.maxBytes))
	if err != nil {
		writeError(w, http.StatusRequestEntityTooLarge, "document too large or unreadable")
		return
	}
	if len(body) == 0 {
		writeError(w, http.StatusBadRequest, "empty document")
		return
	}

	doc := &Document{
		ID:     uuid.NewString(),
		Result: s.analyzer.Analyze(string(body)),
	}
	s.store.Put(doc)

	s.log.Info("imported document",
		"doc_id", doc.ID,
		"title", doc.Result.Title,
		"sections", len(doc.Result.Sections),
	)
	writeJSON(w, http.StatusCreated, doc)
}

// documentSummary is the listing shape; full content stays behind the
// per-document endpoint.
type documentSummary struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	TocEntries int    `json:"toc_entries"`
	Sections   int    `json:"sections"`
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	docs := s.store.List()
	summaries := make([]documentSummary, 0, len(docs))
	for _, d := range docs {
		summaries = append(summaries, documentSummary{
			ID:         d.ID,
			Title:      d.Result.Title,
			TocEntries: len(d.Result.TocEntries),
			Sections:   len(d.Result.Sections),
		})
	}
	writeJSON(w, http.StatusOK, summaries)
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	doc := s.store.Get(chi.URLParam(r, "docID"))
	if doc == nil {
		writeError(w, http.StatusNotFound, "document not found")
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	if !s.store.Delete(chi.URLParam(r, "docID")) {
		writeError(w, http.StatusNotFound, "document not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
