package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/pzielke/trolley/internal/shop"
)

// Server exposes the shopping-list REST API backed by an in-memory store.
type Server struct {
	store  *Store
	logger *slog.Logger
}

// New creates a server around the given store.
func New(store *Store, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{store: store, logger: logger}
}

// Router builds the chi router. The product routes are mounted twice, at
// /products and at /api/products, so clients behind either base path work.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", s.handleHealth)

	routes := func(r chi.Router) {
		r.Get("/", s.handleList)
		r.Post("/", s.handleCreate)
		r.Put("/{id}", s.handleUpdate)
		r.Delete("/{id}", s.handleDelete)
	}
	r.Route("/products", routes)
	r.Route("/api/products", routes)

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleList handles GET /products.
func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	products := s.store.List()
	// An empty list must encode as [] rather than null.
	if products == nil {
		products = []shop.Product{}
	}
	s.writeJSON(w, http.StatusOK, products)
}

// handleCreate handles POST /products. It assigns the id and returns the
// stored record; clients are expected to trust only the id field.
func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	var draft shop.Product
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if strings.TrimSpace(draft.Name) == "" {
		s.writeError(w, http.StatusBadRequest, "name is required")
		return
	}
	if draft.Quantity == "" {
		draft.Quantity = "1"
	}
	if draft.Category == "" {
		draft.Category = shop.CategoryOther
	}

	created := s.store.Create(draft)
	s.logger.Info("product created", "id", created.ID, "name", created.Name)
	s.writeJSON(w, http.StatusCreated, created)
}

// handleUpdate handles PUT /products/{id}. The path id wins over any id in
// the body.
func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var product shop.Product
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	product.ID = id

	if strings.TrimSpace(product.Name) == "" {
		s.writeError(w, http.StatusBadRequest, "name is required")
		return
	}

	if !s.store.Update(product) {
		s.writeError(w, http.StatusNotFound, "product not found")
		return
	}

	s.logger.Info("product updated", "id", id, "name", product.Name)
	s.writeJSON(w, http.StatusOK, product)
}

// handleDelete handles DELETE /products/{id}.
func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if !s.store.Delete(id) {
		s.writeError(w, http.StatusNotFound, "product not found")
		return
	}

	s.logger.Info("product deleted", "id", id)
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("failed to encode JSON response", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{"error": message})
}
