package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/okerlund/rosterbook/internal/domain"
)

// catalogResponse lists categories in a stable order for display.
type catalogResponse struct {
	Categories []categoryResponse `json:"categories"`
}

type categoryResponse struct {
	Name string   `json:"name"`
	Tags []string `json:"tags"`
}

type addCategoryRequest struct {
	Name string `json:"name"`
}

type addTagRequest struct {
	Name string `json:"name"`
}

// GetCatalog handles GET /catalog.
func (s *Server) GetCatalog(w http.ResponseWriter, _ *http.Request) {
	catalog := s.catalog.Get()

	resp := catalogResponse{Categories: []categoryResponse{}}
	for _, name := range catalog.Categories() {
		resp.Categories = append(resp.Categories, categoryResponse{
			Name: name,
			Tags: append([]string{}, catalog[name]...),
		})
	}
	respondJSON(w, http.StatusOK, resp)
}

// AddCategory handles POST /catalog/categories.
func (s *Server) AddCategory(w http.ResponseWriter, r *http.Request) {
	var req addCategoryRequest
	if err := decodeJSON(r, &req); err != nil {
		respondBadRequest(w, "request body is required")
		return
	}

	if err := s.catalog.AddCategory(req.Name); err != nil {
		if errors.Is(err, domain.ErrValidation) {
			respondValidation(w, err)
			return
		}
		respondInternal(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AddTag handles POST /catalog/categories/{category}/tags.
func (s *Server) AddTag(w http.ResponseWriter, r *http.Request) {
	var req addTagRequest
	if err := decodeJSON(r, &req); err != nil {
		respondBadRequest(w, "request body is required")
		return
	}

	err := s.catalog.AddTag(chi.URLParam(r, "category"), req.Name)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondNotFound(w, "category not found")
			return
		}
		if errors.Is(err, domain.ErrValidation) {
			respondValidation(w, err)
			return
		}
		respondInternal(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
