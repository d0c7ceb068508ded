package handler

import (
	"errors"
	"net/http"

	"github.com/okerlund/rosterbook/internal/domain"
)

type kidResponse struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Tags      []string `json:"tags"`
	CreatedAt int64    `json:"createdAt"`
}

type kidRequest struct {
	Name string   `json:"name"`
	Tags []string `json:"tags"`
}

// ListKids handles GET /kids.
func (s *Server) ListKids(w http.ResponseWriter, _ *http.Request) {
	kids := s.roster.List()

	resp := make([]kidResponse, len(kids))
	for i, k := range kids {
		resp[i] = kidToResponse(k)
	}
	respondJSON(w, http.StatusOK, resp)
}

// CreateKid handles POST /kids.
func (s *Server) CreateKid(w http.ResponseWriter, r *http.Request) {
	var req kidRequest
	if err := decodeJSON(r, &req); err != nil {
		respondBadRequest(w, "request body is required")
		return
	}

	kid, err := s.roster.Create(req.Name, req.Tags)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			respondValidation(w, err)
			return
		}
		respondInternal(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, kidToResponse(kid))
}

// UpdateKid handles PUT /kids/{id}.
func (s *Server) UpdateKid(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(r, "id")
	if !ok {
		respondNotFound(w, "kid not found")
		return
	}
	var req kidRequest
	if err := decodeJSON(r, &req); err != nil {
		respondBadRequest(w, "request body is required")
		return
	}

	kid, err := s.roster.Update(id, req.Name, req.Tags)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondNotFound(w, "kid not found")
			return
		}
		if errors.Is(err, domain.ErrValidation) {
			respondValidation(w, err)
			return
		}
		respondInternal(w, err)
		return
	}
	respondJSON(w, http.StatusOK, kidToResponse(kid))
}

// DeleteKid handles DELETE /kids/{id}.
// Deleting a kid cascades its participations out of every event.
func (s *Server) DeleteKid(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(r, "id")
	if !ok {
		respondNotFound(w, "kid not found")
		return
	}

	if err := s.roster.Delete(id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondNotFound(w, "kid not found")
			return
		}
		respondInternal(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// kidToResponse converts a domain.Kid to its API shape.
func kidToResponse(k domain.Kid) kidResponse {
	return kidResponse{
		ID:        k.ID.String(),
		Name:      k.Name,
		Tags:      append([]string{}, k.Tags...),
		CreatedAt: k.CreatedAt.UnixMilli(),
	}
}
