package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/okerlund/rosterbook/internal/domain"
)

type renameTagRequest struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type setBufferRequest struct {
	Tags []string `json:"tags"`
}

// RenameTag handles POST /tags/rename.
// The rename propagates atomically to every category, kid, event, and
// selection buffer; renaming onto an existing tag merges the two.
func (s *Server) RenameTag(w http.ResponseWriter, r *http.Request) {
	var req renameTagRequest
	if err := decodeJSON(r, &req); err != nil {
		respondBadRequest(w, "request body is required")
		return
	}

	if err := s.tags.Rename(req.From, req.To); err != nil {
		if errors.Is(err, domain.ErrValidation) {
			respondValidation(w, err)
			return
		}
		respondInternal(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteTag handles DELETE /tags/{tag}.
// Only the tag references are dropped; kids and events survive.
func (s *Server) DeleteTag(w http.ResponseWriter, r *http.Request) {
	if err := s.tags.Delete(chi.URLParam(r, "tag")); err != nil {
		if errors.Is(err, domain.ErrValidation) {
			respondValidation(w, err)
			return
		}
		respondInternal(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListBuffers handles GET /buffers.
func (s *Server) ListBuffers(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, s.tags.Buffers())
}

// SetBuffer handles PUT /buffers/{name}.
// A buffer is a transient tag selection (an active filter, an open form)
// registered with the state so tag renames and deletes reach it too.
func (s *Server) SetBuffer(w http.ResponseWriter, r *http.Request) {
	var req setBufferRequest
	if err := decodeJSON(r, &req); err != nil {
		respondBadRequest(w, "request body is required")
		return
	}

	if err := s.tags.SetBuffer(chi.URLParam(r, "name"), req.Tags); err != nil {
		if errors.Is(err, domain.ErrValidation) {
			respondValidation(w, err)
			return
		}
		respondInternal(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ClearBuffer handles DELETE /buffers/{name}.
func (s *Server) ClearBuffer(w http.ResponseWriter, r *http.Request) {
	if err := s.tags.ClearBuffer(chi.URLParam(r, "name")); err != nil {
		respondInternal(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
