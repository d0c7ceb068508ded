package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/okerlund/rosterbook/internal/domain"
	"github.com/okerlund/rosterbook/internal/engine"
)

type eventResponse struct {
	ID           string                  `json:"id"`
	Title        string                  `json:"title"`
	Start        string                  `json:"start"`
	End          string                  `json:"end"`
	Tags         []string                `json:"tags"`
	Participants []participationResponse `json:"participants"`
	SuggestedAt  *int64                  `json:"suggestedAt,omitempty"`
	SuggestNotes map[string]string       `json:"suggestNotes,omitempty"`
}

type participationResponse struct {
	KidID  string `json:"kidId"`
	Status int    `json:"status"`
}

type candidateResponse struct {
	Kid   kidResponse `json:"kid"`
	Score int         `json:"score"`
}

type attentionResponse struct {
	Count      int                 `json:"count"`
	Candidates []candidateResponse `json:"candidates"`
}

type eventRequest struct {
	Title string   `json:"title"`
	Start string   `json:"start"`
	End   string   `json:"end"`
	Tags  []string `json:"tags"`
}

type confirmRequest struct {
	KidIDs []string `json:"kidIds"`
}

type noteRequest struct {
	Note string `json:"note"`
}

// ListEvents handles GET /events.
func (s *Server) ListEvents(w http.ResponseWriter, _ *http.Request) {
	events := s.events.List()

	resp := make([]eventResponse, len(events))
	for i, e := range events {
		resp[i] = eventToResponse(e)
	}
	respondJSON(w, http.StatusOK, resp)
}

// GetEvent handles GET /events/{id}.
func (s *Server) GetEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(r, "id")
	if !ok {
		respondNotFound(w, "event not found")
		return
	}

	event, err := s.events.Get(id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondNotFound(w, "event not found")
			return
		}
		respondInternal(w, err)
		return
	}
	respondJSON(w, http.StatusOK, eventToResponse(event))
}

// CreateEvent handles POST /events.
func (s *Server) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req eventRequest
	if err := decodeJSON(r, &req); err != nil {
		respondBadRequest(w, "request body is required")
		return
	}
	start, end, err := parseWindow(req.Start, req.End)
	if err != nil {
		respondBadRequest(w, err.Error())
		return
	}

	event, err := s.events.Create(req.Title, start, end, req.Tags)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			respondValidation(w, err)
			return
		}
		respondInternal(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, eventToResponse(event))
}

// UpdateEvent handles PUT /events/{id}.
// Assignment state (participants, baseline, notes) is preserved.
func (s *Server) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(r, "id")
	if !ok {
		respondNotFound(w, "event not found")
		return
	}
	var req eventRequest
	if err := decodeJSON(r, &req); err != nil {
		respondBadRequest(w, "request body is required")
		return
	}
	start, end, err := parseWindow(req.Start, req.End)
	if err != nil {
		respondBadRequest(w, err.Error())
		return
	}

	event, err := s.events.Update(id, req.Title, start, end, req.Tags)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondNotFound(w, "event not found")
			return
		}
		if errors.Is(err, domain.ErrValidation) {
			respondValidation(w, err)
			return
		}
		respondInternal(w, err)
		return
	}
	respondJSON(w, http.StatusOK, eventToResponse(event))
}

// DeleteEvent handles DELETE /events/{id}.
func (s *Server) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(r, "id")
	if !ok {
		respondNotFound(w, "event not found")
		return
	}

	if err := s.events.Delete(id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondNotFound(w, "event not found")
			return
		}
		respondInternal(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListCandidates handles GET /events/{id}/candidates.
// The optional ?q= parameter narrows candidates by name or tag substring.
func (s *Server) ListCandidates(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(r, "id")
	if !ok {
		respondNotFound(w, "event not found")
		return
	}

	cands, err := s.events.Candidates(id, r.URL.Query().Get("q"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondNotFound(w, "event not found")
			return
		}
		respondInternal(w, err)
		return
	}
	respondJSON(w, http.StatusOK, candidatesToResponse(cands))
}

// ConfirmAssignment handles POST /events/{id}/participants.
// Picked kids join as Pending; the first confirmation stamps the
// suggestion baseline.
func (s *Server) ConfirmAssignment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(r, "id")
	if !ok {
		respondNotFound(w, "event not found")
		return
	}
	var req confirmRequest
	if err := decodeJSON(r, &req); err != nil {
		respondBadRequest(w, "request body is required")
		return
	}
	kidIDs := make([]uuid.UUID, 0, len(req.KidIDs))
	for _, raw := range req.KidIDs {
		if kidID, err := uuid.Parse(raw); err == nil {
			kidIDs = append(kidIDs, kidID)
		}
	}

	event, err := s.events.Confirm(id, kidIDs)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondNotFound(w, "event not found")
			return
		}
		respondInternal(w, err)
		return
	}
	respondJSON(w, http.StatusOK, eventToResponse(event))
}

// CycleStatus handles POST /events/{id}/participants/{kidId}/cycle.
// A stale kid id is a silent no-op, returning the unchanged event.
func (s *Server) CycleStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(r, "id")
	if !ok {
		respondNotFound(w, "event not found")
		return
	}
	kidID, ok := pathUUID(r, "kidId")
	if !ok {
		respondNotFound(w, "kid not found")
		return
	}

	event, err := s.events.Cycle(id, kidID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondNotFound(w, "event not found")
			return
		}
		respondInternal(w, err)
		return
	}
	respondJSON(w, http.StatusOK, eventToResponse(event))
}

// RemoveParticipant handles DELETE /events/{id}/participants/{kidId}.
func (s *Server) RemoveParticipant(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(r, "id")
	if !ok {
		respondNotFound(w, "event not found")
		return
	}
	kidID, ok := pathUUID(r, "kidId")
	if !ok {
		respondNotFound(w, "kid not found")
		return
	}

	if err := s.events.RemoveParticipant(id, kidID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondNotFound(w, "event not found")
			return
		}
		respondInternal(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SetNote handles PUT /events/{id}/notes/{kidId}.
// An empty note clears the entry.
func (s *Server) SetNote(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(r, "id")
	if !ok {
		respondNotFound(w, "event not found")
		return
	}
	kidID, ok := pathUUID(r, "kidId")
	if !ok {
		respondNotFound(w, "kid not found")
		return
	}
	var req noteRequest
	if err := decodeJSON(r, &req); err != nil {
		respondBadRequest(w, "request body is required")
		return
	}

	if err := s.events.SetNote(id, kidID, req.Note); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondNotFound(w, "event not found")
			return
		}
		respondInternal(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetAttention handles GET /events/{id}/attention.
func (s *Server) GetAttention(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(r, "id")
	if !ok {
		respondNotFound(w, "event not found")
		return
	}

	cands, err := s.events.Attention(id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondNotFound(w, "event not found")
			return
		}
		respondInternal(w, err)
		return
	}
	respondJSON(w, http.StatusOK, attentionResponse{
		Count:      len(cands),
		Candidates: candidatesToResponse(cands),
	})
}

// --- mapping helpers --------------------------------------------------------

// parseWindow parses the start/end pair from an event request body.
func parseWindow(startRaw, endRaw string) (time.Time, time.Time, error) {
	start, err := time.Parse(time.RFC3339, startRaw)
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("start must be an ISO-8601 timestamp")
	}
	end, err := time.Parse(time.RFC3339, endRaw)
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("end must be an ISO-8601 timestamp")
	}
	return start, end, nil
}

// eventToResponse converts a domain.Event to its API shape.
func eventToResponse(e domain.Event) eventResponse {
	resp := eventResponse{
		ID:           e.ID.String(),
		Title:        e.Title,
		Start:        e.Start.UTC().Format(time.RFC3339),
		End:          e.End.UTC().Format(time.RFC3339),
		Tags:         append([]string{}, e.Tags...),
		Participants: []participationResponse{},
	}
	for _, p := range e.Participants {
		resp.Participants = append(resp.Participants, participationResponse{
			KidID:  p.KidID.String(),
			Status: int(p.Status),
		})
	}
	if e.SuggestedAt != nil {
		ms := e.SuggestedAt.UnixMilli()
		resp.SuggestedAt = &ms
	}
	if len(e.SuggestNotes) > 0 {
		resp.SuggestNotes = map[string]string{}
		for kidID, note := range e.SuggestNotes {
			resp.SuggestNotes[kidID.String()] = note
		}
	}
	return resp
}

// candidatesToResponse converts a ranked candidate list to its API shape.
func candidatesToResponse(cands []engine.Candidate) []candidateResponse {
	resp := make([]candidateResponse, len(cands))
	for i, c := range cands {
		resp[i] = candidateResponse{Kid: kidToResponse(c.Kid), Score: c.Score}
	}
	return resp
}
