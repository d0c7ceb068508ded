// Package handler implements the HTTP handlers for the rosterbook API.
// All handlers are methods on Server. Methods are split into
// domain-specific files (health.go, kid.go, event.go, etc.) but all share
// the same Server struct so they can access its dependencies.
package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/okerlund/rosterbook/internal/domain"
	"github.com/okerlund/rosterbook/internal/engine"
)

// CatalogServicer defines the catalog operations the handler depends on.
// Defining interfaces here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the store or service layer.
type CatalogServicer interface {
	Get() domain.Catalog
	AddCategory(name string) error
	AddTag(category, tag string) error
}

// TagServicer defines the tag propagation and buffer operations.
type TagServicer interface {
	Rename(from, to string) error
	Delete(tag string) error
	Buffers() map[string][]string
	SetBuffer(name string, tags []string) error
	ClearBuffer(name string) error
}

// RosterServicer defines the kid roster operations.
type RosterServicer interface {
	List() []domain.Kid
	Create(name string, tags []string) (domain.Kid, error)
	Update(id uuid.UUID, name string, tags []string) (domain.Kid, error)
	Delete(id uuid.UUID) error
}

// EventServicer defines the event, suggestion, and calendar operations.
type EventServicer interface {
	List() []domain.Event
	Get(id uuid.UUID) (domain.Event, error)
	Create(title string, start, end time.Time, tags []string) (domain.Event, error)
	Update(id uuid.UUID, title string, start, end time.Time, tags []string) (domain.Event, error)
	Delete(id uuid.UUID) error
	Candidates(eventID uuid.UUID, query string) ([]engine.Candidate, error)
	Confirm(eventID uuid.UUID, kidIDs []uuid.UUID) (domain.Event, error)
	Cycle(eventID, kidID uuid.UUID) (domain.Event, error)
	RemoveParticipant(eventID, kidID uuid.UUID) error
	SetNote(eventID, kidID uuid.UUID, note string) error
	Attention(eventID uuid.UUID) ([]engine.Candidate, error)
	AttentionCounts() map[uuid.UUID]int
	Calendar(tags []string, query string, visible []uuid.UUID) []engine.DayGroup
}

// Server holds the service dependencies for all API endpoints.
// Methods are in domain-specific files but all operate on this struct.
type Server struct {
	catalog CatalogServicer
	tags    TagServicer
	roster  RosterServicer
	events  EventServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(catalog CatalogServicer, tags TagServicer, roster RosterServicer, events EventServicer) *Server {
	return &Server{catalog: catalog, tags: tags, roster: roster, events: events}
}

// Routes mounts every endpoint on a fresh chi router.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.Health)

	r.Route("/catalog", func(r chi.Router) {
		r.Get("/", s.GetCatalog)
		r.Post("/categories", s.AddCategory)
		r.Post("/categories/{category}/tags", s.AddTag)
	})

	r.Post("/tags/rename", s.RenameTag)
	r.Delete("/tags/{tag}", s.DeleteTag)

	r.Get("/buffers", s.ListBuffers)
	r.Put("/buffers/{name}", s.SetBuffer)
	r.Delete("/buffers/{name}", s.ClearBuffer)

	r.Route("/kids", func(r chi.Router) {
		r.Get("/", s.ListKids)
		r.Post("/", s.CreateKid)
		r.Put("/{id}", s.UpdateKid)
		r.Delete("/{id}", s.DeleteKid)
	})

	r.Route("/events", func(r chi.Router) {
		r.Get("/", s.ListEvents)
		r.Post("/", s.CreateEvent)
		r.Get("/{id}", s.GetEvent)
		r.Put("/{id}", s.UpdateEvent)
		r.Delete("/{id}", s.DeleteEvent)

		r.Get("/{id}/candidates", s.ListCandidates)
		r.Post("/{id}/participants", s.ConfirmAssignment)
		r.Post("/{id}/participants/{kidId}/cycle", s.CycleStatus)
		r.Delete("/{id}/participants/{kidId}", s.RemoveParticipant)
		r.Put("/{id}/notes/{kidId}", s.SetNote)
		r.Get("/{id}/attention", s.GetAttention)
	})

	r.Get("/calendar", s.GetCalendar)

	return r
}

// respondJSON writes v as a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// decodeJSON decodes the request body into dst, rejecting unknown fields.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

// pathUUID parses the named chi URL parameter as a UUID.
func pathUUID(r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	return id, err == nil
}
