package handler

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
)

type calendarDayResponse struct {
	Day    string                  `json:"day"`
	Events []calendarEventResponse `json:"events"`
}

// calendarEventResponse is an eventResponse plus the attention badge count.
type calendarEventResponse struct {
	eventResponse
	Attention int `json:"attention"`
}

// GetCalendar handles GET /calendar.
//
// Query parameters:
//   - tags: comma-separated tag filter, must-match-all semantics
//   - q: free-text query over title, tags, participant names, and notes
//   - visible: comma-separated kid ids; when present, events whose
//     participants are all outside the set are hidden (participant-less
//     events always show). Absent means every kid is visible.
func (s *Server) GetCalendar(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var visible []uuid.UUID
	if q.Has("visible") {
		visible = []uuid.UUID{}
		for _, raw := range splitParam(q.Get("visible")) {
			if id, err := uuid.Parse(raw); err == nil {
				visible = append(visible, id)
			}
		}
	}

	days := s.events.Calendar(splitParam(q.Get("tags")), q.Get("q"), visible)
	counts := s.events.AttentionCounts()

	resp := make([]calendarDayResponse, len(days))
	for i, day := range days {
		out := calendarDayResponse{
			Day:    day.Day.Format("2006-01-02"),
			Events: []calendarEventResponse{},
		}
		for _, e := range day.Events {
			out.Events = append(out.Events, calendarEventResponse{
				eventResponse: eventToResponse(e),
				Attention:     counts[e.ID],
			})
		}
		resp[i] = out
	}
	respondJSON(w, http.StatusOK, resp)
}

// splitParam splits a comma-separated query parameter into a trimmed
// slice, ignoring empty entries.
func splitParam(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
