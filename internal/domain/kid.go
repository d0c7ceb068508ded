package domain

import (
	"time"

	"github.com/google/uuid"
)

// Kid is a roster participant. Tags are plain strings drawn from the
// catalog; CreatedAt feeds the attention detector, which compares it to
// each event's suggestion baseline.
//
// Visibility is deliberately not part of the entity; which kids are
// shown is a display concern held by the client and passed per request.
type Kid struct {
	ID        uuid.UUID
	Name      string
	Tags      []string
	CreatedAt time.Time
}

// Clone returns a deep copy of the kid.
func (k Kid) Clone() Kid {
	out := k
	out.Tags = append([]string(nil), k.Tags...)
	return out
}
