package fieldboard

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// RosterEntry is the denormalized snapshot of a roster row captured at drop
// time. A placed card keeps its own copy; later roster edits do not change
// cards on the board unless ResyncRoster is applied.
type RosterEntry struct {
	ID        string   `json:"id,omitempty"`
	Name      string   `json:"name,omitempty"`
	Grade     string   `json:"grade,omitempty"`
	Positions []string `json:"positions,omitempty"`
	Notes     string   `json:"notes,omitempty"`
	PhotoURL  string   `json:"photoUrl,omitempty"`
}

// valid reports whether the entry carries enough identity to place a card.
func (e RosterEntry) valid() bool {
	return e.Name != "" || e.ID != ""
}

// newPlacementID builds a card id from the payload identifier, the current
// time, and a random suffix. Collision-resistant across rapid placements,
// not cryptographically secure.
func newPlacementID(payloadID string) string {
	if payloadID == "" {
		payloadID = "card"
	}
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("%s-%d-%s", payloadID, time.Now().UnixMilli(), suffix)
}

// ResyncRoster overwrites the payload snapshot of every card whose entry
// matches a roster entry, first by entry ID, then by name. Cards with no
// match are returned unchanged. Positions and sizes are never touched.
// The input slice is not mutated.
func ResyncRoster(cards []Card, roster []RosterEntry) []Card {
	byID := make(map[string]RosterEntry, len(roster))
	byName := make(map[string]RosterEntry, len(roster))
	for _, e := range roster {
		if e.ID != "" {
			byID[e.ID] = e
		}
		if e.Name != "" {
			byName[e.Name] = e
		}
	}

	next := make([]Card, len(cards))
	copy(next, cards)
	for i := range next {
		if e, ok := byID[next[i].Entry.ID]; ok && next[i].Entry.ID != "" {
			next[i].Entry = e
			continue
		}
		if e, ok := byName[next[i].Entry.Name]; ok && next[i].Entry.Name != "" {
			next[i].Entry = e
		}
	}
	return next
}
