package fieldboard

import "sort"

// Selection is the set of currently selected entity ids, drawn from the
// union of card and board object ids. Stale ids (entities deleted by the
// caller) are tolerated and pruned lazily.
type Selection struct {
	ids map[string]struct{}
}

// NewSelection returns an empty selection.
func NewSelection() *Selection {
	return &Selection{ids: make(map[string]struct{})}
}

// Len returns the number of selected ids.
func (s *Selection) Len() int {
	return len(s.ids)
}

// Has reports whether id is selected.
func (s *Selection) Has(id string) bool {
	_, ok := s.ids[id]
	return ok
}

// IDs returns the selected ids in sorted order for deterministic iteration.
func (s *Selection) IDs() []string {
	out := make([]string, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Replace makes the selection exactly {id}.
func (s *Selection) Replace(id string) {
	clear(s.ids)
	s.ids[id] = struct{}{}
}

// ReplaceAll makes the selection exactly the given ids.
func (s *Selection) ReplaceAll(ids []string) {
	clear(s.ids)
	for _, id := range ids {
		s.ids[id] = struct{}{}
	}
}

// Add adds id to the selection unconditionally (additive modifier semantics).
func (s *Selection) Add(id string) {
	s.ids[id] = struct{}{}
}

// Toggle adds id if absent and removes it if present, except that removing
// the only member would leave nothing active: in that case the id stays
// selected. A toggle-click therefore never empties the selection through the
// entity being toggled.
func (s *Selection) Toggle(id string) {
	if _, ok := s.ids[id]; ok {
		if len(s.ids) == 1 {
			return
		}
		delete(s.ids, id)
		return
	}
	s.ids[id] = struct{}{}
}

// Remove deletes id from the selection if present.
func (s *Selection) Remove(id string) {
	delete(s.ids, id)
}

// Clear empties the selection.
func (s *Selection) Clear() {
	clear(s.ids)
}

// Prune drops ids not present in alive.
func (s *Selection) Prune(alive map[string]struct{}) {
	for id := range s.ids {
		if _, ok := alive[id]; !ok {
			delete(s.ids, id)
		}
	}
}

// SelectWithin replaces the selection with every entity whose bounding
// rectangle intersects box. Edge-touching rectangles count as intersecting.
func (s *Selection) SelectWithin(box Rect, bounds map[string]Rect) {
	clear(s.ids)
	for id, r := range bounds {
		if box.Intersects(r) {
			s.ids[id] = struct{}{}
		}
	}
}
