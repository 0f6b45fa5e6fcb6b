package fieldboard

import (
	"reflect"
	"testing"
)

func TestSelectionReplaceIdempotent(t *testing.T) {
	s := NewSelection()
	s.Replace("a")
	s.Replace("a")
	if s.Len() != 1 || !s.Has("a") {
		t.Errorf("IDs = %v, want [a]", s.IDs())
	}
	s.Replace("b")
	if s.Has("a") || !s.Has("b") {
		t.Errorf("IDs = %v, want [b]", s.IDs())
	}
}

func TestSelectionAdd(t *testing.T) {
	s := NewSelection()
	s.Replace("a")
	s.Add("b")
	s.Add("b")
	if got := s.IDs(); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("IDs = %v, want [a b]", got)
	}
}

func TestSelectionToggle(t *testing.T) {
	s := NewSelection()
	s.Toggle("a")
	if !s.Has("a") {
		t.Fatal("toggle on empty should add")
	}

	// Toggling the only member leaves it selected.
	s.Toggle("a")
	if !s.Has("a") {
		t.Error("toggling the sole member must not empty the selection")
	}

	s.Add("b")
	s.Toggle("a")
	if s.Has("a") || !s.Has("b") {
		t.Errorf("IDs = %v, want [b]", s.IDs())
	}
}

func TestSelectionClearAndRemove(t *testing.T) {
	s := NewSelection()
	s.ReplaceAll([]string{"a", "b", "c"})
	s.Remove("b")
	if got := s.IDs(); !reflect.DeepEqual(got, []string{"a", "c"}) {
		t.Errorf("IDs = %v, want [a c]", got)
	}
	s.Clear()
	if s.Len() != 0 {
		t.Errorf("Len = %d after Clear, want 0", s.Len())
	}
}

func TestSelectionPrune(t *testing.T) {
	s := NewSelection()
	s.ReplaceAll([]string{"a", "b", "c"})
	alive := map[string]struct{}{"a": {}, "c": {}}
	s.Prune(alive)
	if got := s.IDs(); !reflect.DeepEqual(got, []string{"a", "c"}) {
		t.Errorf("IDs = %v, want [a c]", got)
	}
}

func TestSelectWithin(t *testing.T) {
	bounds := map[string]Rect{
		"a": {X: 0, Y: 0, Width: 50, Height: 50},
		"b": {X: 100, Y: 100, Width: 50, Height: 50},
		"c": {X: 200, Y: 200, Width: 50, Height: 50},
	}

	s := NewSelection()
	s.Replace("c")

	box := rectFromCorners(Vec2{X: 0, Y: 0}, Vec2{X: 120, Y: 120})
	s.SelectWithin(box, bounds)
	if got := s.IDs(); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("IDs = %v, want [a b]", got)
	}
}

func TestSelectWithinEdgeTouch(t *testing.T) {
	bounds := map[string]Rect{
		"a": {X: 100, Y: 100, Width: 50, Height: 50},
	}
	s := NewSelection()
	s.SelectWithin(Rect{X: 0, Y: 0, Width: 100, Height: 100}, bounds)
	if !s.Has("a") {
		t.Error("edge-touching rectangle should be selected")
	}
}

func TestSelectWithinEmptyBox(t *testing.T) {
	bounds := map[string]Rect{
		"a": {X: 0, Y: 0, Width: 50, Height: 50},
	}
	s := NewSelection()
	s.Replace("a")
	s.SelectWithin(Rect{X: 500, Y: 500, Width: 10, Height: 10}, bounds)
	if s.Len() != 0 {
		t.Errorf("IDs = %v, want empty", s.IDs())
	}
}
