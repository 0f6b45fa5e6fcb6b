package fieldboard

import "testing"

func TestResyncRosterByID(t *testing.T) {
	cards := []Card{
		{ID: "c1", Pos: Vec2{X: 100, Y: 100}, Entry: RosterEntry{ID: "p1", Name: "Old Name", Grade: "10"}},
		{ID: "c2", Pos: Vec2{X: 200, Y: 200}, Entry: RosterEntry{ID: "p9", Name: "Unmatched"}},
	}
	roster := []RosterEntry{{ID: "p1", Name: "New Name", Grade: "11"}}

	got := ResyncRoster(cards, roster)
	if got[0].Entry.Name != "New Name" || got[0].Entry.Grade != "11" {
		t.Errorf("entry = %+v, want refreshed snapshot", got[0].Entry)
	}
	if got[0].Pos != (Vec2{X: 100, Y: 100}) {
		t.Error("resync must not move cards")
	}
	if got[1].Entry.Name != "Unmatched" {
		t.Error("unmatched card should keep its snapshot")
	}
}

func TestResyncRosterByName(t *testing.T) {
	// Legacy cards placed before roster rows had ids match by name.
	cards := []Card{
		{ID: "c1", Entry: RosterEntry{Name: "Sam Rios"}},
	}
	roster := []RosterEntry{{ID: "p3", Name: "Sam Rios", Grade: "12"}}

	got := ResyncRoster(cards, roster)
	if got[0].Entry.ID != "p3" || got[0].Entry.Grade != "12" {
		t.Errorf("entry = %+v, want match by name", got[0].Entry)
	}
}

func TestResyncRosterIDBeatsName(t *testing.T) {
	cards := []Card{
		{ID: "c1", Entry: RosterEntry{ID: "p1", Name: "Shared Name"}},
	}
	roster := []RosterEntry{
		{ID: "p1", Name: "Via ID"},
		{ID: "p2", Name: "Shared Name"},
	}

	got := ResyncRoster(cards, roster)
	if got[0].Entry.Name != "Via ID" {
		t.Errorf("entry = %+v, want the id match to win", got[0].Entry)
	}
}

func TestResyncRosterDoesNotMutateInput(t *testing.T) {
	cards := []Card{{ID: "c1", Entry: RosterEntry{ID: "p1", Name: "Before"}}}
	ResyncRoster(cards, []RosterEntry{{ID: "p1", Name: "After"}})
	if cards[0].Entry.Name != "Before" {
		t.Error("input slice was mutated")
	}
}
