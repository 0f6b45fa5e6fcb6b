package fieldboard

// Card is a roster card instance placed on the board. The caller owns the
// authoritative card slice; the engine only proposes replacements through
// the change callback.
type Card struct {
	// ID is an opaque unique string generated at placement time.
	ID string
	// Pos is the top-left corner in world coordinates.
	Pos Vec2
	// Size is the stored size. Nil means the default card size applies.
	// Non-finite components also fall back to the default at read time.
	Size *Vec2
	// Entry is the roster snapshot captured at drop time.
	Entry RosterEntry
}

// Bounds returns the card rectangle with the size normalized: nil or
// non-finite stored sizes read as the default card size.
func (c Card) Bounds() Rect {
	w, h := DefaultCardWidth, DefaultCardHeight
	if c.Size != nil {
		w = finiteOr(c.Size.X, DefaultCardWidth)
		h = finiteOr(c.Size.Y, DefaultCardHeight)
	}
	return Rect{X: c.Pos.X, Y: c.Pos.Y, Width: w, Height: h}
}

// BoardObject is a non-roster annotation: a lane, a text box, or a sticky note.
type BoardObject struct {
	ID   string
	Kind ObjectKind
	Pos  Vec2
	Size Vec2

	// Title is the lane heading. Unused for other kinds.
	Title string
	// Text is the content of a text box or note. Unused for lanes.
	Text string
	// Color is the note fill. Unused for other kinds.
	Color Color
}

// Bounds returns the object rectangle with the size floored at the
// kind-specific minimum.
func (o BoardObject) Bounds() Rect {
	min := objectMinSize(o.Kind)
	w := finiteOr(o.Size.X, min.X)
	h := finiteOr(o.Size.Y, min.Y)
	if w < min.X {
		w = min.X
	}
	if h < min.Y {
		h = min.Y
	}
	return Rect{X: o.Pos.X, Y: o.Pos.Y, Width: w, Height: h}
}

// cardMinSize is the floor a card can be resized down to.
var cardMinSize = Vec2{X: 120, Y: 60}

// objectMinSize returns the minimum size for a kind. Lanes have a larger
// floor than text boxes and notes.
func objectMinSize(kind ObjectKind) Vec2 {
	if kind == KindLane {
		return Vec2{X: 160, Y: 100}
	}
	return Vec2{X: 80, Y: 40}
}

// defaultObjectSize returns the size a freshly placed object gets.
func defaultObjectSize(kind ObjectKind) Vec2 {
	switch kind {
	case KindLane:
		return Vec2{X: 480, Y: 320}
	case KindText:
		return Vec2{X: 220, Y: 60}
	default:
		return Vec2{X: 180, Y: 180}
	}
}

// noteDefaultColor is the fill a new sticky note starts with.
var noteDefaultColor = Color{R: 0.99, G: 0.90, B: 0.54, A: 1}

// newBoardObject creates an object of the given kind at a world position,
// clamped into the canvas.
func newBoardObject(kind ObjectKind, at Vec2, cw, ch float64) BoardObject {
	size := defaultObjectSize(kind)
	r := clampRectToCanvas(Rect{X: at.X, Y: at.Y, Width: size.X, Height: size.Y}, cw, ch)
	obj := BoardObject{
		ID:   newPlacementID(kind.String()),
		Kind: kind,
		Pos:  Vec2{X: r.X, Y: r.Y},
		Size: Vec2{X: r.Width, Y: r.Height},
	}
	if kind == KindNote {
		obj.Color = noteDefaultColor
	}
	return obj
}
