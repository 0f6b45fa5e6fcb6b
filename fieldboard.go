package fieldboard

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at draw submission time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default fill (no tint).
var ColorWhite = Color{1, 1, 1, 1}

func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clampFloat(c.R, 0, 1) * 255),
		G: uint8(clampFloat(c.G, 0, 1) * 255),
		B: uint8(clampFloat(c.B, 0, 1) * 255),
		A: uint8(clampFloat(c.A, 0, 1) * 255),
	}
}

// Vec2 is a 2D vector used for positions, offsets, and sizes throughout the API.
type Vec2 struct {
	X, Y float64
}

// WhitePixel is a 1x1 white image used for solid color rectangles.
var WhitePixel *ebiten.Image

func init() {
	WhitePixel = ebiten.NewImage(1, 1)
	WhitePixel.Fill(ColorWhite.toRGBA())
}

// Rect is an axis-aligned rectangle in world coordinates. The coordinate
// system has its origin at the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Tool selects what a pointer-down on empty canvas does.
type Tool uint8

const (
	ToolSelect Tool = iota // default: box-select / deselect
	ToolLane               // one-shot lane placement
	ToolText               // one-shot text box placement
	ToolNote               // one-shot sticky note placement
)

// String returns the tool name.
func (t Tool) String() string {
	switch t {
	case ToolLane:
		return "lane"
	case ToolText:
		return "text"
	case ToolNote:
		return "note"
	default:
		return "select"
	}
}

// ObjectKind distinguishes the board annotation variants.
type ObjectKind uint8

const (
	KindLane ObjectKind = iota // titled grouping rectangle
	KindText                   // free text box
	KindNote                   // colored sticky note
)

// String returns the kind name.
func (k ObjectKind) String() string {
	switch k {
	case KindLane:
		return "lane"
	case KindText:
		return "text"
	default:
		return "note"
	}
}

// PointerKind identifies the device behind a pointer.
type PointerKind uint8

const (
	PointerMouse PointerKind = iota
	PointerPen
	PointerTouch
)

// isDesktop reports whether the pointer kind participates in box selection.
// Touch is reserved for panning and tap gestures.
func (k PointerKind) isDesktop() bool {
	return k == PointerMouse || k == PointerPen
}

// SessionMode identifies the active manipulation.
type SessionMode uint8

const (
	ModeMove      SessionMode = iota // translate one or more entities
	ModeResize                       // resize exactly one entity
	ModeBoxSelect                    // draw a selection rectangle
)

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button
)

// KeyModifiers is a bitmask of keyboard modifier keys.
// Values can be combined with bitwise OR (e.g. ModShift | ModCtrl).
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota // Shift key
	ModCtrl                           // Control key
	ModAlt                            // Alt / Option key
	ModMeta                           // Meta / Command / Windows key
)

// hasToggle reports whether the toggle-selection modifier is held.
func (m KeyModifiers) hasToggle() bool {
	return m&(ModCtrl|ModMeta) != 0
}

// hasAdditive reports whether the additive-selection modifier is held.
func (m KeyModifiers) hasAdditive() bool {
	return m&ModShift != 0
}

// --- Canvas and entity defaults ---

const (
	// DefaultCanvasWidth and DefaultCanvasHeight give headroom for panning.
	DefaultCanvasWidth  = 3000.0
	DefaultCanvasHeight = 2000.0

	// DefaultCardWidth and DefaultCardHeight apply when a card has no
	// stored size, or a stored size is non-finite.
	DefaultCardWidth  = 260.0
	DefaultCardHeight = 92.0
)

const (
	maxPointers         = 10  // pointer 0 = mouse, 1-9 = touch
	defaultDragDeadZone = 4.0 // pixels before a press becomes a drag
	clickThreshold      = 2.0 // cumulative movement below this is a click
	boxSelectEpsilon    = 4.0 // degenerate box side length, pixels
	resizeHandleSize    = 14.0
)

const (
	minZoom = 0.25
	maxZoom = 4.0
)
