package fieldboard

import "math"

// dragSession is the single active manipulation: one pointer owns it from
// press to release. At most one session exists at a time; presses arriving
// while a session is active are ignored for drag purposes.
type dragSession struct {
	pointerID int
	kind      PointerKind
	mode      SessionMode

	// ids lists the affected entities; exactly one for ModeResize.
	ids []string
	// origins snapshots each entity's rectangle at gesture start.
	origins map[string]Rect
	// mins holds the per-entity minimum size, used by ModeResize.
	mins map[string]Vec2

	startWorld Vec2
	lastWorld  Vec2
	// moved accumulates screen-space travel for click-vs-drag disambiguation.
	moved float64

	// preview is the candidate next geometry, recomputed at most once per
	// frame (previewDirty coalesces intermediate pointer moves).
	preview      map[string]Rect
	boxPreview   Rect
	previewDirty bool
}

func newMoveSession(pointerID int, kind PointerKind, start Vec2, origins map[string]Rect) *dragSession {
	ids := make([]string, 0, len(origins))
	for id := range origins {
		ids = append(ids, id)
	}
	return &dragSession{
		pointerID:    pointerID,
		kind:         kind,
		mode:         ModeMove,
		ids:          ids,
		origins:      origins,
		startWorld:   start,
		lastWorld:    start,
		preview:      make(map[string]Rect, len(origins)),
		previewDirty: true,
	}
}

func newResizeSession(pointerID int, kind PointerKind, start Vec2, id string, origin Rect, min Vec2) *dragSession {
	return &dragSession{
		pointerID:    pointerID,
		kind:         kind,
		mode:         ModeResize,
		ids:          []string{id},
		origins:      map[string]Rect{id: origin},
		mins:         map[string]Vec2{id: min},
		startWorld:   start,
		lastWorld:    start,
		preview:      make(map[string]Rect, 1),
		previewDirty: true,
	}
}

func newBoxSelectSession(pointerID int, kind PointerKind, start Vec2) *dragSession {
	return &dragSession{
		pointerID:    pointerID,
		kind:         kind,
		mode:         ModeBoxSelect,
		startWorld:   start,
		lastWorld:    start,
		previewDirty: true,
	}
}

// track records a pointer move. Geometry is not recomputed here: sessions
// only remember the latest point, and refreshPreview folds all moves seen
// since the last frame into one update.
func (d *dragSession) track(world Vec2, screenDX, screenDY float64) {
	d.lastWorld = world
	d.moved += math.Hypot(screenDX, screenDY)
	d.previewDirty = true
}

// refreshPreview recomputes the candidate geometry from the latest pointer
// position. cw, ch are the canvas dimensions.
func (d *dragSession) refreshPreview(cw, ch float64) {
	if !d.previewDirty {
		return
	}
	d.previewDirty = false

	dx := d.lastWorld.X - d.startWorld.X
	dy := d.lastWorld.Y - d.startWorld.Y

	// Inside the dead zone the gesture has not become a drag yet: move and
	// resize previews hold the original geometry so a jittery press does not
	// nudge entities. moved is cumulative, so escaping is one-way.
	if d.mode != ModeBoxSelect && d.moved < defaultDragDeadZone {
		dx, dy = 0, 0
	}

	switch d.mode {
	case ModeMove:
		// Rigid group translation: the same delta for every entity, each
		// clamped into the canvas independently.
		for id, origin := range d.origins {
			d.preview[id] = clampRectToCanvas(Rect{
				X:      origin.X + dx,
				Y:      origin.Y + dy,
				Width:  origin.Width,
				Height: origin.Height,
			}, cw, ch)
		}
	case ModeResize:
		// Width and height resize independently; aspect is not preserved.
		for id, origin := range d.origins {
			min := d.mins[id]
			d.preview[id] = Rect{
				X:      origin.X,
				Y:      origin.Y,
				Width:  clampFloat(origin.Width+dx, min.X, cw-origin.X),
				Height: clampFloat(origin.Height+dy, min.Y, ch-origin.Y),
			}
		}
	case ModeBoxSelect:
		d.boxPreview = rectFromCorners(d.startWorld, d.lastWorld)
	}
}

// isClick reports whether the session saw near-zero cumulative movement and
// should be treated as a plain click rather than a commit.
func (d *dragSession) isClick() bool {
	return d.moved < clickThreshold
}

// boxDegenerate reports whether the selection rectangle is too small in both
// dimensions to mean anything; such a box is reinterpreted as a deselect click.
func (d *dragSession) boxDegenerate() bool {
	return d.boxPreview.Width < boxSelectEpsilon && d.boxPreview.Height < boxSelectEpsilon
}

// owns reports whether the given pointer id owns this session. Events from
// other pointers are filtered, not errors.
func (d *dragSession) owns(pointerID int) bool {
	return d != nil && d.pointerID == pointerID
}
