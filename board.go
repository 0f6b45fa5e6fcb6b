package fieldboard

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Config wires a Board to its caller. The engine never owns authoritative
// state: Cards and Objects re-read the caller's slices on every event, and
// every committed mutation goes through the change callbacks with a full
// replacement slice. Zero-value dimensions fall back to the defaults.
type Config struct {
	// Editable enables mutation gestures. A read-only board still pans,
	// zooms, selects, and opens cards on click.
	Editable bool

	CanvasWidth  float64
	CanvasHeight float64

	// Cards and Objects are state accessors, re-bound to current caller
	// state by construction (they are called fresh on every event, so
	// handlers never see stale snapshots).
	Cards   func() []Card
	Objects func() []BoardObject

	// OnCardsChange and OnObjectsChange receive the full next slice on
	// every committed mutation (copy-on-write; the current slice is never
	// mutated in place). Nil callbacks make the corresponding collection
	// immutable.
	OnCardsChange   func([]Card)
	OnObjectsChange func([]BoardObject)

	// OnOpenCard fires when a card is clicked (or tapped) without dragging.
	OnOpenCard func(Card)

	// OnToolChange fires when the board auto-returns a one-shot placement
	// tool to ToolSelect.
	OnToolChange func(Tool)
}

// pointerState tracks one pointer slot between events.
type pointerState struct {
	down    bool
	kind    PointerKind
	button  MouseButton
	lastSX  float64
	lastSY  float64
	moved   float64 // cumulative screen travel since press
	panning bool    // non-primary button drag pans the camera
	// emptyDown marks a press that began on empty canvas (tap-to-deselect
	// for touch pointers).
	emptyDown bool
}

// panPair tracks an active two-finger pan/zoom gesture.
type panPair struct {
	active   bool
	p0, p1   int
	lastMid  Vec2
	lastDist float64
}

// Board is the canvas interaction engine. All methods must be called from
// the game loop goroutine; there is one logical writer and the shared
// registry slices are replaced wholesale, never mutated concurrently.
type Board struct {
	cfg       Config
	camera    *Camera
	selection *Selection
	tool      Tool

	session *dragSession
	// sessionPrimary is the entity the active session was pressed on.
	sessionPrimary string
	pointers       [maxPointers]pointerState
	pan            panPair

	// Touch slot bookkeeping (pointer 0 = mouse, 1-9 = touch).
	touchMap     [maxPointers]ebiten.TouchID
	touchUsed    [maxPointers]bool
	prevTouchIDs []ebiten.TouchID

	injectQueue []syntheticPointerEvent
	script      *ScriptRunner

	debug bool
}

// New creates a Board for the given configuration.
func New(cfg Config) *Board {
	if cfg.CanvasWidth <= 0 {
		cfg.CanvasWidth = DefaultCanvasWidth
	}
	if cfg.CanvasHeight <= 0 {
		cfg.CanvasHeight = DefaultCanvasHeight
	}
	cam := NewCamera(Rect{Width: 800, Height: 600})
	cam.SetBounds(Rect{Width: cfg.CanvasWidth, Height: cfg.CanvasHeight})
	cam.X = cam.Viewport.Width / 2
	cam.Y = cam.Viewport.Height / 2
	return &Board{
		cfg:       cfg,
		camera:    cam,
		selection: NewSelection(),
	}
}

// Camera returns the board's view transform.
func (b *Board) Camera() *Camera {
	return b.camera
}

// Selection returns the board's selection model.
func (b *Board) Selection() *Selection {
	return b.selection
}

// Tool returns the active tool.
func (b *Board) Tool() Tool {
	return b.tool
}

// SetTool arms a tool. Non-select tools place one object on the next
// empty-canvas press, then snap back to ToolSelect.
func (b *Board) SetTool(t Tool) {
	b.tool = t
}

// SetViewport updates the screen-space rectangle the board renders into.
func (b *Board) SetViewport(vp Rect) {
	b.camera.Viewport = vp
	b.camera.MarkDirty()
}

// SetDebugMode enables stderr tracing of sessions and commits.
func (b *Board) SetDebugMode(enabled bool) {
	b.debug = enabled
}

// --- State accessors ---

func (b *Board) cards() []Card {
	if b.cfg.Cards == nil {
		return nil
	}
	return b.cfg.Cards()
}

func (b *Board) objects() []BoardObject {
	if b.cfg.Objects == nil {
		return nil
	}
	return b.cfg.Objects()
}

// entityBounds returns the normalized bounds of every live entity, keyed by id.
func (b *Board) entityBounds() map[string]Rect {
	cards := b.cards()
	objects := b.objects()
	out := make(map[string]Rect, len(cards)+len(objects))
	for _, c := range cards {
		out[c.ID] = c.Bounds()
	}
	for _, o := range objects {
		out[o.ID] = o.Bounds()
	}
	return out
}

// --- Hit testing ---

// hitResult identifies what a world-space point landed on.
type hitResult struct {
	id       string
	isCard   bool
	card     Card
	object   BoardObject
	onHandle bool
}

// handleRect is the resize grab zone in an entity's bottom-right corner.
func handleRect(bounds Rect) Rect {
	return Rect{
		X:      bounds.X + bounds.Width - resizeHandleSize,
		Y:      bounds.Y + bounds.Height - resizeHandleSize,
		Width:  resizeHandleSize,
		Height: resizeHandleSize,
	}
}

// hitTest finds the topmost entity at a world-space point. Cards draw above
// board objects, and later slice entries draw above earlier ones, so the
// scan runs cards-then-objects, each in reverse order. The resize handle of
// an entity wins over its body.
func (b *Board) hitTest(wx, wy float64) (hitResult, bool) {
	handles := b.cfg.Editable
	cards := b.cards()
	for i := len(cards) - 1; i >= 0; i-- {
		bounds := cards[i].Bounds()
		if handles && handleRect(bounds).Contains(wx, wy) {
			return hitResult{id: cards[i].ID, isCard: true, card: cards[i], onHandle: true}, true
		}
		if bounds.Contains(wx, wy) {
			return hitResult{id: cards[i].ID, isCard: true, card: cards[i]}, true
		}
	}
	objects := b.objects()
	for i := len(objects) - 1; i >= 0; i-- {
		bounds := objects[i].Bounds()
		if handles && handleRect(bounds).Contains(wx, wy) {
			return hitResult{id: objects[i].ID, object: objects[i], onHandle: true}, true
		}
		if bounds.Contains(wx, wy) {
			return hitResult{id: objects[i].ID, object: objects[i]}, true
		}
	}
	return hitResult{}, false
}

// --- Pointer intake ---

// PointerDown feeds a press into the gesture classifier. Coordinates are
// screen-space; the camera maps them to world space.
func (b *Board) PointerDown(pointerID int, kind PointerKind, sx, sy float64, button MouseButton, mods KeyModifiers) {
	if pointerID < 0 || pointerID >= maxPointers {
		return
	}
	ps := &b.pointers[pointerID]
	ps.down = true
	ps.kind = kind
	ps.button = button
	ps.lastSX = sx
	ps.lastSY = sy
	ps.moved = 0
	ps.panning = false
	ps.emptyDown = false

	// A second touch switches to two-finger pan/zoom and suspends
	// single-pointer classification until the touch count drops below two.
	if kind == PointerTouch && b.beginTwoFingerPan(pointerID) {
		return
	}
	if b.pan.active {
		return
	}

	// Non-primary buttons pan the camera instead of manipulating entities.
	if button != MouseButtonLeft {
		ps.panning = true
		return
	}

	// One session at a time: presses during an active session are ignored
	// for drag purposes (the pointer is still tracked above).
	if b.session != nil {
		return
	}

	wx, wy := b.camera.ScreenToWorld(sx, sy)

	hit, ok := b.hitTest(wx, wy)
	if !ok {
		b.emptyCanvasDown(pointerID, ps, kind, wx, wy, mods)
		return
	}

	if hit.onHandle {
		// Resize always targets exactly the grabbed entity, regardless of
		// the current selection.
		b.selection.Replace(hit.id)
		min := cardMinSize
		bounds := hit.card.Bounds()
		if !hit.isCard {
			min = objectMinSize(hit.object.Kind)
			bounds = hit.object.Bounds()
		}
		b.session = newResizeSession(pointerID, kind, Vec2{X: wx, Y: wy}, hit.id, bounds, min)
		b.sessionPrimary = hit.id
		b.debugf("resize start id=%s", hit.id)
		return
	}

	switch {
	case mods.hasToggle():
		b.selection.Toggle(hit.id)
	case mods.hasAdditive():
		b.selection.Add(hit.id)
	default:
		// Pressing an unselected entity collapses the selection to it;
		// pressing a selected one drags the whole selection as a group.
		if !b.selection.Has(hit.id) {
			b.selection.Replace(hit.id)
		}
		origins := b.selectedBounds()
		b.session = newMoveSession(pointerID, kind, Vec2{X: wx, Y: wy}, origins)
		b.sessionPrimary = hit.id
		b.debugf("move start ids=%d", len(origins))
	}
}

// emptyCanvasDown classifies a press that hit no entity.
func (b *Board) emptyCanvasDown(pointerID int, ps *pointerState, kind PointerKind, wx, wy float64, mods KeyModifiers) {
	if b.tool != ToolSelect {
		if b.cfg.Editable {
			b.createObjectAt(b.tool, Vec2{X: wx, Y: wy})
		}
		// One-shot: the tool returns to select even on a read-only board.
		b.tool = ToolSelect
		if b.cfg.OnToolChange != nil {
			b.cfg.OnToolChange(ToolSelect)
		}
		return
	}
	if mods != 0 {
		return
	}
	if kind.isDesktop() {
		b.session = newBoxSelectSession(pointerID, kind, Vec2{X: wx, Y: wy})
		b.sessionPrimary = ""
		return
	}
	// Touch reserves empty-canvas drags for scrolling; a tap deselects.
	ps.emptyDown = true
}

// selectedBounds snapshots the bounds of every selected, still-alive entity.
// Stale selection ids are pruned here (lazy enforcement).
func (b *Board) selectedBounds() map[string]Rect {
	all := b.entityBounds()
	alive := make(map[string]struct{}, len(all))
	for id := range all {
		alive[id] = struct{}{}
	}
	b.selection.Prune(alive)

	out := make(map[string]Rect)
	for _, id := range b.selection.IDs() {
		out[id] = all[id]
	}
	return out
}

// PointerMove feeds a motion event for a currently-down pointer. Motion for
// unknown or mismatched pointers during an active session is filtered.
func (b *Board) PointerMove(pointerID int, sx, sy float64) {
	if pointerID < 0 || pointerID >= maxPointers {
		return
	}
	ps := &b.pointers[pointerID]
	if !ps.down {
		return
	}
	dx := sx - ps.lastSX
	dy := sy - ps.lastSY
	ps.lastSX = sx
	ps.lastSY = sy
	ps.moved += math.Hypot(dx, dy)

	if b.pan.active && (pointerID == b.pan.p0 || pointerID == b.pan.p1) {
		b.updateTwoFingerPan()
		return
	}
	if ps.panning {
		b.camera.Pan(dx, dy)
		return
	}
	if b.session.owns(pointerID) {
		wx, wy := b.camera.ScreenToWorld(sx, sy)
		b.session.track(Vec2{X: wx, Y: wy}, dx, dy)
	}
}

// PointerUp feeds a release. Releases for pointers that do not own the
// active session are ignored (not an error).
func (b *Board) PointerUp(pointerID int, sx, sy float64) {
	b.pointerEnd(pointerID, sx, sy, false)
}

// PointerCancel terminates a gesture like PointerUp, but applies the cancel
// policy: move and resize commit their last preview so otherwise-valid work
// is not lost, while box-select discards.
func (b *Board) PointerCancel(pointerID int, sx, sy float64) {
	b.pointerEnd(pointerID, sx, sy, true)
}

func (b *Board) pointerEnd(pointerID int, sx, sy float64, cancelled bool) {
	if pointerID < 0 || pointerID >= maxPointers {
		return
	}
	ps := &b.pointers[pointerID]
	if !ps.down {
		return
	}
	ps.down = false
	ps.panning = false

	if b.pan.active && (pointerID == b.pan.p0 || pointerID == b.pan.p1) {
		// Two-finger pan ends; the remaining finger stays suspended until
		// it is also lifted.
		b.pan.active = false
	}

	if b.session.owns(pointerID) {
		if !cancelled {
			wx, wy := b.camera.ScreenToWorld(sx, sy)
			b.session.track(Vec2{X: wx, Y: wy}, sx-ps.lastSX, sy-ps.lastSY)
		}
		b.finishSession(cancelled)
		return
	}

	if ps.emptyDown && ps.moved < clickThreshold && !cancelled {
		b.selection.Clear()
	}
	ps.emptyDown = false
}

// finishSession commits or discards the active session. The session slot is
// released on every exit path so a failed branch can never block future
// gestures.
func (b *Board) finishSession(cancelled bool) {
	s := b.session
	primary := b.sessionPrimary
	b.session = nil
	b.sessionPrimary = ""
	if s == nil {
		return
	}
	s.refreshPreview(b.cfg.CanvasWidth, b.cfg.CanvasHeight)

	switch s.mode {
	case ModeBoxSelect:
		if cancelled {
			return
		}
		if s.isClick() || s.boxDegenerate() {
			// A degenerate box is a plain click on empty canvas.
			b.selection.Clear()
			return
		}
		b.selection.SelectWithin(s.boxPreview, b.entityBounds())
		b.debugf("box select -> %d selected", b.selection.Len())

	case ModeMove:
		if s.isClick() && !cancelled {
			// Press-and-release without movement is a click, not a
			// zero-distance move: collapse selection and open cards.
			b.clickEntity(primary)
			return
		}
		b.commitPreview(s)

	case ModeResize:
		if s.isClick() && !cancelled {
			return
		}
		b.commitPreview(s)
	}
}

// clickEntity applies plain-click selection semantics and fires OnOpenCard
// for cards.
func (b *Board) clickEntity(id string) {
	if id == "" {
		return
	}
	b.selection.Replace(id)
	if b.cfg.OnOpenCard == nil {
		return
	}
	for _, c := range b.cards() {
		if c.ID == id {
			b.cfg.OnOpenCard(c)
			return
		}
	}
}

// commitPreview pushes the session's final geometry to the caller. Move
// commits positions only; resize also commits the new size.
func (b *Board) commitPreview(s *dragSession) {
	if !b.cfg.Editable {
		return
	}
	resize := s.mode == ModeResize

	cards := b.cards()
	cardsChanged := false
	nextCards := make([]Card, len(cards))
	copy(nextCards, cards)
	for i := range nextCards {
		r, ok := s.preview[nextCards[i].ID]
		if !ok {
			continue
		}
		nextCards[i].Pos = Vec2{X: r.X, Y: r.Y}
		if resize {
			nextCards[i].Size = &Vec2{X: r.Width, Y: r.Height}
		}
		cardsChanged = true
	}

	objects := b.objects()
	objectsChanged := false
	nextObjects := make([]BoardObject, len(objects))
	copy(nextObjects, objects)
	for i := range nextObjects {
		r, ok := s.preview[nextObjects[i].ID]
		if !ok {
			continue
		}
		nextObjects[i].Pos = Vec2{X: r.X, Y: r.Y}
		if resize {
			nextObjects[i].Size = Vec2{X: r.Width, Y: r.Height}
		}
		objectsChanged = true
	}

	if cardsChanged && b.cfg.OnCardsChange != nil {
		b.cfg.OnCardsChange(nextCards)
	}
	if objectsChanged && b.cfg.OnObjectsChange != nil {
		b.cfg.OnObjectsChange(nextObjects)
	}
	b.debugf("commit mode=%d cards=%t objects=%t", s.mode, cardsChanged, objectsChanged)
}

// --- Two-finger pan/zoom ---

// touchCount counts currently-down touch pointers.
func (b *Board) touchCount() int {
	n := 0
	for i := range b.pointers {
		if b.pointers[i].down && b.pointers[i].kind == PointerTouch {
			n++
		}
	}
	return n
}

// beginTwoFingerPan enters pan/zoom mode when a second touch arrives.
// The active session, if any, ends under the cancel policy. Returns true
// when the press was consumed by the pan gesture.
func (b *Board) beginTwoFingerPan(pointerID int) bool {
	if b.touchCount() != 2 || b.pan.active {
		return b.pan.active
	}
	other := -1
	for i := range b.pointers {
		if i != pointerID && b.pointers[i].down && b.pointers[i].kind == PointerTouch {
			other = i
			break
		}
	}
	if other < 0 {
		return false
	}
	if b.session != nil {
		b.finishSession(true)
	}
	// The gesture is now a pan; neither finger counts as a tap anymore.
	b.pointers[other].emptyDown = false
	b.pointers[pointerID].emptyDown = false
	b.pan.active = true
	b.pan.p0 = other
	b.pan.p1 = pointerID
	b.pan.lastMid, b.pan.lastDist = b.panGeometry()
	return true
}

// panGeometry returns the screen-space midpoint and distance of the two
// pan pointers.
func (b *Board) panGeometry() (Vec2, float64) {
	p0 := &b.pointers[b.pan.p0]
	p1 := &b.pointers[b.pan.p1]
	mid := Vec2{X: (p0.lastSX + p1.lastSX) / 2, Y: (p0.lastSY + p1.lastSY) / 2}
	dist := math.Hypot(p1.lastSX-p0.lastSX, p1.lastSY-p0.lastSY)
	return mid, dist
}

// updateTwoFingerPan applies the midpoint delta as a pan and the distance
// ratio as a zoom anchored at the midpoint.
func (b *Board) updateTwoFingerPan() {
	mid, dist := b.panGeometry()
	b.camera.Pan(mid.X-b.pan.lastMid.X, mid.Y-b.pan.lastMid.Y)
	if b.pan.lastDist > 0 && dist > 0 {
		b.camera.ZoomAt(mid.X, mid.Y, b.camera.Zoom*dist/b.pan.lastDist)
	}
	b.pan.lastMid = mid
	b.pan.lastDist = dist
}

// --- Creation, deletion, inline edits ---

// createObjectAt places a fresh object and selects it.
func (b *Board) createObjectAt(tool Tool, at Vec2) {
	var kind ObjectKind
	switch tool {
	case ToolLane:
		kind = KindLane
	case ToolText:
		kind = KindText
	case ToolNote:
		kind = KindNote
	default:
		return
	}
	obj := newBoardObject(kind, at, b.cfg.CanvasWidth, b.cfg.CanvasHeight)
	objects := b.objects()
	next := make([]BoardObject, len(objects), len(objects)+1)
	copy(next, objects)
	next = append(next, obj)
	if b.cfg.OnObjectsChange != nil {
		b.cfg.OnObjectsChange(next)
	}
	b.selection.Replace(obj.ID)
	b.debugf("create %s id=%s", kind, obj.ID)
}

// HandleDrop ingests a platform drag-and-drop payload at a screen position.
// Foreign or malformed payloads are a silent no-op: drop events fire for
// any drag, not only roster drags.
func (b *Board) HandleDrop(channels map[string]string, sx, sy float64) {
	entry, ok := DecodeDragPayload(channels)
	if !ok {
		return
	}
	wx, wy := b.camera.ScreenToWorld(sx, sy)
	b.PlaceEntry(entry, wx, wy)
}

// PlaceEntry places a roster entry as a new card centered on a world-space
// point (the tap-to-place path uses this directly).
func (b *Board) PlaceEntry(entry RosterEntry, wx, wy float64) {
	if !b.cfg.Editable || !entry.valid() {
		return
	}
	card := placeEntry(entry, wx, wy, b.cfg.CanvasWidth, b.cfg.CanvasHeight)
	cards := b.cards()
	next := make([]Card, len(cards), len(cards)+1)
	copy(next, cards)
	next = append(next, card)
	if b.cfg.OnCardsChange != nil {
		b.cfg.OnCardsChange(next)
	}
	b.selection.Replace(card.ID)
	b.debugf("place card id=%s", card.ID)
}

// DeleteSelection removes every selected entity and clears the selection.
func (b *Board) DeleteSelection() {
	if !b.cfg.Editable || b.selection.Len() == 0 {
		return
	}
	cards := b.cards()
	nextCards := make([]Card, 0, len(cards))
	cardsChanged := false
	for _, c := range cards {
		if b.selection.Has(c.ID) {
			cardsChanged = true
			continue
		}
		nextCards = append(nextCards, c)
	}
	objects := b.objects()
	nextObjects := make([]BoardObject, 0, len(objects))
	objectsChanged := false
	for _, o := range objects {
		if b.selection.Has(o.ID) {
			objectsChanged = true
			continue
		}
		nextObjects = append(nextObjects, o)
	}
	if cardsChanged && b.cfg.OnCardsChange != nil {
		b.cfg.OnCardsChange(nextCards)
	}
	if objectsChanged && b.cfg.OnObjectsChange != nil {
		b.cfg.OnObjectsChange(nextObjects)
	}
	b.selection.Clear()
}

// updateObject commits a single-object edit through the change callback.
func (b *Board) updateObject(id string, edit func(*BoardObject)) {
	if !b.cfg.Editable || b.cfg.OnObjectsChange == nil {
		return
	}
	objects := b.objects()
	next := make([]BoardObject, len(objects))
	copy(next, objects)
	for i := range next {
		if next[i].ID == id {
			edit(&next[i])
			b.cfg.OnObjectsChange(next)
			return
		}
	}
}

// SetObjectTitle commits an inline lane title edit.
func (b *Board) SetObjectTitle(id, title string) {
	b.updateObject(id, func(o *BoardObject) { o.Title = title })
}

// SetObjectText commits an inline text/note content edit.
func (b *Board) SetObjectText(id, text string) {
	b.updateObject(id, func(o *BoardObject) { o.Text = text })
}

// SetObjectColor commits a note color change.
func (b *Board) SetObjectColor(id string, c Color) {
	b.updateObject(id, func(o *BoardObject) { o.Color = c })
}

// --- Frame loop ---

// Update polls input, advances camera animation, and folds pointer motion
// into at most one preview refresh per frame. Call once per ebiten tick.
func (b *Board) Update() {
	dt := float32(1.0 / float64(ebiten.TPS()))
	b.camera.update(dt)

	if b.script != nil && !b.script.Done() {
		b.script.step(b)
	}

	mods := readModifiers()
	if !b.processInjectedInput(mods) {
		b.pollMouse(mods)
	}
	b.pollTouches()
	b.pollWheel()
	b.pollKeyboard()

	if b.session != nil {
		b.session.refreshPreview(b.cfg.CanvasWidth, b.cfg.CanvasHeight)
	}
}

// readModifiers reads the current keyboard modifier state.
func readModifiers() KeyModifiers {
	var mods KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) || ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight) {
		mods |= ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight) {
		mods |= ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) || ebiten.IsKeyPressed(ebiten.KeyAltLeft) || ebiten.IsKeyPressed(ebiten.KeyAltRight) {
		mods |= ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) || ebiten.IsKeyPressed(ebiten.KeyMetaLeft) || ebiten.IsKeyPressed(ebiten.KeyMetaRight) {
		mods |= ModMeta
	}
	return mods
}

// pollMouse handles mouse input (pointer 0).
func (b *Board) pollMouse(mods KeyModifiers) {
	mx, my := ebiten.CursorPosition()
	sx, sy := float64(mx), float64(my)

	var pressed bool
	var button MouseButton
	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	middle := ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)
	if left || right || middle {
		pressed = true
		if left {
			button = MouseButtonLeft
		} else if right {
			button = MouseButtonRight
		} else {
			button = MouseButtonMiddle
		}
	}

	ps := &b.pointers[0]
	switch {
	case pressed && !ps.down:
		b.PointerDown(0, PointerMouse, sx, sy, button, mods)
	case !pressed && ps.down:
		b.PointerUp(0, sx, sy)
	case pressed && ps.down && (sx != ps.lastSX || sy != ps.lastSY):
		b.PointerMove(0, sx, sy)
	}
}

// pollTouches handles touch input (pointers 1-9). A touch id that vanishes
// is treated as a release at its last known position.
func (b *Board) pollTouches() {
	touchIDs := ebiten.AppendTouchIDs(b.prevTouchIDs[:0])
	b.prevTouchIDs = touchIDs

	var activeSlots [maxPointers]bool
	for _, tid := range touchIDs {
		slot := b.touchSlot(tid)
		if slot < 0 {
			continue
		}
		activeSlots[slot] = true

		tx, ty := ebiten.TouchPosition(tid)
		sx, sy := float64(tx), float64(ty)
		if !b.pointers[slot].down {
			b.PointerDown(slot, PointerTouch, sx, sy, MouseButtonLeft, 0)
		} else if sx != b.pointers[slot].lastSX || sy != b.pointers[slot].lastSY {
			b.PointerMove(slot, sx, sy)
		}
	}

	for i := 1; i < maxPointers; i++ {
		if b.touchUsed[i] && !activeSlots[i] {
			if b.pointers[i].down {
				b.PointerUp(i, b.pointers[i].lastSX, b.pointers[i].lastSY)
			}
			b.touchUsed[i] = false
			b.touchMap[i] = 0
		}
	}
}

// touchSlot maps an ebiten.TouchID to a pointer slot (1-9).
// Returns the existing slot or allocates a new one. Returns -1 if full.
func (b *Board) touchSlot(tid ebiten.TouchID) int {
	for i := 1; i < maxPointers; i++ {
		if b.touchUsed[i] && b.touchMap[i] == tid {
			return i
		}
	}
	for i := 1; i < maxPointers; i++ {
		if !b.touchUsed[i] {
			b.touchUsed[i] = true
			b.touchMap[i] = tid
			return i
		}
	}
	return -1
}

// pollWheel applies scroll-wheel zoom anchored at the cursor.
func (b *Board) pollWheel() {
	_, dy := ebiten.Wheel()
	if dy == 0 {
		return
	}
	mx, my := ebiten.CursorPosition()
	b.camera.ZoomAt(float64(mx), float64(my), b.camera.Zoom*math.Pow(1.1, dy))
}

// pollKeyboard handles Delete/Backspace removal of the selection.
func (b *Board) pollKeyboard() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDelete) || inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		b.DeleteSelection()
	}
}
