package fieldboard

// syntheticPointerEvent represents a single injected pointer event.
// Screen coordinates are used and converted to world coordinates via the
// camera, identical to real mouse input.
type syntheticPointerEvent struct {
	screenX, screenY float64
	pressed          bool
	button           MouseButton
}

// InjectPress queues a pointer press event at the given screen coordinates
// (left button). The event is consumed on the next Update call.
func (b *Board) InjectPress(x, y float64) {
	b.injectQueue = append(b.injectQueue, syntheticPointerEvent{
		screenX: x, screenY: y,
		pressed: true,
		button:  MouseButtonLeft,
	})
}

// InjectMove queues a pointer move event at the given screen coordinates
// with the button held down. Use this between InjectPress and InjectRelease
// to simulate a drag.
func (b *Board) InjectMove(x, y float64) {
	b.injectQueue = append(b.injectQueue, syntheticPointerEvent{
		screenX: x, screenY: y,
		pressed: true,
		button:  MouseButtonLeft,
	})
}

// InjectRelease queues a pointer release event at the given screen coordinates.
func (b *Board) InjectRelease(x, y float64) {
	b.injectQueue = append(b.injectQueue, syntheticPointerEvent{
		screenX: x, screenY: y,
		pressed: false,
		button:  MouseButtonLeft,
	})
}

// InjectClick is a convenience that queues a press followed by a release
// at the same screen coordinates. Consumes two frames.
func (b *Board) InjectClick(x, y float64) {
	b.InjectPress(x, y)
	b.InjectRelease(x, y)
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY),
// linearly interpolated moves over frames-2 intermediate frames, and
// release at (toX, toY). The total sequence consumes `frames` frames.
// Minimum frames is 2 (press + release).
func (b *Board) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	b.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		x := fromX + (toX-fromX)*t
		y := fromY + (toY-fromY)*t
		b.InjectMove(x, y)
	}
	b.InjectRelease(toX, toY)
}

// processInjectedInput pops one event from the inject queue and feeds it
// through the same pointer intake real mouse input uses. Returns true if an
// event was consumed (real mouse input should be skipped this frame).
func (b *Board) processInjectedInput(mods KeyModifiers) bool {
	if len(b.injectQueue) == 0 {
		return false
	}
	evt := b.injectQueue[0]
	copy(b.injectQueue, b.injectQueue[1:])
	b.injectQueue = b.injectQueue[:len(b.injectQueue)-1]

	ps := &b.pointers[0]
	switch {
	case evt.pressed && !ps.down:
		b.PointerDown(0, PointerMouse, evt.screenX, evt.screenY, evt.button, mods)
	case evt.pressed && ps.down:
		b.PointerMove(0, evt.screenX, evt.screenY)
	case !evt.pressed && ps.down:
		b.PointerUp(0, evt.screenX, evt.screenY)
	}
	return true
}
