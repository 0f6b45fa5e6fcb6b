package fieldboard

import (
	"time"

	"github.com/bep/debounce"
)

// Autosaver coalesces rapid successive commits into one save call using a
// trailing-edge debounce. It is owned by the caller: wire Changed into the
// change callbacks and the save function into the persistence collaborator.
// The engine commits once per gesture release, not once per pointer move,
// which is what keeps the debounce effective rather than overwhelmed.
type Autosaver struct {
	debounced func(func())
	save      func()
}

// DefaultAutosaveDelay is a reasonable debounce window for board edits.
const DefaultAutosaveDelay = 600 * time.Millisecond

// NewAutosaver creates an Autosaver that invokes save once the given
// duration has elapsed with no further Changed calls. Non-positive
// durations fall back to DefaultAutosaveDelay.
func NewAutosaver(d time.Duration, save func()) *Autosaver {
	if d <= 0 {
		d = DefaultAutosaveDelay
	}
	return &Autosaver{
		debounced: debounce.New(d),
		save:      save,
	}
}

// Changed restarts the debounce timer. Call it from every change callback.
func (a *Autosaver) Changed() {
	a.debounced(a.save)
}

// Flush saves immediately, without waiting for the debounce window.
// Pending debounced calls still fire; save functions must be idempotent.
func (a *Autosaver) Flush() {
	a.save()
}
