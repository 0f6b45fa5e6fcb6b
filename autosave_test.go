package fieldboard

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestAutosaverCoalesces(t *testing.T) {
	var saves atomic.Int32
	a := NewAutosaver(20*time.Millisecond, func() { saves.Add(1) })

	// A burst of commits inside the window collapses to one save.
	for i := 0; i < 5; i++ {
		a.Changed()
		time.Sleep(2 * time.Millisecond)
	}
	time.Sleep(60 * time.Millisecond)
	if got := saves.Load(); got != 1 {
		t.Errorf("saves = %d, want 1", got)
	}

	a.Changed()
	time.Sleep(60 * time.Millisecond)
	if got := saves.Load(); got != 2 {
		t.Errorf("saves = %d, want a second window to save again", got)
	}
}

func TestAutosaverFlush(t *testing.T) {
	var saves atomic.Int32
	a := NewAutosaver(time.Hour, func() { saves.Add(1) })

	a.Changed()
	a.Flush()
	if got := saves.Load(); got != 1 {
		t.Errorf("saves = %d, want Flush to save immediately", got)
	}
}

func TestAutosaverDefaultDelay(t *testing.T) {
	a := NewAutosaver(0, func() {})
	if a == nil {
		t.Fatal("constructor should tolerate a zero duration")
	}
}
