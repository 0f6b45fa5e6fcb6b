package fieldboard

import "testing"

// stepFrames drives the script and inject queue the way Update does, without
// touching the real input devices.
func stepFrames(b *Board, n int) {
	for i := 0; i < n; i++ {
		if b.script != nil && !b.script.Done() {
			b.script.step(b)
		}
		b.processInjectedInput(0)
		if b.session != nil {
			b.session.refreshPreview(b.cfg.CanvasWidth, b.cfg.CanvasHeight)
		}
	}
}

func TestLoadScript(t *testing.T) {
	runner, err := LoadScript([]byte(`{"steps":[{"action":"click","x":100,"y":100}]}`))
	if err != nil {
		t.Fatalf("LoadScript: %v", err)
	}
	if runner.Done() {
		t.Error("a fresh runner is not done")
	}
}

func TestLoadScriptErrors(t *testing.T) {
	if _, err := LoadScript([]byte(`{not json`)); err == nil {
		t.Error("malformed JSON should error")
	}
	if _, err := LoadScript([]byte(`{"steps":[]}`)); err == nil {
		t.Error("an empty script should error")
	}
}

func TestInjectedClickSelects(t *testing.T) {
	env := newEnv(t, true)
	env.cards = []Card{{ID: "c1", Pos: Vec2{X: 100, Y: 100}}}

	env.board.InjectClick(150, 150)
	stepFrames(env.board, 2)

	if !env.board.Selection().Has("c1") {
		t.Error("injected click should select the card")
	}
	if len(env.opened) != 1 {
		t.Error("injected click should open the card")
	}
}

func TestInjectedDragMoves(t *testing.T) {
	env := newEnv(t, true)
	env.cards = []Card{{ID: "c1", Pos: Vec2{X: 100, Y: 100}}}

	env.board.InjectDrag(150, 150, 250, 150, 6)
	stepFrames(env.board, 6)

	if env.cardCommits != 1 {
		t.Fatalf("cardCommits = %d, want 1", env.cardCommits)
	}
	assertNear(t, "X", env.cards[0].Pos.X, 200)
}

func TestInjectOneEventPerFrame(t *testing.T) {
	env := newEnv(t, true)
	env.cards = []Card{{ID: "c1", Pos: Vec2{X: 100, Y: 100}}}

	env.board.InjectClick(150, 150)
	stepFrames(env.board, 1)
	// Press consumed, release still queued: the pointer is mid-click.
	if len(env.board.injectQueue) != 1 {
		t.Fatalf("queue = %d, want the release pending", len(env.board.injectQueue))
	}
	if len(env.opened) != 0 {
		t.Error("the click has not finished yet")
	}
	stepFrames(env.board, 1)
	if len(env.opened) != 1 {
		t.Error("the release frame completes the click")
	}
}

func TestScriptDrivesBoard(t *testing.T) {
	env := newEnv(t, true)

	runner, err := LoadScript([]byte(`{"steps":[
		{"action":"tool","tool":"note"},
		{"action":"click","x":400,"y":300},
		{"action":"wait","frames":2},
		{"action":"drag","fromX":450,"fromY":350,"toX":550,"toY":350,"frames":4}
	]}`))
	if err != nil {
		t.Fatalf("LoadScript: %v", err)
	}
	env.board.SetScriptRunner(runner)

	stepFrames(env.board, 20)

	if !runner.Done() {
		t.Fatal("script should finish within 20 frames")
	}
	if len(env.objects) != 1 || env.objects[0].Kind != KindNote {
		t.Fatalf("objects = %v, want the placed note", env.objects)
	}
	// The drag grabbed the note and moved it 100px right.
	assertNear(t, "X", env.objects[0].Pos.X, 500)
}

func TestScriptDrop(t *testing.T) {
	env := newEnv(t, true)

	runner, err := LoadScript([]byte(`{"steps":[
		{"action":"drop","x":500,"y":500,"entry":{"id":"p7","name":"Jordan Vega"}}
	]}`))
	if err != nil {
		t.Fatalf("LoadScript: %v", err)
	}
	env.board.SetScriptRunner(runner)

	stepFrames(env.board, 2)

	if len(env.cards) != 1 {
		t.Fatal("want the dropped card")
	}
	assertNear(t, "X", env.cards[0].Pos.X, 370)
	assertNear(t, "Y", env.cards[0].Pos.Y, 454)
}
