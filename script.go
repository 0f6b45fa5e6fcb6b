package fieldboard

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in an interaction script.
type scriptStep struct {
	Action string       `json:"action"`
	X      float64      `json:"x,omitempty"`
	Y      float64      `json:"y,omitempty"`
	FromX  float64      `json:"fromX,omitempty"`
	FromY  float64      `json:"fromY,omitempty"`
	ToX    float64      `json:"toX,omitempty"`
	ToY    float64      `json:"toY,omitempty"`
	Frames int          `json:"frames,omitempty"`
	Entry  *RosterEntry `json:"entry,omitempty"`
	Tool   string       `json:"tool,omitempty"`
}

// interactionScript is the top-level JSON structure for a script.
type interactionScript struct {
	Steps []scriptStep `json:"steps"`
}

// ScriptRunner sequences injected pointer events, drops, and tool changes
// across frames for automated interaction testing and demos. Attach to a
// Board via SetScriptRunner.
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON interaction script. Supported actions:
// "press", "move", "release", "click", "drag", "drop", "tool", "wait".
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var script interactionScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse interaction script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse interaction script: no steps")
	}
	return &ScriptRunner{steps: script.Steps}, nil
}

// SetScriptRunner attaches a runner to the board. The runner's step method
// is called from Board.Update before input polling each frame.
func (b *Board) SetScriptRunner(runner *ScriptRunner) {
	b.script = runner
}

// Done reports whether all steps in the script have been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// step advances the runner by one frame. Called from Board.Update.
func (r *ScriptRunner) step(b *Board) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(b.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "press":
		b.InjectPress(st.X, st.Y)
	case "move":
		b.InjectMove(st.X, st.Y)
	case "release":
		b.InjectRelease(st.X, st.Y)
	case "click":
		b.InjectClick(st.X, st.Y)
	case "drag":
		frames := st.Frames
		if frames < 2 {
			frames = 2
		}
		b.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, frames)
	case "drop":
		if st.Entry != nil {
			b.HandleDrop(EncodeDragPayload(*st.Entry), st.X, st.Y)
		}
	case "tool":
		b.SetTool(toolByName(st.Tool))
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(b.injectQueue) == 0 {
		r.done = true
	}
}

// toolByName maps a script tool name to a Tool. Unknown names select.
func toolByName(name string) Tool {
	switch name {
	case "lane":
		return ToolLane
	case "text":
		return ToolText
	case "note":
		return ToolNote
	default:
		return ToolSelect
	}
}
