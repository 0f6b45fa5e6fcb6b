package fieldboard

import (
	"fmt"
	"os"
)

// debugf prints a trace line to stderr when debug mode is enabled.
// Session transitions and commits are the interesting events; previews are
// intentionally not traced to keep the output readable during a drag.
func (b *Board) debugf(format string, args ...any) {
	if !b.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[fieldboard] "+format+"\n", args...)
}
