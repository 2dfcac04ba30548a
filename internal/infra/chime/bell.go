// Package chime plays an audible cue when a timer interval ends.
package chime

import (
	"io"

	"github.com/pomoplan/pomoplan/internal/domain"
)

// Ensure Bell implements domain.ChimePlayer interface.
var _ domain.ChimePlayer = (*Bell)(nil)

// Bell rings the terminal bell by writing the BEL control character.
type Bell struct {
	w io.Writer
}

// NewBell creates a Bell that writes to w, typically os.Stdout.
func NewBell(w io.Writer) *Bell {
	return &Bell{w: w}
}

// Play rings the bell once.
func (b *Bell) Play() error {
	_, err := io.WriteString(b.w, "\a")
	return err
}
