package clipboard

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

// ErrUnsupported is returned when no system clipboard is reachable.
var ErrUnsupported = errors.New("clipboard unavailable")

// Writer copies text to a clipboard.
type Writer interface {
	WriteAll(text string) error
}

// System writes to the operating system clipboard.
type System struct{}

var _ Writer = System{}

// WriteAll replaces the clipboard contents with text.
func (System) WriteAll(text string) error {
	if clipboard.Unsupported {
		return ErrUnsupported
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("write clipboard: %w", err)
	}
	return nil
}

// Func adapts a function to Writer.
type Func func(text string) error

// WriteAll calls f(text).
func (f Func) WriteAll(text string) error {
	return f(text)
}
