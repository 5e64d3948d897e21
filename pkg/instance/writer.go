package instance

import (
	"fmt"
	"io"
	"strings"
)

// Writer formats values onto a sink. The first write error is kept and every
// later write becomes a no-op; check it with Err.
type Writer struct {
	w     io.Writer
	width int
	err   error
}

// NewWriter returns an unformatted Writer on w
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// SetWidth right-aligns every following value in width columns; 0 disables padding
func (w *Writer) SetWidth(width int) {
	w.width = width
}

// Write writes a single value
func (w *Writer) Write(value any) {
	w.printf("%s", w.format(value))
}

// WriteLine writes values separated by spaces and ends the line
func (w *Writer) WriteLine(values ...any) {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = w.format(v)
	}
	w.printf("%s\n", strings.Join(parts, " "))
}

// Err returns the first error encountered while writing
func (w *Writer) Err() error {
	return w.err
}

func (w *Writer) format(value any) string {
	if w.width > 0 {
		return fmt.Sprintf("%*v", w.width, value)
	}
	return fmt.Sprint(value)
}

func (w *Writer) printf(format string, args ...any) {
	if w.err != nil {
		return
	}
	if _, err := fmt.Fprintf(w.w, format, args...); err != nil {
		w.err = fmt.Errorf("failed to write: %w", err)
	}
}
