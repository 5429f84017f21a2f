package stream

import (
	"bufio"
	"io"

	"github.com/variantkit/feen/feen"
)

// Writer writes FEEN records to an io.Writer, one canonical line each.
type Writer struct {
	w *bufio.Writer
}

// NewWriter creates a record writer.
func NewWriter(dst io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(dst)}
}

// WriteComment writes a '#'-prefixed comment line.
func (w *Writer) WriteComment(text string) error {
	if _, err := w.w.WriteString("# " + text); err != nil {
		return err
	}
	return w.w.WriteByte('\n')
}

// WritePosition writes one position as its canonical record line.
func (w *Writer) WritePosition(p *feen.Position) error {
	if _, err := w.w.WriteString(p.Dump()); err != nil {
		return err
	}
	return w.w.WriteByte('\n')
}

// Flush writes any buffered records to the underlying writer.
func (w *Writer) Flush() error {
	return w.w.Flush()
}
