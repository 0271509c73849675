package output

import (
	"bufio"
	"io"
)

// Writer renders fragments to an underlying writer through Styles.
// Output is buffered; call Flush when done.
type Writer struct {
	w      *bufio.Writer
	styles Styles
}

// NewWriter creates a Writer on w.
func NewWriter(w io.Writer, styles Styles) *Writer {
	return &Writer{w: bufio.NewWriterSize(w, 64*1024), styles: styles}
}

// Write renders frags in order.
func (w *Writer) Write(frags []Fragment) error {
	for _, f := range frags {
		if len(f.Text) == 0 {
			continue
		}
		if st, ok := w.styles.style(f.Kind); ok {
			if _, err := w.w.WriteString(st.Render(string(f.Text))); err != nil {
				return err
			}
			continue
		}
		if _, err := w.w.Write(f.Text); err != nil {
			return err
		}
	}
	return nil
}

// Flush writes any buffered output.
func (w *Writer) Flush() error {
	return w.w.Flush()
}
