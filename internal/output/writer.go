package output

import (
	"io"

	"github.com/dl/duext/internal/walker"
)

// flushThreshold is the buffered size that triggers a write.
const flushThreshold = 64 * 1024

// Writer buffers path lines and writes them out in large chunks.
// It is not safe for concurrent use.
type Writer struct {
	out io.Writer
	buf []byte
}

// NewWriter creates a Writer that writes to stdout.
func NewWriter() *Writer {
	return NewStreamWriter(stdoutWriter())
}

// NewStreamWriter creates a Writer on top of any io.Writer.
func NewStreamWriter(out io.Writer) *Writer {
	return &Writer{out: out, buf: make([]byte, 0, flushThreshold+4096)}
}

// WriteFile appends "<dir>/<name>\n" for a discovered file.
func (w *Writer) WriteFile(f *walker.File) error {
	w.buf = f.AppendPath(w.buf)
	w.buf = append(w.buf, '\n')
	if len(w.buf) >= flushThreshold {
		return w.Flush()
	}
	return nil
}

// Write buffers data as is.
func (w *Writer) Write(data []byte) (int, error) {
	w.buf = append(w.buf, data...)
	if len(w.buf) >= flushThreshold {
		if err := w.Flush(); err != nil {
			return 0, err
		}
	}
	return len(data), nil
}

// Flush writes everything buffered so far.
func (w *Writer) Flush() error {
	data := w.buf
	for len(data) > 0 {
		n, err := w.out.Write(data)
		if err != nil {
			return err
		}
		data = data[n:]
	}
	w.buf = w.buf[:0]
	return nil
}
