//go:build linux

package output

import (
	"io"
	"os"

	"golang.org/x/sys/unix"
)

// fdWriter writes to a file descriptor using writev for scatter-gather I/O.
type fdWriter struct {
	fd int
}

func (w fdWriter) Write(data []byte) (int, error) {
	written := 0
	for len(data) > 0 {
		n, err := unix.Writev(w.fd, [][]byte{data})
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return written, err
		}
		written += n
		data = data[n:]
	}
	return written, nil
}

func stdoutWriter() io.Writer {
	return fdWriter{fd: int(os.Stdout.Fd())}
}
