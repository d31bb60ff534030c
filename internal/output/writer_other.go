//go:build !linux

package output

import (
	"io"
	"os"
)

func stdoutWriter() io.Writer {
	return os.Stdout
}
