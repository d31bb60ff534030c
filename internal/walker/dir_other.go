//go:build !linux

package walker

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"
)

// direntBufSize doubles as the ReadDir batch size on this backend.
const direntBufSize = 4096

// dirStream is an open directory listed with (*os.File).ReadDir.
type dirStream struct {
	f    *os.File
	path string
}

// openDirStream opens the directory at path, which must include its trailing
// NUL terminator.
func openDirStream(path []byte) (dirStream, error) {
	p := string(path[:len(path)-1])
	f, err := os.Open(p)
	if err != nil {
		return dirStream{}, err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return dirStream{}, err
	}
	if !info.IsDir() {
		f.Close()
		return dirStream{}, &fs.PathError{Op: "open", Path: p, Err: syscall.ENOTDIR}
	}
	return dirStream{f: f, path: p}, nil
}

// readBatch reads the next batch of entries into dst. An empty result means
// the listing is exhausted.
func (d dirStream) readBatch(_ []byte, dst []Dirent) ([]Dirent, error) {
	entries, err := d.f.ReadDir(direntBufSize)
	dst = dst[:0]
	for _, e := range entries {
		// Type() does not follow symlinks, unlike IsDir() on a FileInfo.
		dst = append(dst, Dirent{Name: e.Name(), Type: modeToDType(e.Type())})
	}
	if err == io.EOF {
		err = nil
	}
	return dst, err
}

// lstatAt stats name relative to the directory without following symlinks.
func (d dirStream) lstatAt(name string) (uint8, int64, error) {
	info, err := os.Lstat(filepath.Join(d.path, name))
	if err != nil {
		return DT_UNKNOWN, 0, err
	}
	return modeToDType(info.Mode().Type()), info.Size(), nil
}

func (d dirStream) close() error {
	if d.f == nil {
		return nil
	}
	return d.f.Close()
}

func modeToDType(m fs.FileMode) uint8 {
	switch {
	case m&fs.ModeSymlink != 0:
		return DT_LNK
	case m.IsDir():
		return DT_DIR
	case m&fs.ModeNamedPipe != 0:
		return DT_FIFO
	case m&fs.ModeSocket != 0:
		return DT_SOCK
	case m&fs.ModeCharDevice != 0:
		return DT_CHR
	case m&fs.ModeDevice != 0:
		return DT_BLK
	case m&fs.ModeIrregular != 0:
		return DT_UNKNOWN
	case m.IsRegular():
		return DT_REG
	}
	return DT_UNKNOWN
}
