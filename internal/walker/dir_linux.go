//go:build linux

package walker

import (
	"errors"
	"syscall"
	"unsafe"

	"golang.org/x/sys/unix"
)

// direntBufSize is the getdents64 buffer size shared by all recursion levels.
const direntBufSize = 32 * 1024

// atFDCWD is AT_FDCWD (-100) as a uintptr for use with syscall.Syscall6.
const atFDCWD = ^uintptr(0) - 99

// dirStream is an open directory being listed with getdents64.
type dirStream struct {
	fd int
}

// openDirStream opens the directory at path, which must include its trailing
// NUL terminator. Like opendir(3), a root that is a symlink to a directory is
// followed; entries below it never are.
func openDirStream(path []byte) (dirStream, error) {
	for {
		fd, _, errno := syscall.Syscall6(
			syscall.SYS_OPENAT,
			atFDCWD,
			uintptr(unsafe.Pointer(&path[0])),
			uintptr(unix.O_RDONLY|unix.O_DIRECTORY|unix.O_CLOEXEC|unix.O_LARGEFILE),
			0, 0, 0,
		)
		if errno == syscall.EINTR {
			continue
		}
		if errno != 0 {
			return dirStream{fd: -1}, errno
		}
		return dirStream{fd: int(fd)}, nil
	}
}

// readBatch reads the next batch of entries into dst. An empty result means
// the listing is exhausted. raw is scratch space; its contents are consumed
// before readBatch returns, so it may be shared across recursion levels.
func (d dirStream) readBatch(raw []byte, dst []Dirent) ([]Dirent, error) {
	for {
		n, err := unix.Getdents(d.fd, raw)
		if errors.Is(err, syscall.EINTR) {
			continue
		}
		if err != nil {
			return dst[:0], err
		}
		if n <= 0 {
			return dst[:0], nil
		}
		return ParseDirents(raw, n, dst), nil
	}
}

// lstatAt stats name relative to the directory without following symlinks.
func (d dirStream) lstatAt(name string) (uint8, int64, error) {
	var st unix.Stat_t
	for {
		err := unix.Fstatat(d.fd, name, &st, unix.AT_SYMLINK_NOFOLLOW)
		if errors.Is(err, syscall.EINTR) {
			continue
		}
		if err != nil {
			return DT_UNKNOWN, 0, err
		}
		break
	}

	var dtype uint8
	switch st.Mode & unix.S_IFMT {
	case unix.S_IFREG:
		dtype = DT_REG
	case unix.S_IFDIR:
		dtype = DT_DIR
	case unix.S_IFLNK:
		dtype = DT_LNK
	case unix.S_IFIFO:
		dtype = DT_FIFO
	case unix.S_IFSOCK:
		dtype = DT_SOCK
	case unix.S_IFCHR:
		dtype = DT_CHR
	case unix.S_IFBLK:
		dtype = DT_BLK
	}
	return dtype, st.Size, nil
}

func (d dirStream) close() error {
	if d.fd < 0 {
		return nil
	}
	// close(2) is not retried on EINTR.
	return unix.Close(d.fd)
}
