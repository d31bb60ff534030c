//go:build linux

package walker

import "unsafe"

// Linux dirent64 structure layout:
//
//	struct linux_dirent64 {
//	    ino64_t        d_ino;    /* 64-bit inode number */
//	    off64_t        d_off;    /* 64-bit offset to next structure */
//	    unsigned short d_reclen; /* Size of this dirent */
//	    unsigned char  d_type;   /* File type */
//	    char           d_name[]; /* Filename (null-terminated) */
//	};
const (
	direntReclenOffset = 16
	direntTypeOffset   = 18
	direntNameOffset   = 19
)

// ParseDirents parses raw getdents64 output into Dirent structs.
// buf must contain the raw bytes returned by unix.Getdents.
// dst is reused to avoid per-call slice allocation; pass nil on first call.
// The "." and ".." entries are returned like any other; the walker skips them.
func ParseDirents(buf []byte, n int, dst []Dirent) []Dirent {
	entries := dst[:0]
	offset := 0

	for offset < n {
		if offset+direntNameOffset > n {
			break
		}

		reclen := *(*uint16)(unsafe.Pointer(&buf[offset+direntReclenOffset]))
		dtype := buf[offset+direntTypeOffset]

		if reclen == 0 {
			break // prevent infinite loop
		}

		nameStart := offset + direntNameOffset
		nameEnd := offset + int(reclen)
		if nameEnd > n {
			nameEnd = n
		}

		nameBytes := buf[nameStart:nameEnd]
		nameLen := 0
		for nameLen < len(nameBytes) && nameBytes[nameLen] != 0 {
			nameLen++
		}

		entries = append(entries, Dirent{
			Name: string(nameBytes[:nameLen]),
			Type: dtype,
		})

		offset += int(reclen)
	}

	return entries
}
