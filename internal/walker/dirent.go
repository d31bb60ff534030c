package walker

// File type constants from dirent.h
const (
	DT_UNKNOWN = 0
	DT_FIFO    = 1
	DT_CHR     = 2
	DT_DIR     = 4
	DT_BLK     = 6
	DT_REG     = 8
	DT_LNK     = 10
	DT_SOCK    = 12
)

// Dirent represents one entry of a directory listing.
type Dirent struct {
	Name string
	Type uint8
}

// Kind classifies a directory entry for traversal purposes.
type Kind int

const (
	KindOther Kind = iota
	KindRegular
	KindDirectory
	KindSymlink
)

func (k Kind) String() string {
	switch k {
	case KindRegular:
		return "regular"
	case KindDirectory:
		return "directory"
	case KindSymlink:
		return "symlink"
	default:
		return "other"
	}
}

// KindOf maps a d_type value to a Kind. DT_UNKNOWN maps to KindOther; callers
// must resolve it with an lstat-style call before classifying.
func KindOf(dtype uint8) Kind {
	switch dtype {
	case DT_REG:
		return KindRegular
	case DT_DIR:
		return KindDirectory
	case DT_LNK:
		return KindSymlink
	default:
		return KindOther
	}
}

func isDotEntry(name string) bool {
	return name == "." || name == ".."
}
