package walker

// DefaultCapacity is the path buffer capacity used when Options.Capacity is zero.
// It bounds the total byte length of root + separators + names at any depth.
const DefaultCapacity = 1024

// PathBuffer is a fixed-capacity byte buffer holding the path of the directory
// currently being visited. It is allocated once per walk and never grows: each
// recursion level appends "/name" with Push and rolls back with Truncate.
//
// The backing array has one extra byte past the capacity so the path can be
// NUL-terminated in place for system calls.
type PathBuffer struct {
	buf []byte
	n   int
}

// NewPathBuffer allocates a buffer able to hold capacity path bytes.
func NewPathBuffer(capacity int) *PathBuffer {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &PathBuffer{buf: make([]byte, capacity+1)}
}

// Cap returns the maximum number of path bytes the buffer can hold.
func (p *PathBuffer) Cap() int { return len(p.buf) - 1 }

// Len returns the number of valid path bytes.
func (p *PathBuffer) Len() int { return p.n }

// Bytes returns the valid window. The slice aliases the buffer and is only
// valid until the next Push, Truncate or Reset.
func (p *PathBuffer) Bytes() []byte { return p.buf[:p.n] }

// String returns a copy of the current path.
func (p *PathBuffer) String() string { return string(p.buf[:p.n]) }

// Reset replaces the contents with root. The capacity check applies to root
// as given; trailing separators are trimmed afterwards, but a root of "/" is
// kept as is.
func (p *PathBuffer) Reset(root string) error {
	if len(root) > p.Cap() {
		return ErrPathTooLong
	}
	for len(root) > 1 && root[len(root)-1] == '/' {
		root = root[:len(root)-1]
	}
	p.n = copy(p.buf, root)
	return nil
}

// Push appends a separator and name, returning the previous length for the
// matching Truncate. On overflow the buffer is left unchanged.
func (p *PathBuffer) Push(name string) (int, error) {
	prev := p.n
	sep := 1
	if prev > 0 && p.buf[prev-1] == '/' {
		sep = 0
	}
	next := prev + sep + len(name)
	if next > p.Cap() {
		return prev, ErrPathBufferOverflow
	}
	if sep == 1 {
		p.buf[prev] = '/'
	}
	copy(p.buf[prev+sep:next], name)
	p.n = next
	return prev, nil
}

// Truncate rolls the buffer back to n valid bytes. Bytes past n are left as
// garbage; only the length governs validity.
func (p *PathBuffer) Truncate(n int) {
	if n < 0 || n > p.n {
		panic("walker: PathBuffer.Truncate out of range")
	}
	p.n = n
}

// cstr NUL-terminates the path in place using the reserved byte and returns
// the terminated slice.
func (p *PathBuffer) cstr() []byte {
	p.buf[p.n] = 0
	return p.buf[:p.n+1]
}
