// Package walker enumerates the regular files below a root directory.
//
// # Traversal
//
// The walk is a single-threaded depth-first descent. Each directory's entries
// are handled in the order the filesystem lists them: regular files are passed
// to the visitor as they are encountered and subdirectories are descended into
// immediately, before the next entry of the parent is looked at. No sorting is
// applied.
//
// # Symlinks
//
// Symbolic links are never followed, resolved or reported, whatever their
// target. A tree containing a link cycle therefore terminates. The root itself
// is opened like opendir(3) does, so a root that is a link to a directory works.
//
// # File types
//
// Only regular files are reported. FIFOs, sockets, devices and unknown types
// are skipped silently. Entries whose type the filesystem does not report
// (DT_UNKNOWN) are classified with an lstat relative to the open directory.
//
// # Path buffer
//
// The path of the directory being visited lives in one [PathBuffer] allocated
// when the walk starts. Every level appends "/name" before descending and
// truncates back after the child returns, so memory for paths is bounded by
// the buffer capacity regardless of tree depth. The price is that paths
// longer than the capacity cannot be represented: the walk fails with
// [ErrPathBufferOverflow] rather than truncating.
//
// Entry names are ordinary strings, allocated per listing batch. Trading the
// zero-allocation property of a raw C walker for string names keeps [File]
// safe to inspect inside the visitor.
//
// # Errors
//
// By default every error aborts the whole walk, after each level has closed
// its directory handle. [SkipSubtree] is the explicit alternative: a
// subdirectory that cannot be opened, read or represented is reported through
// Options.OnSkip and its siblings are still visited.
package walker

import (
	"errors"
	"os"
)

// ErrorMode selects what happens when a subtree cannot be walked.
type ErrorMode int

const (
	// Abort fails the whole walk on the first error.
	Abort ErrorMode = iota
	// SkipSubtree reports the failed subtree through OnSkip and continues with
	// its siblings. A root that cannot be opened is still fatal.
	SkipSubtree
)

// Options configures a walk.
type Options struct {
	// Capacity is the path buffer size in bytes. Zero means DefaultCapacity.
	Capacity int
	// OnError selects Abort (default) or SkipSubtree.
	OnError ErrorMode
	// OnSkip receives the errors of skipped subtrees in SkipSubtree mode.
	OnSkip func(err error)
	// Stat populates File.Size.
	Stat bool
	// Exclude filters out matching files and directories. Nil excludes nothing.
	Exclude *Matcher
}

// File is a regular file discovered by the walk.
type File struct {
	// Dir is the directory path. It aliases the walk's path buffer and is
	// only valid for the duration of the VisitFunc call.
	Dir  []byte
	Name string
	// Size is only set when Options.Stat is true.
	Size int64
}

// AppendPath appends "Dir/Name" to dst.
func (f *File) AppendPath(dst []byte) []byte {
	dst = append(dst, f.Dir...)
	if len(f.Dir) == 0 || f.Dir[len(f.Dir)-1] != '/' {
		dst = append(dst, '/')
	}
	return append(dst, f.Name...)
}

// Path returns "Dir/Name" as a new string.
func (f *File) Path() string {
	return string(f.AppendPath(make([]byte, 0, len(f.Dir)+1+len(f.Name))))
}

// VisitFunc is called for every regular file. A non-nil error stops the walk
// and is returned by Walk unchanged.
type VisitFunc func(f *File) error

// Walk reports every regular file below root to fn.
func Walk(root string, fn VisitFunc, opts Options) error {
	w := &walker{
		fn:   fn,
		opts: opts,
		buf:  NewPathBuffer(opts.Capacity),
		raw:  make([]byte, direntBufSize),
	}
	if err := w.buf.Reset(root); err != nil {
		return &WalkError{Op: "walk", Path: root, Err: err}
	}
	w.rootLen = w.buf.Len()
	return w.visit(0)
}

type walker struct {
	fn   VisitFunc
	opts Options
	buf  *PathBuffer
	// raw is the getdents scratch buffer. It is fully parsed before any
	// recursion, so one buffer serves all levels.
	raw []byte
	// batches holds one reusable entry slice per depth.
	batches [][]Dirent
	rootLen int
	file    File
}

// visit lists the directory currently held in the path buffer.
func (w *walker) visit(depth int) (err error) {
	dir, err := openDirStream(w.buf.cstr())
	if err != nil {
		return &WalkError{Op: "open", Path: w.buf.String(), Err: err}
	}
	defer func() {
		if cerr := dir.close(); cerr != nil && err == nil {
			err = &WalkError{Op: "close", Path: w.buf.String(), Err: cerr}
		}
	}()

	if depth == len(w.batches) {
		w.batches = append(w.batches, nil)
	}

	for {
		entries, err := dir.readBatch(w.raw, w.batches[depth])
		w.batches[depth] = entries
		if err != nil {
			return &WalkError{Op: "read", Path: w.buf.String(), Err: err}
		}
		if len(entries) == 0 {
			return nil
		}

		for i := range entries {
			if err := w.entry(dir, depth, &entries[i]); err != nil {
				return err
			}
		}
	}
}

// entry handles one directory entry of the directory at the given depth.
func (w *walker) entry(dir dirStream, depth int, e *Dirent) error {
	if isDotEntry(e.Name) {
		return nil
	}

	dtype := e.Type
	var size int64
	statted := false
	if dtype == DT_UNKNOWN {
		t, sz, err := dir.lstatAt(e.Name)
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		if err != nil {
			return &WalkError{Op: "stat", Path: w.childPath(e.Name), Err: err}
		}
		dtype, size, statted = t, sz, true
	}

	switch KindOf(dtype) {
	case KindRegular:
		if w.opts.Exclude != nil && w.opts.Exclude.Excluded(w.relPath(e.Name), false) {
			return nil
		}
		if w.opts.Stat && !statted {
			t, sz, err := dir.lstatAt(e.Name)
			if errors.Is(err, os.ErrNotExist) {
				return nil
			}
			if err != nil {
				return &WalkError{Op: "stat", Path: w.childPath(e.Name), Err: err}
			}
			// Replaced by something else since it was listed.
			if KindOf(t) != KindRegular {
				return nil
			}
			size = sz
		}
		w.file = File{Dir: w.buf.Bytes(), Name: e.Name, Size: size}
		return w.fn(&w.file)

	case KindDirectory:
		if w.opts.Exclude != nil && w.opts.Exclude.Excluded(w.relPath(e.Name), true) {
			return nil
		}
		prev, err := w.buf.Push(e.Name)
		if err != nil {
			return w.skipOrFail(&WalkError{Op: "descend", Path: w.childPath(e.Name), Err: err})
		}
		err = w.visit(depth + 1)
		w.buf.Truncate(prev)
		if err != nil {
			return w.skipOrFail(err)
		}
		return nil
	}

	// Symlinks and other file types.
	return nil
}

// skipOrFail swallows subtree errors in SkipSubtree mode. Errors returned by
// the visitor are never skipped.
func (w *walker) skipOrFail(err error) error {
	if w.opts.OnError != SkipSubtree {
		return err
	}
	var werr *WalkError
	if !errors.As(err, &werr) {
		return err
	}
	if w.opts.OnSkip != nil {
		w.opts.OnSkip(err)
	}
	return nil
}

// childPath returns the current directory joined with name, for error messages.
func (w *walker) childPath(name string) string {
	f := File{Dir: w.buf.Bytes(), Name: name}
	return f.Path()
}

// relPath returns the root-relative path of name in the current directory.
func (w *walker) relPath(name string) string {
	dir := w.buf.Bytes()[w.rootLen:]
	if len(dir) > 0 && dir[0] == '/' {
		dir = dir[1:]
	}
	if len(dir) == 0 {
		return name
	}
	return string(dir) + "/" + name
}
