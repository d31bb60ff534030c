// Package usage tallies disk usage per file extension.
package usage

import (
	"sort"
	"strings"
)

// NoExtension is the bucket for files without an extension.
const NoExtension = "No extension"

// OtherBucket collects every extension below the summary threshold.
const OtherBucket = "other"

// DefaultThreshold is the share below which extensions are folded into
// OtherBucket.
const DefaultThreshold = 0.001

// DefaultCompressed lists suffixes that are looked through to the inner
// extension, so "a.tar.gz" counts as ".tar".
var DefaultCompressed = []string{".gz", ".bz2", ".xz"}

// Extension returns the extension bucket for a file name.
func Extension(name string, compressed []string) string {
	ext := splitExt(name)
	for _, c := range compressed {
		if ext == c {
			ext = splitExt(name[:len(name)-len(ext)])
			break
		}
	}
	if ext == "" {
		return NoExtension
	}
	return ext
}

// splitExt returns the extension of the last path element, including the
// dot. Leading dots do not start an extension, so ".bashrc" has none.
func splitExt(name string) string {
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	dot := strings.LastIndexByte(name, '.')
	if dot <= 0 {
		return ""
	}
	if strings.TrimLeft(name[:dot], ".") == "" {
		return ""
	}
	return name[dot:]
}

// Tally accumulates sizes per extension. The zero value is not usable; use
// NewTally.
type Tally struct {
	compressed []string
	sizes      map[string]int64
	total      int64
	files      int64
}

// NewTally creates a Tally. A nil compressed list means DefaultCompressed.
func NewTally(compressed []string) *Tally {
	if compressed == nil {
		compressed = DefaultCompressed
	}
	return &Tally{
		compressed: compressed,
		sizes:      make(map[string]int64),
	}
}

// Add records a file.
func (t *Tally) Add(name string, size int64) {
	t.sizes[Extension(name, t.compressed)] += size
	t.total += size
	t.files++
}

// Total returns the summed size of all files.
func (t *Tally) Total() int64 { return t.total }

// Files returns the number of files added.
func (t *Tally) Files() int64 { return t.files }

// Len returns the number of distinct extensions.
func (t *Tally) Len() int { return len(t.sizes) }

// Size returns the summed size for one extension bucket.
func (t *Tally) Size(ext string) int64 { return t.sizes[ext] }

// Row is one line of a Summary.
type Row struct {
	Extension string  `json:"extension"`
	Size      int64   `json:"bytes"`
	Share     float64 `json:"share"`
}

// Summary is the per-extension report, largest first.
type Summary struct {
	Total int64 `json:"total_bytes"`
	Files int64 `json:"files"`
	Rows  []Row `json:"extensions"`
}

// Summarize sorts the tally by size and folds the tail into OtherBucket,
// starting at the first extension whose share of the total is below
// threshold. The OtherBucket row is always present, even when empty.
func Summarize(t *Tally, threshold float64) Summary {
	rows := make([]Row, 0, len(t.sizes)+1)
	for ext, size := range t.sizes {
		rows = append(rows, Row{Extension: ext, Size: size, Share: share(size, t.total)})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Size != rows[j].Size {
			return rows[i].Size > rows[j].Size
		}
		return rows[i].Extension < rows[j].Extension
	})

	cut := len(rows)
	for i, r := range rows {
		if r.Share < threshold {
			cut = i
			break
		}
	}

	var other int64
	for _, r := range rows[cut:] {
		other += r.Size
	}
	rows = append(rows[:cut], Row{Extension: OtherBucket, Size: other, Share: share(other, t.total)})

	return Summary{Total: t.total, Files: t.files, Rows: rows}
}

func share(size, total int64) float64 {
	if total == 0 {
		return 0
	}
	return float64(size) / float64(total)
}
