package usage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtension(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"report.pdf", ".pdf"},
		{"archive.tar.gz", ".tar"},
		{"reads.fastq.bz2", ".fastq"},
		{"dump.sql.xz", ".sql"},
		{"plain.gz", NoExtension},
		{"Makefile", NoExtension},
		{".bashrc", NoExtension},
		{"..hidden", NoExtension},
		{".config.yaml", ".yaml"},
		{"trailing.", "."},
		{"a.b.c", ".c"},
		{"dir.d/file", NoExtension},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Extension(tt.name, DefaultCompressed))
		})
	}
}

func TestExtension_CustomCompressed(t *testing.T) {
	assert.Equal(t, ".gz", Extension("x.tar.gz", []string{".zst"}))
	assert.Equal(t, ".tar", Extension("x.tar.zst", []string{".zst"}))
}

func TestTally(t *testing.T) {
	tally := NewTally(nil)
	tally.Add("a.txt", 10)
	tally.Add("b.txt", 5)
	tally.Add("c.tar.gz", 100)
	tally.Add("README", 1)

	assert.Equal(t, int64(116), tally.Total())
	assert.Equal(t, int64(4), tally.Files())
	assert.Equal(t, 3, tally.Len())
	assert.Equal(t, int64(15), tally.Size(".txt"))
	assert.Equal(t, int64(100), tally.Size(".tar"))
	assert.Equal(t, int64(1), tally.Size(NoExtension))
}

func TestSummarize_FoldsTail(t *testing.T) {
	tally := NewTally(nil)
	tally.Add("big.bam", 9000)
	tally.Add("mid.vcf", 990)
	tally.Add("tiny.log", 5)
	tally.Add("tinier.txt", 4)
	tally.Add("x.md", 1)

	s := Summarize(tally, DefaultThreshold)

	require.Len(t, s.Rows, 3)
	assert.Equal(t, int64(10000), s.Total)
	assert.Equal(t, int64(5), s.Files)
	assert.Equal(t, ".bam", s.Rows[0].Extension)
	assert.Equal(t, ".vcf", s.Rows[1].Extension)
	assert.Equal(t, OtherBucket, s.Rows[2].Extension)
	assert.Equal(t, int64(10), s.Rows[2].Size)
	assert.InDelta(t, 0.9, s.Rows[0].Share, 1e-9)
	assert.InDelta(t, 0.001, s.Rows[2].Share, 1e-9)
}

func TestSummarize_OtherAlwaysPresent(t *testing.T) {
	tally := NewTally(nil)
	tally.Add("a.txt", 50)
	tally.Add("b.bin", 50)

	s := Summarize(tally, DefaultThreshold)

	require.Len(t, s.Rows, 3)
	// Equal sizes are ordered by extension.
	assert.Equal(t, ".bin", s.Rows[0].Extension)
	assert.Equal(t, ".txt", s.Rows[1].Extension)
	assert.Equal(t, Row{Extension: OtherBucket}, s.Rows[2])
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(NewTally(nil), DefaultThreshold)

	assert.Equal(t, int64(0), s.Total)
	assert.Equal(t, []Row{{Extension: OtherBucket}}, s.Rows)
}
