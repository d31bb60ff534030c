package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dl/duext/internal/usage"
	"github.com/dl/duext/internal/walker"
)

func sampleReport() Report {
	tally := usage.NewTally(nil)
	tally.Add("a.bam", 3*gib)
	tally.Add("b.txt", gib)
	return NewReport("/data", usage.Summarize(tally, usage.DefaultThreshold))
}

func TestWriter_WriteFile(t *testing.T) {
	var out bytes.Buffer
	w := NewStreamWriter(&out)

	require.NoError(t, w.WriteFile(&walker.File{Dir: []byte("/data"), Name: "a.txt"}))
	require.NoError(t, w.WriteFile(&walker.File{Dir: []byte("/data/sub"), Name: "b.bin"}))
	require.NoError(t, w.WriteFile(&walker.File{Dir: []byte("/"), Name: "top"}))
	assert.Empty(t, out.String(), "nothing is written before Flush")

	require.NoError(t, w.Flush())
	assert.Equal(t, "/data/a.txt\n/data/sub/b.bin\n/top\n", out.String())
}

func TestWriter_FlushesLargeOutput(t *testing.T) {
	var out bytes.Buffer
	w := NewStreamWriter(&out)
	name := strings.Repeat("n", 1000)

	for i := 0; i < 100; i++ {
		require.NoError(t, w.WriteFile(&walker.File{Dir: []byte("/d"), Name: name}))
	}
	assert.NotZero(t, out.Len(), "expected an automatic flush past the threshold")

	require.NoError(t, w.Flush())
	assert.Equal(t, 100*(len("/d/")+1000+1), out.Len())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, assert.AnError }

func TestWriter_FlushError(t *testing.T) {
	w := NewStreamWriter(failingWriter{})
	require.NoError(t, w.WriteFile(&walker.File{Dir: []byte("/d"), Name: "f"}))
	assert.ErrorIs(t, w.Flush(), assert.AnError)
}

func TestTextFormatter(t *testing.T) {
	f := NewTextFormatter(NoStyles())

	got := string(f.Format(nil, sampleReport()))
	want := "Total\t4.00 GiB\t100.00%\n" +
		".bam\t3.00 GiB\t75.00%\n" +
		".txt\t1.00 GiB\t25.00%\n" +
		"other\t0.00 GiB\t0.00%\n"
	assert.Equal(t, want, got)
}

func TestTextFormatter_Colored(t *testing.T) {
	f := NewTextFormatter(NewStyles(ForcedRenderer()))

	got := string(f.Format(nil, sampleReport()))
	assert.Contains(t, got, "\x1b[", "expected ANSI escapes")
	assert.Contains(t, got, ".bam")
	assert.Equal(t, 4, strings.Count(got, "\n"))
}

func TestJSONFormatter(t *testing.T) {
	f := NewJSONFormatter()
	r := sampleReport()

	got := f.Format(nil, r)
	require.True(t, bytes.HasSuffix(got, []byte("\n")))

	var decoded struct {
		RunID      string      `json:"run_id"`
		Root       string      `json:"root"`
		TotalBytes int64       `json:"total_bytes"`
		Files      int64       `json:"files"`
		Extensions []usage.Row `json:"extensions"`
	}
	require.NoError(t, json.Unmarshal(got, &decoded))

	_, err := uuid.Parse(decoded.RunID)
	assert.NoError(t, err)
	assert.Equal(t, r.RunID.String(), decoded.RunID)
	assert.Equal(t, "/data", decoded.Root)
	assert.Equal(t, int64(4*gib), decoded.TotalBytes)
	assert.Equal(t, int64(2), decoded.Files)
	require.Len(t, decoded.Extensions, 3)
	assert.Equal(t, ".bam", decoded.Extensions[0].Extension)
	assert.InDelta(t, 0.75, decoded.Extensions[0].Share, 1e-9)
}

func TestNewReport_UniqueRunIDs(t *testing.T) {
	a := NewReport("/x", usage.Summary{})
	b := NewReport("/x", usage.Summary{})
	assert.NotEqual(t, a.RunID, b.RunID)
}
