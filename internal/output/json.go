package output

import (
	"encoding/json"

	"github.com/dl/duext/internal/usage"
)

// JSONFormatter formats a report as a single JSON object per line.
type JSONFormatter struct{}

// NewJSONFormatter creates a JSONFormatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

type jsonReport struct {
	RunID      string      `json:"run_id"`
	Root       string      `json:"root"`
	TotalBytes int64       `json:"total_bytes"`
	Files      int64       `json:"files"`
	Extensions []usage.Row `json:"extensions"`
}

func (f *JSONFormatter) Format(buf []byte, r Report) []byte {
	jr := jsonReport{
		RunID:      r.RunID.String(),
		Root:       r.Root,
		TotalBytes: r.Summary.Total,
		Files:      r.Summary.Files,
		Extensions: r.Summary.Rows,
	}
	data, _ := json.Marshal(jr)
	buf = append(buf, data...)
	buf = append(buf, '\n')
	return buf
}

// Ensure JSONFormatter implements Formatter.
var _ Formatter = (*JSONFormatter)(nil)
