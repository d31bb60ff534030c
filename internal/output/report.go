package output

import (
	"github.com/google/uuid"

	"github.com/dl/duext/internal/usage"
)

// Report is a finished disk usage by extension report for one root.
type Report struct {
	RunID   uuid.UUID
	Root    string
	Summary usage.Summary
}

// NewReport stamps a summary with a fresh run id.
func NewReport(root string, s usage.Summary) Report {
	return Report{RunID: uuid.New(), Root: root, Summary: s}
}

// Formatter renders a Report into bytes.
// buf is a reusable buffer; implementations append to it and return the result.
type Formatter interface {
	Format(buf []byte, r Report) []byte
}
