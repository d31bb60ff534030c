package output

import (
	"strconv"

	"github.com/dl/duext/internal/usage"
)

const gib = 1 << 30

// TextFormatter formats a report as tab-separated lines:
//
//	Total	12.34 GiB	100.00%
//	.bam	10.00 GiB	81.04%
//	other	0.01 GiB	0.08%
type TextFormatter struct {
	styles Styles
}

// NewTextFormatter creates a TextFormatter.
func NewTextFormatter(styles Styles) *TextFormatter {
	return &TextFormatter{styles: styles}
}

func (f *TextFormatter) Format(buf []byte, r Report) []byte {
	s := f.styles
	buf = append(buf, s.render(s.Header, "Total")...)
	buf = append(buf, '\t')
	buf = append(buf, s.render(s.Size, formatGiB(r.Summary.Total))...)
	buf = append(buf, '\t')
	buf = append(buf, s.render(s.Share, "100.00%")...)
	buf = append(buf, '\n')

	for _, row := range r.Summary.Rows {
		name := s.render(s.Extension, row.Extension)
		if row.Extension == usage.OtherBucket {
			name = s.render(s.Other, row.Extension)
		}
		buf = append(buf, name...)
		buf = append(buf, '\t')
		buf = append(buf, s.render(s.Size, formatGiB(row.Size))...)
		buf = append(buf, '\t')
		buf = append(buf, s.render(s.Share, formatPercent(row.Share))...)
		buf = append(buf, '\n')
	}
	return buf
}

func formatGiB(size int64) string {
	return strconv.FormatFloat(float64(size)/gib, 'f', 2, 64) + " GiB"
}

func formatPercent(share float64) string {
	return strconv.FormatFloat(share*100, 'f', 2, 64) + "%"
}

var _ Formatter = (*TextFormatter)(nil)
