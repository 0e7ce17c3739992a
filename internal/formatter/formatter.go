package formatter

import (
	"fmt"
	"strings"

	"github.com/mcncl/jsonshape/internal/models"
)

// ReportHeader opens every non-empty diff report.
const ReportHeader = "The inputs do not match, the differences are as follows:"

// Formatter renders comparison results as human-readable diff reports
type Formatter struct{}

// NewFormatter creates a new Formatter instance
func NewFormatter() *Formatter {
	return &Formatter{}
}

// Format renders the diff report for a comparison result. A matched result
// (or one with no differing signatures) renders as the empty string. Sections
// with no entries are omitted entirely.
func (f *Formatter) Format(result models.Result) string {
	if len(result.OnlyInActual) == 0 && len(result.OnlyInExpected) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(ReportHeader)
	b.WriteString("\n")

	f.writeSection(&b, "Actual", result.OnlyInActual)
	f.writeSection(&b, "Expected", result.OnlyInExpected)

	return b.String()
}

// writeSection writes one labeled block of differing signatures
func (f *Formatter) writeSection(b *strings.Builder, label string, sigs []models.Signature) {
	if len(sigs) == 0 {
		return
	}
	b.WriteString("\n")
	b.WriteString(label)
	b.WriteString(":\n")
	for _, sig := range sigs {
		fmt.Fprintf(b, "Path: %s, Type:%s\n", sig.Path, sig.Kind)
	}
}
