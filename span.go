package mathlayout

import "fmt"

// Span is a byte range into the original source, attached to content nodes
// and carried on layout errors so failures surface as diagnostics at the
// offending cell.
type Span struct {
	Start, End int
}

// IsZero reports whether the span is the zero (detached) span.
func (s Span) IsZero() bool {
	return s.Start == 0 && s.End == 0
}

// String returns the span in half-open interval notation.
func (s Span) String() string {
	return fmt.Sprintf("[%d..%d)", s.Start, s.End)
}
