package mathlayout

import (
	"errors"
	"fmt"
)

// Sentinel errors for the mathlayout package.
var (
	// ErrUnsupportedContent is returned when a cell contains a content
	// node the layout engine does not know how to measure.
	ErrUnsupportedContent = errors.New("mathlayout: unsupported content node")
)

// LayoutError reports that a cell's content could not be measured or laid
// out. It carries the source span of the offending cell and wraps the
// originating error, which propagates unchanged through enclosing elements.
type LayoutError struct {
	Span Span
	Err  error
}

// Error implements the error interface.
func (e *LayoutError) Error() string {
	return fmt.Sprintf("mathlayout: cell layout failed at %s: %v", e.Span, e.Err)
}

// Unwrap returns the originating error.
func (e *LayoutError) Unwrap() error {
	return e.Err
}

// GlyphError reports that the active font has no renderable glyph for a
// delimiter character.
type GlyphError struct {
	Char rune
	Font string
	Span Span
}

// Error implements the error interface.
func (e *GlyphError) Error() string {
	return fmt.Sprintf("mathlayout: font %q has no glyph for %q (%U)", e.Font, e.Char, e.Char)
}

// DelimiterError reports a delimiter token that is not one of the accepted
// literals.
type DelimiterError struct {
	Token string
}

// Error implements the error interface.
func (e *DelimiterError) Error() string {
	return fmt.Sprintf(
		"mathlayout: unknown delimiter %q, accepted tokens are %q, %q, %q, %q, %q and %q",
		e.Token, "(", "[", "{", "|", "||", "none",
	)
}
