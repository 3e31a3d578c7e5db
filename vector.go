package mathlayout

// VecElem is a column vector. Content in the vector's cells can be aligned
// with explicit alignment markers; corresponding markers line up across the
// column.
type VecElem struct {
	delim    Delimiter
	children []Content
	span     Span
}

// NewVec creates a vector from its cells. The default delimiter is
// parentheses; use WithDelimiter or WithoutDelimiter to override.
// Nil cells are replaced with empty content.
func NewVec(children []Content, opts ...Option) *VecElem {
	cfg := applyOptions(DelimParen, opts)
	return &VecElem{
		delim:    cfg.delim,
		children: sanitize(children),
		span:     cfg.span,
	}
}

// Delim returns the configured delimiter.
func (e *VecElem) Delim() Delimiter { return e.delim }

// Children returns the vector's cells. The returned slice is owned by the
// element and must not be modified.
func (e *VecElem) Children() []Content { return e.children }

// Span implements Content.Span.
func (e *VecElem) Span() Span { return e.span }

func (e *VecElem) isContent() {}

// Layout implements Element.Layout: a centered single-column body wrapped
// in the configured delimiter pair. An empty vector yields a zero-size
// body.
func (e *VecElem) Layout(ctx *Context) error {
	body, err := layoutVecBody(ctx, e.children, AlignCenter)
	if err != nil {
		return err
	}
	return layoutDelimiters(ctx, body, e.delim.Open(), e.delim.Close(), e.span)
}

// sanitize replaces nil content cells with empty content and returns a
// copy, so elements never alias caller-owned slices.
func sanitize(cells []Content) []Content {
	out := make([]Content, len(cells))
	for i, c := range cells {
		if c == nil {
			out[i] = NewEmpty()
		} else {
			out[i] = c
		}
	}
	return out
}
