package mathlayout

// CasesElem is a case distinction: a left-aligned column of branches with a
// single opening brace. Content across branches can be aligned with
// explicit alignment markers.
type CasesElem struct {
	delim    Delimiter
	branches []Content
	span     Span
}

// NewCases creates a case distinction from its branches. The default
// delimiter is a brace. Nil branches are replaced with empty content.
func NewCases(branches []Content, opts ...Option) *CasesElem {
	cfg := applyOptions(DelimBrace, opts)
	return &CasesElem{
		delim:    cfg.delim,
		branches: sanitize(branches),
		span:     cfg.span,
	}
}

// Delim returns the configured delimiter.
func (e *CasesElem) Delim() Delimiter { return e.delim }

// Branches returns the case branches. The returned slice is owned by the
// element and must not be modified.
func (e *CasesElem) Branches() []Content { return e.branches }

// Span implements Content.Span.
func (e *CasesElem) Span() Span { return e.span }

func (e *CasesElem) isContent() {}

// Layout implements Element.Layout: a left-aligned single-column body with
// an opening glyph only. Cases always use the brace opening character, no
// matter which delimiter variant is configured; only DelimNone suppresses
// the glyph.
func (e *CasesElem) Layout(ctx *Context) error {
	body, err := layoutVecBody(ctx, e.branches, AlignLeft)
	if err != nil {
		return err
	}
	var open rune
	if e.delim != DelimNone {
		open = DelimBrace.Open()
	}
	return layoutDelimiters(ctx, body, open, 0, e.span)
}
