package mathlayout

// Content is an already-parsed node of cell content. Content values are
// immutable once constructed and owned by the element that carries them.
// A cell may nest further elements, which recurse through the ordinary
// layout path.
type Content interface {
	// Span returns the node's source span.
	Span() Span

	// isContent restricts implementations to this package.
	isContent()
}

// TextContent is a run of math text, measured by shaping.
type TextContent struct {
	text string
	span Span
}

// NewText creates a text content node with a detached (zero) span.
func NewText(text string) *TextContent {
	return &TextContent{text: text}
}

// NewTextSpanned creates a text content node tied to a source span.
func NewTextSpanned(text string, span Span) *TextContent {
	return &TextContent{text: text, span: span}
}

// Text returns the node's text.
func (t *TextContent) Text() string { return t.text }

// Span implements Content.Span.
func (t *TextContent) Span() Span { return t.span }

func (t *TextContent) isContent() {}

// AlignPointContent is an explicit alignment marker (the `&` symbol inside
// a cell). It splits the cell at its position; the offsets of corresponding
// markers are merged across a column so the split parts line up.
type AlignPointContent struct {
	span Span
}

// NewAlignPoint creates an alignment marker.
func NewAlignPoint() *AlignPointContent {
	return &AlignPointContent{}
}

// NewAlignPointSpanned creates an alignment marker tied to a source span.
func NewAlignPointSpanned(span Span) *AlignPointContent {
	return &AlignPointContent{span: span}
}

// Span implements Content.Span.
func (a *AlignPointContent) Span() Span { return a.span }

func (a *AlignPointContent) isContent() {}

// SequenceContent is an ordered sequence of child nodes laid out left to
// right.
type SequenceContent struct {
	children []Content
	span     Span
}

// NewSequence creates a sequence of child nodes.
func NewSequence(children ...Content) *SequenceContent {
	return &SequenceContent{children: children}
}

// NewSequenceSpanned creates a sequence tied to a source span.
func NewSequenceSpanned(span Span, children ...Content) *SequenceContent {
	return &SequenceContent{children: children, span: span}
}

// Children returns the sequence's child nodes. The returned slice is owned
// by the sequence and must not be modified.
func (s *SequenceContent) Children() []Content { return s.children }

// Span implements Content.Span.
func (s *SequenceContent) Span() Span { return s.span }

func (s *SequenceContent) isContent() {}

// EmptyContent is a zero-size placeholder. Matrix construction pads short
// rows with it.
type EmptyContent struct{}

// NewEmpty creates an empty content node.
func NewEmpty() *EmptyContent {
	return &EmptyContent{}
}

// Span implements Content.Span.
func (e *EmptyContent) Span() Span { return Span{} }

func (e *EmptyContent) isContent() {}
