package font

// Face represents a font face at a specific size.
// This is a lightweight object created from a FontSource.
// Face is safe for concurrent use.
type Face interface {
	// Metrics returns the font metrics at this face's size.
	Metrics() Metrics

	// Size returns the size of this face in points.
	Size() float64

	// Source returns the FontSource this face was created from.
	Source() *FontSource

	// HasGlyph reports whether the font has a glyph for the given rune.
	HasGlyph(r rune) bool

	// GlyphIndex returns the glyph index for a rune.
	// The second result is false if the font has no glyph for the rune.
	GlyphIndex(r rune) (GlyphID, bool)

	// GlyphBounds returns the tight ink bounds of the glyph for a rune at
	// this face's size. The second result is false if the font has no
	// glyph (or no outline) for the rune.
	GlyphBounds(r rune) (Rect, bool)

	// GlyphAdvance returns the advance width of the glyph for a rune at
	// this face's size, or 0 if the font has no glyph for the rune.
	GlyphAdvance(r rune) float64

	// Advance returns the total advance width of the text, summing plain
	// per-glyph advances without shaping. Use Shape for measured runs.
	Advance(text string) float64

	// Shape runs HarfBuzz shaping over the text and returns the measured
	// run: positioned glyphs, total advance, and tight vertical extents.
	Shape(text string) (ShapedRun, error)

	// private prevents external implementation.
	private()
}

// sourceFace is the internal implementation of Face.
type sourceFace struct {
	source *FontSource
	size   float64
}

// Metrics implements Face.Metrics.
func (f *sourceFace) Metrics() Metrics {
	return f.source.outline.Metrics(f.size)
}

// Size implements Face.Size.
func (f *sourceFace) Size() float64 {
	return f.size
}

// Source implements Face.Source.
func (f *sourceFace) Source() *FontSource {
	return f.source
}

// HasGlyph implements Face.HasGlyph.
func (f *sourceFace) HasGlyph(r rune) bool {
	_, ok := f.source.outline.GlyphIndex(r)
	return ok
}

// GlyphIndex implements Face.GlyphIndex.
func (f *sourceFace) GlyphIndex(r rune) (GlyphID, bool) {
	return f.source.outline.GlyphIndex(r)
}

// GlyphBounds implements Face.GlyphBounds.
func (f *sourceFace) GlyphBounds(r rune) (Rect, bool) {
	gid, ok := f.source.outline.GlyphIndex(r)
	if !ok {
		return Rect{}, false
	}
	return f.source.outline.GlyphBounds(gid, f.size)
}

// GlyphAdvance implements Face.GlyphAdvance.
func (f *sourceFace) GlyphAdvance(r rune) float64 {
	gid, ok := f.source.outline.GlyphIndex(r)
	if !ok {
		return 0
	}
	return f.source.outline.GlyphAdvance(gid, f.size)
}

// Advance implements Face.Advance.
func (f *sourceFace) Advance(text string) float64 {
	total := 0.0
	for _, r := range text {
		total += f.GlyphAdvance(r)
	}
	return total
}

// Shape implements Face.Shape.
func (f *sourceFace) Shape(text string) (ShapedRun, error) {
	return f.source.shape(text, f.size)
}

// private implements Face.private.
func (f *sourceFace) private() {}
