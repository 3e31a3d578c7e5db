package font

import (
	"fmt"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// ximageParser implements Parser using golang.org/x/image/font/opentype.
type ximageParser struct{}

// Parse implements Parser.Parse.
func (p *ximageParser) Parse(data []byte) (Outline, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("font: failed to parse font: %w", err)
	}
	return &ximageOutline{font: f}, nil
}

// ximageOutline implements Outline on top of sfnt.Font.
//
// sfnt operations take a scratch Buffer; outlines are queried from a single
// logical layout thread, but a fresh buffer per call keeps the type safe
// for concurrent use as the Outline contract requires.
type ximageOutline struct {
	font *opentype.Font
}

// Name implements Outline.Name.
func (o *ximageOutline) Name() string {
	if name, err := o.font.Name(nil, sfnt.NameIDFamily); err == nil {
		return name
	}
	return ""
}

// UnitsPerEm implements Outline.UnitsPerEm.
func (o *ximageOutline) UnitsPerEm() int {
	return int(o.font.UnitsPerEm())
}

// GlyphIndex implements Outline.GlyphIndex.
func (o *ximageOutline) GlyphIndex(r rune) (GlyphID, bool) {
	idx, err := o.font.GlyphIndex(nil, r)
	if err != nil || idx == 0 {
		return 0, false
	}
	return GlyphID(idx), true
}

// GlyphAdvance implements Outline.GlyphAdvance.
func (o *ximageOutline) GlyphAdvance(gid GlyphID, size float64) float64 {
	var buf sfnt.Buffer
	advance, err := o.font.GlyphAdvance(&buf, sfnt.GlyphIndex(gid), floatToFixed(size), xfont.HintingNone)
	if err != nil {
		return 0
	}
	return fixedToFloat(advance)
}

// GlyphBounds implements Outline.GlyphBounds.
func (o *ximageOutline) GlyphBounds(gid GlyphID, size float64) (Rect, bool) {
	var buf sfnt.Buffer
	bounds, _, err := o.font.GlyphBounds(&buf, sfnt.GlyphIndex(gid), floatToFixed(size), xfont.HintingNone)
	if err != nil {
		return Rect{}, false
	}
	return Rect{
		MinX: fixedToFloat(bounds.Min.X),
		MinY: fixedToFloat(bounds.Min.Y),
		MaxX: fixedToFloat(bounds.Max.X),
		MaxY: fixedToFloat(bounds.Max.Y),
	}, true
}

// Metrics implements Outline.Metrics.
func (o *ximageOutline) Metrics(size float64) Metrics {
	var buf sfnt.Buffer
	m, err := o.font.Metrics(&buf, floatToFixed(size), xfont.HintingNone)
	if err != nil {
		return Metrics{}
	}

	// sfnt reports Descent as a positive distance below the baseline in
	// some versions and negative in others; normalize to positive.
	descent := fixedToFloat(m.Descent)
	if descent < 0 {
		descent = -descent
	}
	xHeight := fixedToFloat(m.XHeight)
	if xHeight < 0 {
		xHeight = -xHeight
	}
	capHeight := fixedToFloat(m.CapHeight)
	if capHeight < 0 {
		capHeight = -capHeight
	}

	return Metrics{
		Ascent:    fixedToFloat(m.Ascent),
		Descent:   descent,
		XHeight:   xHeight,
		CapHeight: capHeight,
		// No MATH table access through sfnt; half the x-height is the
		// conventional axis fallback.
		AxisHeight: xHeight / 2,
	}
}

// floatToFixed converts a float64 size to fixed.Int26_6 (6 fractional bits).
func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
