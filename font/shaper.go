package font

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/go-text/typesetting/di"
	gtfont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/text/unicode/bidi"
)

// ShapedGlyph is one positioned glyph produced by shaping.
type ShapedGlyph struct {
	// GID is the glyph index in the font.
	GID GlyphID

	// Cluster is the source character index in the original text.
	Cluster int

	// X is the horizontal position relative to the run origin.
	X float64

	// Y is the vertical position relative to the baseline.
	Y float64

	// XAdvance is the horizontal advance to the next glyph.
	XAdvance float64
}

// ShapedRun is the measured result of shaping one run of text.
type ShapedRun struct {
	// Glyphs are the positioned glyphs of the run, in visual order.
	Glyphs []ShapedGlyph

	// Advance is the total horizontal advance of the run.
	Advance float64

	// Ascent is the tight ink extent above the baseline (non-negative).
	Ascent float64

	// Descent is the tight ink extent below the baseline (non-negative).
	Descent float64
}

// hbShapers pools HarfbuzzShaper instances. A HarfbuzzShaper holds internal
// buffers and is not safe for concurrent use, but reuse across sequential
// calls avoids re-allocation.
var hbShapers = sync.Pool{
	New: func() any {
		return &shaping.HarfbuzzShaper{}
	},
}

// shaperFont returns the lazily parsed go-text font for this source.
// gtfont.Font is read-only and safe for concurrent use; the short-lived
// gtfont.Face wrappers are created per shape call.
func (s *FontSource) shaperFont() (*gtfont.Font, error) {
	s.mu.RLock()
	if s.closed {
		s.mu.RUnlock()
		return nil, ErrSourceClosed
	}
	if s.gtFont != nil {
		f := s.gtFont
		s.mu.RUnlock()
		return f, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, ErrSourceClosed
	}
	if s.gtFont != nil {
		return s.gtFont, nil
	}
	face, err := gtfont.ParseTTF(bytes.NewReader(s.data))
	if err != nil {
		return nil, fmt.Errorf("font: failed to parse font for shaping: %w", err)
	}
	s.gtFont = face.Font
	return s.gtFont, nil
}

// shape measures one run of text at the given size.
func (s *FontSource) shape(text string, size float64) (ShapedRun, error) {
	if text == "" {
		return ShapedRun{}, nil
	}

	f, err := s.shaperFont()
	if err != nil {
		return ShapedRun{}, err
	}

	// gtfont.Face is not safe for concurrent use; each call gets its own.
	// gtfont.NewFace is cheap — it wraps the thread-safe *Font.
	face := gtfont.NewFace(f)

	runes := []rune(text)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: baseDirection(text),
		Face:      face,
		Size:      floatToFixed(size),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	hb := hbShapers.Get().(*shaping.HarfbuzzShaper)
	output := hb.Shape(input)
	hbShapers.Put(hb)

	run := ShapedRun{Glyphs: make([]ShapedGlyph, 0, len(output.Glyphs))}
	var x, y float64
	for _, g := range output.Glyphs {
		gid := GlyphID(uint16(g.GlyphID)) //nolint:gosec // glyph ids fit uint16 in sfnt fonts
		sg := ShapedGlyph{
			GID:      gid,
			Cluster:  g.TextIndex(),
			X:        x + fixedToFloat(g.XOffset),
			Y:        y + fixedToFloat(g.YOffset),
			XAdvance: fixedToFloat(g.XAdvance),
		}
		run.Glyphs = append(run.Glyphs, sg)

		// Vertical extents come from the outline, shifted by the glyph's
		// shaped vertical offset.
		if b, ok := s.outline.GlyphBounds(gid, size); ok {
			if a := b.Ascent() - sg.Y; a > run.Ascent {
				run.Ascent = a
			}
			if d := b.Descent() + sg.Y; d > run.Descent {
				run.Descent = d
			}
		}

		x += fixedToFloat(g.XAdvance)
		y += fixedToFloat(g.YAdvance)
	}
	run.Advance = x
	return run, nil
}

// baseDirection resolves the paragraph base direction of the text with the
// Unicode bidi algorithm. Math cells are overwhelmingly LTR but may carry
// RTL letters.
func baseDirection(text string) di.Direction {
	p := bidi.Paragraph{}
	if _, err := p.SetString(text, bidi.DefaultDirection(bidi.Neutral)); err != nil {
		return di.DirectionLTR
	}
	ordering, err := p.Order()
	if err != nil || ordering.NumRuns() == 0 {
		return di.DirectionLTR
	}
	firstRun := ordering.Run(0)
	if firstRun.Direction() == bidi.RightToLeft {
		return di.DirectionRTL
	}
	return di.DirectionLTR
}

// detectScript inspects the runes and returns the script of the first
// non-space character. Cells with mixed scripts are shaped with the leading
// script, which is adequate for the short runs math cells contain.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
