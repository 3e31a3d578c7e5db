package font

// GlyphID is a glyph index within a font, assigned by the font file.
type GlyphID uint16

// Parser is a pluggable font parsing backend. The default implementation
// uses golang.org/x/image/font/opentype; custom backends can be registered
// with RegisterParser.
type Parser interface {
	// Parse parses font data (TTF or OTF) and returns an Outline.
	Parse(data []byte) (Outline, error)
}

// Outline exposes the per-glyph measurements the layout core needs.
// Implementations must be safe for concurrent use.
type Outline interface {
	// Name returns the font family name, or "" if not available.
	Name() string

	// UnitsPerEm returns the font's units per em.
	UnitsPerEm() int

	// GlyphIndex returns the glyph index for a rune.
	// The second result is false if the font has no glyph for the rune.
	GlyphIndex(r rune) (GlyphID, bool)

	// GlyphAdvance returns the advance width for a glyph at the given size.
	GlyphAdvance(gid GlyphID, size float64) float64

	// GlyphBounds returns the tight bounding box for a glyph at the given
	// size. The second result is false if the glyph has no outline.
	GlyphBounds(gid GlyphID, size float64) (Rect, bool)

	// Metrics returns the font metrics at the given size.
	Metrics(size float64) Metrics
}

// parserRegistry holds registered font parsers.
var parserRegistry = map[string]Parser{
	"ximage": &ximageParser{},
}

// defaultParserName is the backend used when none is configured.
const defaultParserName = "ximage"

// RegisterParser registers a custom font parsing backend under a name,
// replacing any previous registration with the same name.
func RegisterParser(name string, p Parser) {
	parserRegistry[name] = p
}

// getParser returns the parser by name, or the default if not found.
func getParser(name string) Parser {
	if p, ok := parserRegistry[name]; ok {
		return p
	}
	return parserRegistry[defaultParserName]
}
