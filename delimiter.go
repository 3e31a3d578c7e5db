package mathlayout

// Delimiter selects the glyph pair wrapped around a vector, matrix, or
// cases body. The zero value DelimNone suppresses the glyphs entirely.
type Delimiter int

const (
	// DelimNone suppresses both delimiter glyphs.
	DelimNone Delimiter = iota
	// DelimParen delimits with parentheses.
	DelimParen
	// DelimBracket delimits with square brackets.
	DelimBracket
	// DelimBrace delimits with curly braces.
	DelimBrace
	// DelimBar delimits with vertical bars.
	DelimBar
	// DelimDoubleBar delimits with double vertical bars.
	DelimDoubleBar
)

// delimiterTokens maps accepted literal tokens to their variants. The
// lookup is validated once at configuration time, never during layout.
var delimiterTokens = map[string]Delimiter{
	"none": DelimNone,
	"(":    DelimParen,
	"[":    DelimBracket,
	"{":    DelimBrace,
	"|":    DelimBar,
	"||":   DelimDoubleBar,
}

// ParseDelimiter resolves a literal delimiter token. It accepts exactly
// "(", "[", "{", "|", "||" and "none"; any other token yields a
// DelimiterError enumerating the accepted literals.
func ParseDelimiter(token string) (Delimiter, error) {
	if d, ok := delimiterTokens[token]; ok {
		return d, nil
	}
	return DelimNone, &DelimiterError{Token: token}
}

// String returns the delimiter's literal token.
func (d Delimiter) String() string {
	switch d {
	case DelimParen:
		return "("
	case DelimBracket:
		return "["
	case DelimBrace:
		return "{"
	case DelimBar:
		return "|"
	case DelimDoubleBar:
		return "||"
	default:
		return "none"
	}
}

// Open returns the delimiter's opening character, or 0 for DelimNone.
func (d Delimiter) Open() rune {
	switch d {
	case DelimParen:
		return '('
	case DelimBracket:
		return '['
	case DelimBrace:
		return '{'
	case DelimBar:
		return '|'
	case DelimDoubleBar:
		return '‖'
	default:
		return 0
	}
}

// Close returns the delimiter's closing character, or 0 for DelimNone.
// Bar and DoubleBar are symmetric: the same glyph closes as opens.
func (d Delimiter) Close() rune {
	switch d {
	case DelimParen:
		return ')'
	case DelimBracket:
		return ']'
	case DelimBrace:
		return '}'
	case DelimBar:
		return '|'
	case DelimDoubleBar:
		return '‖'
	default:
		return 0
	}
}
