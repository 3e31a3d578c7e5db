package font

import (
	"fmt"
	"os"
	"sync"

	gtfont "github.com/go-text/typesetting/font"
)

// FontSource represents a loaded font file.
// One FontSource can create multiple Face instances at different sizes.
// FontSource is heavyweight and should be shared across the application.
//
// FontSource is safe for concurrent use.
// FontSource must not be copied after creation (enforced by copyCheck).
type FontSource struct {
	// addr is used for copy protection. It must point to the FontSource
	// itself.
	addr *FontSource

	data    []byte
	outline Outline
	name    string

	// mu protects the lazily parsed shaping font and the closed flag.
	mu     sync.RWMutex
	gtFont *gtfont.Font
	closed bool

	config sourceConfig
}

// NewFontSource creates a FontSource from font data (TTF or OTF).
// The data slice is copied internally and can be reused after this call.
func NewFontSource(data []byte, opts ...SourceOption) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	config := defaultSourceConfig()
	for _, opt := range opts {
		opt(&config)
	}

	parser := getParser(config.parserName)
	outline, err := parser.Parse(data)
	if err != nil {
		return nil, err
	}

	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	s := &FontSource{
		data:    dataCopy,
		outline: outline,
		name:    outline.Name(),
		config:  config,
	}
	s.addr = s
	return s, nil
}

// NewFontSourceFromFile loads a FontSource from a font file path.
func NewFontSourceFromFile(path string, opts ...SourceOption) (*FontSource, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("font: failed to read font file: %w", err)
	}
	return NewFontSource(data, opts...)
}

// Name returns the font family name, or "" if the font does not declare one.
func (s *FontSource) Name() string {
	return s.name
}

// Face creates a Face at the specified size (in points). Multiple faces can
// be created from the same FontSource; a Face is a lightweight view.
// Panics if s is nil (e.g. when a NewFontSource error was ignored).
func (s *FontSource) Face(size float64) Face {
	if s == nil {
		panic("font: FontSource is nil — did you check the error from NewFontSource?")
	}
	s.copyCheck()
	return &sourceFace{source: s, size: size}
}

// Close releases the shaping caches held by the source. Faces created from
// the source keep working for metric queries, but Shape returns
// ErrSourceClosed afterwards. Close is idempotent.
func (s *FontSource) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gtFont = nil
	s.closed = true
	return nil
}

// copyCheck panics if the FontSource was copied by value after creation.
func (s *FontSource) copyCheck() {
	if s.addr != s {
		panic("font: illegal use of non-zero FontSource copied by value")
	}
}
