package mathlayout

// Option configures an element during construction.
type Option func(*elemConfig)

// elemConfig holds optional configuration captured at element construction.
type elemConfig struct {
	delim Delimiter
	span  Span
}

// WithDelimiter selects the delimiter variant wrapped around the element's
// body.
//
// Example:
//
//	d, err := mathlayout.ParseDelimiter("[")
//	if err != nil {
//	    return err
//	}
//	mat := mathlayout.NewMat(args, mathlayout.WithDelimiter(d))
func WithDelimiter(d Delimiter) Option {
	return func(c *elemConfig) {
		c.delim = d
	}
}

// WithoutDelimiter suppresses both delimiter glyphs; the body is emitted
// alone, unchanged in internal metrics.
func WithoutDelimiter() Option {
	return func(c *elemConfig) {
		c.delim = DelimNone
	}
}

// WithSpan ties the element to a source span, used to tag layout failures.
func WithSpan(span Span) Option {
	return func(c *elemConfig) {
		c.span = span
	}
}

// applyOptions resolves element options over the element's default
// delimiter.
func applyOptions(defaultDelim Delimiter, opts []Option) elemConfig {
	c := elemConfig{delim: defaultDelim}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
