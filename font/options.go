package font

// SourceOption configures a FontSource during creation.
type SourceOption func(*sourceConfig)

// sourceConfig holds optional configuration for FontSource creation.
type sourceConfig struct {
	parserName string
}

// defaultSourceConfig returns the default source configuration.
func defaultSourceConfig() sourceConfig {
	return sourceConfig{parserName: defaultParserName}
}

// WithParser selects a registered parsing backend by name.
// Unknown names fall back to the default backend.
//
// Example:
//
//	font.RegisterParser("myparser", myParser)
//	source, err := font.NewFontSource(data, font.WithParser("myparser"))
func WithParser(name string) SourceOption {
	return func(c *sourceConfig) {
		c.parserName = name
	}
}
