// Package font provides font loading and metric extraction for mathlayout.
//
// The package separates heavyweight and lightweight objects:
//
//   - FontSource: parses a TTF/OTF file once and is shared application-wide
//   - Face: a cheap per-size view of a FontSource
//   - Parser: pluggable parsing backend (default: golang.org/x/image)
//
// Text measurement goes through HarfBuzz shaping (go-text/typesetting) so
// that advances account for kerning and ligatures, while per-glyph vertical
// extents come from the parsed outline. Math-specific metrics that the sfnt
// backend cannot provide directly (the axis height) use the conventional
// fallbacks documented on Metrics.
//
// Example:
//
//	source, err := font.NewFontSourceFromFile("NewCM-Math.otf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer source.Close()
//
//	face := source.Face(11)
//	run, err := face.Shape("2x")
package font
