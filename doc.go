// Package mathlayout arranges the cells of mathematical vectors, matrices,
// and case distinctions, and wraps the assembled body with stretched,
// axis-centered delimiter glyphs.
//
// The package is a layout core, not a renderer: it consumes already-parsed
// cell content and a font (see the font subpackage) and produces positioned
// frames. Drawing the frames, breaking lines, and placing the result on a
// page are the caller's concern.
//
// # Pipeline
//
// Each element (Vec, Mat, Cases) lays out its cells under a reduced
// denominator-style size, merges explicit alignment points per column,
// assembles the body grid with fixed 0.5 em row and column gaps, and emits
// up to three fragments into the layout context: an optional left delimiter
// glyph stretched to 1.1 × the body height, the body frame re-baselined
// onto the math axis, and an optional right delimiter glyph.
//
// # Example
//
//	source, err := font.NewFontSourceFromFile("NewCM-Math.otf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer source.Close()
//
//	ctx := mathlayout.NewContext(source, 11)
//	vec := mathlayout.NewVec([]mathlayout.Content{
//	    mathlayout.NewText("1"),
//	    mathlayout.NewText("2"),
//	    mathlayout.NewText("3"),
//	})
//	if err := vec.Layout(ctx); err != nil {
//	    log.Fatal(err)
//	}
//	for _, frag := range ctx.TakeFragments() {
//	    draw(frag.Frame())
//	}
//
// Layout is single-threaded and synchronous: every call runs to completion
// or fails before returning, and the first failure aborts the enclosing
// element with no partial output.
package mathlayout
