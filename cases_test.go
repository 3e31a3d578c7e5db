package mathlayout

import "testing"

func TestCasesLeftGlyphOnly(t *testing.T) {
	ctx := testContext(t)

	cases := NewCases([]Content{
		NewText("1"), NewText("2"), NewText("3"), NewText("4"),
	})

	if err := cases.Layout(ctx); err != nil {
		t.Fatalf("layout failed: %v", err)
	}
	frags := ctx.TakeFragments()

	if len(frags) != 2 {
		t.Fatalf("fragments = %d, want left glyph + body only", len(frags))
	}
	glyph, ok := frags[0].(*GlyphFragment)
	if !ok {
		t.Fatalf("first fragment = %T, want *GlyphFragment", frags[0])
	}
	if glyph.Char != '{' {
		t.Errorf("left glyph = %q, want '{'", glyph.Char)
	}
	if _, ok := frags[1].(*FrameFragment); !ok {
		t.Errorf("second fragment = %T, want the body", frags[1])
	}
}

func TestCasesIgnoresConfiguredVariant(t *testing.T) {
	// Selecting a bracket still renders the brace opening character; the
	// one-sided wrap does not follow the configured variant.
	ctx := testContext(t)

	cases := NewCases(
		[]Content{NewText("1"), NewText("2"), NewText("3"), NewText("4")},
		WithDelimiter(DelimBracket),
	)

	if err := cases.Layout(ctx); err != nil {
		t.Fatalf("layout failed: %v", err)
	}
	frags := ctx.TakeFragments()

	if len(frags) != 2 {
		t.Fatalf("fragments = %d, want left glyph + body only", len(frags))
	}
	glyph := frags[0].(*GlyphFragment)
	if glyph.Char != '{' {
		t.Errorf("left glyph = %q, want '{' despite bracket selection", glyph.Char)
	}
}

func TestCasesWithoutDelimiter(t *testing.T) {
	ctx := testContext(t)

	cases := NewCases([]Content{NewText("1"), NewText("2")}, WithoutDelimiter())

	if err := cases.Layout(ctx); err != nil {
		t.Fatalf("layout failed: %v", err)
	}
	frags := ctx.TakeFragments()
	if len(frags) != 1 {
		t.Fatalf("fragments = %d, want body alone", len(frags))
	}
}

func TestCasesBranchesLeftAligned(t *testing.T) {
	ctx := testContext(t)

	cases := NewCases([]Content{NewText("1"), NewText("100")})

	if err := cases.Layout(ctx); err != nil {
		t.Fatalf("layout failed: %v", err)
	}
	body := bodyFrame(t, ctx.TakeFragments())

	for i, row := range body.Items() {
		inner := row.Frame.Items()[0]
		if inner.Pos.X != 0 {
			t.Errorf("branch %d x = %v, want flush left 0", i, inner.Pos.X)
		}
	}
}

func TestCasesRowGap(t *testing.T) {
	ctx := testContext(t)

	branches := []Content{NewText("1"), NewText("2"), NewText("3")}
	cases := NewCases(branches, WithoutDelimiter())

	if err := cases.Layout(ctx); err != nil {
		t.Fatalf("layout failed: %v", err)
	}
	body := bodyFrame(t, ctx.TakeFragments())

	gap := 0.5 * ctx.Em()
	want := 2 * gap
	for _, b := range branches {
		want += denomCell(t, ctx, b).Height()
	}
	if !approxEqual(body.Height(), want) {
		t.Errorf("body height = %v, want %v", body.Height(), want)
	}
}
