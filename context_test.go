package mathlayout

import (
	"errors"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/mathlayout/font"
)

// testContext creates a layout context over the embedded Go font.
func testContext(t *testing.T, opts ...ContextOption) *Context {
	t.Helper()

	source, err := font.NewFontSource(goregular.TTF)
	if err != nil {
		t.Fatalf("failed to load test font: %v", err)
	}
	t.Cleanup(func() {
		if err := source.Close(); err != nil {
			t.Errorf("failed to close font source: %v", err)
		}
	})

	return NewContext(source, 16, opts...)
}

// denomCell lays out one content cell under the reduced style, the way the
// body builders do.
func denomCell(t *testing.T, ctx *Context, c Content) Cell {
	t.Helper()

	restore := ctx.PushStyle(ctx.Style().ForDenominator())
	defer restore()

	cell, err := ctx.layoutCell(c)
	if err != nil {
		t.Fatalf("layoutCell failed: %v", err)
	}
	return cell
}

// bodyFrame extracts the single body FrameFragment from a fragment stream.
func bodyFrame(t *testing.T, frags []Fragment) *Frame {
	t.Helper()

	var body *Frame
	for _, f := range frags {
		if ff, ok := f.(*FrameFragment); ok {
			if body != nil {
				t.Fatal("more than one body fragment in stream")
			}
			body = ff.Frame()
		}
	}
	if body == nil {
		t.Fatal("no body fragment in stream")
	}
	return body
}

func TestPushStyleRestore(t *testing.T) {
	ctx := testContext(t)

	if ctx.Style().Size != SizeDisplay {
		t.Fatalf("initial style = %v, want Display", ctx.Style().Size)
	}

	restore := ctx.PushStyle(Style{Size: SizeScript})
	if ctx.Style().Size != SizeScript {
		t.Errorf("style = %v, want Script", ctx.Style().Size)
	}
	if ctx.Em() != 16*0.7 {
		t.Errorf("em = %v, want %v", ctx.Em(), 16*0.7)
	}

	restore()
	if ctx.Style().Size != SizeDisplay {
		t.Errorf("style after restore = %v, want Display", ctx.Style().Size)
	}
	if ctx.Em() != 16 {
		t.Errorf("em after restore = %v, want 16", ctx.Em())
	}
}

func TestForDenominatorProgression(t *testing.T) {
	tests := []struct {
		from, to MathSize
	}{
		{SizeDisplay, SizeText},
		{SizeText, SizeScript},
		{SizeScript, SizeScriptScript},
		{SizeScriptScript, SizeScriptScript},
	}
	for _, tt := range tests {
		got := Style{Size: tt.from}.ForDenominator()
		if got.Size != tt.to {
			t.Errorf("ForDenominator from %v: size = %v, want %v", tt.from, got.Size, tt.to)
		}
		if !got.Cramped {
			t.Errorf("ForDenominator from %v: not cramped", tt.from)
		}
	}
}

// failingContent triggers the unsupported-content error path.
type failingContent struct {
	span Span
}

func (f failingContent) Span() Span { return f.span }
func (f failingContent) isContent() {}

func TestStyleStackRestoredOnFailure(t *testing.T) {
	ctx := testContext(t)

	vec := NewVec([]Content{
		NewText("1"),
		failingContent{span: Span{Start: 4, End: 5}},
		NewText("3"),
	})

	err := vec.Layout(ctx)
	if err == nil {
		t.Fatal("layout should fail")
	}

	var layoutErr *LayoutError
	if !errors.As(err, &layoutErr) {
		t.Fatalf("error should be a *LayoutError, got %T", err)
	}
	if layoutErr.Span != (Span{Start: 4, End: 5}) {
		t.Errorf("error span = %v, want [4..5)", layoutErr.Span)
	}
	if !errors.Is(err, ErrUnsupportedContent) {
		t.Error("error should wrap ErrUnsupportedContent")
	}

	// The failure must not corrupt subsequent sibling layout.
	if ctx.Style().Size != SizeDisplay {
		t.Errorf("style after failure = %v, want Display", ctx.Style().Size)
	}
	if frags := ctx.TakeFragments(); len(frags) != 0 {
		t.Errorf("fragments after failure = %d, want none", len(frags))
	}

	// A sibling element still lays out cleanly.
	if err := NewVec([]Content{NewText("2")}).Layout(ctx); err != nil {
		t.Fatalf("sibling layout failed: %v", err)
	}
	if frags := ctx.TakeFragments(); len(frags) != 3 {
		t.Errorf("sibling fragments = %d, want 3", len(frags))
	}
}

func TestCollectFrameRestoresStream(t *testing.T) {
	ctx := testContext(t)

	ctx.Push(NewFrameFragment(NewFrame(Size{Width: 1, Height: 1})))

	_, err := ctx.collectFrame(NewVec([]Content{failingContent{}}))
	if err == nil {
		t.Fatal("collectFrame should fail")
	}

	frags := ctx.TakeFragments()
	if len(frags) != 1 {
		t.Fatalf("stream length = %d, want the pre-existing fragment only", len(frags))
	}
}

func TestNewContextNilSourcePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewContext(nil, ...) should panic")
		}
	}()
	NewContext(nil, 16)
}
