package font

import (
	"testing"

	"github.com/go-text/typesetting/di"
)

func TestShapeBasic(t *testing.T) {
	source := loadTestSource(t)
	defer source.Close()

	run, err := source.Face(16).Shape("123")
	if err != nil {
		t.Fatalf("shape failed: %v", err)
	}

	if len(run.Glyphs) != 3 {
		t.Fatalf("glyphs = %d, want 3", len(run.Glyphs))
	}
	if run.Advance <= 0 {
		t.Errorf("advance = %v, want positive", run.Advance)
	}
	if run.Ascent <= 0 {
		t.Errorf("ascent = %v, want positive", run.Ascent)
	}
}

func TestShapeEmpty(t *testing.T) {
	source := loadTestSource(t)
	defer source.Close()

	run, err := source.Face(16).Shape("")
	if err != nil {
		t.Fatalf("shape failed: %v", err)
	}
	if len(run.Glyphs) != 0 || run.Advance != 0 {
		t.Errorf("empty run = %+v, want zero", run)
	}
}

func TestShapeGlyphPositions(t *testing.T) {
	source := loadTestSource(t)
	defer source.Close()

	run, err := source.Face(16).Shape("ab")
	if err != nil {
		t.Fatalf("shape failed: %v", err)
	}
	if len(run.Glyphs) != 2 {
		t.Fatalf("glyphs = %d, want 2", len(run.Glyphs))
	}

	first, second := run.Glyphs[0], run.Glyphs[1]
	if first.X != 0 {
		t.Errorf("first glyph x = %v, want 0", first.X)
	}
	if second.X != first.XAdvance {
		t.Errorf("second glyph x = %v, want first advance %v", second.X, first.XAdvance)
	}
	if first.Cluster != 0 || second.Cluster != 1 {
		t.Errorf("clusters = %d/%d, want 0/1", first.Cluster, second.Cluster)
	}
}

func TestShapeDescender(t *testing.T) {
	source := loadTestSource(t)
	defer source.Close()

	face := source.Face(16)

	noDesc, err := face.Shape("x")
	if err != nil {
		t.Fatalf("shape failed: %v", err)
	}
	withDesc, err := face.Shape("y")
	if err != nil {
		t.Fatalf("shape failed: %v", err)
	}
	if withDesc.Descent <= noDesc.Descent {
		t.Errorf("'y' descent = %v, want below 'x' descent %v", withDesc.Descent, noDesc.Descent)
	}
}

func TestShapeScalesWithSize(t *testing.T) {
	source := loadTestSource(t)
	defer source.Close()

	small, err := source.Face(10).Shape("abc")
	if err != nil {
		t.Fatalf("shape failed: %v", err)
	}
	large, err := source.Face(20).Shape("abc")
	if err != nil {
		t.Fatalf("shape failed: %v", err)
	}
	if large.Advance <= small.Advance {
		t.Errorf("advance at 20pt = %v, want above 10pt %v", large.Advance, small.Advance)
	}
}

func TestShapeConcurrent(t *testing.T) {
	source := loadTestSource(t)
	defer source.Close()

	face := source.Face(16)
	done := make(chan error, 8)
	for i := 0; i < 8; i++ {
		go func() {
			for j := 0; j < 50; j++ {
				if _, err := face.Shape("hello"); err != nil {
					done <- err
					return
				}
			}
			done <- nil
		}()
	}
	for i := 0; i < 8; i++ {
		if err := <-done; err != nil {
			t.Fatalf("concurrent shape failed: %v", err)
		}
	}
}

func TestBaseDirection(t *testing.T) {
	tests := []struct {
		text string
		want di.Direction
	}{
		{"hello", di.DirectionLTR},
		{"123", di.DirectionLTR},
		{"שלום", di.DirectionRTL},
		{"", di.DirectionLTR},
	}
	for _, tt := range tests {
		if got := baseDirection(tt.text); got != tt.want {
			t.Errorf("baseDirection(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestDetectScript(t *testing.T) {
	if s := detectScript([]rune("  abc")); s != detectScript([]rune("abc")) {
		t.Error("leading spaces should not change the detected script")
	}
}
