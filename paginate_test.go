package cardmaker

import (
	"errors"
	"strings"
	"testing"
)

func TestPaginateSinglePage(t *testing.T) {
	fnt := testFont(t)
	box := TextBox{Box: Box{W: 644, H: 432}, MaxSize: 30, MinSize: 12}
	text := "You hurl a mote of fire at a creature or object within range."

	pages, err := Paginate(fnt, text, box)
	if err != nil {
		t.Fatalf("Paginate() error = %v", err)
	}
	if len(pages) != 1 {
		t.Fatalf("Paginate() returned %d pages, want 1", len(pages))
	}
	if pages[0].Text != text {
		t.Errorf("page text = %q, want %q", pages[0].Text, text)
	}
}

func TestPaginateLossless(t *testing.T) {
	fnt := testFont(t)
	box := TextBox{Box: Box{W: 644, H: 432}, MaxSize: 30, MinSize: 12}
	para := "Sentence one of the effect. Sentence two describes the saving throw. " +
		"Sentence three covers what happens on a failure."
	text := strings.TrimSuffix(strings.Repeat(para+"\n\n", 12), "\n\n")

	pages, err := Paginate(fnt, text, box)
	if err != nil {
		t.Fatalf("Paginate() error = %v", err)
	}
	if len(pages) < 2 {
		t.Fatalf("Paginate() returned %d pages, want at least 2", len(pages))
	}

	var sb strings.Builder
	for _, p := range pages {
		sb.WriteString(p.Text)
	}
	if sb.String() != text {
		t.Errorf("concatenated pages do not reproduce the input\ngot:  %q\nwant: %q", sb.String(), text)
	}
}

func TestPaginateEveryPageFits(t *testing.T) {
	fnt := testFont(t)
	box := TextBox{Box: Box{W: 644, H: 432}, MaxSize: 30, MinSize: 12}
	text := strings.Repeat("Each creature in a 20-foot-radius sphere must make a Dexterity saving throw. ", 40)

	pages, err := Paginate(fnt, text, box)
	if err != nil {
		t.Fatalf("Paginate() error = %v", err)
	}
	for i, p := range pages {
		if p.Fit.Size < box.MinSize {
			t.Errorf("page %d fitted at %v, below minimum %v", i, p.Fit.Size, box.MinSize)
		}
		if total := p.Fit.LineHeight * float64(len(p.Fit.Lines)); total > float64(box.H) {
			t.Errorf("page %d height %v exceeds box height %d", i, total, box.H)
		}
	}
}

func TestPaginateRefinesLongParagraph(t *testing.T) {
	fnt := testFont(t)
	box := TextBox{Box: Box{W: 400, H: 120}, MaxSize: 20, MinSize: 12}
	// One paragraph, no blank lines: forces sentence-level splitting.
	text := strings.Repeat("The target takes damage and is pushed away from you. ", 30)

	pages, err := Paginate(fnt, text, box)
	if err != nil {
		t.Fatalf("Paginate() error = %v", err)
	}
	if len(pages) < 2 {
		t.Fatalf("Paginate() returned %d pages, want at least 2", len(pages))
	}

	var sb strings.Builder
	for _, p := range pages {
		sb.WriteString(p.Text)
	}
	if sb.String() != text {
		t.Error("concatenated pages do not reproduce the input")
	}
}

func TestPaginateIndivisibleUnit(t *testing.T) {
	fnt := testFont(t)
	// Box too short for even one line at the minimum size.
	box := TextBox{Box: Box{W: 400, H: 6}, MaxSize: 20, MinSize: 12}

	tests := []struct {
		name string
		text string
	}{
		{"bare word", "indivisible"},
		// A trailing separator splits into the word plus an empty
		// fragment; refinement must still terminate.
		{"trailing space", "indivisible "},
		{"trailing paragraph break", "indivisible\n\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Paginate(fnt, tt.text, box)
			if !errors.Is(err, ErrTextOverflow) {
				t.Errorf("Paginate(%q) error = %v, want ErrTextOverflow", tt.text, err)
			}
		})
	}
}

func TestPaginateTrailingSeparatorLossless(t *testing.T) {
	fnt := testFont(t)
	box := TextBox{Box: Box{W: 644, H: 432}, MaxSize: 30, MinSize: 12}
	para := "Sentence one of the effect. Sentence two describes the saving throw. " +
		"Sentence three covers what happens on a failure."
	// Keep the final paragraph break so the unit split yields an empty tail.
	text := strings.Repeat(para+"\n\n", 12)

	pages, err := Paginate(fnt, text, box)
	if err != nil {
		t.Fatalf("Paginate() error = %v", err)
	}

	var sb strings.Builder
	for _, p := range pages {
		sb.WriteString(p.Text)
	}
	if sb.String() != text {
		t.Errorf("concatenated pages do not reproduce the input\ngot:  %q\nwant: %q", sb.String(), text)
	}
}
