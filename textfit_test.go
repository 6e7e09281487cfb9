package cardmaker

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

func testFont(t *testing.T) *opentype.Font {
	t.Helper()
	fnt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		t.Fatalf("parsing test font: %v", err)
	}
	return fnt
}

func TestFitTextEmpty(t *testing.T) {
	box := TextBox{Box: Box{W: 400, H: 200}, MaxSize: 30, MinSize: 12}

	fit, err := FitText(testFont(t), "", box)
	if err != nil {
		t.Fatalf("FitText() error = %v", err)
	}
	if fit.Size != box.MaxSize {
		t.Errorf("Size = %v, want %v", fit.Size, box.MaxSize)
	}
	if len(fit.Lines) != 0 {
		t.Errorf("Lines = %q, want none", fit.Lines)
	}
}

func TestFitTextWithinBounds(t *testing.T) {
	fnt := testFont(t)
	box := TextBox{Box: Box{W: 644, H: 432}, MaxSize: 30, MinSize: 12}
	text := "A shimmering field appears and surrounds a creature of your choice " +
		"within range, granting it a +2 bonus to AC for the duration."

	fit, err := FitText(fnt, text, box)
	if err != nil {
		t.Fatalf("FitText() error = %v", err)
	}
	if fit.Size < box.MinSize || fit.Size > box.MaxSize {
		t.Errorf("Size = %v, want within [%v, %v]", fit.Size, box.MinSize, box.MaxSize)
	}
	if total := fit.LineHeight * float64(len(fit.Lines)); total > float64(box.H) {
		t.Errorf("total height %v exceeds box height %d", total, box.H)
	}
}

func TestFitTextDeterministic(t *testing.T) {
	fnt := testFont(t)
	box := TextBox{Box: Box{W: 500, H: 300}, MaxSize: 30, MinSize: 12}
	text := strings.Repeat("You create three glowing darts of magical force. ", 6)

	first, err := FitText(fnt, text, box)
	if err != nil {
		t.Fatalf("FitText() error = %v", err)
	}
	second, err := FitText(fnt, text, box)
	if err != nil {
		t.Fatalf("FitText() error = %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated FitText calls disagree:\n%+v\n%+v", first, second)
	}
}

func TestFitTextKeepsWordsIntact(t *testing.T) {
	fnt := testFont(t)
	box := TextBox{Box: Box{W: 300, H: 600}, MaxSize: 24, MinSize: 10}
	text := "Choose a creature that you can see within range. The target must " +
		"succeed on a Wisdom saving throw or be frightened."

	fit, err := FitText(fnt, text, box)
	if err != nil {
		t.Fatalf("FitText() error = %v", err)
	}

	got := strings.Fields(strings.Join(fit.Lines, " "))
	want := strings.Fields(text)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("wrapped words = %q, want %q", got, want)
	}
}

func TestFitTextBlankLinesConsumeHeight(t *testing.T) {
	fnt := testFont(t)
	box := TextBox{Box: Box{W: 600, H: 400}, MaxSize: 30, MinSize: 12}

	plain, err := FitText(fnt, "One line.", box)
	if err != nil {
		t.Fatalf("FitText() error = %v", err)
	}
	padded, err := FitText(fnt, "One line.\n\n\n\n", box)
	if err != nil {
		t.Fatalf("FitText() error = %v", err)
	}
	if len(padded.Lines) <= len(plain.Lines) {
		t.Errorf("padded line count = %d, want more than %d", len(padded.Lines), len(plain.Lines))
	}
}

func TestFitTextOverflow(t *testing.T) {
	fnt := testFont(t)
	box := TextBox{Box: Box{W: 200, H: 60}, MaxSize: 20, MinSize: 14}
	text := strings.Repeat("overflowing rules text that cannot possibly fit ", 20)

	_, err := FitText(fnt, text, box)
	if !errors.Is(err, ErrTextOverflow) {
		t.Errorf("FitText() error = %v, want ErrTextOverflow", err)
	}
}

func TestFitTextFractionalBoundsReachMin(t *testing.T) {
	fnt := testFont(t)

	// Size the box to hold exactly one line at the minimum size, so the
	// text only fits once the shrink loop lands on MinSize itself.
	face, err := newFace(fnt, 12)
	if err != nil {
		t.Fatalf("newFace() error = %v", err)
	}
	lineH := face.Metrics().Height.Ceil()
	face.Close()

	box := TextBox{Box: Box{W: 400, H: lineH}, MaxSize: 12.9, MinSize: 12}
	fit, err := FitText(fnt, "Shield", box)
	if err != nil {
		t.Fatalf("FitText() error = %v", err)
	}
	if fit.Size != box.MinSize {
		t.Errorf("Size = %v, want %v", fit.Size, box.MinSize)
	}
}

func TestFitTextLongerTextShrinks(t *testing.T) {
	fnt := testFont(t)
	box := TextBox{Box: Box{W: 500, H: 200}, MaxSize: 30, MinSize: 8}
	short := "A brief effect."
	long := strings.Repeat("A much longer effect with many more words to lay out. ", 5)

	shortFit, err := FitText(fnt, short, box)
	if err != nil {
		t.Fatalf("FitText(short) error = %v", err)
	}
	longFit, err := FitText(fnt, long, box)
	if err != nil {
		t.Fatalf("FitText(long) error = %v", err)
	}
	if longFit.Size > shortFit.Size {
		t.Errorf("long text fitted at %v, short at %v; want long <= short", longFit.Size, shortFit.Size)
	}
}
