package cardmaker

import (
	"fmt"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
)

// fontDPI is the resolution all faces are created at. Sizes in the template
// are therefore pixel sizes.
const fontDPI = 72

// Fit is a computed text layout: the largest font size at which the wrapped
// lines fit their box, and the wrapped lines themselves.
type Fit struct {
	Size       float64  // fitted font size
	Lines      []string // wrapped lines, top to bottom
	LineHeight float64  // pixel height of one line at Size
}

// FitText computes the wrapped line layout for text inside box, shrinking
// the font size one unit at a time from box.MaxSize until the wrapped height
// fits. box.MinSize itself is always tried last, and only when the text does
// not fit there either does FitText fail with ErrTextOverflow.
//
// Wrapping is greedy word wrap: the next word is appended if the line still
// fits the box width, otherwise it starts a new line. Words are never split;
// a single word wider than the box occupies its own line and overflows
// horizontally. Embedded newlines force line breaks and blank lines consume
// vertical space, which is what lets padded rules text hold its size down.
//
// FitText is a pure function of its arguments: identical inputs always
// produce identical output, and nothing is drawn.
func FitText(fnt *opentype.Font, text string, box TextBox) (Fit, error) {
	if text == "" {
		return Fit{Size: box.MaxSize}, nil
	}

	size := box.MaxSize
	for {
		face, err := newFace(fnt, size)
		if err != nil {
			return Fit{}, err
		}

		lines := wrapLines(face, text, box.W)
		lineH := face.Metrics().Height.Ceil()
		total := lineH * len(lines)
		face.Close()

		if total <= box.H {
			return Fit{Size: size, Lines: lines, LineHeight: float64(lineH)}, nil
		}
		if size <= box.MinSize {
			break
		}
		// The last step lands exactly on MinSize even when the bounds are
		// a non-integer distance apart.
		size--
		if size < box.MinSize {
			size = box.MinSize
		}
	}

	return Fit{}, fmt.Errorf("%w: %d chars in %dx%d box at min size %.0f",
		ErrTextOverflow, len(text), box.W, box.H, box.MinSize)
}

// newFace creates a font face at the given pixel size.
func newFace(fnt *opentype.Font, size float64) (font.Face, error) {
	face, err := opentype.NewFace(fnt, &opentype.FaceOptions{
		Size:    size,
		DPI:     fontDPI,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: creating face at %.1fpx: %v", ErrFontParse, size, err)
	}
	return face, nil
}

// wrapLines greedily wraps text to the given pixel width, honoring embedded
// newlines.
func wrapLines(face font.Face, text string, width int) []string {
	var lines []string
	for _, para := range strings.Split(text, "\n") {
		if strings.TrimSpace(para) == "" {
			lines = append(lines, "")
			continue
		}
		lines = append(lines, wrapParagraph(face, para, width)...)
	}
	return lines
}

func wrapParagraph(face font.Face, para string, width int) []string {
	var lines []string
	var cur string
	for _, word := range strings.Fields(para) {
		if cur == "" {
			cur = word
			continue
		}
		candidate := cur + " " + word
		if measureWidth(face, candidate) <= width {
			cur = candidate
		} else {
			lines = append(lines, cur)
			cur = word
		}
	}
	if cur != "" {
		lines = append(lines, cur)
	}
	return lines
}

func measureWidth(face font.Face, s string) int {
	return font.MeasureString(face, s).Ceil()
}
