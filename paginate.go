package cardmaker

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/image/font/opentype"
)

// Page is one box-sized chunk of paginated text with its fitted layout.
type Page struct {
	Text string
	Fit  Fit
}

// Paginate splits text into an ordered sequence of chunks that each fit the
// box per FitText. Text that fits whole yields a single page.
//
// Splitting is greedy over progressively finer units: paragraphs first, then
// sentences, then words. Every unit keeps its trailing separator, so
// concatenating the Text of all returned pages reproduces the input exactly.
// There is no upper bound on the number of pages.
func Paginate(fnt *opentype.Font, text string, box TextBox) ([]Page, error) {
	fit, err := FitText(fnt, text, box)
	if err == nil {
		return []Page{{Text: text, Fit: fit}}, nil
	}
	if !errors.Is(err, ErrTextOverflow) {
		return nil, err
	}

	units := splitParagraphUnits(text)
	var pages []Page
	var cur string
	var curFit Fit

	flush := func() {
		if cur != "" {
			pages = append(pages, Page{Text: cur, Fit: curFit})
			cur = ""
			curFit = Fit{}
		}
	}

	for i := 0; i < len(units); {
		candidate := cur + units[i]
		f, err := FitText(fnt, candidate, box)
		if err == nil {
			cur, curFit = candidate, f
			i++
			continue
		}
		if !errors.Is(err, ErrTextOverflow) {
			return nil, err
		}

		if cur != "" {
			// Current page is full; retry the unit on a fresh page.
			flush()
			continue
		}

		// A single unit overflows an empty page: break it into finer units.
		finer := refineUnit(units[i])
		if len(finer) < 2 {
			return nil, fmt.Errorf("%w: indivisible text unit of %d chars", ErrTextOverflow, len(units[i]))
		}
		units = append(units[:i], append(finer, units[i+1:]...)...)
	}
	flush()

	return pages, nil
}

// splitParagraphUnits splits text after each paragraph break, keeping the
// separator attached so concatenation is lossless.
func splitParagraphUnits(text string) []string {
	return dropEmpty(strings.SplitAfter(text, "\n\n"))
}

// refineUnit breaks a unit into sentences, or into words when it is a single
// sentence. Separators stay attached to the preceding unit. Empty fragments
// are dropped, so a multi-unit result always consists of strictly shorter
// pieces and refinement makes progress; a unit that yields a single piece
// (a lone word, with or without its trailing separator) is indivisible.
func refineUnit(unit string) []string {
	if sentences := splitSentenceUnits(unit); len(sentences) > 1 {
		return sentences
	}
	return dropEmpty(strings.SplitAfter(unit, " "))
}

// dropEmpty removes empty strings in place. SplitAfter yields a trailing
// empty string whenever the input ends with the separator.
func dropEmpty(units []string) []string {
	out := units[:0]
	for _, u := range units {
		if u != "" {
			out = append(out, u)
		}
	}
	return out
}

func splitSentenceUnits(s string) []string {
	var units []string
	start := 0
	for i := 0; i+1 < len(s); i++ {
		c := s[i]
		if (c == '.' || c == '!' || c == '?') && (s[i+1] == ' ' || s[i+1] == '\n') {
			units = append(units, s[start:i+2])
			start = i + 2
		}
	}
	if start < len(s) {
		units = append(units, s[start:])
	}
	return units
}
