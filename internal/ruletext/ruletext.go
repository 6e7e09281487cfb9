// Package ruletext prepares spell rules text for rendering. Source datasets
// (SRD extracts in particular) carry Markdown markup such as ***At Higher
// Levels.*** inside rules text; the card body renders plain text, so the
// markup is flattened through a Markdown AST walk rather than regex
// stripping.
package ruletext

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	gmtext "github.com/yuin/goldmark/text"
)

// Padding targets from the original card layout: a rules block shorter than
// minBlockSize characters is padded with blank lines so the fitted font size
// does not balloon on one-sentence spells. A blank line costs roughly
// lineSizeEquivalent characters of block space.
const (
	minBlockSize       = 240
	lineSizeEquivalent = 30
)

var md = goldmark.New()

// Prepare flattens Markdown markup, fixes characters the card fonts cannot
// render, and optionally pads short text.
func Prepare(text string, pad bool) string {
	out := Flatten(text)
	out = replaceProblematicRunes(out)
	if pad {
		out = padShortRules(out)
	}
	return out
}

// Flatten renders Markdown to plain text: emphasis and links are reduced to
// their text content, headings and paragraphs are separated by blank lines,
// and list items gain a bullet prefix. Plain input passes through with its
// paragraph structure intact.
func Flatten(text string) string {
	source := []byte(text)
	doc := md.Parser().Parse(gmtext.NewReader(source))

	var b strings.Builder
	b.Grow(len(source))

	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		switch node := n.(type) {
		case *ast.Text:
			if entering {
				b.Write(node.Segment.Value(source))
				if node.SoftLineBreak() || node.HardLineBreak() {
					b.WriteByte('\n')
				}
			}
		case *ast.Paragraph, *ast.Heading:
			if !entering {
				if insideListItem(n) {
					b.WriteByte('\n')
				} else {
					b.WriteString("\n\n")
				}
			}
		case *ast.TextBlock:
			if !entering {
				b.WriteByte('\n')
			}
		case *ast.ListItem:
			if entering {
				b.WriteString("• ")
			}
		case *ast.List:
			if !entering {
				b.WriteByte('\n')
			}
		}
		return ast.WalkContinue, nil
	})

	return collapseBlankRuns(strings.TrimSpace(b.String()))
}

func insideListItem(n ast.Node) bool {
	for p := n.Parent(); p != nil; p = p.Parent() {
		if _, ok := p.(*ast.ListItem); ok {
			return true
		}
	}
	return false
}

// collapseBlankRuns reduces runs of three or more newlines to a single blank
// line so flattened output stays deterministic regardless of source markup.
func collapseBlankRuns(s string) string {
	for strings.Contains(s, "\n\n\n") {
		s = strings.ReplaceAll(s, "\n\n\n", "\n\n")
	}
	return s
}

// replaceProblematicRunes substitutes characters the card fonts render as
// tofu. U+2212 (mathematical minus) shows up in damage expressions.
func replaceProblematicRunes(s string) string {
	return strings.ReplaceAll(s, "−", "-")
}

// padShortRules appends blank lines until the text occupies roughly
// minBlockSize characters worth of block space, preventing huge fitted fonts
// on short rules text.
func padShortRules(s string) string {
	size := len(s) + strings.Count(s, "\n\n")*lineSizeEquivalent
	var b strings.Builder
	b.WriteString(s)
	for size < minBlockSize {
		size += lineSizeEquivalent
		b.WriteByte('\n')
	}
	return b.String()
}
