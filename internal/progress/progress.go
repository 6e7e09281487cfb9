// Package progress renders a single-line terminal progress bar for batch
// card generation. The bar redraws in place with carriage returns, so it is
// only suitable for interactive terminals; pass a nil writer to disable it.
package progress

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/fatih/color"
)

const barWidth = 32

var (
	fillColor = color.New(color.FgGreen)
	failColor = color.New(color.FgRed)
)

// Bar tracks completed and failed items out of a fixed total. It is safe
// for concurrent use by the render workers.
type Bar struct {
	mu     sync.Mutex
	out    io.Writer
	total  int
	done   int
	failed int
}

// New creates a bar for total items writing to out. A nil out or a
// non-positive total yields a disabled bar whose methods are no-ops.
func New(out io.Writer, total int) *Bar {
	if out == nil || total <= 0 {
		return &Bar{}
	}
	b := &Bar{out: out, total: total}
	b.render()
	return b
}

// Advance records one successfully completed item.
func (b *Bar) Advance() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.out == nil {
		return
	}
	b.done++
	b.render()
}

// Fail records one failed item. Failures still count toward completion so
// the bar reaches the end of the batch.
func (b *Bar) Fail() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.out == nil {
		return
	}
	b.done++
	b.failed++
	b.render()
}

// Finish terminates the bar line. Call once after the batch completes.
func (b *Bar) Finish() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.out == nil {
		return
	}
	fmt.Fprintln(b.out)
}

// render must be called with the mutex held.
func (b *Bar) render() {
	filled := b.done * barWidth / b.total
	bar := fillColor.Sprint(strings.Repeat("#", filled)) + strings.Repeat("-", barWidth-filled)

	status := fmt.Sprintf("\r[%s] %d/%d spells", bar, b.done, b.total)
	if b.failed > 0 {
		status += failColor.Sprintf(" (%d failed)", b.failed)
	}
	fmt.Fprint(b.out, status)
}
