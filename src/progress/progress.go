package progress

import (
	"fmt"
	"io"
	"time"
)

// printInterval throttles in-place updates so large copies don't flood
// the terminal.
const printInterval = 200 * time.Millisecond

// Reader wraps an io.Reader and periodically writes a one-line progress
// update to out while a blob is being copied.
type Reader struct {
	r           io.Reader
	out         io.Writer
	label       string
	total       int64
	read        int64
	lastPrinted time.Time
}

// NewReader creates a progress Reader labelled with the blob being
// copied. If total is unknown (<= 0) the percentage is omitted.
func NewReader(r io.Reader, total int64, label string, out io.Writer) *Reader {
	return &Reader{r: r, out: out, label: label, total: total}
}

func (p *Reader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	if n > 0 {
		p.read += int64(n)
		if now := time.Now(); now.Sub(p.lastPrinted) >= printInterval {
			p.print()
			p.lastPrinted = now
		}
	}
	if err == io.EOF {
		p.print()
		if p.out != nil {
			fmt.Fprint(p.out, "\n")
		}
	}
	return n, err
}

func (p *Reader) print() {
	if p.out == nil {
		return
	}
	if p.total > 0 {
		pct := float64(p.read) / float64(p.total) * 100
		fmt.Fprintf(p.out, "\r%s: %.1f%% (%d/%d bytes)", p.label, pct, p.read, p.total)
	} else {
		fmt.Fprintf(p.out, "\r%s: %d bytes", p.label, p.read)
	}
}
