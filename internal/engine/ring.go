package engine

import (
	"fmt"
	"strings"
)

// Ring is a bounded FIFO of diagnostic lines. When full, the oldest
// line is evicted first.
type Ring struct {
	lines    []string
	capacity int
}

func NewRing(capacity int) *Ring {
	return &Ring{capacity: capacity}
}

// Logf appends a formatted line, evicting the oldest when over
// capacity.
func (r *Ring) Logf(format string, args ...any) {
	r.lines = append(r.lines, fmt.Sprintf(format, args...))
	if len(r.lines) > r.capacity {
		r.lines = r.lines[1:]
	}
}

func (r *Ring) Len() int { return len(r.lines) }

// Tail returns the most recent n lines joined by newlines.
func (r *Ring) Tail(n int) string {
	if n > len(r.lines) {
		n = len(r.lines)
	}
	return strings.Join(r.lines[len(r.lines)-n:], "\n")
}
