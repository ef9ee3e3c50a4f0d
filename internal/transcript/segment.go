package transcript

import (
	"strings"
	"time"
)

// Segment is one timestamped caption line. An ordered sequence of
// segments forms the full transcript.
type Segment struct {
	Start time.Duration
	Text  string
}

// Transcript is the fetched caption track for a single video.
type Transcript struct {
	Title    string
	Language string
	Segments []Segment
}

// Text returns the plain transcript with segments joined by spaces.
func (t *Transcript) Text() string {
	return Join(t.Segments)
}

// Join concatenates segment texts with single spaces.
func Join(segs []Segment) string {
	parts := make([]string, 0, len(segs))
	for _, s := range segs {
		parts = append(parts, s.Text)
	}
	return strings.Join(parts, " ")
}

// Words counts whitespace-separated words across all segments.
func Words(segs []Segment) int {
	n := 0
	for _, s := range segs {
		n += len(strings.Fields(s.Text))
	}
	return n
}
