// Package chunker splits transcripts into word-bounded pieces so each
// piece fits within the model's input limits.
package chunker

import (
	"strings"

	"github.com/rob137/summarise-youtube-video/internal/transcript"
)

// Chunk is a contiguous run of transcript segments. Chunks partition
// the transcript without overlap and never split a segment.
type Chunk struct {
	Segments []transcript.Segment
}

// Text returns the chunk's segments joined into plain text.
func (c Chunk) Text() string {
	return transcript.Join(c.Segments)
}

// Words counts whitespace-separated words in the chunk.
func (c Chunk) Words() int {
	return transcript.Words(c.Segments)
}

// Split partitions segs into chunks of at most maxWords words each.
// Boundaries fall on segment boundaries only, so a single segment
// longer than maxWords becomes its own oversized chunk. maxWords <= 0
// disables chunking and returns everything as one chunk.
func Split(segs []transcript.Segment, maxWords int) []Chunk {
	if len(segs) == 0 {
		return nil
	}
	if maxWords <= 0 {
		return []Chunk{{Segments: segs}}
	}

	var chunks []Chunk
	var current []transcript.Segment
	words := 0

	for _, seg := range segs {
		n := len(strings.Fields(seg.Text))
		if len(current) > 0 && words+n > maxWords {
			chunks = append(chunks, Chunk{Segments: current})
			current = nil
			words = 0
		}
		current = append(current, seg)
		words += n
	}

	if len(current) > 0 {
		chunks = append(chunks, Chunk{Segments: current})
	}

	return chunks
}
