package chunker

import (
	"fmt"
	"testing"
	"time"

	"github.com/rob137/summarise-youtube-video/internal/transcript"
)

func makeSegments(wordsPerSegment ...int) []transcript.Segment {
	var segs []transcript.Segment
	for i, n := range wordsPerSegment {
		text := ""
		for w := 0; w < n; w++ {
			if w > 0 {
				text += " "
			}
			text += fmt.Sprintf("w%d_%d", i, w)
		}
		segs = append(segs, transcript.Segment{
			Start: time.Duration(i) * time.Second,
			Text:  text,
		})
	}
	return segs
}

func TestSplit(t *testing.T) {
	tests := []struct {
		name        string
		segments    []transcript.Segment
		maxWords    int
		wantChunks  int
		wantLengths []int // segments per chunk
	}{
		{
			name:        "everything fits in one chunk",
			segments:    makeSegments(3, 3, 3),
			maxWords:    10,
			wantChunks:  1,
			wantLengths: []int{3},
		},
		{
			name:        "split at budget",
			segments:    makeSegments(4, 4, 4, 4),
			maxWords:    8,
			wantChunks:  2,
			wantLengths: []int{2, 2},
		},
		{
			name:        "uneven split",
			segments:    makeSegments(5, 2, 6),
			maxWords:    7,
			wantChunks:  2,
			wantLengths: []int{2, 1},
		},
		{
			name:        "oversized segment gets its own chunk",
			segments:    makeSegments(2, 20, 2),
			maxWords:    5,
			wantChunks:  3,
			wantLengths: []int{1, 1, 1},
		},
		{
			name:        "zero budget disables chunking",
			segments:    makeSegments(100, 100),
			maxWords:    0,
			wantChunks:  1,
			wantLengths: []int{2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chunks := Split(tt.segments, tt.maxWords)
			if len(chunks) != tt.wantChunks {
				t.Fatalf("Split() = %d chunks, want %d", len(chunks), tt.wantChunks)
			}
			for i, want := range tt.wantLengths {
				if len(chunks[i].Segments) != want {
					t.Errorf("chunk %d has %d segments, want %d", i, len(chunks[i].Segments), want)
				}
			}
		})
	}
}

func TestSplitEmpty(t *testing.T) {
	if chunks := Split(nil, 100); chunks != nil {
		t.Errorf("Split(nil) = %v, want nil", chunks)
	}
}

// Concatenating all chunks must reconstruct the transcript exactly,
// with no segment split across two chunks.
func TestSplitReconstructs(t *testing.T) {
	segs := makeSegments(3, 7, 1, 12, 4, 4, 9, 2)

	for _, maxWords := range []int{1, 5, 10, 25, 1000} {
		chunks := Split(segs, maxWords)

		var rejoined []transcript.Segment
		for _, c := range chunks {
			rejoined = append(rejoined, c.Segments...)
		}

		if len(rejoined) != len(segs) {
			t.Fatalf("maxWords=%d: %d segments after rejoin, want %d", maxWords, len(rejoined), len(segs))
		}
		for i := range segs {
			if rejoined[i] != segs[i] {
				t.Fatalf("maxWords=%d: segment %d changed after chunking", maxWords, i)
			}
		}
		if transcript.Join(rejoined) != transcript.Join(segs) {
			t.Fatalf("maxWords=%d: rejoined text differs", maxWords)
		}
	}
}

// Every chunk except single-segment overflows stays within the budget.
func TestSplitRespectsBudget(t *testing.T) {
	segs := makeSegments(3, 7, 1, 12, 4, 4, 9, 2)
	maxWords := 10

	for i, c := range Split(segs, maxWords) {
		if c.Words() > maxWords && len(c.Segments) > 1 {
			t.Errorf("chunk %d has %d words across %d segments, budget %d", i, c.Words(), len(c.Segments), maxWords)
		}
	}
}
