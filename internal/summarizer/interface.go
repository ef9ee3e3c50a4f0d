package summarizer

import (
	"context"

	"github.com/rob137/summarise-youtube-video/internal/chunker"
)

// Summarizer cleans a chunked transcript and produces tiered summaries
// through the Gemini API.
type Summarizer interface {
	Summarize(ctx context.Context, chunks []chunker.Chunk) (*Result, error)
}

// Result holds the generated texts for one video plus the token usage
// accumulated across every API call that produced them.
type Result struct {
	Brief    string
	Medium   string
	Detailed string
	Cleaned  string
	Usage    Usage
}
