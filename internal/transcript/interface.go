package transcript

import (
	"context"

	"github.com/rob137/summarise-youtube-video/internal/video"
)

// Fetcher retrieves the caption track for a video.
type Fetcher interface {
	Fetch(ctx context.Context, ref video.Reference) (*Transcript, error)
}
