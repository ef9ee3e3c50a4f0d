package processor

import "context"

// Processor runs the full pipeline for one video.
type Processor interface {
	Process(ctx context.Context, urlOrID string) error
}
