// Package document assembles the output file: tiered summaries, token
// usage and the timestamped transcript.
package document

import (
	"fmt"
	"strings"
	"time"

	"github.com/rob137/summarise-youtube-video/internal/summarizer"
	"github.com/rob137/summarise-youtube-video/internal/transcript"
	"github.com/rob137/summarise-youtube-video/internal/video"
)

// Document is everything produced for one video. Result may be nil in
// transcript-only mode, in which case only the transcript is rendered.
type Document struct {
	Ref         video.Reference
	Title       string
	Model       string
	GeneratedAt time.Time
	Result      *summarizer.Result
	Segments    []transcript.Segment
}

// Markdown renders the full document.
func (d *Document) Markdown() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# %s\n\n", d.Title)
	fmt.Fprintf(&sb, "[Watch on YouTube](%s)\n\n", d.Ref.ShortURL())
	fmt.Fprintf(&sb, "_Generated %s_\n", d.GeneratedAt.Format("2006-01-02 15:04"))

	if d.Result != nil {
		fmt.Fprintf(&sb, "\n## Brief Summary\n\n%s\n", d.Result.Brief)
		fmt.Fprintf(&sb, "\n## Medium Summary\n\n%s\n", d.Result.Medium)
		fmt.Fprintf(&sb, "\n## Detailed Summary\n\n%s\n", d.Result.Detailed)

		fmt.Fprintf(&sb, "\n## Token Usage\n\n")
		fmt.Fprintf(&sb, "- Model: %s\n", d.Model)
		fmt.Fprintf(&sb, "- Input tokens: %d\n", d.Result.Usage.InputTokens)
		fmt.Fprintf(&sb, "- Output tokens: %d\n", d.Result.Usage.OutputTokens)
		fmt.Fprintf(&sb, "- Estimated cost: $%.4f\n", d.Result.Usage.EstimatedCost(d.Model))
	}

	fmt.Fprintf(&sb, "\n## Transcript\n\n")
	for _, seg := range d.Segments {
		fmt.Fprintf(&sb, "- [%s](%s) %s\n", formatTimestamp(seg.Start), d.Ref.TimedURL(seg.Start), seg.Text)
	}

	return sb.String()
}

// formatTimestamp renders an offset as m:ss, or h:mm:ss past an hour.
func formatTimestamp(d time.Duration) string {
	total := int(d.Seconds())
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60

	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}
