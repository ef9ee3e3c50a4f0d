package summarizer

import (
	"context"
	"fmt"
	"strings"

	"github.com/rob137/summarise-youtube-video/internal/chunker"
)

const cleanPrompt = `You are an expert transcript editor. Clean up the raw video transcript below: fix punctuation, casing and obvious transcription errors, remove filler words and repeated false starts, and merge fragments into complete sentences. Do NOT summarize, reorder or drop content. Return only the cleaned text.

Transcript:
---
%s
---`

const briefPrompt = `Summarize the video transcript below in 2-3 sentences capturing only the central point. Return plain prose, no headings.

Transcript:
---
%s
---`

const mediumPrompt = `Summarize the video transcript below in one or two paragraphs. Cover the main arguments and conclusions in the order they appear. Return plain prose, no headings.

Transcript:
---
%s
---`

const detailedPrompt = `Write a detailed summary of the video transcript below using markdown bullet points. List every major topic in order of appearance, with sub-bullets for supporting details, examples and caveats. Bold the key terms.

Transcript:
---
%s
---`

// Summarize cleans each chunk, stitches the cleaned text together, and
// generates brief, medium and detailed summaries from it. Token usage
// of every call is accumulated into the result.
func (s *implSummarizer) Summarize(ctx context.Context, chunks []chunker.Chunk) (*Result, error) {
	if len(chunks) == 0 {
		return nil, fmt.Errorf("nothing to summarize: transcript is empty")
	}

	res := &Result{}

	cleaned := make([]string, 0, len(chunks))
	for i, c := range chunks {
		s.logger.Info(ctx, "Cleaning chunk %d/%d (%d words)", i+1, len(chunks), c.Words())

		text, err := s.generateWithRetry(ctx, fmt.Sprintf(cleanPrompt, c.Text()), &res.Usage)
		if err != nil {
			return nil, fmt.Errorf("clean chunk %d/%d: %w", i+1, len(chunks), err)
		}
		cleaned = append(cleaned, strings.TrimSpace(text))
	}
	res.Cleaned = strings.Join(cleaned, "\n\n")

	tiers := []struct {
		name   string
		prompt string
		dst    *string
	}{
		{"brief", briefPrompt, &res.Brief},
		{"medium", mediumPrompt, &res.Medium},
		{"detailed", detailedPrompt, &res.Detailed},
	}

	for _, tier := range tiers {
		s.logger.Info(ctx, "Generating %s summary", tier.name)

		text, err := s.generateWithRetry(ctx, fmt.Sprintf(tier.prompt, res.Cleaned), &res.Usage)
		if err != nil {
			return nil, fmt.Errorf("generate %s summary: %w", tier.name, err)
		}
		*tier.dst = strings.TrimSpace(text)
	}

	s.logger.Info(ctx, "Token usage: %d in / %d out across %d calls (est. $%.4f)",
		res.Usage.InputTokens, res.Usage.OutputTokens, len(res.Usage.Records), res.Usage.EstimatedCost(s.model))

	return res, nil
}
