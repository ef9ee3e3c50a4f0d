package processor

import (
	"context"
	"fmt"
	"time"

	"github.com/rob137/summarise-youtube-video/internal/chunker"
	"github.com/rob137/summarise-youtube-video/internal/document"
	"github.com/rob137/summarise-youtube-video/internal/summarizer"
	"github.com/rob137/summarise-youtube-video/internal/transcript"
	"github.com/rob137/summarise-youtube-video/internal/video"
)

// Process runs the pipeline for one video: resolve the reference, fetch
// the transcript, chunk it, summarize and write the document.
func (p *implProcessor) Process(ctx context.Context, urlOrID string) error {
	startTime := time.Now()

	ref, err := video.Parse(urlOrID)
	if err != nil {
		return err
	}

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Processing video: %s", ref.ID)
	p.logger.Info(ctx, "========================================")

	tr, err := p.fetcher.Fetch(ctx, ref)
	if err != nil {
		return fmt.Errorf("fetch transcript: %w", err)
	}
	p.logger.Info(ctx, "Transcript: %q, %d segments, %d words",
		tr.Title, len(tr.Segments), transcript.Words(tr.Segments))

	var result *summarizer.Result
	if p.opts.TranscriptOnly {
		// Stand-in for the summaries: the raw transcript on stdout.
		fmt.Fprintln(p.stdout, tr.Text())
	} else {
		chunks := chunker.Split(tr.Segments, p.cfg.Chunking.MaxWords)
		p.logger.Info(ctx, "Split transcript into %d chunk(s) (budget %d words)", len(chunks), p.cfg.Chunking.MaxWords)

		result, err = p.summarizer.Summarize(ctx, chunks)
		if err != nil {
			return fmt.Errorf("summarize: %w", err)
		}
	}

	doc := &document.Document{
		Ref:         ref,
		Title:       tr.Title,
		Model:       p.cfg.Gemini.Model,
		GeneratedAt: time.Now(),
		Result:      result,
		Segments:    tr.Segments,
	}

	path, err := document.Write(doc, p.cfg.Paths.Output)
	if err != nil {
		return fmt.Errorf("write document: %w", err)
	}
	p.logger.Info(ctx, "Wrote %s", path)

	if p.opts.Docx {
		docxPath, err := document.WriteDocx(doc, p.cfg.Paths.Output)
		if err != nil {
			return fmt.Errorf("write docx: %w", err)
		}
		p.logger.Info(ctx, "Wrote %s", docxPath)
	}

	p.logger.Info(ctx, "Completed %s in %s", ref.ID, time.Since(startTime).Round(time.Millisecond))
	return nil
}
