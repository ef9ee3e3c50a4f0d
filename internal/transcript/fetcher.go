package transcript

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rob137/summarise-youtube-video/internal/video"
)

const outputPrefix = "captions"

// Fetch downloads the caption track for ref via yt-dlp and parses it.
// Manual subtitles are requested alongside auto-generated ones; yt-dlp
// prefers the manual track when both exist.
func (f *implFetcher) Fetch(ctx context.Context, ref video.Reference) (*Transcript, error) {
	if err := f.checkBinary(ctx); err != nil {
		return nil, err
	}

	workDir, err := os.MkdirTemp(f.tempDir, "captions-*")
	if err != nil {
		return nil, fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(workDir)

	f.logger.Info(ctx, "Fetching captions for %s (languages: %s)", ref.ID, strings.Join(f.languages, ","))

	args := []string{
		"--skip-download",
		"--write-subs",
		"--write-auto-subs",
		"--sub-langs", strings.Join(f.languages, ","),
		"--sub-format", "json3",
		"--write-info-json",
		"--no-playlist",
		"-o", outputPrefix,
		ref.URL,
	}

	if _, err := f.executor.ExecuteInDir(ctx, workDir, f.binary, args...); err != nil {
		return nil, fmt.Errorf("yt-dlp fetch captions: %w", err)
	}

	path, lang, err := f.pickCaptionFile(workDir)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read caption file: %w", err)
	}

	segs, err := parseJSON3(data)
	if err != nil {
		return nil, err
	}

	title := f.readTitle(ctx, workDir)
	if title == "" {
		title = ref.ID
	}

	f.logger.Info(ctx, "Fetched %d caption segments (%s)", len(segs), lang)

	return &Transcript{Title: title, Language: lang, Segments: segs}, nil
}

// checkBinary verifies once per fetcher that the yt-dlp binary runs,
// so a missing tool fails with a clear message instead of mid-download.
func (f *implFetcher) checkBinary(ctx context.Context) error {
	f.checkOnce.Do(func() {
		out, err := f.executor.Execute(ctx, f.binary, "--version")
		if err != nil {
			f.checkErr = fmt.Errorf("yt-dlp not available as %q (install it or set ytdlp.binary_path): %w", f.binary, err)
			return
		}
		f.logger.Debug(ctx, "yt-dlp version %s", strings.TrimSpace(out))
	})
	return f.checkErr
}

// pickCaptionFile selects the downloaded caption file matching the first
// preferred language, falling back to whatever yt-dlp produced.
func (f *implFetcher) pickCaptionFile(dir string) (path, lang string, err error) {
	matches, err := filepath.Glob(filepath.Join(dir, outputPrefix+".*.json3"))
	if err != nil {
		return "", "", fmt.Errorf("scan caption files: %w", err)
	}
	if len(matches) == 0 {
		return "", "", fmt.Errorf("no captions available in languages %v (video may have subtitles disabled)", f.languages)
	}

	langOf := func(p string) string {
		base := strings.TrimSuffix(filepath.Base(p), ".json3")
		return strings.TrimPrefix(base, outputPrefix+".")
	}

	for _, pref := range f.languages {
		for _, m := range matches {
			l := langOf(m)
			if l == pref || strings.HasPrefix(l, pref+"-") {
				return m, l, nil
			}
		}
	}

	return matches[0], langOf(matches[0]), nil
}

// readTitle pulls the video title out of the info JSON written by yt-dlp.
// A missing or unreadable info file is not fatal.
func (f *implFetcher) readTitle(ctx context.Context, dir string) string {
	data, err := os.ReadFile(filepath.Join(dir, outputPrefix+".info.json"))
	if err != nil {
		f.logger.Debug(ctx, "No info JSON: %v", err)
		return ""
	}

	var info struct {
		Title string `json:"title"`
	}
	if err := json.Unmarshal(data, &info); err != nil {
		f.logger.Debug(ctx, "Parse info JSON: %v", err)
		return ""
	}

	return strings.TrimSpace(info.Title)
}
