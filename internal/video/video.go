package video

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"
)

// Reference identifies a single YouTube video. Immutable once parsed.
type Reference struct {
	ID  string
	URL string
}

// YouTube video IDs are always 11 characters from this alphabet.
var idPattern = regexp.MustCompile(`^[0-9A-Za-z_-]{11}$`)

var youtubeHosts = map[string]bool{
	"youtube.com":       true,
	"www.youtube.com":   true,
	"m.youtube.com":     true,
	"music.youtube.com": true,
	"youtu.be":          true,
}

// Parse accepts a full YouTube URL or a bare 11-character video ID and
// returns a canonical Reference. It returns an error for anything it
// cannot recognise as a single video.
func Parse(arg string) (Reference, error) {
	arg = strings.TrimSpace(arg)

	if idPattern.MatchString(arg) {
		return Reference{ID: arg, URL: "https://www.youtube.com/watch?v=" + arg}, nil
	}

	u, err := url.Parse(arg)
	if err != nil || u.Host == "" {
		return Reference{}, fmt.Errorf("could not parse a YouTube video ID from %q", arg)
	}

	if !youtubeHosts[strings.ToLower(u.Host)] {
		return Reference{}, fmt.Errorf("not a YouTube URL: %s", arg)
	}

	id, err := extractID(u)
	if err != nil {
		return Reference{}, err
	}

	return Reference{ID: id, URL: "https://www.youtube.com/watch?v=" + id}, nil
}

func extractID(u *url.URL) (string, error) {
	if v := u.Query().Get("v"); v != "" {
		if !idPattern.MatchString(v) {
			return "", fmt.Errorf("invalid video ID %q in URL", v)
		}
		return v, nil
	}

	// youtu.be/<id>, /embed/<id>, /shorts/<id>, /live/<id>
	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(parts) > 0 {
		candidate := parts[len(parts)-1]
		if idPattern.MatchString(candidate) {
			return candidate, nil
		}
	}

	return "", fmt.Errorf("could not extract video ID from URL: %s", u.String())
}

// ShortURL returns the youtu.be form of the video link.
func (r Reference) ShortURL() string {
	return "https://youtu.be/" + r.ID
}

// TimedURL returns a link that opens the video at the given offset.
func (r Reference) TimedURL(offset time.Duration) string {
	return fmt.Sprintf("%s?t=%d", r.ShortURL(), int(offset.Seconds()))
}
