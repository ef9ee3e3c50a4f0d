package video

import (
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		arg     string
		wantID  string
		wantErr bool
	}{
		{"standard watch URL", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ", false},
		{"short URL", "https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ", false},
		{"embed URL", "https://www.youtube.com/embed/dQw4w9WgXcQ", "dQw4w9WgXcQ", false},
		{"shorts URL", "https://www.youtube.com/shorts/dQw4w9WgXcQ", "dQw4w9WgXcQ", false},
		{"mobile URL", "https://m.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ", false},
		{"watch URL with timestamp", "https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=10s", "dQw4w9WgXcQ", false},
		{"bare ID", "dQw4w9WgXcQ", "dQw4w9WgXcQ", false},
		{"surrounding whitespace", "  dQw4w9WgXcQ\n", "dQw4w9WgXcQ", false},
		{"non-YouTube host", "https://vimeo.com/12345678901", "", true},
		{"too-short ID", "invalid", "", true},
		{"empty input", "", "", true},
		{"playlist URL without video", "https://www.youtube.com/playlist?list=PL123", "", true},
		{"bad ID in query", "https://www.youtube.com/watch?v=short", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref, err := Parse(tt.arg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.arg, err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if ref.ID != tt.wantID {
				t.Errorf("Parse(%q).ID = %v, want %v", tt.arg, ref.ID, tt.wantID)
			}
			if ref.URL != "https://www.youtube.com/watch?v="+tt.wantID {
				t.Errorf("Parse(%q).URL = %v", tt.arg, ref.URL)
			}
		})
	}
}

func TestTimedURL(t *testing.T) {
	ref := Reference{ID: "dQw4w9WgXcQ"}

	if got := ref.TimedURL(0); got != "https://youtu.be/dQw4w9WgXcQ?t=0" {
		t.Errorf("TimedURL(0) = %v", got)
	}
	if got := ref.TimedURL(90 * time.Second); got != "https://youtu.be/dQw4w9WgXcQ?t=90" {
		t.Errorf("TimedURL(90s) = %v", got)
	}
	if got := ref.TimedURL(time.Hour + 2*time.Minute + 3*time.Second); got != "https://youtu.be/dQw4w9WgXcQ?t=3723" {
		t.Errorf("TimedURL(1h2m3s) = %v", got)
	}
}
