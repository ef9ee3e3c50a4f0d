package transcript

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"
)

// json3 is YouTube's timedtext JSON format as written by yt-dlp.
type json3Doc struct {
	Events []json3Event `json:"events"`
}

type json3Event struct {
	StartMs int64      `json:"tStartMs"`
	Segs    []json3Seg `json:"segs"`
}

type json3Seg struct {
	UTF8 string `json:"utf8"`
}

// parseJSON3 converts raw json3 caption data into ordered segments.
// Events without text (window definitions, blank lines) are skipped.
func parseJSON3(data []byte) ([]Segment, error) {
	var doc json3Doc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse json3 captions: %w", err)
	}

	var segs []Segment
	for _, ev := range doc.Events {
		var sb strings.Builder
		for _, s := range ev.Segs {
			sb.WriteString(s.UTF8)
		}

		text := strings.Join(strings.Fields(sb.String()), " ")
		if text == "" {
			continue
		}

		segs = append(segs, Segment{
			Start: time.Duration(ev.StartMs) * time.Millisecond,
			Text:  text,
		})
	}

	if len(segs) == 0 {
		return nil, fmt.Errorf("caption track contains no text events")
	}

	sort.SliceStable(segs, func(i, j int) bool { return segs[i].Start < segs[j].Start })

	return segs, nil
}
