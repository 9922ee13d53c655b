package client

import (
	"regexp"
	"strings"
)

// BodyInfo holds the attributes scraped from a TwiML response body.
// Counting literal tag substrings rather than parsing XML is intentional:
// the baseline compares raw markup output, malformed or not.
type BodyInfo struct {
	TTSInstances      int
	FallbackInstances int
	GatherTimeout     *string
	SpeechTimeout     *string
	HasErrorMarker    bool
}

var (
	gatherTimeoutRe = regexp.MustCompile(`timeout="([^"]*)"`)
	speechTimeoutRe = regexp.MustCompile(`speechTimeout="([^"]*)"`)
)

// InspectBody extracts synthesized-audio counts and the configured gather and
// speech timeouts from a raw response body. Timeouts are nil when the
// corresponding attribute does not appear.
func InspectBody(body string) BodyInfo {
	info := BodyInfo{
		TTSInstances:      strings.Count(body, "<Play>"),
		FallbackInstances: strings.Count(body, "<Say>"),
		HasErrorMarker:    strings.Contains(strings.ToLower(body), "error"),
	}

	if m := gatherTimeoutRe.FindStringSubmatch(body); m != nil {
		info.GatherTimeout = &m[1]
	}
	if m := speechTimeoutRe.FindStringSubmatch(body); m != nil {
		info.SpeechTimeout = &m[1]
	}

	return info
}
