package domain

import (
	"regexp"
	"strings"
)

type SegmentKind int

const (
	SegmentText SegmentKind = iota
	SegmentLink
	SegmentLineBreak
)

// Segment is one piece of structured message text.
type Segment struct {
	Kind SegmentKind
	Text string
	// LinkTarget is only set for SegmentLink.
	LinkTarget string
}

var linkPattern = regexp.MustCompile(`(?i)\bhttps?://[^\s<>"]+`)

// ParseSegments splits raw text into text, link and line break segments.
func ParseSegments(text string) []Segment {
	var segments []Segment
	for i, line := range strings.Split(text, "\n") {
		if i > 0 {
			segments = append(segments, Segment{Kind: SegmentLineBreak, Text: "\n"})
		}
		cursor := 0
		for _, loc := range linkPattern.FindAllStringIndex(line, -1) {
			if loc[0] > cursor {
				segments = append(segments, Segment{Kind: SegmentText, Text: line[cursor:loc[0]]})
			}
			link := line[loc[0]:loc[1]]
			segments = append(segments, Segment{Kind: SegmentLink, Text: link, LinkTarget: link})
			cursor = loc[1]
		}
		if cursor < len(line) {
			segments = append(segments, Segment{Kind: SegmentText, Text: line[cursor:]})
		}
	}
	return segments
}

// SegmentsText joins the segments back into plain text.
func SegmentsText(segments []Segment) string {
	var b strings.Builder
	for _, s := range segments {
		b.WriteString(s.Text)
	}
	return b.String()
}
