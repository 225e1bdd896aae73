package feedback

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Reply holds the fields recovered from a model response. Verified is true
// only when the raw response decoded as strict JSON; fields recovered through
// the degraded text fallback are never marked verified.
type Reply struct {
	Answer                string
	KeyPoints             []string
	ComprehensionQuestion string
	Verified              bool
}

type strictReply struct {
	Answer                string   `json:"answer"`
	KeyPoints             []string `json:"key_points"`
	ComprehensionQuestion string   `json:"comprehension_question"`
}

func (r strictReply) empty() bool {
	return strings.TrimSpace(r.Answer) == "" &&
		len(r.KeyPoints) == 0 &&
		strings.TrimSpace(r.ComprehensionQuestion) == ""
}

// ParseReply normalizes a raw model response into a Reply. Strict JSON
// decoding is attempted first; on failure the text goes through a best-effort
// line-oriented recovery. ErrUnparsable is returned when nothing non-empty
// can be recovered — fields are never fabricated.
func ParseReply(raw string) (Reply, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Reply{}, fmt.Errorf("%w: empty response", ErrUnparsable)
	}

	if reply, ok := parseStrict(trimmed); ok {
		reply.Verified = true
		return reply, nil
	}
	return parseDegraded(trimmed)
}

func parseStrict(raw string) (Reply, bool) {
	var parsed strictReply
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return Reply{}, false
	}
	if parsed.empty() {
		return Reply{}, false
	}
	return Reply{
		Answer:                parsed.Answer,
		KeyPoints:             parsed.KeyPoints,
		ComprehensionQuestion: parsed.ComprehensionQuestion,
	}, true
}

// parseDegraded cleans common generation artifacts (fenced code blocks, runs
// of blank lines) and then recovers up to three positional segments:
// answer, key points, follow-up question. Output is always unverified.
func parseDegraded(raw string) (Reply, error) {
	cleaned := collapseBlankRuns(stripCodeFences(raw))

	// Fencing is often the only thing wrong with the reply; retry strict
	// decoding on the cleaned text before falling back to segmentation.
	if reply, ok := parseStrict(strings.TrimSpace(cleaned)); ok {
		return reply, nil
	}

	segments := splitSegments(cleaned, 3)
	if len(segments) == 0 {
		return Reply{}, fmt.Errorf("%w: no recoverable segments", ErrUnparsable)
	}

	var reply Reply
	reply.Answer = segments[0]
	if len(segments) > 1 {
		reply.KeyPoints = splitKeyPoints(segments[1])
	}
	if len(segments) > 2 {
		reply.ComprehensionQuestion = segments[2]
	}
	return reply, nil
}

// stripCodeFences drops lines that are fenced code-block delimiters.
func stripCodeFences(raw string) string {
	lines := strings.Split(raw, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			continue
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

// collapseBlankRuns reduces runs of consecutive blank lines to a single blank line.
func collapseBlankRuns(raw string) string {
	lines := strings.Split(raw, "\n")
	out := make([]string, 0, len(lines))
	blank := false
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			if blank {
				continue
			}
			blank = true
			out = append(out, "")
			continue
		}
		blank = false
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

// splitSegments splits text into at most max blank-line-separated segments;
// everything past the last boundary merges into the final segment.
func splitSegments(raw string, max int) []string {
	blocks := strings.Split(raw, "\n\n")
	var segments []string
	for _, block := range blocks {
		if trimmed := strings.TrimSpace(block); trimmed != "" {
			segments = append(segments, trimmed)
		}
	}
	if len(segments) > max {
		tail := strings.Join(segments[max-1:], "\n\n")
		segments = append(segments[:max-1], tail)
	}
	return segments
}

// splitKeyPoints breaks a segment into bullet strings, dropping leading
// bullet markers and numbering.
func splitKeyPoints(segment string) []string {
	var points []string
	for _, line := range strings.Split(segment, "\n") {
		point := trimBulletMarker(strings.TrimSpace(line))
		if point != "" {
			points = append(points, point)
		}
	}
	return points
}

func trimBulletMarker(line string) string {
	for _, marker := range []string{"- ", "* ", "• "} {
		if strings.HasPrefix(line, marker) {
			return strings.TrimSpace(strings.TrimPrefix(line, marker))
		}
	}
	// Numbered bullets: "1. point" or "2) point".
	for i, r := range line {
		if r >= '0' && r <= '9' {
			continue
		}
		if i > 0 && (r == '.' || r == ')') {
			return strings.TrimSpace(line[i+1:])
		}
		break
	}
	return line
}
