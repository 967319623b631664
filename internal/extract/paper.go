// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"errors"
	"regexp"
	"strings"
)

// ErrNoPaper is returned when no matcher finds a paper in the log.
var ErrNoPaper = errors.New("no paper found in log")

// doneMarker terminates the paper in an orchestrator transcript.
const doneMarker = "[DONE]"

// Matcher locates a paper inside a transcript. Pattern must capture the
// paper text in its first group.
type Matcher struct {
	Name    string
	Pattern *regexp.Regexp
}

// Match returns the trimmed first capture group of the leftmost match,
// or "" when the pattern does not match.
func (m Matcher) Match(content string) string {
	sub := m.Pattern.FindStringSubmatch(content)
	if len(sub) < 2 {
		return ""
	}
	return strings.TrimSpace(sub[1])
}

var (
	// titleBlock is a "# Title" header through the done marker or end of log.
	titleBlock = regexp.MustCompile(`(?is)(#\s+Title.*?)(?:\[DONE\]|\z)`)

	// announcedPaper is the first header after a "final paper" or
	// "arxiv-style paper" announcement.
	announcedPaper = regexp.MustCompile(`(?is)(?:final paper|arxiv-style paper)[^\n]*\n+(#.*?)(?:\[DONE\]|\z)`)
)

// DefaultMatchers returns the strict title-block matcher followed by the
// looser announcement fallback.
func DefaultMatchers() []Matcher {
	return []Matcher{
		{Name: "title-block", Pattern: titleBlock},
		{Name: "announced-paper", Pattern: announcedPaper},
	}
}

// Paper tries matchers in order and returns the first non-empty match with
// any leftover done markers removed.
func Paper(content string, matchers []Matcher) (string, error) {
	for _, m := range matchers {
		paper := m.Match(content)
		if paper == "" {
			continue
		}
		paper = strings.TrimSpace(strings.ReplaceAll(paper, doneMarker, ""))
		if paper != "" {
			return paper, nil
		}
	}
	return "", ErrNoPaper
}
