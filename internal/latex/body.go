// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package latex

import (
	"regexp"
	"strings"
)

const (
	fence       = "```"
	listMarker  = "- "
	beginItems  = `\begin{itemize}`
	endItems    = `\end{itemize}`
	beginVerbat = `\begin{verbatim}`
	endVerbat   = `\end{verbatim}`
)

var (
	// ordinalPattern matches a leading section number such as "3. ".
	ordinalPattern = regexp.MustCompile(`^\d+\.\s*`)

	// rulePattern matches a horizontal rule of three or more dashes.
	rulePattern = regexp.MustCompile(`^-{3,}\s*$`)
)

// scanState is the multi-line condition carried across body lines.
type scanState int

const (
	stateNormal scanState = iota
	stateVerbatim
)

// isListItem reports whether line is a list item once indentation is removed.
func isListItem(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), listMarker)
}

// sectionTitle strips the header marker and any leading ordinal.
func sectionTitle(line, marker string) string {
	header := strings.TrimSpace(strings.TrimPrefix(line, marker))
	return ordinalPattern.ReplaceAllString(header, "")
}

// TransformBody converts the document body to LaTeX lines, skipping the
// regions recorded in fm whatever the scan state. A verbatim block left
// open at end of input is closed.
func TransformBody(lines []string, fm FrontMatter) []string {
	var (
		out   []string
		state = stateNormal
	)

	// listItemAt reports whether line j is emitted as a list item. Lines
	// consumed as front matter never are.
	listItemAt := func(j int) bool {
		return j >= 0 && j < len(lines) && isListItem(lines[j]) && !fm.covers(j)
	}

	for i := 0; i < len(lines); {
		line := lines[i]

		if r, ok := fm.regionAt(i); ok {
			i = r.End
			continue
		}

		if strings.HasPrefix(line, fence) {
			if state == stateNormal {
				out = append(out, beginVerbat)
				state = stateVerbatim
			} else {
				out = append(out, endVerbat)
				state = stateNormal
			}
			i++
			continue
		}

		if state == stateVerbatim {
			out = append(out, line)
			i++
			continue
		}

		switch {
		case strings.HasPrefix(line, "### "):
			out = append(out, `\section{`+Escape(sectionTitle(line, "### "))+`}`)
		case strings.HasPrefix(line, "## "):
			out = append(out, `\section{`+Escape(sectionTitle(line, "## "))+`}`)
		case rulePattern.MatchString(line):
			// Rules carry no content.
		case isListItem(line):
			item := strings.TrimSpace(line)[len(listMarker):]
			if !listItemAt(i - 1) {
				out = append(out, beginItems)
			}
			out = append(out, `  \item `+inline(item))
			if !listItemAt(i + 1) {
				out = append(out, endItems)
			}
		case strings.TrimSpace(line) == "":
			out = append(out, "")
		default:
			out = append(out, inline(line))
		}
		i++
	}

	if state == stateVerbatim {
		out = append(out, endVerbat)
	}

	return out
}
