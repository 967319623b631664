// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package latex

import "strings"

// Region is a half-open range of line indexes [Start, End) consumed as
// front matter.
type Region struct {
	Start int
	End   int
}

// FrontMatter holds the paper header pulled out of the document before the
// body pass. Fields are unescaped; empty means the marker was absent.
type FrontMatter struct {
	Title    string
	Authors  string
	Abstract string

	// regions lists consumed line ranges in document order.
	regions []Region
}

// Regions returns the consumed line ranges in document order.
func (fm FrontMatter) Regions() []Region {
	return fm.regions
}

// regionAt returns the region starting at line i, if any.
func (fm FrontMatter) regionAt(i int) (Region, bool) {
	for _, r := range fm.regions {
		if r.Start == i {
			return r, true
		}
	}
	return Region{}, false
}

// covers reports whether line i lies inside a consumed region.
func (fm FrontMatter) covers(i int) bool {
	for _, r := range fm.regions {
		if i >= r.Start && i < r.End {
			return true
		}
	}
	return false
}

type headerKind int

const (
	headerNone headerKind = iota
	headerTitle
	headerAuthors
	headerAbstract
)

// classifyHeader reports which front-matter header line is, if any. The
// keyword match is case-insensitive; the marker itself is not.
func classifyHeader(line string) headerKind {
	lower := strings.ToLower(line)
	switch {
	case strings.HasPrefix(line, "# ") && strings.Contains(lower, "title"):
		return headerTitle
	case strings.HasPrefix(line, "## ") && strings.Contains(lower, "author"):
		return headerAuthors
	case strings.HasPrefix(line, "## ") && strings.Contains(lower, "abstract"):
		return headerAbstract
	}
	return headerNone
}

// ExtractFrontMatter scans lines for the title, authors and abstract blocks.
// Only the first header of each kind counts; later ones stay in the body.
func ExtractFrontMatter(lines []string) FrontMatter {
	var (
		fm   FrontMatter
		seen = make(map[headerKind]bool)
	)

	for i := 0; i < len(lines); {
		kind := classifyHeader(lines[i])
		if kind == headerNone || seen[kind] {
			i++
			continue
		}
		seen[kind] = true

		start := i
		switch kind {
		case headerTitle, headerAuthors:
			value := ""
			if i+1 < len(lines) {
				value = strings.TrimSpace(lines[i+1])
			}
			if kind == headerTitle {
				fm.Title = value
			} else {
				fm.Authors = value
			}
			i = min(i+2, len(lines))
		case headerAbstract:
			i++
			var parts []string
			for i < len(lines) && !strings.HasPrefix(lines[i], "#") {
				if s := strings.TrimSpace(lines[i]); s != "" {
					parts = append(parts, s)
				}
				i++
			}
			fm.Abstract = strings.Join(parts, " ")
		}
		fm.regions = append(fm.regions, Region{Start: start, End: i})
	}

	return fm
}
