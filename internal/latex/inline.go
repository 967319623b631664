// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package latex

import (
	"regexp"
	"strings"
)

var (
	boldPattern   = regexp.MustCompile(`\*\*(.+?)\*\*`)
	italicPattern = regexp.MustCompile(`\*(.+?)\*`)
	codePattern   = regexp.MustCompile("`(.+?)`")
)

// reserved maps LaTeX special characters to their escaped forms.
var reserved = strings.NewReplacer(
	"&", `\&`,
	"%", `\%`,
	"$", `\$`,
	"#", `\#`,
	"_", `\_`,
	"{", `\{`,
	"}", `\}`,
	"~", `\textasciitilde{}`,
	"^", `\textasciicircum{}`,
)

// TranslateInline rewrites emphasis and code spans into LaTeX commands.
// Bold runs before italic so that ** is never read as two single stars.
func TranslateInline(line string) string {
	line = boldPattern.ReplaceAllString(line, `\textbf{${1}}`)
	line = italicPattern.ReplaceAllString(line, `\textit{${1}}`)
	line = codePattern.ReplaceAllString(line, `\texttt{${1}}`)
	return line
}

// Escape escapes LaTeX special characters in text. Text containing both a
// backslash and an opening brace is assumed to carry LaTeX commands already
// and is returned unchanged.
func Escape(text string) string {
	if strings.Contains(text, `\`) && strings.Contains(text, "{") {
		return text
	}
	return reserved.Replace(text)
}

// inline is the full treatment for prose: translate, then escape.
func inline(text string) string {
	return Escape(TranslateInline(text))
}
