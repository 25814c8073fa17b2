// Package textutil provides small text formatting helpers for help output.
package textutil

import (
	"strings"

	"github.com/mitchellh/go-wordwrap"
)

// helpWidth is the wrap column for help paragraphs.
const helpWidth = 76

// Indent prefixes every non-empty line of text with n spaces.
func Indent(text string, n int) string {
	prefix := strings.Repeat(" ", n)
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if line == "" {
			continue
		}
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}

// WrapIndent wraps text to the help width and indents the result by n spaces.
func WrapIndent(text string, n int) string {
	return Indent(wordwrap.WrapString(text, helpWidth-uint(n)), n)
}
