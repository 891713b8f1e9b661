package content

import (
	"bytes"
	"regexp"
)

var (
	// nbspPattern matches both the HTML entity &nbsp; (case insensitive) and
	// the unicode non-breaking space character (U+00A0).
	nbspPattern = regexp.MustCompile("(?i)&nbsp;|\xc2\xa0")

	// Trailing whitespace on lines is never intentional, and two trailing
	// spaces would otherwise become a hard line break.
	trailingWhitespace = regexp.MustCompile(`(?m)[ \t]+$`)

	// Runs of blank lines carry no more meaning than a single one.
	extraBlankLines = regexp.MustCompile(`\n{3,}`)

	// listMarker matches a bullet or ordinal prefix on an ingredient line,
	// e.g. "- ", "* ", "• " or "1. ".
	listMarker = regexp.MustCompile(`^(?:[-*+•]|\d+[.)])\s+`)
)

// NormalizeText converts line endings to Unix, replaces non-breaking spaces,
// strips trailing whitespace, and collapses runs of blank lines.
func NormalizeText() Transformer {
	return func(input []byte) ([]byte, error) {
		input = bytes.ReplaceAll(input, []byte("\r\n"), []byte("\n"))
		input = bytes.ReplaceAll(input, []byte("\r"), []byte("\n"))
		input = nbspPattern.ReplaceAll(input, []byte{' '})
		input = trailingWhitespace.ReplaceAll(input, nil)
		input = extraBlankLines.ReplaceAll(input, []byte("\n\n"))
		return bytes.TrimSpace(input), nil
	}
}
