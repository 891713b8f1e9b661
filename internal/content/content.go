// Package content renders user-authored recipe text for display. Recipe
// fields are stored exactly as submitted; everything here runs at read time.
package content

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

// Transformer modifies content, returning modified content or an error.
type Transformer func(input []byte) ([]byte, error)

// Chain composes transformers left to right, failing fast if any of them
// errors.
func Chain(transformers ...Transformer) Transformer {
	return func(input []byte) ([]byte, error) {
		var err error
		for _, transform := range transformers {
			if input, err = transform(input); err != nil {
				return nil, err
			}
		}
		return input, nil
	}
}

var (
	normalizeText  = NormalizeText()
	markdownToHTML = MarkdownToHTML()
	sanitizeHTML   = SanitizeHTML()
	scrubHTML      = ScrubHTML()

	instructionsPipeline = Chain(normalizeText, markdownToHTML, sanitizeHTML, scrubHTML)
)

// Instructions renders Markdown recipe instructions into sanitized HTML that
// is safe to embed in a page.
func Instructions(text string) (string, error) {
	out, err := instructionsPipeline([]byte(text))
	if err != nil {
		return "", fmt.Errorf("failed to render instructions: %w", err)
	}
	return string(out), nil
}

// Ingredients splits ingredient text into display lines, one per non-blank
// line, with any leading list marker removed.
func Ingredients(text string) []string {
	normalized, _ := normalizeText([]byte(text))
	var lines []string
	for line := range strings.Lines(string(normalized)) {
		line = listMarker.ReplaceAllString(strings.TrimSpace(line), "")
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// Summary returns the leading plain text of Markdown instructions, cut at a
// word boundary to at most limit runes, with an ellipsis if anything was
// dropped.
func Summary(text string, limit int) string {
	rendered, err := instructionsPipeline([]byte(text))
	if err != nil {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(rendered))
	if err != nil {
		return ""
	}
	plain := strings.Join(strings.Fields(doc.Text()), " ")
	if utf8.RuneCountInString(plain) <= limit {
		return plain
	}
	cut := []rune(plain)[:limit]
	if idx := strings.LastIndexByte(string(cut), ' '); idx > 0 {
		return string(cut)[:idx] + "…"
	}
	return string(cut) + "…"
}
