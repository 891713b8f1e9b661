package content

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html/atom"
)

// SanitizeHTML strips every tag and attribute that recipe instructions have
// no use for.
func SanitizeHTML() Transformer {
	htmlSanitizer := sanitizer()
	return func(input []byte) ([]byte, error) {
		return htmlSanitizer.SanitizeBytes(input), nil
	}
}

// sanitizer is a reduced [bluemonday.UGCPolicy].
// Differences:
//
//   - Target _blank, nofollow and noreferrer for links
//   - No images or media (to avoid hot-linking)
//   - No layout elements (div, section, article, aside)
//   - Only the checkbox inputs produced by task lists
func sanitizer() *bluemonday.Policy {
	policy := bluemonday.NewPolicy()

	policy.AllowStandardURLs()
	policy.RequireNoFollowOnLinks(true)
	policy.RequireNoReferrerOnLinks(true)
	policy.AddTargetBlankToFullyQualifiedLinks(true)

	policy.AllowElements(
		"b",
		"blockquote",
		"br",
		"code",
		"del",
		"em",
		"h1", "h2", "h3", "h4", "h5", "h6",
		"hr",
		"i",
		"mark",
		"p",
		"pre",
		"s",
		"small",
		"strong",
		"sub",
		"sup",
		"u",
	)

	policy.AllowAttrs("href").OnElements("a")
	policy.AllowAttrs("type").Matching(bluemonday.SpaceSeparatedTokens).OnElements("input")
	policy.AllowAttrs("checked", "disabled").OnElements("input")

	policy.AllowLists()
	policy.AllowTables()

	return policy
}

// ScrubHTML tidies sanitized HTML for embedding under a recipe page:
// headings are demoted below the page's own, empty inline elements are
// removed, and task list checkboxes are forced read-only. Should be applied
// after sanitization.
func ScrubHTML() Transformer {
	return func(input []byte) ([]byte, error) {
		doc, err := goquery.NewDocumentFromReader(bytes.NewReader(input))
		if err != nil {
			return nil, fmt.Errorf("failed to parse HTML: %w", err)
		}
		body := doc.Find("body")
		if body.Length() == 0 {
			body = doc.Selection
		}
		demoteHeadings(body)
		removeEmptyInlineElements(body)
		disableInputs(body)
		out, err := body.Html()
		if err != nil {
			return nil, fmt.Errorf("failed to render scrubbed HTML: %w", err)
		}
		return []byte(out), nil
	}
}

// minHeadingLevel is the highest heading level allowed in rendered content;
// the page title and section headings use the levels above it.
const minHeadingLevel = 3

const maxHeadingLevel = 6

func demoteHeadings(sel *goquery.Selection) {
	sel.Find("h1, h2, h3, h4, h5, h6").Each(func(_ int, el *goquery.Selection) {
		node := el.Get(0)
		level, _ := strconv.Atoi(node.Data[1:])
		level = min(level+minHeadingLevel-1, maxHeadingLevel)
		node.Data = "h" + strconv.Itoa(level)
		node.DataAtom = atom.Lookup([]byte(node.Data))
	})
}

var inlineSelector = strings.Join([]string{
	"a", "b", "code", "del", "em", "i", "mark", "s", "small", "strong",
	"sub", "sup", "u",
}, ", ")

// removeEmptyInlineElements removes inline elements that have no text content
// and no children, such as the <em></em> left behind by stray markers.
func removeEmptyInlineElements(sel *goquery.Selection) {
	// Removing an element may expose its parent as newly empty
	for {
		removed := false
		sel.Find(inlineSelector).Each(func(_ int, el *goquery.Selection) {
			if strings.TrimSpace(el.Text()) == "" && el.Children().Length() == 0 {
				el.Remove()
				removed = true
			}
		})
		if !removed {
			break
		}
	}
}

func disableInputs(sel *goquery.Selection) {
	sel.Find("input").Each(func(_ int, el *goquery.Selection) {
		if el.AttrOr("type", "") != "checkbox" {
			el.Remove()
			return
		}
		el.SetAttr("disabled", "")
	})
}
