package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeHTML(t *testing.T) {
	t.Parallel()
	sanitize := SanitizeHTML()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "strips script",
			input: `<p>Stir</p><script>alert(1)</script>`,
			want:  `<p>Stir</p>`,
		},
		{
			name:  "strips event handlers",
			input: `<p onclick="alert(1)">Stir</p>`,
			want:  `<p>Stir</p>`,
		},
		{
			name:  "strips images",
			input: `<p>Plate<img src="https://example.com/x.png"></p>`,
			want:  `<p>Plate</p>`,
		},
		{
			name:  "strips javascript links",
			input: `<a href="javascript:alert(1)">click</a>`,
			want:  `click`,
		},
		{
			name:  "hardens external links",
			input: `<a href="https://example.com">site</a>`,
			want:  `<a href="https://example.com" rel="nofollow noreferrer noopener" target="_blank">site</a>`,
		},
		{
			name:  "keeps lists",
			input: `<ol><li>one</li><li>two</li></ol>`,
			want:  `<ol><li>one</li><li>two</li></ol>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := sanitize([]byte(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestScrubHTML(t *testing.T) {
	t.Parallel()
	scrub := ScrubHTML()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "demotes h1",
			input: "<h1>Sauce</h1>",
			want:  "<h3>Sauce</h3>",
		},
		{
			name:  "demotes h2",
			input: "<h2>Sauce</h2>",
			want:  "<h4>Sauce</h4>",
		},
		{
			name:  "clamps deep headings",
			input: "<h5>a</h5><h6>b</h6>",
			want:  "<h6>a</h6><h6>b</h6>",
		},
		{
			name:  "removes empty em",
			input: "<p>Hello<em></em>World</p>",
			want:  "<p>HelloWorld</p>",
		},
		{
			name:  "removes nested empty inlines",
			input: "<p>Hello<em><strong> </strong></em>World</p>",
			want:  "<p>HelloWorld</p>",
		},
		{
			name:  "keeps non-empty inline",
			input: "<p>Hello<strong>!</strong>World</p>",
			want:  "<p>Hello<strong>!</strong>World</p>",
		},
		{
			name:  "disables checkboxes",
			input: `<ul><li><input type="checkbox"/> salt</li></ul>`,
			want:  `<ul><li><input type="checkbox" disabled=""/> salt</li></ul>`,
		},
		{
			name:  "removes other inputs",
			input: `<p><input type="text"/>x</p>`,
			want:  `<p>x</p>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := scrub([]byte(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}
