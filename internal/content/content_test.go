package content

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChain(t *testing.T) {
	t.Parallel()

	appendA := func(in []byte) ([]byte, error) { return append(in, 'a'), nil }
	fail := func([]byte) ([]byte, error) { return nil, errors.New("boom") }

	out, err := Chain(appendA, appendA)([]byte("x"))
	require.NoError(t, err)
	assert.Equal(t, "xaa", string(out))

	_, err = Chain(appendA, fail, appendA)([]byte("x"))
	require.EqualError(t, err, "boom")

	out, err = Chain()([]byte("x"))
	require.NoError(t, err)
	assert.Equal(t, "x", string(out))
}

func TestInstructions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		contains []string
		excludes []string
	}{
		{
			name:     "paragraphs",
			input:    "Boil water.\r\n\r\n\r\n\r\nAdd pasta.",
			contains: []string{"<p>Boil water.</p>", "<p>Add pasta.</p>"},
		},
		{
			name:     "ordered steps",
			input:    "1. Chop\n2. Fry",
			contains: []string{"<ol>", "<li>Chop</li>", "<li>Fry</li>"},
		},
		{
			name:     "emphasis",
			input:    "Do **not** burn",
			contains: []string{"<strong>not</strong>"},
		},
		{
			name:     "raw html dropped",
			input:    "Stir <script>alert(1)</script> well",
			contains: []string{"Stir", "well"},
			excludes: []string{"<script", "alert(1)</script>"},
		},
		{
			name:     "headings demoted",
			input:    "# Sauce\nMix.",
			contains: []string{"<h3>Sauce</h3>"},
			excludes: []string{"<h1>"},
		},
		{
			name:     "javascript link neutralized",
			input:    "[x](javascript:alert(1))",
			excludes: []string{"javascript:"},
		},
		{
			name:     "linkify hardened",
			input:    "See https://example.com",
			contains: []string{`rel="nofollow noreferrer noopener"`, `target="_blank"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Instructions(tt.input)
			require.NoError(t, err)
			for _, want := range tt.contains {
				assert.Contains(t, got, want)
			}
			for _, unwanted := range tt.excludes {
				assert.NotContains(t, got, unwanted)
			}
		})
	}
}

func TestIngredients(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "plain lines",
			input: "flour\nwater\r\nsalt",
			want:  []string{"flour", "water", "salt"},
		},
		{
			name:  "markers stripped",
			input: "- flour\n* water\n• salt\n1. yeast\n2) sugar",
			want:  []string{"flour", "water", "salt", "yeast", "sugar"},
		},
		{
			name:  "blank lines skipped",
			input: "\n\n  flour  \n\n\nwater\n",
			want:  []string{"flour", "water"},
		},
		{
			name:  "quantities kept",
			input: "2 cups flour\n-1 tsp salt",
			want:  []string{"2 cups flour", "-1 tsp salt"},
		},
		{
			name:  "empty",
			input: "   ",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Ingredients(tt.input))
		})
	}
}

func TestSummary(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Boil water.", Summary("Boil **water**.", 50))
	assert.Equal(t, "Boil the…", Summary("Boil the water and add the pasta", 12))
	assert.Equal(t, "Chop Fry", Summary("1. Chop\n2. Fry", 50))
	assert.Empty(t, Summary("", 10))
}
