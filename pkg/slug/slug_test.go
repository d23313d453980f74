package slug_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/newsletter/pkg/slug"
)

func TestMake(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		opts     []slug.Option
		expected string
	}{
		{name: "issue number", input: "Espinacz nr 4/2026", expected: "espinacz-nr-4-2026"},
		{name: "polish letters", input: "Zażółć gęślą jaźń", expected: "zazolc-gesla-jazn"},
		{name: "capital L with stroke", input: "Łask", expected: "lask"},
		{name: "punctuation runs collapse", input: "  Hello,   World!!  ", expected: "hello-world"},
		{name: "emoji dropped", input: "Misja 💪 wykonana", expected: "misja-wykonana"},
		{name: "empty", input: "", expected: ""},
		{name: "only symbols", input: "!@#$%", expected: ""},
		{name: "custom separator", input: "Nowy artykuł", opts: []slug.Option{slug.Separator("_")}, expected: "nowy_artykul"},
		{name: "keep case", input: "Young Energy", opts: []slug.Option{slug.Lowercase(false)}, expected: "Young-Energy"},
		{name: "max length cuts at word", input: "Bardzo długi tytuł", opts: []slug.Option{slug.MaxLength(10)}, expected: "bardzo"},
		{name: "max length longer than slug", input: "krótki", opts: []slug.Option{slug.MaxLength(50)}, expected: "krotki"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.expected, slug.Make(tt.input, tt.opts...))
		})
	}
}
