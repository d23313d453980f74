package export

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strictPolicy *bluemonday.Policy
	policyOnce   sync.Once
)

// PlainText derives the text/plain alternative from an HTML document.
// Tags, comments and <style> contents are dropped, entities are decoded and
// blank lines collapsed.
func PlainText(doc string) string {
	policyOnce.Do(func() {
		strictPolicy = bluemonday.StrictPolicy()
	})

	text := html.UnescapeString(strictPolicy.Sanitize(doc))
	text = strings.NewReplacer("\u200c", "", "\u00a0", " ").Replace(text)

	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		l = strings.Join(strings.Fields(l), " ")
		if l == "" {
			continue
		}
		out = append(out, l)
	}
	return strings.Join(out, "\n")
}
