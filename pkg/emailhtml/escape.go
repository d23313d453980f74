package emailhtml

import "strings"

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// Escape replaces the five HTML-significant characters with entities.
// The result is safe both as element text and inside a quoted attribute.
func Escape(s string) string {
	return htmlEscaper.Replace(s)
}

// cssValue strips characters that could end a declaration, an attribute or
// the <style> element. Entities are not decoded inside <style>, so escaping
// is not an option there.
func cssValue(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '<', '>', '"', '&', ';', '{', '}', '\\':
			return -1
		}
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, s)
}
