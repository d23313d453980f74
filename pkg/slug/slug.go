package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

type options struct {
	separator string
	maxLength int
	lowercase bool
}

// Option configures Make.
type Option func(*options)

// Separator sets the string placed between words. Default is "-".
func Separator(sep string) Option {
	return func(o *options) { o.separator = sep }
}

// MaxLength caps the slug length in bytes. The slug is cut at the last
// separator that fits. Zero means no limit.
func MaxLength(n int) Option {
	return func(o *options) { o.maxLength = n }
}

// Lowercase controls case folding. Default is true.
func Lowercase(v bool) Option {
	return func(o *options) { o.lowercase = v }
}

var transliterations = strings.NewReplacer(
	"ł", "l", "Ł", "L",
	"ß", "ss",
	"ø", "o", "Ø", "O",
	"æ", "ae", "Æ", "AE",
	"đ", "d", "Đ", "D",
)

// Make builds a slug from s.
func Make(s string, opts ...Option) string {
	o := options{separator: "-", lowercase: true}
	for _, opt := range opts {
		opt(&o)
	}

	s = transliterations.Replace(s)
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if folded, _, err := transform.String(t, s); err == nil {
		s = folded
	}
	if o.lowercase {
		s = strings.ToLower(s)
	}

	words := strings.FieldsFunc(s, func(r rune) bool {
		return r > unicode.MaxASCII || !(unicode.IsLetter(r) || unicode.IsDigit(r))
	})
	out := strings.Join(words, o.separator)

	if o.maxLength > 0 && len(out) > o.maxLength {
		out = out[:o.maxLength]
		if i := strings.LastIndex(out, o.separator); i > 0 && o.separator != "" {
			out = out[:i]
		}
	}
	return strings.Trim(out, o.separator)
}
