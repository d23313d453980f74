package storage

import (
	"fmt"
	"slices"
	"strings"
)

// ImageTypes are the formats every mail client in scope renders inline.
// WebP, SVG and BMP are missing from desktop Outlook and are refused.
var ImageTypes = []string{"image/png", "image/jpeg", "image/gif"}

// ValidationRule checks an upload of size bytes whose type was sniffed from
// its content.
type ValidationRule interface {
	Validate(size int64, mimeType string) error
}

// ValidationFunc adapts a function to ValidationRule.
type ValidationFunc func(size int64, mimeType string) error

// Validate implements ValidationRule.
func (f ValidationFunc) Validate(size int64, mimeType string) error {
	return f(size, mimeType)
}

// ValidateFile runs rules in order and returns the first failure.
func ValidateFile(size int64, mimeType string, rules ...ValidationRule) error {
	for _, rule := range rules {
		if err := rule.Validate(size, mimeType); err != nil {
			return err
		}
	}
	return nil
}

// NotEmpty rejects zero-length uploads.
func NotEmpty() ValidationRule {
	return ValidationFunc(func(size int64, _ string) error {
		if size <= 0 {
			return ErrEmptyFile
		}
		return nil
	})
}

// MaxSize rejects uploads larger than limit bytes.
func MaxSize(limit int64) ValidationRule {
	return ValidationFunc(func(size int64, _ string) error {
		if size > limit {
			return fmt.Errorf("%w: %d bytes, limit %d", ErrFileTooLarge, size, limit)
		}
		return nil
	})
}

// AllowedTypes accepts only the listed media types. Parameters such as
// charset are ignored.
func AllowedTypes(types ...string) ValidationRule {
	return ValidationFunc(func(_ int64, mimeType string) error {
		if !slices.Contains(types, mediaType(mimeType)) {
			return fmt.Errorf("%w: %s", ErrNotAnImage, mimeType)
		}
		return nil
	})
}

// ImageOnly accepts the formats listed in ImageTypes.
func ImageOnly() ValidationRule {
	return AllowedTypes(ImageTypes...)
}

// ImageRules is the rule set applied to image uploads.
func ImageRules() []ValidationRule {
	return []ValidationRule{NotEmpty(), MaxSize(MaxImageSize), ImageOnly()}
}

func mediaType(ct string) string {
	ct, _, _ = strings.Cut(ct, ";")
	return strings.ToLower(strings.TrimSpace(ct))
}
