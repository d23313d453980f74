package storage

import (
	"bufio"
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/dmitrymomot/newsletter/pkg/slug"
)

// MaxImageSize is the largest accepted image upload.
const MaxImageSize = 5 << 20

const (
	imagePrefix     = "images"
	publishedPrefix = "published"
)

var imageExt = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/gif":  ".gif",
}

// ValidateImage applies ImageRules to an upload.
func ValidateImage(size int64, contentType string) error {
	return ValidateFile(size, contentType, ImageRules()...)
}

// DetectMIME sniffs the media type of head, the first bytes of a file.
func DetectMIME(head []byte) string {
	return mediaType(http.DetectContentType(head))
}

// ImageKey returns a fresh key under images/ with an extension for contentType.
func ImageKey(contentType string) string {
	ext, ok := imageExt[contentType]
	if !ok {
		ext = ".img"
	}
	return imagePrefix + "/" + uuid.NewString() + ext
}

// PublishedKey is the key of the "view online" copy of an issue.
func PublishedKey(issue string) string {
	name := slug.Make(issue)
	if name == "" {
		name = "newsletter"
	}
	return publishedPrefix + "/" + name + ".html"
}

// UploadImage validates r against ImageRules and stores it under a new key.
// The type comes from the content alone; whatever the client declared is
// not consulted.
func UploadImage(ctx context.Context, s Storage, r io.Reader, size int64) (Object, error) {
	if s == nil {
		return Object{}, ErrNotConfigured
	}

	br := bufio.NewReaderSize(r, 512)
	head, _ := br.Peek(512)
	contentType := DetectMIME(head)
	if err := ValidateImage(size, contentType); err != nil {
		return Object{}, err
	}

	return s.Put(ctx, ImageKey(contentType), br, size, contentType)
}

// PublishHTML stores a rendered document as the public copy of issue and
// returns where it can be read.
func PublishHTML(ctx context.Context, s Storage, issue, html string) (Object, error) {
	if s == nil {
		return Object{}, ErrNotConfigured
	}
	return s.Put(ctx, PublishedKey(issue), strings.NewReader(html), int64(len(html)), "text/html; charset=utf-8")
}
