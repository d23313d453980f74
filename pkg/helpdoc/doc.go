// Package helpdoc renders the editor's help pages from markdown.
//
// Each page is a markdown file with optional YAML frontmatter:
//
//	---
//	title: Szybki start
//	order: 1
//	---
//	# Szybki start
//
//	Problemy? Napisz na {{.SupportEmail}}.
//
//	[!download|Pobierz .EML](/export/eml)
//
// The body is executed as a text/template with the renderer's Data, converted
// to HTML with goldmark and wrapped in the html/template layout. Two inline
// shortcuts are supported on top of CommonMark:
//
//   - [!button|Label](url) renders a call-to-action link.
//   - [!download|Label](url) renders the same link with a download attribute.
//
// Rendered pages are cached; the source filesystem is expected to be static.
package helpdoc
