package newsletter

import (
	"github.com/dmitrymomot/newsletter/pkg/compat"
	"github.com/dmitrymomot/newsletter/pkg/content"
	"github.com/dmitrymomot/newsletter/pkg/emailhtml"
	"github.com/dmitrymomot/newsletter/pkg/export"
)

// Type aliases - public API
type (
	// Newsletter holds every user-editable piece of an issue.
	Newsletter = content.Newsletter

	// Article is one entry of the article list.
	Article = content.Article

	// FeedbackOption is one clickable reaction of the feedback block.
	FeedbackOption = content.FeedbackOption

	// Patch is a partial update applied with content.Merge.
	Patch = content.Patch

	// Issue is one finding of the compatibility check.
	Issue = compat.Issue

	// Report aggregates the compatibility check.
	Report = compat.Report

	// Kind is a download format.
	Kind = export.Kind

	// ExportOption configures email and web archive containers.
	ExportOption = export.Option
)

// Download formats.
const (
	KindHTML    = export.KindHTML
	KindEML     = export.KindEML
	KindDraft   = export.KindDraft
	KindMHT     = export.KindMHT
	KindProject = export.KindProject
)

// Default returns the seed newsletter.
func Default() Newsletter {
	return content.Default()
}

// Render returns the complete HTML document for n.
func Render(n Newsletter) string {
	return emailhtml.Render(n)
}

// Lint runs the compatibility check on n.
func Lint(n Newsletter) Report {
	return compat.Summarize(compat.Check(n))
}

// Import decodes a project file. The result is usable even when an error
// is returned.
func Import(data []byte) (Newsletter, error) {
	return content.Import(data)
}

// Export renders n and wraps it as a download of kind k.
func Export(n Newsletter, k Kind, opts ...ExportOption) ([]byte, error) {
	return export.Build(n, emailhtml.Render(n), k, opts...)
}

// FileName returns the suggested download name of n exported as k.
func FileName(n Newsletter, k Kind) string {
	return export.FileName(n.IssueNumber, k)
}
