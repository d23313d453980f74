package export

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dmitrymomot/newsletter/pkg/content"
	"github.com/dmitrymomot/newsletter/pkg/slug"
)

// BOM is the UTF-8 byte order mark.
const BOM = "\ufeff"

// EML wraps doc in a multipart/alternative email message.
func EML(doc, subject string, opts ...Option) ([]byte, error) {
	return email(doc, subject, false, opts)
}

// Draft is EML flagged as unsent so Outlook opens it as a draft.
func Draft(doc, subject string, opts ...Option) ([]byte, error) {
	return email(doc, subject, true, opts)
}

func email(doc, subject string, draft bool, opts []Option) ([]byte, error) {
	if strings.TrimSpace(doc) == "" {
		return nil, ErrNoContent
	}
	o := newOptions(opts)

	headers := []Header{
		{"From", o.from},
		{"To", o.to},
		{"Subject", EncodeSubject(subject)},
		{"Date", formatDate(o.date)},
		{"MIME-Version", "1.0"},
		{"X-Mailer", o.mailer},
	}
	if draft {
		headers = append(headers, Header{"X-Unsent", "1"})
	}

	return Message{
		Headers:  headers,
		Subtype:  "alternative",
		Boundary: o.boundary,
		Parts: []Part{
			{
				Headers: []Header{
					{"Content-Type", `text/plain; charset="utf-8"`},
					{"Content-Transfer-Encoding", "8bit"},
				},
				Body: PlainText(doc),
			},
			{
				Headers: []Header{
					{"Content-Type", `text/html; charset="utf-8"`},
					{"Content-Transfer-Encoding", "8bit"},
				},
				Body: doc,
			},
		},
	}.Bytes()
}

// MHT wraps doc in a single-part web archive.
func MHT(doc, subject string, opts ...Option) ([]byte, error) {
	if strings.TrimSpace(doc) == "" {
		return nil, ErrNoContent
	}
	o := newOptions(opts)

	return Message{
		Headers: []Header{
			{"From", "<" + o.mailer + ">"},
			{"Subject", EncodeSubject(subject)},
			{"Date", formatDate(o.date)},
			{"MIME-Version", "1.0"},
		},
		Subtype:  "related",
		Params:   `type="text/html"`,
		Boundary: o.boundary,
		Parts: []Part{{
			Headers: []Header{
				{"Content-Type", `text/html; charset="utf-8"`},
				{"Content-Transfer-Encoding", "8bit"},
				{"Content-Location", "file:///newsletter.html"},
			},
			Body: doc,
		}},
	}.Bytes()
}

// HTMLFile prefixes doc with a byte order mark.
func HTMLFile(doc string) []byte {
	return []byte(BOM + doc)
}

// ProjectJSON encodes the project snapshot.
func ProjectJSON(n content.Newsletter) ([]byte, error) {
	data, err := json.MarshalIndent(n, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncodeFailed, err)
	}
	return data, nil
}

// Kind is a downloadable format.
type Kind string

const (
	KindHTML    Kind = "html"
	KindEML     Kind = "eml"
	KindDraft   Kind = "draft"
	KindMHT     Kind = "mht"
	KindProject Kind = "json"
)

// ContentType returns the MIME type used when serving a download of kind k.
func (k Kind) ContentType() string {
	switch k {
	case KindHTML:
		return "text/html; charset=utf-8"
	case KindEML, KindDraft, KindMHT:
		return "message/rfc822"
	case KindProject:
		return "application/json"
	}
	return "application/octet-stream"
}

// Kinds lists the download formats.
var Kinds = []Kind{KindHTML, KindEML, KindDraft, KindMHT, KindProject}

// Build produces the download of kind k for n. doc is the rendered HTML of n;
// the subject of email containers is the issue title.
func Build(n content.Newsletter, doc string, k Kind, opts ...Option) ([]byte, error) {
	switch k {
	case KindHTML:
		if strings.TrimSpace(doc) == "" {
			return nil, ErrNoContent
		}
		return HTMLFile(doc), nil
	case KindEML:
		return EML(doc, n.IssueNumber, opts...)
	case KindDraft:
		return Draft(doc, n.IssueNumber, opts...)
	case KindMHT:
		return MHT(doc, n.IssueNumber, opts...)
	case KindProject:
		return ProjectJSON(n)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownKind, string(k))
}

// FileName returns the download name for an issue.
func FileName(issue string, k Kind) string {
	s := slug.Make(issue, slug.MaxLength(60))
	if k == KindProject {
		if s == "" {
			s = "newsletter"
		}
		return s + "-projekt.json"
	}
	base := "newsletter"
	if s != "" {
		base += "-" + s
	}
	switch k {
	case KindDraft:
		return base + "-draft.eml"
	case KindEML:
		return base + ".eml"
	case KindMHT:
		return base + ".mht"
	}
	return base + ".html"
}
