// Package export wraps a rendered newsletter document into the containers the
// editor offers for download.
//
// # Containers
//
//   - EML: RFC 5322 message with a multipart/alternative body (plain text
//     derived from the HTML, then the HTML itself). Outlook opens it as a
//     received message that can be saved as an .oft template.
//   - Draft: the same message flagged with "X-Unsent: 1", which Outlook opens
//     as an editable draft.
//   - MHT: a multipart/related web archive with a single text/html part.
//   - HTMLFile: the document prefixed with a UTF-8 byte order mark.
//   - ProjectJSON: the indented project snapshot.
//
// All MIME framing uses CRLF line endings and the Subject header is always
// RFC 2047 base64 encoded.
//
// Tests pin the non-deterministic parts with WithDate and WithBoundary:
//
//	eml, err := export.EML(doc, n.IssueNumber,
//		export.WithDate(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)),
//		export.WithBoundary("b1"),
//	)
package export
