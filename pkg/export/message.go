package export

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"strings"
	"time"
)

// Header is one header line of a message. Order is preserved on output.
type Header struct {
	Key   string
	Value string
}

// Part is one body part of a multipart message.
type Part struct {
	Headers []Header
	Body    string
}

// Message is a MIME message with a multipart body.
type Message struct {
	Headers  []Header
	Subtype  string // "alternative", "related" or "mixed"
	Params   string // extra Content-Type parameters, e.g. `type="text/html"`
	Boundary string
	Parts    []Part
}

// WriteTo writes the message with CRLF line endings.
func (m Message) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if m.Boundary != "" {
		if err := mw.SetBoundary(m.Boundary); err != nil {
			return 0, fmt.Errorf("%w: %v", ErrInvalidBoundary, err)
		}
	}

	for _, h := range m.Headers {
		fmt.Fprintf(&buf, "%s: %s\r\n", h.Key, h.Value)
	}
	ct := fmt.Sprintf("multipart/%s; boundary=%q", m.Subtype, mw.Boundary())
	if m.Params != "" {
		ct = fmt.Sprintf("multipart/%s; %s; boundary=%q", m.Subtype, m.Params, mw.Boundary())
	}
	fmt.Fprintf(&buf, "Content-Type: %s\r\n\r\n", ct)

	for _, p := range m.Parts {
		hdr := make(textproto.MIMEHeader, len(p.Headers))
		for _, h := range p.Headers {
			hdr.Set(h.Key, h.Value)
		}
		pw, err := mw.CreatePart(hdr)
		if err != nil {
			return 0, fmt.Errorf("%w: %v", ErrEncodeFailed, err)
		}
		if _, err := io.WriteString(pw, crlf(p.Body)); err != nil {
			return 0, fmt.Errorf("%w: %v", ErrEncodeFailed, err)
		}
	}
	if err := mw.Close(); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrEncodeFailed, err)
	}
	return buf.WriteTo(w)
}

// Bytes renders the message into memory.
func (m Message) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if _, err := m.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// EncodeSubject returns s as an RFC 2047 base64 encoded word.
func EncodeSubject(s string) string {
	return "=?UTF-8?B?" + base64.StdEncoding.EncodeToString([]byte(s)) + "?="
}

func formatDate(t time.Time) string {
	return t.Format(time.RFC1123Z)
}

// crlf converts bare LF line endings to CRLF.
func crlf(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\n", "\r\n")
}
