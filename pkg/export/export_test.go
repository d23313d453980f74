package export

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"mime"
	"mime/multipart"
	"net/mail"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/newsletter/pkg/content"
	"github.com/dmitrymomot/newsletter/pkg/emailhtml"
)

var testDate = time.Date(2026, time.January, 29, 9, 30, 0, 0, time.UTC)

func testDoc() string {
	r := emailhtml.New(emailhtml.WithClock(func() time.Time { return testDate }))
	return r.Render(content.Default())
}

func readParts(t *testing.T, raw []byte) (*mail.Message, []string, []string) {
	t.Helper()

	msg, err := mail.ReadMessage(strings.NewReader(string(raw)))
	require.NoError(t, err)

	_, params, err := mime.ParseMediaType(msg.Header.Get("Content-Type"))
	require.NoError(t, err)

	var types, bodies []string
	mr := multipart.NewReader(msg.Body, params["boundary"])
	for {
		p, err := mr.NextPart()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		body, err := io.ReadAll(p)
		require.NoError(t, err)
		types = append(types, p.Header.Get("Content-Type"))
		bodies = append(bodies, string(body))
	}
	return msg, types, bodies
}

func TestEML(t *testing.T) {
	t.Parallel()

	doc := testDoc()
	raw, err := EML(doc, "Espinacz nr 4/2026", WithDate(testDate), WithBoundary("nl-boundary"))
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(string(raw), "From: newsletter@porr.pl\r\nTo: recipient@example.com\r\n"))
	require.Contains(t, string(raw), "Subject: =?UTF-8?B?"+base64.StdEncoding.EncodeToString([]byte("Espinacz nr 4/2026"))+"?=\r\n")
	require.Contains(t, string(raw), "MIME-Version: 1.0\r\n")
	require.Contains(t, string(raw), `Content-Type: multipart/alternative; boundary="nl-boundary"`)
	require.NotContains(t, string(raw), "X-Unsent")
	require.NotRegexp(t, "[^\r]\n", string(raw))

	msg, types, bodies := readParts(t, raw)
	require.Equal(t, "Thu, 29 Jan 2026 09:30:00 +0000", msg.Header.Get("Date"))
	require.Equal(t, []string{`text/plain; charset="utf-8"`, `text/html; charset="utf-8"`}, types)
	require.Contains(t, bodies[0], "Wiecha w górę na budynku serwerowni FRA32")
	require.NotContains(t, bodies[0], "<table")
	require.Equal(t, crlf(doc), bodies[1])

	dec := new(mime.WordDecoder)
	subject, err := dec.DecodeHeader(msg.Header.Get("Subject"))
	require.NoError(t, err)
	require.Equal(t, "Espinacz nr 4/2026", subject)
}

func TestDraft_IsFlaggedUnsent(t *testing.T) {
	t.Parallel()

	raw, err := Draft(testDoc(), "Nr 5", WithDate(testDate), WithBoundary("b"), WithTo("team@porr.pl"))
	require.NoError(t, err)

	msg, _, _ := readParts(t, raw)
	require.Equal(t, "1", msg.Header.Get("X-Unsent"))
	require.Equal(t, "team@porr.pl", msg.Header.Get("To"))
}

func TestMHT(t *testing.T) {
	t.Parallel()

	doc := testDoc()
	raw, err := MHT(doc, "Żółw", WithDate(testDate), WithBoundary("mht"))
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(raw), "From: <PORR Newsletter Generator>\r\n"))
	require.Contains(t, string(raw), `Content-Type: multipart/related; type="text/html"; boundary="mht"`)

	_, types, bodies := readParts(t, raw)
	require.Equal(t, []string{`text/html; charset="utf-8"`}, types)
	require.Equal(t, crlf(doc), bodies[0])
	require.Contains(t, string(raw), "Content-Location: file:///newsletter.html\r\n")
}

func TestContainers_RejectEmptyDocument(t *testing.T) {
	t.Parallel()

	_, err := EML("  ", "x")
	require.ErrorIs(t, err, ErrNoContent)
	_, err = MHT("", "x")
	require.ErrorIs(t, err, ErrNoContent)
}

func TestMessage_InvalidBoundary(t *testing.T) {
	t.Parallel()

	_, err := EML("<p>x</p>", "x", WithBoundary(strings.Repeat("b", 80)))
	require.ErrorIs(t, err, ErrInvalidBoundary)
}

func TestHTMLFile(t *testing.T) {
	t.Parallel()

	out := HTMLFile("<html></html>")
	require.Equal(t, []byte{0xEF, 0xBB, 0xBF}, out[:3])
	require.Equal(t, "<html></html>", string(out[3:]))
}

func TestProjectJSON_RoundTrips(t *testing.T) {
	t.Parallel()

	n := content.AddArticle(content.Default())
	data, err := ProjectJSON(n)
	require.NoError(t, err)
	require.True(t, json.Valid(data))

	back, err := content.Import(data)
	require.NoError(t, err)
	require.Equal(t, n, back)
}

func TestPlainText(t *testing.T) {
	t.Parallel()

	doc := `<html><head><style>body{color:red}</style></head><body>
<!--[if mso]><v:roundrect><center>Czytaj</center></v:roundrect><![endif]-->
<!--[if !mso]><!--><a href="#">Czytaj</a><!--<![endif]-->
<p>Tom &amp; Jerry</p>
<div>Podgląd&zwnj;&nbsp;&zwnj;&nbsp;</div>
</body></html>`

	text := PlainText(doc)
	require.NotContains(t, text, "color:red")
	require.Equal(t, 1, strings.Count(text, "Czytaj"))
	require.Contains(t, text, "Tom & Jerry")
	require.Contains(t, text, "Podgląd")
	require.NotContains(t, text, "\u200c")
}

func TestFileName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		issue    string
		kind     Kind
		expected string
	}{
		{"Espinacz nr 4/2026", KindHTML, "newsletter-espinacz-nr-4-2026.html"},
		{"Espinacz nr 4/2026", KindEML, "newsletter-espinacz-nr-4-2026.eml"},
		{"Espinacz nr 4/2026", KindDraft, "newsletter-espinacz-nr-4-2026-draft.eml"},
		{"Espinacz nr 4/2026", KindMHT, "newsletter-espinacz-nr-4-2026.mht"},
		{"Espinacz nr 4/2026", KindProject, "espinacz-nr-4-2026-projekt.json"},
		{"", KindHTML, "newsletter.html"},
		{"", KindProject, "newsletter-projekt.json"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.expected, FileName(tt.issue, tt.kind))
	}
	require.Equal(t, "message/rfc822", KindDraft.ContentType())
	require.Equal(t, "application/json", KindProject.ContentType())
}

func TestBuild(t *testing.T) {
	t.Parallel()

	n := content.Default()
	doc := testDoc()

	for _, k := range Kinds {
		data, err := Build(n, doc, k, WithDate(testDate), WithBoundary("b1"))
		require.NoError(t, err, k)
		require.NotEmpty(t, data, k)
	}

	raw, err := Build(n, doc, KindEML, WithDate(testDate))
	require.NoError(t, err)
	msg, _, _ := readParts(t, raw)
	subject, err := new(mime.WordDecoder).DecodeHeader(msg.Header.Get("Subject"))
	require.NoError(t, err)
	require.Equal(t, n.IssueNumber, subject)

	_, err = Build(n, doc, Kind("pdf"))
	require.ErrorIs(t, err, ErrUnknownKind)

	_, err = Build(n, " ", KindHTML)
	require.ErrorIs(t, err, ErrNoContent)
}
