package emailhtml

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/newsletter/pkg/content"
)

// Renderer turns newsletters into HTML documents.
// The zero value is not usable; create one with New.
type Renderer struct {
	now func() time.Time
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithClock sets the clock used for the copyright year.
func WithClock(now func() time.Time) Option {
	return func(r *Renderer) {
		if now != nil {
			r.now = now
		}
	}
}

// New creates a Renderer.
func New(opts ...Option) *Renderer {
	r := &Renderer{now: time.Now}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var defaultRenderer = New()

// Render renders n with the wall clock.
func Render(n content.Newsletter) string {
	return defaultRenderer.Render(n)
}

// Render returns the complete HTML document for n.
func (r *Renderer) Render(n content.Newsletter) string {
	bg := cssValue(n.BgColor)

	var b strings.Builder
	b.Grow(32 << 10)
	b.WriteString(head(n))
	fmt.Fprintf(&b, "<body style=\"margin:0;padding:0;background-color:%s;-webkit-text-size-adjust:100%%;-ms-text-size-adjust:100%%;\">\n", bg)
	b.WriteString(Preheader(n))
	fmt.Fprintf(&b, "\n<!--[if mso]>\n<table role=\"presentation\" %s width=\"100%%\" bgcolor=\"%s\"><tr><td align=\"center\">\n<![endif]-->", tableAttrs, bg)
	fmt.Fprintf(&b, "\n<table %s width=\"100%%\" id=\"bodyTable\" bgcolor=\"%s\" style=\"background-color:%s;\">\n<tr>\n<td align=\"center\" style=\"padding-top:0;padding-bottom:0;\">", tableAttrs, bg, bg)
	b.WriteString(ViewOnline(n))
	b.WriteString(Header(n))
	b.WriteString(Hero(n))
	b.WriteString(Articles(n))
	b.WriteString(Video(n))
	b.WriteString("\n</td>\n</tr>\n</table>")
	b.WriteString(Feedback(n))
	b.WriteString(band(bg, "<tr>\n<td align=\"center\">"+Footer(n)+"\n</td>\n</tr>"))
	b.WriteString(Social(n))
	b.WriteString(Unsubscribe(n, r.now().Year()))
	b.WriteString("\n<!--[if mso]>\n</td></tr></table>\n<![endif]-->\n</body>\n</html>")
	return b.String()
}

// Component adapts the rendered document to templ.Component so it can be
// served by handlers that render components.
func (r *Renderer) Component(n content.Newsletter) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, r.Render(n))
		return err
	})
}

func head(n content.Newsletter) string {
	bg := cssValue(n.BgColor)
	return fmt.Sprintf(`<!DOCTYPE html PUBLIC "-//W3C//DTD XHTML 1.0 Transitional//EN" "http://www.w3.org/TR/xhtml1/DTD/xhtml1-transitional.dtd">
<html xmlns="http://www.w3.org/1999/xhtml" xmlns:v="urn:schemas-microsoft-com:vml" xmlns:o="urn:schemas-microsoft-com:office:office" lang="pl">
<head>
<meta http-equiv="Content-Type" content="text/html; charset=UTF-8" />
<meta name="viewport" content="width=device-width, initial-scale=1.0" />
<meta http-equiv="X-UA-Compatible" content="IE=edge" />
<meta name="format-detection" content="telephone=no,address=no,email=no,date=no,url=no" />
<meta name="x-apple-disable-message-reformatting" />
<title>%s</title>
<!--[if gte mso 9]>
<xml>
  <o:OfficeDocumentSettings>
    <o:AllowPNG/>
    <o:PixelsPerInch>96</o:PixelsPerInch>
  </o:OfficeDocumentSettings>
</xml>
<style type="text/css">
  table {border-collapse:collapse;mso-table-lspace:0pt;mso-table-rspace:0pt;}
  img {border:0;height:auto;line-height:100%%;outline:none;text-decoration:none;-ms-interpolation-mode:bicubic;}
  a {text-decoration:none;}
</style>
<![endif]-->
<style type="text/css">
body, #bodyTable { margin:0 !important; padding:0 !important; width:100%% !important; height:100%% !important; }
body { background-color:%s; -webkit-text-size-adjust:100%%; -ms-text-size-adjust:100%%; }
table { border-collapse:collapse; mso-table-lspace:0pt; mso-table-rspace:0pt; }
img { border:0; height:auto; line-height:100%%; outline:none; text-decoration:none; -ms-interpolation-mode:bicubic; }
a { text-decoration:none; }
@media only screen and (max-width:620px) {
  table.responsive { width:100%% !important; max-width:100%% !important; }
  table.stack-col { display:block !important; width:100%% !important; max-width:100%% !important; }
  img { max-width:100%% !important; height:auto !important; }
  td { padding-left:15px !important; padding-right:15px !important; }
}
@media (prefers-color-scheme: dark) {
  body, #bodyTable { background-color:%s !important; }
}
</style>
</head>
`, Escape(n.IssueNumber), bg, bg)
}
