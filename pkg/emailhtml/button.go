package emailhtml

import (
	"fmt"
	"strings"
)

// ButtonSpec describes a call-to-action button.
type ButtonSpec struct {
	Href      string
	Text      string
	Fill      string
	TextColor string
	Font      string
	Width     int
	Height    int
}

// Button renders a rounded call-to-action twice: a VML roundrect for Outlook
// and a styled anchor for every other client. Both share fill and text color.
func Button(s ButtonSpec) string {
	if s.Width <= 0 {
		s.Width = 150
	}
	if s.Height <= 0 {
		s.Height = 40
	}
	href := Escape(s.Href)
	text := Escape(s.Text)
	fill := cssValue(s.Fill)
	color := cssValue(s.TextColor)
	font := cssValue(s.Font)

	var b strings.Builder
	b.WriteString("<!--[if mso]>\n")
	fmt.Fprintf(&b, `<v:roundrect xmlns:v="urn:schemas-microsoft-com:vml" xmlns:w="urn:schemas-microsoft-com:office:word" href="%s" style="height:%dpx;v-text-anchor:middle;width:%dpx;" arcsize="13%%" strokecolor="%s" fillcolor="%s">`,
		href, s.Height, s.Width, fill, fill)
	b.WriteString("\n  <w:anchorlock/>\n")
	fmt.Fprintf(&b, "  <center style=\"color:%s;font-family:%s;font-size:14px;font-weight:bold;\">%s</center>\n", color, font, text)
	b.WriteString("</v:roundrect>\n<![endif]-->\n")
	b.WriteString("<!--[if !mso]><!-->\n")
	fmt.Fprintf(&b, `<a href="%s" style="display:inline-block;padding-top:12px;padding-bottom:12px;padding-left:25px;padding-right:25px;background-color:%s;color:%s;font-family:%s;font-size:14px;font-weight:bold;text-decoration:none;border-radius:5px;mso-hide:all;">%s</a>`,
		href, fill, color, font, text)
	b.WriteString("\n<!--<![endif]-->")
	return b.String()
}
