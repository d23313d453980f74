package emailhtml

import (
	"fmt"
	"strings"
)

const (
	tableAttrs = `border="0" cellpadding="0" cellspacing="0"`
	imgReset   = "display:block;border:0;outline:none;text-decoration:none;-ms-interpolation-mode:bicubic;"
)

// column is one half of a two-column row.
type column struct {
	align string
	body  string
}

// twoColumns lays out left and right side by side. Outlook gets a fixed-width
// table row with a spacer cell; other clients get two inline-block tables
// marked stack-col, which the responsive media query turns into full-width
// blocks.
func twoColumns(width, gutter int, left, right column) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<!--[if mso]>\n<table %s width=\"100%%\"><tr>\n<td width=\"%d\" valign=\"top\">\n<![endif]-->\n", tableAttrs, width)
	b.WriteString(stackColumn(width, left))
	fmt.Fprintf(&b, "\n<!--[if mso]>\n</td>\n<td width=\"%d\" style=\"font-size:1px;line-height:1px;\">&nbsp;</td>\n<td width=\"%d\" valign=\"top\">\n<![endif]-->\n", gutter, width)
	b.WriteString(stackColumn(width, right))
	b.WriteString("\n<!--[if mso]>\n</td>\n</tr></table>\n<![endif]-->")
	return b.String()
}

func stackColumn(width int, c column) string {
	return fmt.Sprintf(`<table %s width="%d" align="%s" class="stack-col" style="display:inline-block;vertical-align:top;">
<tr>
%s
</tr>
</table>`, tableAttrs, width, c.align, c.body)
}

// section opens a centered 600px content table.
func section(bgcolor, rows string) string {
	return fmt.Sprintf(`
<table %s width="600" align="center" style="width:600px;max-width:600px;" class="responsive" bgcolor="%s">
%s
</table>`, tableAttrs, bgcolor, rows)
}

// band is a full-width table painted with the page background.
func band(bgcolor, rows string) string {
	return fmt.Sprintf(`
<table %s width="100%%" bgcolor="%s" style="background-color:%s;">
%s
</table>`, tableAttrs, bgcolor, bgcolor, rows)
}

// separator is a one-pixel rule drawn as a bordered cell.
func separator(border string) string {
	return fmt.Sprintf(`<tr>
<td style="padding-top:10px;padding-bottom:10px;padding-left:20px;padding-right:20px;">
<table %s width="100%%">
<tr>
<td style="border-top:%s;font-size:1px;line-height:1px;" height="1">&nbsp;</td>
</tr>
</table>
</td>
</tr>`, tableAttrs, border)
}

// fluidImage is an image with a fixed width whose height follows the source
// aspect ratio. No height attribute is emitted.
func fluidImage(src, alt string, width int) string {
	return fmt.Sprintf(`<img src="%s" width="%d" border="0" alt="%s" style="%swidth:%dpx;max-width:100%%;height:auto;">`,
		Escape(src), width, Escape(alt), imgReset, width)
}

// fixedImage is an image whose aspect ratio is known up front, so both
// dimensions are pinned.
func fixedImage(src, alt string, width, height int) string {
	return fmt.Sprintf(`<img src="%s" width="%d" height="%d" border="0" alt="%s" style="%swidth:%dpx;height:%dpx;">`,
		Escape(src), width, height, Escape(alt), imgReset, width, height)
}
