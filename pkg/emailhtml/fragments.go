package emailhtml

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/newsletter/pkg/content"
)

const (
	readMore     = "Czytaj więcej"
	writeToUs    = "Napisz do nas ✉️"
	viewOnline   = "Wyświetl online"
	iconsBaseURL = "https://eyifvsv.stripocdn.email/content/assets/img/social-icons/logo-colored/"
)

// theme holds the style values of a newsletter, filtered for CSS contexts.
type theme struct {
	font, primary, accent, buttonText, text, bg, feedbackBg string
}

func themeOf(n content.Newsletter) theme {
	return theme{
		font:       cssValue(n.FontFamily),
		primary:    cssValue(n.PrimaryColor),
		accent:     cssValue(n.AccentColor),
		buttonText: cssValue(n.ButtonTextColor),
		text:       cssValue(n.TextColor),
		bg:         cssValue(n.BgColor),
		feedbackBg: cssValue(n.FeedbackBgColor),
	}
}

func (t theme) button(href, text string, width, height int) string {
	return Button(ButtonSpec{
		Href:      href,
		Text:      text,
		Fill:      t.accent,
		TextColor: t.buttonText,
		Font:      t.font,
		Width:     width,
		Height:    height,
	})
}

// Preheader renders the hidden inbox preview text. Empty text renders nothing.
func Preheader(n content.Newsletter) string {
	if n.Preheader == "" {
		return ""
	}
	return fmt.Sprintf(`<div style="display:none;font-size:1px;color:%s;line-height:1px;max-height:0px;max-width:0px;opacity:0;overflow:hidden;mso-hide:all;">%s%s</div>`,
		cssValue(n.BgColor), Escape(n.Preheader), strings.Repeat("&zwnj;&nbsp;", 20))
}

// ViewOnline renders the "view online" link row.
func ViewOnline(n content.Newsletter) string {
	if !n.ShowViewOnline {
		return ""
	}
	href := n.ViewOnlineURL
	if href == "" {
		href = content.PlaceholderLink
	}
	return fmt.Sprintf(`
<table %s width="100%%" style="min-width:100%%;">
<tr>
<td align="center" style="padding-top:15px;padding-bottom:15px;padding-left:20px;padding-right:20px;">
<a href="%s" style="font-family:%s;font-size:12px;color:#999999;text-decoration:underline;">%s</a>
</td>
</tr>
</table>`, tableAttrs, Escape(href), cssValue(n.FontFamily), viewOnline)
}

// Header renders the colored banner with the issue title and the logo.
func Header(n content.Newsletter) string {
	t := themeOf(n)
	return section("#ffffff", fmt.Sprintf(`<tr>
<td style="padding-top:20px;padding-bottom:0px;padding-left:20px;padding-right:20px;">
<table %s width="100%%" bgcolor="%s" style="background-color:%s;">
<tr>
<td style="padding-top:22px;padding-bottom:22px;padding-left:25px;padding-right:25px;">
<table %s width="100%%">
<tr>
<td style="vertical-align:middle;font-family:%s;font-size:22px;color:%s;font-weight:bold;line-height:28px;">
%s
</td>
<td width="100" align="right" style="vertical-align:middle;">
<img src="%s" width="80" border="0" alt="PORR" style="%swidth:80px;max-width:80px;height:auto;">
</td>
</tr>
</table>
</td>
</tr>
</table>
</td>
</tr>`, tableAttrs, t.primary, t.primary, tableAttrs, t.font, t.accent, Escape(n.IssueNumber), Escape(n.LogoURL), imgReset))
}

// Hero renders the main article: full-width image, title, description and a
// call-to-action.
func Hero(n content.Newsletter) string {
	t := themeOf(n)
	return section("#ffffff", fmt.Sprintf(`<tr>
<td style="padding-top:5px;padding-bottom:0px;padding-left:20px;padding-right:20px;">
%s
</td>
</tr>
<tr>
<td style="padding-top:25px;padding-bottom:10px;padding-left:20px;padding-right:20px;">
<h2 style="margin:0;padding:0;padding-bottom:15px;font-family:%s;font-size:20px;font-weight:bold;color:%s;line-height:26px;">
%s
</h2>
<p style="margin:0;padding:0;font-family:%s;font-size:14px;color:%s;line-height:22px;">
%s
</p>
</td>
</tr>
<tr>
<td style="padding-top:10px;padding-bottom:25px;padding-left:20px;padding-right:20px;">
%s
</td>
</tr>`, fluidImage(n.MainImage, n.MainTitle, 560),
		t.font, t.text, Escape(n.MainTitle),
		t.font, t.text, Escape(n.MainDescription),
		t.button(n.MainLink, readMore, 150, 40)))
}

// Articles renders every article as an image/text row, each preceded by a
// thin rule.
func Articles(n content.Newsletter) string {
	t := themeOf(n)
	blocks := make([]string, 0, len(n.Articles))
	for _, a := range n.Articles {
		blocks = append(blocks, article(t, a))
	}
	return strings.Join(blocks, "\n")
}

func article(t theme, a content.Article) string {
	left := column{align: "left", body: fmt.Sprintf(`<td style="padding-right:10px;">
<a href="%s">
%s
</a>
</td>`, Escape(a.Link), fluidImage(a.Image, a.Title, 270))}

	right := column{align: "right", body: fmt.Sprintf(`<td style="padding-top:5px;">
<h3 style="margin:0;padding:0;padding-bottom:10px;font-family:%s;font-size:18px;font-weight:bold;color:%s;line-height:24px;">
%s
</h3>
<p style="margin:0;padding:0;padding-bottom:15px;font-family:%s;font-size:14px;color:%s;line-height:20px;">
%s
</p>
%s
</td>`, t.font, t.text, Escape(a.Title), t.font, t.text, Escape(a.Description), t.button(a.Link, readMore, 130, 36))}

	return section("#ffffff", separator("1px solid #e8e8e8")+fmt.Sprintf(`
<tr>
<td style="padding-top:10px;padding-bottom:20px;padding-left:20px;padding-right:20px;">
%s
</td>
</tr>`, twoColumns(270, 20, left, right)))
}

// Video renders the video teaser. The thumbnail is 16:9, so Outlook gets a
// pinned 560x315 image and other clients a fluid one.
func Video(n content.Newsletter) string {
	if !n.ShowVideo {
		return ""
	}
	t := themeOf(n)
	link := Escape(n.VideoLink)
	return section("#ffffff", separator("2px solid "+t.accent)+fmt.Sprintf(`
<tr>
<td style="padding-top:15px;padding-bottom:10px;padding-left:20px;padding-right:20px;">
<!--[if mso]>
<a href="%s">%s</a>
<![endif]-->
<!--[if !mso]><!-->
<a href="%s">%s</a>
<!--<![endif]-->
</td>
</tr>
<tr>
<td style="padding-top:15px;padding-bottom:30px;padding-left:20px;padding-right:20px;">
<h3 style="margin:0;padding:0;padding-bottom:10px;font-family:%s;font-size:18px;font-weight:bold;color:%s;line-height:24px;">
🎬 %s
</h3>
<p style="margin:0;padding:0;padding-bottom:15px;font-family:%s;font-size:14px;color:%s;line-height:20px;">
%s
</p>
%s
</td>
</tr>`, link, fixedImage(n.VideoThumbnail, n.VideoTitle, 560, 315),
		link, fluidImage(n.VideoThumbnail, n.VideoTitle, 560),
		t.font, t.text, Escape(n.VideoTitle),
		t.font, t.text, Escape(n.VideoDescription),
		t.button(n.VideoReadMore, readMore, 150, 40)))
}

// Feedback renders the reaction row and the optional survey link.
func Feedback(n content.Newsletter) string {
	if !n.ShowFeedback {
		return ""
	}
	t := themeOf(n)

	var options strings.Builder
	for _, o := range n.FeedbackOptions {
		fmt.Fprintf(&options, `
<td align="center" style="padding-top:10px;padding-bottom:10px;padding-left:12px;padding-right:12px;">
<a href="%s" style="text-decoration:none;">
<table %s>
<tr>
<td align="center" style="font-size:32px;line-height:36px;padding-bottom:8px;">%s</td>
</tr>
<tr>
<td align="center" style="font-family:%s;font-size:12px;color:%s;line-height:16px;">%s</td>
</tr>
</table>
</a>
</td>`, Escape(o.Link), tableAttrs, Escape(o.Emoji), t.font, t.text, Escape(o.Label))
	}

	survey := ""
	if n.FeedbackSurveyLink != "" {
		survey = fmt.Sprintf(`
<tr>
<td align="center" style="padding-top:5px;padding-bottom:20px;padding-left:20px;padding-right:20px;">
<a href="%s" style="font-family:%s;font-size:14px;color:%s;text-decoration:underline;">%s</a>
</td>
</tr>`, Escape(n.FeedbackSurveyLink), t.font, t.primary, Escape(n.FeedbackSurveyText))
	}

	inner := section(t.feedbackBg, fmt.Sprintf(`<tr>
<td align="center" style="padding-top:35px;padding-bottom:10px;padding-left:20px;padding-right:20px;">
<h2 style="margin:0;padding:0;font-family:%s;font-size:22px;font-weight:bold;color:%s;line-height:28px;">
%s
</h2>
</td>
</tr>
<tr>
<td align="center" style="padding-top:5px;padding-bottom:25px;padding-left:20px;padding-right:20px;">
<p style="margin:0;padding:0;font-family:%s;font-size:14px;color:%s;line-height:20px;">
%s
</p>
</td>
</tr>
<tr>
<td align="center" style="padding-top:0px;padding-bottom:25px;padding-left:10px;padding-right:10px;">
<table %s>
<tr>%s
</tr>
</table>
</td>
</tr>%s
<tr>
<td style="height:35px;font-size:1px;line-height:1px;">&nbsp;</td>
</tr>`, t.font, t.primary, Escape(n.FeedbackTitle),
		t.font, t.text, Escape(n.FeedbackSubtitle),
		tableAttrs, options.String(), survey))

	return band(t.bg, fmt.Sprintf("<tr>\n<td align=\"center\">%s\n</td>\n</tr>", inner))
}

// Footer renders the brand-colored footer with two text columns and a mailto
// call-to-action.
func Footer(n content.Newsletter) string {
	t := themeOf(n)
	para := func(s string) string {
		return fmt.Sprintf(`<td>
<p style="margin:0;padding:0;font-family:%s;font-size:14px;color:#ffffff;line-height:22px;">
%s
</p>
</td>`, t.font, Escape(s))
	}

	return section(t.primary, fmt.Sprintf(`<tr>
<td style="padding-top:25px;padding-bottom:5px;padding-left:25px;padding-right:25px;" bgcolor="%s">
<h3 style="margin:0;padding:0;font-family:%s;font-size:18px;font-weight:bold;color:#ffffff;line-height:24px;">
%s
</h3>
</td>
</tr>
<tr>
<td style="padding-top:15px;padding-bottom:15px;padding-left:25px;padding-right:25px;" bgcolor="%s">
%s
</td>
</tr>
<tr>
<td align="center" style="padding-top:20px;padding-bottom:30px;padding-left:25px;padding-right:25px;" bgcolor="%s">
%s
</td>
</tr>`, t.primary, t.font, Escape(n.FooterTitle),
		t.primary, twoColumns(255, 40, column{align: "left", body: para(n.FooterLeft)}, column{align: "right", body: para(n.FooterRight)}),
		t.primary, t.button("mailto:"+n.ContactEmail, writeToUs, 200, 44)))
}

// Social renders the Facebook, LinkedIn and YouTube icon row.
func Social(n content.Newsletter) string {
	if !n.ShowSocial {
		return ""
	}
	icons := []struct{ url, name, file string }{
		{n.FacebookURL, "Facebook", "facebook"},
		{n.LinkedInURL, "LinkedIn", "linkedin"},
		{n.YouTubeURL, "YouTube", "youtube"},
	}
	var cells strings.Builder
	for _, ic := range icons {
		fmt.Fprintf(&cells, `
<td style="padding-left:15px;padding-right:15px;">
<a href="%s">
%s
</a>
</td>`, Escape(ic.url), fixedImage(iconsBaseURL+ic.file+"-logo-colored.png", ic.name, 40, 40))
	}
	return band(cssValue(n.BgColor), fmt.Sprintf(`<tr>
<td align="center" style="padding-top:25px;padding-bottom:25px;">
<table %s>
<tr>%s
</tr>
</table>
</td>
</tr>`, tableAttrs, cells.String()))
}

// Unsubscribe renders the legal footer for the given year.
func Unsubscribe(n content.Newsletter, year int) string {
	return band(cssValue(n.BgColor), fmt.Sprintf(`<tr>
<td align="center" style="padding-top:15px;padding-bottom:25px;padding-left:20px;padding-right:20px;">
<p style="margin:0;padding:0;font-size:11px;color:#bbbbbb;font-family:%s;line-height:16px;">
No longer want these emails? <a href="#" style="color:#bbbbbb;text-decoration:underline;">Unsubscribe</a>
<br>&copy; %d PORR S.A. Wszelkie prawa zastrzeżone.
</p>
</td>
</tr>`, cssValue(n.FontFamily), year))
}
