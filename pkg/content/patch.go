package content

// Patch is a top-level partial update. Nil fields are left untouched.
// Slices replace the whole collection; they are never merged element-wise.
type Patch struct {
	IssueNumber *string `json:"issueNumber,omitempty"`
	Preheader   *string `json:"preheader,omitempty"`
	LogoURL     *string `json:"logoUrl,omitempty"`

	MainTitle       *string `json:"mainTitle,omitempty"`
	MainDescription *string `json:"mainDescription,omitempty"`
	MainImage       *string `json:"mainImage,omitempty"`
	MainLink        *string `json:"mainLink,omitempty"`

	VideoThumbnail   *string `json:"videoThumbnail,omitempty"`
	VideoLink        *string `json:"videoLink,omitempty"`
	VideoTitle       *string `json:"videoTitle,omitempty"`
	VideoDescription *string `json:"videoDescription,omitempty"`
	VideoReadMore    *string `json:"videoReadMore,omitempty"`

	FooterTitle  *string `json:"footerTitle,omitempty"`
	FooterLeft   *string `json:"footerLeft,omitempty"`
	FooterRight  *string `json:"footerRight,omitempty"`
	ContactEmail *string `json:"contactEmail,omitempty"`
	FacebookURL  *string `json:"facebookUrl,omitempty"`
	LinkedInURL  *string `json:"linkedinUrl,omitempty"`
	YouTubeURL   *string `json:"youtubeUrl,omitempty"`

	PrimaryColor    *string `json:"primaryColor,omitempty"`
	AccentColor     *string `json:"accentColor,omitempty"`
	ButtonTextColor *string `json:"buttonTextColor,omitempty"`
	TextColor       *string `json:"textColor,omitempty"`
	BgColor         *string `json:"bgColor,omitempty"`
	FontFamily      *string `json:"fontFamily,omitempty"`

	ViewOnlineURL *string `json:"viewOnlineUrl,omitempty"`

	ShowVideo      *bool `json:"showVideo,omitempty"`
	ShowSocial     *bool `json:"showSocial,omitempty"`
	ShowViewOnline *bool `json:"showViewOnline,omitempty"`
	ShowFeedback   *bool `json:"showFeedback,omitempty"`

	FeedbackTitle      *string           `json:"feedbackTitle,omitempty"`
	FeedbackSubtitle   *string           `json:"feedbackSubtitle,omitempty"`
	FeedbackBgColor    *string           `json:"feedbackBgColor,omitempty"`
	FeedbackSurveyLink *string           `json:"feedbackSurveyLink,omitempty"`
	FeedbackSurveyText *string           `json:"feedbackSurveyText,omitempty"`
	FeedbackStyle      *FeedbackStyle    `json:"feedbackStyle,omitempty"`
	FeedbackOptions    *[]FeedbackOption `json:"feedbackOptions,omitempty"`

	Articles *[]Article `json:"articles,omitempty"`

	// CurrentArticleID uses a double pointer so a patch can clear the selection.
	CurrentArticleID **int `json:"currentArticleId,omitempty"`
	NextID           *int  `json:"nextId,omitempty"`
	NextFeedbackID   *int  `json:"nextFeedbackId,omitempty"`
}

// Merge applies p over n field by field. A selection that no longer
// resolves after Articles is replaced is cleared.
func Merge(n Newsletter, p Patch) Newsletter {
	out := n.Clone()

	setIf(&out.IssueNumber, p.IssueNumber)
	setIf(&out.Preheader, p.Preheader)
	setIf(&out.LogoURL, p.LogoURL)

	setIf(&out.MainTitle, p.MainTitle)
	setIf(&out.MainDescription, p.MainDescription)
	setIf(&out.MainImage, p.MainImage)
	setIf(&out.MainLink, p.MainLink)

	setIf(&out.VideoThumbnail, p.VideoThumbnail)
	setIf(&out.VideoLink, p.VideoLink)
	setIf(&out.VideoTitle, p.VideoTitle)
	setIf(&out.VideoDescription, p.VideoDescription)
	setIf(&out.VideoReadMore, p.VideoReadMore)

	setIf(&out.FooterTitle, p.FooterTitle)
	setIf(&out.FooterLeft, p.FooterLeft)
	setIf(&out.FooterRight, p.FooterRight)
	setIf(&out.ContactEmail, p.ContactEmail)
	setIf(&out.FacebookURL, p.FacebookURL)
	setIf(&out.LinkedInURL, p.LinkedInURL)
	setIf(&out.YouTubeURL, p.YouTubeURL)

	setIf(&out.PrimaryColor, p.PrimaryColor)
	setIf(&out.AccentColor, p.AccentColor)
	setIf(&out.ButtonTextColor, p.ButtonTextColor)
	setIf(&out.TextColor, p.TextColor)
	setIf(&out.BgColor, p.BgColor)
	setIf(&out.FontFamily, p.FontFamily)

	setIf(&out.ViewOnlineURL, p.ViewOnlineURL)

	setIf(&out.ShowVideo, p.ShowVideo)
	setIf(&out.ShowSocial, p.ShowSocial)
	setIf(&out.ShowViewOnline, p.ShowViewOnline)
	setIf(&out.ShowFeedback, p.ShowFeedback)

	setIf(&out.FeedbackTitle, p.FeedbackTitle)
	setIf(&out.FeedbackSubtitle, p.FeedbackSubtitle)
	setIf(&out.FeedbackBgColor, p.FeedbackBgColor)
	setIf(&out.FeedbackSurveyLink, p.FeedbackSurveyLink)
	setIf(&out.FeedbackSurveyText, p.FeedbackSurveyText)
	setIf(&out.FeedbackStyle, p.FeedbackStyle)

	if p.FeedbackOptions != nil {
		out.FeedbackOptions = cloneSlice(*p.FeedbackOptions)
	}
	if p.Articles != nil {
		out.Articles = cloneSlice(*p.Articles)
	}
	if p.CurrentArticleID != nil {
		out.CurrentArticleID = nil
		if *p.CurrentArticleID != nil {
			out.CurrentArticleID = intPtr(**p.CurrentArticleID)
		}
	}
	if out.CurrentArticleID != nil && out.articleIndex(*out.CurrentArticleID) < 0 {
		out.CurrentArticleID = nil
	}
	setIf(&out.NextID, p.NextID)
	setIf(&out.NextFeedbackID, p.NextFeedbackID)

	return out
}
