package content

// FeedbackStyle selects the glyph set used by the reaction row.
type FeedbackStyle string

const (
	StyleEmoji  FeedbackStyle = "emoji"
	StyleStars  FeedbackStyle = "stars"
	StyleThumbs FeedbackStyle = "thumbs"
)

// Valid reports whether s is one of the known styles.
func (s FeedbackStyle) Valid() bool {
	switch s {
	case StyleEmoji, StyleStars, StyleThumbs:
		return true
	}
	return false
}

// Article is one entry of the article list.
type Article struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Link        string `json:"link"`
	ID          int    `json:"id"`
}

// FeedbackOption is one clickable reaction of the feedback block.
type FeedbackOption struct {
	Emoji string `json:"emoji"`
	Label string `json:"label"`
	Link  string `json:"link"`
	ID    int    `json:"id"`
}

// Newsletter holds every user-editable piece of a newsletter issue.
// JSON names match the project snapshot format.
type Newsletter struct {
	// Header
	IssueNumber string `json:"issueNumber"`
	Preheader   string `json:"preheader"`
	LogoURL     string `json:"logoUrl"`

	// Hero article
	MainTitle       string `json:"mainTitle"`
	MainDescription string `json:"mainDescription"`
	MainImage       string `json:"mainImage"`
	MainLink        string `json:"mainLink"`

	// Video
	VideoThumbnail   string `json:"videoThumbnail"`
	VideoLink        string `json:"videoLink"`
	VideoTitle       string `json:"videoTitle"`
	VideoDescription string `json:"videoDescription"`
	VideoReadMore    string `json:"videoReadMore"`

	// Footer
	FooterTitle  string `json:"footerTitle"`
	FooterLeft   string `json:"footerLeft"`
	FooterRight  string `json:"footerRight"`
	ContactEmail string `json:"contactEmail"`
	FacebookURL  string `json:"facebookUrl"`
	LinkedInURL  string `json:"linkedinUrl"`
	YouTubeURL   string `json:"youtubeUrl"`

	// Style
	PrimaryColor    string `json:"primaryColor"`
	AccentColor     string `json:"accentColor"`
	ButtonTextColor string `json:"buttonTextColor"`
	TextColor       string `json:"textColor"`
	BgColor         string `json:"bgColor"`
	FontFamily      string `json:"fontFamily"`

	// ViewOnlineURL is where the "view online" link points; "#" when empty.
	ViewOnlineURL string `json:"viewOnlineUrl"`

	// Feedback
	FeedbackTitle      string           `json:"feedbackTitle"`
	FeedbackSubtitle   string           `json:"feedbackSubtitle"`
	FeedbackBgColor    string           `json:"feedbackBgColor"`
	FeedbackSurveyLink string           `json:"feedbackSurveyLink"`
	FeedbackSurveyText string           `json:"feedbackSurveyText"`
	FeedbackStyle      FeedbackStyle    `json:"feedbackStyle"`
	FeedbackOptions    []FeedbackOption `json:"feedbackOptions"`

	Articles []Article `json:"articles"`

	// CurrentArticleID is nil or the id of an entry in Articles.
	CurrentArticleID *int `json:"currentArticleId"`
	NextID           int  `json:"nextId"`
	NextFeedbackID   int  `json:"nextFeedbackId"`

	// Section toggles
	ShowVideo      bool `json:"showVideo"`
	ShowSocial     bool `json:"showSocial"`
	ShowViewOnline bool `json:"showViewOnline"`
	ShowFeedback   bool `json:"showFeedback"`
}

// Clone returns a deep copy of n.
func (n Newsletter) Clone() Newsletter {
	out := n
	out.Articles = cloneSlice(n.Articles)
	out.FeedbackOptions = cloneSlice(n.FeedbackOptions)
	if n.CurrentArticleID != nil {
		id := *n.CurrentArticleID
		out.CurrentArticleID = &id
	}
	return out
}

// Article returns the article with the given id.
func (n Newsletter) Article(id int) (Article, bool) {
	if i := n.articleIndex(id); i >= 0 {
		return n.Articles[i], true
	}
	return Article{}, false
}

// Name is the display name of the issue used by recent-project lists.
func (n Newsletter) Name() string {
	if n.IssueNumber == "" {
		return "Bez nazwy"
	}
	return n.IssueNumber
}

// ImageRef is one image reference of a newsletter with a human label.
type ImageRef struct {
	Label string
	URL   string
}

// Images lists every image reference in display order.
// Disabled sections are still included.
func (n Newsletter) Images() []ImageRef {
	refs := make([]ImageRef, 0, len(n.Articles)+3)
	refs = append(refs,
		ImageRef{Label: "Logo", URL: n.LogoURL},
		ImageRef{Label: "Zdjęcie główne", URL: n.MainImage},
	)
	for _, a := range n.Articles {
		refs = append(refs, ImageRef{Label: "Artykuł: " + a.Title, URL: a.Image})
	}
	refs = append(refs, ImageRef{Label: "Miniatura wideo", URL: n.VideoThumbnail})
	return refs
}

func (n Newsletter) articleIndex(id int) int {
	for i, a := range n.Articles {
		if a.ID == id {
			return i
		}
	}
	return -1
}

func (n Newsletter) feedbackIndex(id int) int {
	for i, o := range n.FeedbackOptions {
		if o.ID == id {
			return i
		}
	}
	return -1
}

func cloneSlice[T any](s []T) []T {
	if s == nil {
		return nil
	}
	out := make([]T, len(s))
	copy(out, s)
	return out
}

func intPtr(v int) *int { return &v }
