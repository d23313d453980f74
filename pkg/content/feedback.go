package content

const (
	MinFeedbackOptions = 2
	MaxFeedbackOptions = 7
)

// styleGlyphs holds the positional default glyphs of each style.
var styleGlyphs = map[FeedbackStyle][]string{
	StyleEmoji:  {"😍", "😊", "😐", "😕", "😞"},
	StyleStars:  {"⭐⭐⭐⭐⭐", "⭐⭐⭐⭐", "⭐⭐⭐", "⭐⭐", "⭐"},
	StyleThumbs: {"👍👍", "👍", "🤷", "👎", "👎👎"},
}

// FeedbackOptionPatch carries the option fields to change; nil fields are kept.
type FeedbackOptionPatch struct {
	Emoji *string `json:"emoji,omitempty"`
	Label *string `json:"label,omitempty"`
	Link  *string `json:"link,omitempty"`
}

// SetFeedbackStyle switches the style and rewrites the glyph of every option
// that has a positional default for it. Options past the end of the default
// table keep their glyph. Labels and links are never touched.
func SetFeedbackStyle(n Newsletter, style FeedbackStyle) Newsletter {
	glyphs, ok := styleGlyphs[style]
	if !ok {
		return n
	}
	out := n.Clone()
	out.FeedbackStyle = style
	for i := range out.FeedbackOptions {
		if i < len(glyphs) {
			out.FeedbackOptions[i].Emoji = glyphs[i]
		}
	}
	return out
}

// AddFeedbackOption appends a placeholder option unless the list is full.
func AddFeedbackOption(n Newsletter) Newsletter {
	if len(n.FeedbackOptions) >= MaxFeedbackOptions {
		return n
	}
	out := n.Clone()
	for _, o := range out.FeedbackOptions {
		if o.ID >= out.NextFeedbackID {
			out.NextFeedbackID = o.ID + 1
		}
	}
	out.FeedbackOptions = append(out.FeedbackOptions, FeedbackOption{
		ID:    out.NextFeedbackID,
		Emoji: "🙂",
		Label: "Nowa",
		Link:  PlaceholderLink,
	})
	out.NextFeedbackID++
	return out
}

// DeleteFeedbackOption removes an option unless only the minimum remains.
func DeleteFeedbackOption(n Newsletter, id int) Newsletter {
	if len(n.FeedbackOptions) <= MinFeedbackOptions {
		return n
	}
	i := n.feedbackIndex(id)
	if i < 0 {
		return n
	}
	out := n.Clone()
	out.FeedbackOptions = append(out.FeedbackOptions[:i], out.FeedbackOptions[i+1:]...)
	return out
}

// UpdateFeedbackOption merges p into the option with the given id.
func UpdateFeedbackOption(n Newsletter, id int, p FeedbackOptionPatch) Newsletter {
	i := n.feedbackIndex(id)
	if i < 0 {
		return n
	}
	out := n.Clone()
	o := &out.FeedbackOptions[i]
	setIf(&o.Emoji, p.Emoji)
	setIf(&o.Label, p.Label)
	setIf(&o.Link, p.Link)
	return out
}
