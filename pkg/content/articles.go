package content

// Direction is the neighbour an article is swapped with by MoveArticle.
type Direction int

const (
	Up   Direction = -1
	Down Direction = 1
)

// ArticlePatch carries the article fields to change; nil fields are kept.
type ArticlePatch struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Image       *string `json:"image,omitempty"`
	Link        *string `json:"link,omitempty"`
}

// AddArticle appends a placeholder article, selects it and advances NextID.
func AddArticle(n Newsletter) Newsletter {
	out := n.Clone()
	if out.NextID <= maxArticleID(out.Articles) {
		out.NextID = maxArticleID(out.Articles) + 1
	}
	a := Article{
		ID:          out.NextID,
		Title:       "Nowy artykuł",
		Description: "Opis artykułu...",
		Image:       placeholderImage,
		Link:        PlaceholderLink,
	}
	out.Articles = append(out.Articles, a)
	out.CurrentArticleID = intPtr(a.ID)
	out.NextID++
	return out
}

// UpdateArticle merges p into the article with the given id.
func UpdateArticle(n Newsletter, id int, p ArticlePatch) Newsletter {
	i := n.articleIndex(id)
	if i < 0 {
		return n
	}
	out := n.Clone()
	a := &out.Articles[i]
	setIf(&a.Title, p.Title)
	setIf(&a.Description, p.Description)
	setIf(&a.Image, p.Image)
	setIf(&a.Link, p.Link)
	return out
}

// DeleteArticle removes the article with the given id and clears the
// selection when it pointed at that article.
func DeleteArticle(n Newsletter, id int) Newsletter {
	i := n.articleIndex(id)
	if i < 0 {
		return n
	}
	out := n.Clone()
	out.Articles = append(out.Articles[:i], out.Articles[i+1:]...)
	if out.CurrentArticleID != nil && *out.CurrentArticleID == id {
		out.CurrentArticleID = nil
	}
	return out
}

// MoveArticle swaps the article with its neighbour in direction d.
// Moving past either end of the list leaves n unchanged.
func MoveArticle(n Newsletter, id int, d Direction) Newsletter {
	i := n.articleIndex(id)
	if i < 0 || (d != Up && d != Down) {
		return n
	}
	j := i + int(d)
	if j < 0 || j >= len(n.Articles) {
		return n
	}
	out := n.Clone()
	out.Articles[i], out.Articles[j] = out.Articles[j], out.Articles[i]
	return out
}

// SelectArticle marks the article as current. Unknown ids are ignored.
func SelectArticle(n Newsletter, id int) Newsletter {
	if n.articleIndex(id) < 0 {
		return n
	}
	out := n.Clone()
	out.CurrentArticleID = intPtr(id)
	return out
}

func maxArticleID(articles []Article) int {
	m := 0
	for _, a := range articles {
		m = max(m, a.ID)
	}
	return m
}

func setIf[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}
