package content_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/newsletter/pkg/content"
)

func ptr[T any](v T) *T { return &v }

func articleIDs(n content.Newsletter) []int {
	ids := make([]int, 0, len(n.Articles))
	for _, a := range n.Articles {
		ids = append(ids, a.ID)
	}
	return ids
}

func TestDefault_ReturnsIndependentCopies(t *testing.T) {
	t.Parallel()

	a := content.Default()
	a.Articles[0].Title = "changed"
	a.FeedbackOptions[0].Label = "changed"

	b := content.Default()
	require.Equal(t, "Kolejny raz gramy z WOŚP", b.Articles[0].Title)
	require.Equal(t, "Świetny!", b.FeedbackOptions[0].Label)
	require.Equal(t, 5, b.NextID)
	require.Equal(t, 6, b.NextFeedbackID)
	require.Nil(t, b.CurrentArticleID)
}

func TestMerge(t *testing.T) {
	t.Parallel()

	t.Run("replaces top-level fields only", func(t *testing.T) {
		t.Parallel()

		n := content.Default()
		out := content.Merge(n, content.Patch{IssueNumber: ptr("Nr 5"), ShowVideo: ptr(false)})

		require.Equal(t, "Nr 5", out.IssueNumber)
		require.False(t, out.ShowVideo)
		require.Equal(t, n.MainTitle, out.MainTitle)
		require.Equal(t, "Espinacz nr 4/2026", n.IssueNumber)
	})

	t.Run("replaces articles wholesale", func(t *testing.T) {
		t.Parallel()

		out := content.Merge(content.Default(), content.Patch{Articles: &[]content.Article{{ID: 9, Title: "Only"}}})
		require.Len(t, out.Articles, 1)
		require.Equal(t, "Only", out.Articles[0].Title)
	})

	t.Run("clears selection", func(t *testing.T) {
		t.Parallel()

		n := content.SelectArticle(content.Default(), 2)
		var none *int
		out := content.Merge(n, content.Patch{CurrentArticleID: &none})
		require.Nil(t, out.CurrentArticleID)
		require.NotNil(t, n.CurrentArticleID)
	})
	t.Run("drops selection of replaced articles", func(t *testing.T) {
		t.Parallel()

		n := content.SelectArticle(content.Default(), 3)
		out := content.Merge(n, content.Patch{Articles: &[]content.Article{{ID: 9, Title: "Only"}}})
		require.Nil(t, out.CurrentArticleID)
		require.Equal(t, 3, *n.CurrentArticleID)

		kept := content.Merge(n, content.Patch{Articles: &[]content.Article{{ID: 3, Title: "Kept"}}})
		require.Equal(t, 3, *kept.CurrentArticleID)
	})

	t.Run("selection set with the articles resolves", func(t *testing.T) {
		t.Parallel()

		id := ptr(9)
		out := content.Merge(content.Default(), content.Patch{
			Articles:         &[]content.Article{{ID: 9, Title: "Only"}},
			CurrentArticleID: &id,
		})
		require.Equal(t, 9, *out.CurrentArticleID)
	})
}

func TestAddArticle(t *testing.T) {
	t.Parallel()

	n := content.Default()
	out := content.AddArticle(n)

	require.Len(t, n.Articles, 4)
	require.Len(t, out.Articles, 5)
	added := out.Articles[4]
	require.Equal(t, 5, added.ID)
	require.Equal(t, "Nowy artykuł", added.Title)
	require.Equal(t, "Opis artykułu...", added.Description)
	require.Equal(t, content.PlaceholderLink, added.Link)
	require.Equal(t, 6, out.NextID)
	require.NotNil(t, out.CurrentArticleID)
	require.Equal(t, 5, *out.CurrentArticleID)
}

func TestAddArticle_RepairsStaleCounter(t *testing.T) {
	t.Parallel()

	n := content.Default()
	n.NextID = 2

	out := content.AddArticle(n)
	require.Equal(t, 5, out.Articles[4].ID)
	require.Equal(t, 6, out.NextID)
}

func TestAddArticle_IDsNeverReused(t *testing.T) {
	t.Parallel()

	n := content.AddArticle(content.Default())
	n = content.DeleteArticle(n, 5)
	n = content.AddArticle(n)

	require.Equal(t, []int{1, 2, 3, 4, 6}, articleIDs(n))
}

func TestDeleteArticle(t *testing.T) {
	t.Parallel()

	t.Run("clears selection of deleted article", func(t *testing.T) {
		t.Parallel()

		n := content.SelectArticle(content.Default(), 3)
		out := content.DeleteArticle(n, 3)
		require.Equal(t, []int{1, 2, 4}, articleIDs(out))
		require.Nil(t, out.CurrentArticleID)
	})

	t.Run("keeps selection of other article", func(t *testing.T) {
		t.Parallel()

		n := content.SelectArticle(content.Default(), 1)
		out := content.DeleteArticle(n, 3)
		require.Equal(t, 1, *out.CurrentArticleID)
	})

	t.Run("unknown id is a no-op", func(t *testing.T) {
		t.Parallel()

		n := content.Default()
		require.Equal(t, n, content.DeleteArticle(n, 42))
	})
}

func TestUpdateArticle(t *testing.T) {
	t.Parallel()

	out := content.UpdateArticle(content.Default(), 2, content.ArticlePatch{Title: ptr("Nowy"), Link: ptr("https://example.com")})
	a, ok := out.Article(2)
	require.True(t, ok)
	require.Equal(t, "Nowy", a.Title)
	require.Equal(t, "https://example.com", a.Link)
	require.Equal(t, "Oddaliśmy do ruchu 9,3-km odcinek ekspresowej S19 👏", a.Description)
}

func TestMoveArticle(t *testing.T) {
	t.Parallel()

	t.Run("round trip restores order", func(t *testing.T) {
		t.Parallel()

		n := content.Default()
		moved := content.MoveArticle(n, 2, content.Down)
		require.Equal(t, []int{1, 3, 2, 4}, articleIDs(moved))

		back := content.MoveArticle(moved, 2, content.Up)
		require.Equal(t, articleIDs(n), articleIDs(back))
	})

	t.Run("first article cannot move up", func(t *testing.T) {
		t.Parallel()

		n := content.Default()
		require.Equal(t, articleIDs(n), articleIDs(content.MoveArticle(n, 1, content.Up)))
	})

	t.Run("last article cannot move down", func(t *testing.T) {
		t.Parallel()

		n := content.Default()
		require.Equal(t, articleIDs(n), articleIDs(content.MoveArticle(n, 4, content.Down)))
	})

	t.Run("input is not mutated", func(t *testing.T) {
		t.Parallel()

		n := content.Default()
		_ = content.MoveArticle(n, 1, content.Down)
		require.Equal(t, []int{1, 2, 3, 4}, articleIDs(n))
	})
}

func TestSelectArticle_IgnoresUnknownID(t *testing.T) {
	t.Parallel()

	out := content.SelectArticle(content.Default(), 99)
	require.Nil(t, out.CurrentArticleID)
}

func TestSetFeedbackStyle(t *testing.T) {
	t.Parallel()

	t.Run("rewrites glyphs positionally and keeps labels", func(t *testing.T) {
		t.Parallel()

		out := content.SetFeedbackStyle(content.Default(), content.StyleStars)
		require.Equal(t, content.StyleStars, out.FeedbackStyle)
		require.Equal(t, "⭐⭐⭐⭐⭐", out.FeedbackOptions[0].Emoji)
		require.Equal(t, "⭐", out.FeedbackOptions[4].Emoji)
		require.Equal(t, "Świetny!", out.FeedbackOptions[0].Label)
		require.Equal(t, content.PlaceholderLink, out.FeedbackOptions[0].Link)
	})

	t.Run("options past the table keep their glyph", func(t *testing.T) {
		t.Parallel()

		n := content.AddFeedbackOption(content.Default())
		n = content.AddFeedbackOption(n)
		out := content.SetFeedbackStyle(n, content.StyleThumbs)

		require.Len(t, out.FeedbackOptions, 7)
		require.Equal(t, "👎👎", out.FeedbackOptions[4].Emoji)
		require.Equal(t, "🙂", out.FeedbackOptions[5].Emoji)
		require.Equal(t, "🙂", out.FeedbackOptions[6].Emoji)
	})

	t.Run("unknown style is ignored", func(t *testing.T) {
		t.Parallel()

		n := content.Default()
		require.Equal(t, n, content.SetFeedbackStyle(n, content.FeedbackStyle("hearts")))
	})
}

func TestFeedbackOptionBounds(t *testing.T) {
	t.Parallel()

	t.Run("never grows past the maximum", func(t *testing.T) {
		t.Parallel()

		n := content.Default()
		for range 10 {
			n = content.AddFeedbackOption(n)
		}
		require.Len(t, n.FeedbackOptions, content.MaxFeedbackOptions)
		require.Equal(t, 8, n.NextFeedbackID)
	})

	t.Run("never shrinks below the minimum", func(t *testing.T) {
		t.Parallel()

		n := content.Default()
		for _, o := range content.Default().FeedbackOptions {
			n = content.DeleteFeedbackOption(n, o.ID)
		}
		require.Len(t, n.FeedbackOptions, content.MinFeedbackOptions)
		require.Equal(t, []int{4, 5}, []int{n.FeedbackOptions[0].ID, n.FeedbackOptions[1].ID})
	})

	t.Run("new option uses the counter", func(t *testing.T) {
		t.Parallel()

		out := content.AddFeedbackOption(content.Default())
		last := out.FeedbackOptions[len(out.FeedbackOptions)-1]
		require.Equal(t, content.FeedbackOption{ID: 6, Emoji: "🙂", Label: "Nowa", Link: content.PlaceholderLink}, last)
	})
}

func TestUpdateFeedbackOption(t *testing.T) {
	t.Parallel()

	out := content.UpdateFeedbackOption(content.Default(), 3, content.FeedbackOptionPatch{Link: ptr("https://survey.example/3")})
	require.Equal(t, "https://survey.example/3", out.FeedbackOptions[2].Link)
	require.Equal(t, "OK", out.FeedbackOptions[2].Label)
}

func TestImport(t *testing.T) {
	t.Parallel()

	t.Run("merges valid fields over defaults", func(t *testing.T) {
		t.Parallel()

		n, err := content.Import([]byte(`{"issueNumber":"Nr 9","showVideo":false,"unknown":1}`))
		require.NoError(t, err)
		require.Equal(t, "Nr 9", n.IssueNumber)
		require.False(t, n.ShowVideo)
		require.Equal(t, content.Default().MainTitle, n.MainTitle)
	})

	t.Run("skips wrongly typed fields", func(t *testing.T) {
		t.Parallel()

		n, err := content.Import([]byte(`{"issueNumber":12,"mainTitle":"Tytuł","articles":"nope"}`))
		require.NoError(t, err)
		require.Equal(t, content.Default().IssueNumber, n.IssueNumber)
		require.Equal(t, "Tytuł", n.MainTitle)
		require.Len(t, n.Articles, 4)
	})

	t.Run("malformed input falls back to defaults", func(t *testing.T) {
		t.Parallel()

		for _, in := range []string{`{broken`, `[1,2]`, `null`, `"text"`} {
			n, err := content.Import([]byte(in))
			require.ErrorIs(t, err, content.ErrMalformedSnapshot, in)
			require.Equal(t, content.Default(), n, in)
		}
	})

	t.Run("repairs counters and selection", func(t *testing.T) {
		t.Parallel()

		n, err := content.Import([]byte(`{"articles":[{"id":10,"title":"A"}],"nextId":3,"currentArticleId":4,"feedbackStyle":"hearts"}`))
		require.NoError(t, err)
		require.Equal(t, 11, n.NextID)
		require.Nil(t, n.CurrentArticleID)
		require.Equal(t, content.StyleEmoji, n.FeedbackStyle)
	})

	t.Run("keeps short feedback lists as imported", func(t *testing.T) {
		t.Parallel()

		n, err := content.Import([]byte(`{"feedbackOptions":[{"id":7,"emoji":"🙂","label":"Jedna","link":"#"}]}`))
		require.NoError(t, err)
		require.Len(t, n.FeedbackOptions, 1)
		require.Less(t, len(n.FeedbackOptions), content.MinFeedbackOptions)
		require.Equal(t, 8, n.NextFeedbackID)

		n, err = content.Import([]byte(`{"feedbackOptions":[]}`))
		require.NoError(t, err)
		require.Empty(t, n.FeedbackOptions)
		require.NotNil(t, n.FeedbackOptions)

		grown := content.AddFeedbackOption(n)
		require.Len(t, grown.FeedbackOptions, 1)
	})

	t.Run("round trips an exported snapshot", func(t *testing.T) {
		t.Parallel()

		src := content.AddArticle(content.ApplyColorScheme(content.Default(), "Warm"))
		data, err := json.Marshal(src)
		require.NoError(t, err)

		n, err := content.Import(data)
		require.NoError(t, err)
		require.Equal(t, src, n)
	})
}

func TestFields_CoverSnapshotFormat(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(content.Default())
	require.NoError(t, err)

	var keys map[string]any
	require.NoError(t, json.Unmarshal(data, &keys))
	for _, f := range content.Fields() {
		require.Contains(t, keys, f)
	}
	require.Len(t, content.Fields(), len(keys))
}

func TestApplyTemplate(t *testing.T) {
	t.Parallel()

	t.Run("minimal keeps two articles", func(t *testing.T) {
		t.Parallel()

		out := content.ApplyTemplate(content.Default(), content.TemplateMinimal)
		require.Equal(t, []int{1, 2}, articleIDs(out))
		require.False(t, out.ShowVideo)
		require.False(t, out.ShowFeedback)
	})

	t.Run("event replaces copy", func(t *testing.T) {
		t.Parallel()

		out := content.ApplyTemplate(content.SelectArticle(content.Default(), 1), content.TemplateEvent)
		require.Equal(t, "Zaproszenie na wydarzenie", out.IssueNumber)
		require.Empty(t, out.Articles)
		require.Nil(t, out.CurrentArticleID)
		require.True(t, out.ShowFeedback)
	})

	t.Run("empty drops sections", func(t *testing.T) {
		t.Parallel()

		out := content.ApplyTemplate(content.Default(), content.TemplateEmpty)
		require.Empty(t, out.Articles)
		require.NotNil(t, out.Articles)
		require.False(t, out.ShowVideo)
		require.False(t, out.ShowFeedback)
	})

	t.Run("default keeps state", func(t *testing.T) {
		t.Parallel()

		n := content.Default()
		require.Equal(t, n, content.ApplyTemplate(n, content.TemplateDefault))
	})
}

func TestApplyColorScheme(t *testing.T) {
	t.Parallel()

	out := content.ApplyColorScheme(content.Default(), "Dark")
	require.Equal(t, "#0a1628", out.PrimaryColor)
	require.Equal(t, "#00d9a5", out.AccentColor)
	require.Equal(t, "#333333", out.TextColor)
	require.Equal(t, "#f5f5f5", out.BgColor)
	require.Equal(t, "#ffffff", out.ButtonTextColor)

	n := content.Default()
	require.Equal(t, n, content.ApplyColorScheme(n, "Neon"))
}

func TestImages(t *testing.T) {
	t.Parallel()

	refs := content.Default().Images()
	require.Len(t, refs, 7)
	require.Equal(t, "Logo", refs[0].Label)
	require.Equal(t, "Miniatura wideo", refs[6].Label)
}
