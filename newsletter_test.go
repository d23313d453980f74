package newsletter_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/newsletter"
	"github.com/dmitrymomot/newsletter/pkg/compat"
	"github.com/dmitrymomot/newsletter/pkg/content"
)

func TestRender(t *testing.T) {
	t.Parallel()

	n := newsletter.Default()
	n.MainTitle = "Tom & Jerry <3"
	doc := newsletter.Render(n)

	require.True(t, strings.HasPrefix(doc, "<!DOCTYPE html"))
	require.Contains(t, doc, "Tom &amp; Jerry &lt;3")
	require.NotContains(t, doc, "Tom & Jerry <3")
}

func TestLint(t *testing.T) {
	t.Parallel()

	t.Run("default has only warnings", func(t *testing.T) {
		t.Parallel()

		r := newsletter.Lint(newsletter.Default())
		require.Zero(t, r.Errors)
		require.Positive(t, r.Warnings)
		require.Equal(t, compat.SeverityWarning, r.Status)
	})

	t.Run("missing logo is an error", func(t *testing.T) {
		t.Parallel()

		n := newsletter.Default()
		n.LogoURL = " "
		r := newsletter.Lint(n)
		require.Equal(t, compat.SeverityError, r.Status)
	})
}

func TestImport(t *testing.T) {
	t.Parallel()

	n, err := newsletter.Import([]byte(`{"issueNumber":"Nr 1","nextId":"x"}`))
	require.NoError(t, err)
	require.Equal(t, "Nr 1", n.IssueNumber)
	require.Equal(t, newsletter.Default().NextID, n.NextID)

	n, err = newsletter.Import([]byte(`nope`))
	require.ErrorIs(t, err, content.ErrMalformedSnapshot)
	require.Equal(t, newsletter.Default(), n)
}

func TestExport(t *testing.T) {
	t.Parallel()

	n := newsletter.Default()
	data, err := newsletter.Export(n, newsletter.KindHTML)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(data), "\ufeff<!DOCTYPE html"))

	data, err = newsletter.Export(n, newsletter.KindProject)
	require.NoError(t, err)
	back, err := newsletter.Import(data)
	require.NoError(t, err)
	require.Equal(t, n, back)

	require.Equal(t, "newsletter-espinacz-nr-4-2026.mht", newsletter.FileName(n, newsletter.KindMHT))
}
