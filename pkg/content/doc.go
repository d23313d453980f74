// Package content defines the newsletter content model and the pure operations
// that edit it.
//
// A Newsletter is a plain value. Every operation takes a Newsletter and returns
// a new one; the input is never mutated and slices are always copied, so a
// caller can keep the previous value around for undo or comparison.
//
// # Seed content
//
// Default returns a fresh deep copy of the seed newsletter on every call:
//
//	n := content.Default()
//	n = content.AddArticle(n)
//	n = content.UpdateArticle(n, *n.CurrentArticleID, content.ArticlePatch{
//		Title: ptr("Hello"),
//	})
//
// # Bounded collections
//
// Feedback options are kept between MinFeedbackOptions and MaxFeedbackOptions.
// Adding past the upper bound, deleting below the lower bound and moving an
// article past either end of the list are silent no-ops, not errors.
//
// # Snapshots
//
// Import decodes a JSON project snapshot and merges every recognised,
// well-typed field over Default. It always returns a usable Newsletter; the
// returned error only reports that the input was not a JSON object.
package content
