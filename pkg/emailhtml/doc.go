// Package emailhtml renders a content.Newsletter into a self-contained,
// Outlook-compatible HTML email document.
//
// The document is XHTML 1.0 Transitional built from nested tables with inline
// pixel styles. Outlook's Word-based engine gets its own markup through
// conditional comments:
//
//   - Buttons are emitted twice, as a VML v:roundrect inside <!--[if mso]>
//     and as a styled anchor inside <!--[if !mso]><!-->.
//   - Two-column rows are wrapped in an MSO-only fixed-width table while other
//     clients see two "stack-col" tables that a media query stacks on narrow
//     screens.
//
// # Fragments
//
// The body is the concatenation of independent fragments in a fixed order:
// Preheader, ViewOnline, Header, Hero, Articles, Video, Feedback, Footer,
// Social and Unsubscribe. Each fragment is exported so it can be tested on its
// own. Gated fragments return an empty string when their toggle is off.
//
// # Escaping
//
// Every value taken from the model goes through Escape before it is written,
// URLs included. Colors and the font family are written into style attributes
// and the <style> block, so they pass through a CSS value filter instead.
//
// # Determinism
//
// Render output depends only on the model and the year of the renderer's
// clock. Use WithClock to pin the year in tests:
//
//	r := emailhtml.New(emailhtml.WithClock(func() time.Time {
//		return time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
//	}))
//	doc := r.Render(content.Default())
//
// html/template drops HTML comments, and with them every Outlook conditional,
// so documents are assembled as strings rather than through a template engine.
package emailhtml
