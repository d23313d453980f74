// Package newsletter builds company newsletters that render the same way in
// Outlook for Windows, Outlook.com, Gmail and Apple Mail.
//
// A newsletter is a plain value of type [Newsletter]. It is edited with the
// pure functions of package content, turned into a complete HTML document by
// [Render] and checked for common email client problems by [Lint]. Finished
// issues are exported with [Export] as files Outlook opens directly.
//
// # Quick Start
//
//	n := newsletter.Default()
//	n.MainTitle = "Nowa inwestycja"
//
//	report := newsletter.Lint(n)
//	if report.Errors > 0 {
//	    for _, issue := range report.Issues {
//	        fmt.Println(issue.Severity, issue.Message)
//	    }
//	}
//
//	eml, err := newsletter.Export(n, newsletter.KindEML)
//
// # Project Files
//
// Projects are saved as JSON. [Import] is tolerant: unknown keys are ignored
// and a field with the wrong type keeps its default, so files written by
// older versions keep loading.
//
//	n, err := newsletter.Import(data)
//	if err != nil {
//	    // data was not a JSON object; n holds the default newsletter
//	}
//
// # Outlook
//
// The generated markup is table based with every style inline. Buttons are
// drawn twice, as a VML roundrect for Outlook's Word engine and as a styled
// link for everything else. Two-column rows use conditional-comment tables
// so they stay side by side in Outlook and stack on narrow screens.
//
// # Editor
//
// cmd/newsletter serves an HTTP editor API exposing every model operation,
// live preview, the compatibility report, downloads, image upload and
// publishing of a "view online" copy.
package newsletter
