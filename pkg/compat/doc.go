// Package compat checks a newsletter for content that is known to break or
// degrade in Outlook and Exchange.
//
// Check inspects the content model, not rendered HTML, and returns issues in
// rule priority order. The result is advisory; nothing here prevents export.
//
//	issues := compat.Check(n)
//	if compat.HasErrors(issues) {
//		// show a warning badge
//	}
package compat
