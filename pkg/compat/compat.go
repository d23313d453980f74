package compat

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/newsletter/pkg/content"
)

// Severity grades an issue.
type Severity string

const (
	SeverityOK      Severity = "ok"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Issue is one finding of Check.
type Issue struct {
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

// Check runs every rule against n in priority order. When no rule fires the
// result holds a single SeverityOK issue.
func Check(n content.Newsletter) []Issue {
	var issues []Issue
	add := func(s Severity, format string, args ...any) {
		issues = append(issues, Issue{Severity: s, Message: fmt.Sprintf(format, args...)})
	}

	for _, img := range n.Images() {
		if isDataURI(img.URL) {
			add(SeverityWarning, "%s: obraz osadzony jako base64 może zostać usunięty przez Outlook/Exchange. Użyj zewnętrznego URL.", img.Label)
		}
	}
	if strings.TrimSpace(n.LogoURL) == "" {
		add(SeverityError, "Brak adresu URL logo.")
	}
	if strings.TrimSpace(n.MainImage) == "" {
		add(SeverityError, "Brak zdjęcia głównego artykułu.")
	}
	for i, a := range n.Articles {
		if strings.TrimSpace(a.Image) == "" {
			add(SeverityWarning, "Artykuł %d (%s): brak zdjęcia.", i+1, a.Title)
		}
		if isPlaceholder(a.Link) {
			add(SeverityWarning, "Artykuł %d (%s): brak linku.", i+1, a.Title)
		}
	}
	if n.ShowFeedback {
		for i, o := range n.FeedbackOptions {
			if isPlaceholder(o.Link) {
				add(SeverityWarning, "Opcja oceny %d (%s): brak linku.", i+1, o.Label)
			}
		}
	}

	if len(issues) == 0 {
		issues = append(issues, Issue{Severity: SeverityOK, Message: "Newsletter jest zgodny z Outlookiem."})
	}
	return issues
}

// HasErrors reports whether any issue is an error.
func HasErrors(issues []Issue) bool {
	return count(issues, SeverityError) > 0
}

// HasWarnings reports whether any issue is a warning.
func HasWarnings(issues []Issue) bool {
	return count(issues, SeverityWarning) > 0
}

// Report is an aggregate view of a Check result.
type Report struct {
	Issues   []Issue  `json:"issues"`
	Status   Severity `json:"status"`
	Errors   int      `json:"errors"`
	Warnings int      `json:"warnings"`
}

// Summarize counts issues by severity. Status is the worst severity found.
func Summarize(issues []Issue) Report {
	r := Report{
		Issues:   issues,
		Errors:   count(issues, SeverityError),
		Warnings: count(issues, SeverityWarning),
		Status:   SeverityOK,
	}
	switch {
	case r.Errors > 0:
		r.Status = SeverityError
	case r.Warnings > 0:
		r.Status = SeverityWarning
	}
	return r
}

func count(issues []Issue, s Severity) int {
	c := 0
	for _, i := range issues {
		if i.Severity == s {
			c++
		}
	}
	return c
}

func isDataURI(s string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(s)), "data:")
}

func isPlaceholder(link string) bool {
	link = strings.TrimSpace(link)
	return link == "" || link == content.PlaceholderLink
}
