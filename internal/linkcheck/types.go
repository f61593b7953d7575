package linkcheck

import (
	"fmt"
	"strings"

	derrors "git.home.luguber.info/inful/docnav/internal/foundation/errors"
)

// Severity indicates how an issue affects the build.
type Severity int

const (
	// SeverityWarning marks issues that are reported but do not fail a check.
	SeverityWarning Severity = iota
	// SeverityError marks issues that fail a check.
	SeverityError
)

// String returns the lower-case severity name.
func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// MarshalText renders the severity by name in JSON and YAML output.
func (s Severity) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// Rule identifiers.
const (
	RuleNavTarget  = "nav-target"
	RulePageLink   = "page-link"
	RuleContentRef = "content-ref"
	RuleOrphanPage = "orphan-page"
)

// Issue is a single broken or suspicious link.
type Issue struct {
	Severity Severity `json:"severity"`
	Rule     string   `json:"rule"`
	Source   string   `json:"source"` // where the link was written
	Target   string   `json:"target"`
	Message  string   `json:"message"`
}

func (i Issue) String() string {
	return fmt.Sprintf("%s [%s] %s: %s (%s)", i.Severity, i.Rule, i.Source, i.Message, i.Target)
}

// Report collects the issues of one check.
type Report struct {
	Issues []Issue `json:"issues"`
	Pages  int     `json:"pages"`
	Links  int     `json:"links"` // internal links examined
}

// HasErrors reports whether any error-level issue exists.
func (r *Report) HasErrors() bool { return r.ErrorCount() > 0 }

// HasWarnings reports whether any warning-level issue exists.
func (r *Report) HasWarnings() bool { return r.WarningCount() > 0 }

// ErrorCount returns the number of error-level issues.
func (r *Report) ErrorCount() int { return r.count(SeverityError) }

// WarningCount returns the number of warning-level issues.
func (r *Report) WarningCount() int { return r.count(SeverityWarning) }

func (r *Report) count(s Severity) int {
	n := 0
	for _, issue := range r.Issues {
		if issue.Severity == s {
			n++
		}
	}
	return n
}

// ByRule returns the issues reported by rule.
func (r *Report) ByRule(rule string) []Issue {
	var out []Issue
	for _, issue := range r.Issues {
		if issue.Rule == rule {
			out = append(out, issue)
		}
	}
	return out
}

// Err returns a content error summarizing the error-level issues, or nil.
func (r *Report) Err() error {
	n := r.ErrorCount()
	if n == 0 {
		return nil
	}
	var first []string
	for _, issue := range r.Issues {
		if issue.Severity == SeverityError && len(first) < 3 {
			first = append(first, issue.Source+" -> "+issue.Target)
		}
	}
	return derrors.ContentError(fmt.Sprintf("%d broken link(s)", n)).
		WithContext("errors", n).
		WithContext("warnings", r.WarningCount()).
		WithContext("first", strings.Join(first, "; ")).
		Build()
}
