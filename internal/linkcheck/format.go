package linkcheck

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
)

// WriteText prints the report grouped by source, followed by a summary.
func WriteText(w io.Writer, r *Report) error {
	bySource := make(map[string][]Issue)
	var sources []string
	for _, issue := range r.Issues {
		if _, ok := bySource[issue.Source]; !ok {
			sources = append(sources, issue.Source)
		}
		bySource[issue.Source] = append(bySource[issue.Source], issue)
	}
	sort.Strings(sources)

	for _, src := range sources {
		if _, err := fmt.Fprintln(w, src); err != nil {
			return err
		}
		for _, issue := range bySource[src] {
			icon := "⚠"
			if issue.Severity == SeverityError {
				icon = "✗"
			}
			if _, err := fmt.Fprintf(w, "  %s %s: %s [%s]\n", icon, issue.Message, issue.Target, issue.Rule); err != nil {
				return err
			}
		}
	}

	_, err := fmt.Fprintf(w, "%d page%s, %d link%s checked: %d error%s, %d warning%s\n",
		r.Pages, plural(r.Pages),
		r.Links, plural(r.Links),
		r.ErrorCount(), plural(r.ErrorCount()),
		r.WarningCount(), plural(r.WarningCount()))
	return err
}

// WriteJSON prints the report as indented JSON with severity counts.
func WriteJSON(w io.Writer, r *Report) error {
	out := struct {
		Report
		Errors   int `json:"errors"`
		Warnings int `json:"warnings"`
	}{*r, r.ErrorCount(), r.WarningCount()}
	if out.Issues == nil {
		out.Issues = []Issue{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
