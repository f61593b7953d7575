package commands

import (
	"context"

	"git.home.luguber.info/inful/docnav/internal/linkcheck"
	"git.home.luguber.info/inful/docnav/internal/site"
)

// CheckCmd implements the 'check' command.
type CheckCmd struct {
	Format string `short:"f" default:"text" help:"Output format (text or json)" enum:"text,json"`
	Quiet  bool   `short:"q" help:"Quiet mode: only show errors, suppress warnings"`
}

func (c *CheckCmd) Run(g *Global, root *CLI) error {
	cfg, err := root.loadConfig(g)
	if err != nil {
		return err
	}
	snap, err := site.Build(context.Background(), cfg, site.Options{Logger: g.Logger})
	if err != nil {
		return err
	}

	report := snap.Report
	if c.Quiet {
		filtered := *report
		filtered.Issues = nil
		for _, issue := range report.Issues {
			if issue.Severity == linkcheck.SeverityError {
				filtered.Issues = append(filtered.Issues, issue)
			}
		}
		report = &filtered
	}

	if c.Format == "json" {
		err = linkcheck.WriteJSON(g.Out, report)
	} else {
		err = linkcheck.WriteText(g.Out, report)
	}
	if err != nil {
		return err
	}
	if report.HasErrors() {
		return report.Err()
	}
	return nil
}
