package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	derrors "git.home.luguber.info/inful/docnav/internal/foundation/errors"
	"git.home.luguber.info/inful/docnav/internal/nav"
)

// ResolveCmd implements the 'resolve' command.
type ResolveCmd struct {
	Version string `help:"Only print the version with this key (e.g. /next/)"`
	Format  string `short:"f" default:"yaml" help:"Output format (json or yaml)" enum:"json,yaml"`
}

func (r *ResolveCmd) Run(g *Global, root *CLI) error {
	cfg, err := root.loadConfig(g)
	if err != nil {
		return err
	}
	resolved, err := nav.Resolve(cfg.Sidebar)
	if err != nil {
		return err
	}
	if r.Version == "" {
		return encode(g.Out, r.Format, resolved)
	}
	tree, ok := resolved.Version(r.Version)
	if !ok {
		return derrors.NotFoundError("unknown navigation version").
			WithContext("version", r.Version).
			WithContext("keys", strings.Join(cfg.Sidebar.Keys(), ",")).
			Build()
	}
	return encode(g.Out, r.Format, tree)
}

// SelectCmd implements the 'select' command.
type SelectCmd struct {
	Path   string `arg:"" help:"Page path, e.g. /next/foundations/paths"`
	Format string `short:"f" default:"text" help:"Output format (text, json or yaml)" enum:"text,json,yaml"`
}

func (s *SelectCmd) Run(g *Global, root *CLI) error {
	cfg, err := root.loadConfig(g)
	if err != nil {
		return err
	}
	resolved, err := nav.Resolve(cfg.Sidebar)
	if err != nil {
		return err
	}
	tree, err := resolved.Select(s.Path)
	if err != nil {
		return err
	}
	if s.Format != "text" {
		return encode(g.Out, s.Format, tree)
	}
	return writeLinks(g.Out, tree)
}

// writeLinks prints the version key and one line per link with its
// breadcrumb.
func writeLinks(w io.Writer, tree nav.Tree) error {
	if _, err := fmt.Fprintf(w, "version %s\n", tree.Key); err != nil {
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, l := range tree.Links() {
		crumbs := make([]string, 0, len(l.Trail)+1)
		for _, t := range append(append([]string{}, l.Trail...), l.Text) {
			if t != "" {
				crumbs = append(crumbs, t)
			}
		}
		fmt.Fprintf(tw, "  %s\t%s\n", strings.Join(crumbs, " > "), l.Path)
	}
	return tw.Flush()
}

func encode(w io.Writer, format string, v any) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	default:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
}
