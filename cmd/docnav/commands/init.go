package commands

import (
	"fmt"
	"path/filepath"

	"git.home.luguber.info/inful/docnav/internal/config"
)

// InitCmd implements the 'init' command.
type InitCmd struct {
	Force  bool   `help:"Overwrite existing configuration file"`
	Output string `short:"o" name:"output" help:"Directory to write docnav.yaml into instead of --config"`
}

func (i *InitCmd) Run(g *Global, root *CLI) error {
	path := root.Config
	if i.Output != "" {
		path = filepath.Join(i.Output, "docnav.yaml")
	}
	g.Logger.Debug("Initializing configuration", "path", path, "force", i.Force)
	if err := config.Init(path, i.Force); err != nil {
		return err
	}
	fmt.Fprintf(g.Out, "Wrote example configuration to %s\n", path)
	return nil
}
