package commands

import (
	"fmt"

	"git.home.luguber.info/inful/docnav/internal/icons"
	"git.home.luguber.info/inful/docnav/internal/theme"
)

// IconsCmd implements the 'icons' command.
type IconsCmd struct {
	Name  string `arg:"" optional:"" help:"Icon to print as SVG; lists all icons when omitted"`
	Class string `help:"CSS class of the rendered SVG" default:"${default_icon_class}"`
}

func (i *IconsCmd) Run(g *Global) error {
	if i.Name == "" {
		for _, name := range icons.Names() {
			fmt.Fprintln(g.Out, name)
		}
		return nil
	}
	svg, err := icons.Render(i.Name, i.Class)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(g.Out, svg)
	return err
}

// ThemeCmd implements the 'theme' command.
type ThemeCmd struct {
	Name string `arg:"" optional:"" help:"Theme to print as JSON; lists all themes when omitted"`
}

func (t *ThemeCmd) Run(g *Global) error {
	if t.Name == "" {
		for _, name := range theme.Names() {
			fmt.Fprintln(g.Out, name)
		}
		return nil
	}
	th, err := theme.Get(t.Name)
	if err != nil {
		return err
	}
	data, err := th.JSON()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(g.Out, string(data))
	return err
}
