package main

import (
	"os"

	"git.home.luguber.info/inful/docnav/cmd/docnav/commands"
	derrors "git.home.luguber.info/inful/docnav/internal/foundation/errors"
)

func main() {
	cli := &commands.CLI{}
	global := &commands.Global{Out: os.Stdout, Err: os.Stderr}

	parser, err := commands.NewParser(cli, global)
	if err != nil {
		panic(err)
	}
	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	if err := ctx.Run(global, cli); err != nil {
		derrors.NewCLIErrorAdapter(cli.Verbose, global.Logger).HandleError(err)
	}
}
