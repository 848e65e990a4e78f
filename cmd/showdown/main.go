package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Server   ServerCmd        `cmd:"" help:"Run the showdown evaluation server"`
	Eval     EvalCmd          `cmd:"" help:"Evaluate hands and print the winner"`
	Simulate SimulateCmd      `cmd:"" help:"Deal random showdowns and report category statistics"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("showdown"),
		kong.Description("Five-card poker showdown evaluator"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
