package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version   kong.VersionFlag `short:"v" help:"Show version"`
	Config    string           `short:"c" help:"YAML configuration file" type:"path"`
	EnvFile   string           `help:"Environment file to load" default:".env"`
	Debug     bool             `help:"Enable debug logging"`
	JSONLogs  bool             `name:"json-logs" help:"Log as JSON instead of console output"`
	Play      PlayCmd          `cmd:"" default:"withargs" help:"Play a game in the terminal"`
	HighScore HighScoreCmd     `cmd:"" name:"high-score" help:"Show or reset the stored high score"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("dealgame"),
		kong.Description("Pick a box, open the others and decide: deal or no deal?"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli)
	ctx.FatalIfErrorf(err)
}
