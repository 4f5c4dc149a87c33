package main

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"

	"github.com/lox/showdown/internal/config"
)

// version is set by ldflags during build
var version = "dev"

// Globals are flags shared by every command.
type Globals struct {
	Config   string `short:"c" help:"Path to HCL config file" default:"${config_file}" env:"SHOWDOWN_CONFIG" type:"path"`
	LogLevel string `help:"Log level (debug, info, warn, error); overrides the config file" env:"SHOWDOWN_LOG_LEVEL"`
	NoColor  bool   `help:"Disable coloured output" env:"NO_COLOR"`
}

type CLI struct {
	Globals

	Version kong.VersionFlag `short:"v" help:"Show version"`
	Eval    EvalCmd          `cmd:"" help:"Evaluate the best hand from hole and board cards"`
	Deal    DealCmd          `cmd:"" help:"Shuffle a deck, deal a hand to each player and show the winner"`
	Equity  EquityCmd        `cmd:"" help:"Estimate showdown equity with a Monte Carlo simulation"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("showdown"),
		kong.Description("Texas Hold'em hand evaluation and equity tools"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version":     version,
			"config_file": config.DefaultFile,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}

// setup loads the config file, applies the colour and log level flags and
// returns the logger every command logs through.
func (g *Globals) setup() (*config.Config, *log.Logger, error) {
	if g.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, nil, err
	}
	if g.LogLevel != "" {
		cfg.Log.Level = g.LogLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		Level:  cfg.LogLevel(),
		Prefix: "showdown",
	})
	return cfg, logger, nil
}
