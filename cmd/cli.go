package main

import (
	"fmt"
	"time"

	"github.com/alecthomas/kong"
)

// Build information injected at build time via ldflags.
var (
	Version = "dev"
	Commit  = "unknown"
)

// Tagline is used in help text.
const Tagline = "Keyboard lock for when the cat walks across it"

// CLI is the command-line interface.
type CLI struct {
	Version      kong.VersionFlag `help:"Show version information"`
	Debug        bool             `help:"Enable debug logging" short:"d"`
	LogFile      string           `help:"Path to the JSON log file (default: <config dir>/PawGate/pawgate.log)" type:"path"`
	Config       string           `help:"Path to settings.yaml (default: <config dir>/PawGate/settings.yaml)" type:"path" env:"PAWGATE_CONFIG"`
	PollInterval time.Duration    `help:"Sleep between empty message pumps" default:"10ms" hidden:""`
}

func versionInfo() string {
	return fmt.Sprintf("pawgate %s (commit: %s)", Version, Commit)
}

func newParser(cli *CLI, options ...kong.Option) (*kong.Kong, error) {
	options = append([]kong.Option{
		kong.Name("pawgate"),
		kong.Description(Tagline),
		kong.Vars{"version": versionInfo()},
		kong.UsageOnError(),
	}, options...)
	return kong.New(cli, options...)
}
