package main

import (
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rayyankhan47/Blockbase/pkg/config"
	"github.com/rayyankhan47/Blockbase/pkg/icons"
)

var CLI struct {
	Debug       bool     `help:"Whether to enable debug logging."`
	Config      []string `help:"Configuration files, applied in order." type:"path"`
	Mapping     string   `help:"Icon map to resolve against (.json or .cbor)." type:"existingfile" required:""`
	Overrides   string   `help:"Override table to check first. Defaults to the built-in table." type:"existingfile"`
	NoOverrides bool     `help:"Only use the icon map, never the override table."`

	Ids []string `arg:"" name:"ids" help:"Block identifiers, ex: minecraft:oak_door."`
}

func writeError(err error) {
	fmt.Fprintf(os.Stderr, "%s\n", err)
	os.Exit(1)
}

func resolveCommand() error {
	settings, err := config.Process(CLI.Config)
	if err != nil {
		return err
	}

	mapping, err := icons.LoadMapping(CLI.Mapping)
	if err != nil {
		return err
	}

	log.Debug().Int("entries", mapping.Len()).Msg("loaded icon map")

	overrides := icons.DefaultOverrides
	if CLI.Overrides != "" {
		overrides, err = icons.LoadOverrides(CLI.Overrides)
		if err != nil {
			return err
		}
	}
	if CLI.NoOverrides {
		overrides = icons.Overrides{}
	}

	resolver := settings.Resolver(mapping)
	for _, id := range CLI.Ids {
		fmt.Printf("%s -> %s\n", id, icons.ResolveWithOverrides(overrides, resolver, id))
	}

	return nil
}

func main() {
	consoleWriter := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	log.Logger = log.Output(consoleWriter)

	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	kong.Parse(&CLI,
		kong.Name("icon"),
		kong.Description("Print the texture path the web app would show for each block identifier."),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}))

	if CLI.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		log.Warn().Msg("debug logging enabled")
	}

	if err := resolveCommand(); err != nil {
		writeError(err)
	}
}
