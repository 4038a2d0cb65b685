package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rayyankhan47/Blockbase/pkg/assets"
	"github.com/rayyankhan47/Blockbase/pkg/config"
	"github.com/rayyankhan47/Blockbase/pkg/extract"
)

var CLI struct {
	Debug   bool     `help:"Whether to enable debug logging."`
	Config  []string `help:"Configuration files, applied in order." type:"path"`
	Root    string   `help:"Project root that output paths are relative to." type:"existingdir" default:"."`
	Version string   `help:"Name of the asset index to prefer, ex: 1.18.2. Defaults to the configured version." placeholder:"NAME"`
}

func writeError(err error) {
	fmt.Fprintf(os.Stderr, "%s\n", err)
	os.Exit(1)
}

func extractCommand() error {
	settings, err := config.Process(CLI.Config)
	if err != nil {
		return err
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}

	root, err := assets.FindStoreRoot(settings.Roots(home))
	if err != nil {
		return err
	}

	version := CLI.Version
	if version == "" {
		version = settings.DefaultVersion
	}

	source, err := assets.OpenIndexSource(root, version, settings.Layout())
	if err != nil {
		return err
	}

	projectRoot, err := filepath.Abs(CLI.Root)
	if err != nil {
		return err
	}

	mappingPath := filepath.Join(projectRoot, settings.Output.Mapping)
	summary, err := extract.Run(extract.Job{
		Source:    source,
		PublicDir: filepath.Join(projectRoot, settings.Output.PublicDir),
		Mapping:   mappingPath,
		Layout:    settings.Layout(),
		Builder:   settings.Builder(),
	})
	if err != nil {
		return err
	}

	return extract.Report(os.Stdout, summary, projectRoot, mappingPath, "")
}

func main() {
	consoleWriter := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	log.Logger = log.Output(consoleWriter)

	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	kong.Parse(&CLI,
		kong.Name("extract-textures"),
		kong.Description("Copy block and item textures out of the local game asset store and build the icon map."),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}))

	if CLI.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		log.Warn().Msg("debug logging enabled")
	}

	if err := extractCommand(); err != nil {
		writeError(err)
	}
}
