package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rayyankhan47/Blockbase/pkg/assets"
	"github.com/rayyankhan47/Blockbase/pkg/config"
	"github.com/rayyankhan47/Blockbase/pkg/extract"
)

var CLI struct {
	Debug  bool     `help:"Whether to enable debug logging."`
	Config []string `help:"Configuration files, applied in order." type:"path"`
	Root   string   `help:"Project root that output paths are relative to." type:"existingdir" default:"."`
	Zip    string   `help:"Path to the resource pack zip." type:"path" required:""`
}

func writeError(err error) {
	fmt.Fprintf(os.Stderr, "%s\n", err)
	os.Exit(1)
}

var MissingZip = fmt.Errorf("--zip must name a resource pack zip")

func resolveZip(raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", MissingZip
	}
	return filepath.Abs(raw)
}

func extractCommand() error {
	settings, err := config.Process(CLI.Config)
	if err != nil {
		return err
	}

	zipPath, err := resolveZip(CLI.Zip)
	if err != nil {
		return err
	}

	if !assets.FileExists(zipPath) {
		return fmt.Errorf("Zip not found: %s", zipPath)
	}

	source, err := assets.OpenArchiveSource(zipPath, settings.Layout())
	if err != nil {
		return err
	}
	defer source.Close()

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

	return extract.Report(os.Stdout, summary, projectRoot, mappingPath, " from pack")
}

func main() {
	consoleWriter := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	log.Logger = log.Output(consoleWriter)

	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	ctx := kong.Parse(&CLI,
		kong.Name("extract-pack"),
		kong.Description("Copy block and item textures out of a resource pack zip and build the icon map."),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}))

	if CLI.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		log.Warn().Msg("debug logging enabled")
	}

	if _, err := resolveZip(CLI.Zip); errors.Is(err, MissingZip) {
		ctx.PrintUsage(false)
		writeError(err)
	}

	if err := extractCommand(); err != nil {
		writeError(err)
	}
}
