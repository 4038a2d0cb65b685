package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/rayyankhan47/Blockbase/pkg/assets"
	"github.com/rayyankhan47/Blockbase/pkg/icons"
)

//go:embed default.yaml
var DEFAULT []byte

func decodeYAML(data []byte, config *Config) error {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	return decoder.Decode(config)
}

func readFile(path string, config *Config) error {
	// Check if this is a valid file
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("does not exist")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	switch filepath.Ext(path) {
	case ".json":
		decoder := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))
		decoder.DisallowUnknownFields()
		return decoder.Decode(config)
	case ".yaml", ".yml":
		if len(bytes.TrimSpace(data)) == 0 {
			return nil
		}
		return decodeYAML(data, config)
	}

	return fmt.Errorf(
		"not in a valid format",
	)
}

func (c *Config) Validate() error {
	if c.Namespace == "" {
		return fmt.Errorf("namespace must not be empty")
	}

	if c.Extension == "" {
		return fmt.Errorf("extension must not be empty")
	}

	if c.Placeholder == "" {
		return fmt.Errorf("placeholder must not be empty")
	}

	if c.Output.PublicDir == "" || c.Output.Mapping == "" {
		return fmt.Errorf("output paths must not be empty")
	}

	for _, alias := range c.Aliases {
		if alias.Source == "" || alias.Alias == "" {
			return fmt.Errorf("aliases need both a source and an alias")
		}
	}

	return nil
}

// Process loads the default configuration and then each of the provided
// files in order. Later files override the fields they set.
func Process(configPaths []string) (*Config, error) {
	config := Config{}

	if err := decodeYAML(DEFAULT, &config); err != nil {
		return nil, fmt.Errorf(
			"invalid default config file: %v",
			err,
		)
	}

	for _, path := range configPaths {
		err := readFile(path, &config)
		if err != nil {
			return nil, fmt.Errorf(
				"could not process config file %s: %v",
				path,
				err,
			)
		}
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) Layout() assets.Layout {
	return assets.Layout{
		Namespace: c.Namespace,
		Extension: c.Extension,
	}
}

// Roots expands the configured store roots against home. With none
// configured the launcher's default locations are used.
func (c *Config) Roots(home string) []string {
	if len(c.StoreRoots) == 0 {
		return assets.DefaultStoreRoots(home)
	}

	roots := make([]string, 0, len(c.StoreRoots))
	for _, root := range c.StoreRoots {
		roots = append(roots, assets.ExpandHome(root, home))
	}
	return roots
}

func (c *Config) Builder() *icons.Builder {
	return icons.NewBuilder(c.Namespace, c.Extension, c.Aliases)
}

func (c *Config) Resolver(mapping *icons.Mapping) *icons.Resolver {
	resolver := icons.NewResolver(mapping)
	resolver.Namespace = c.Namespace
	resolver.Fallbacks = c.Fallbacks
	resolver.Placeholder = c.Placeholder
	return resolver
}
