package config

import (
	"github.com/rayyankhan47/Blockbase/pkg/icons"
)

type OutputSettings struct {
	// Relative to the project root
	PublicDir string `yaml:"publicDir" json:"publicDir"`
	Mapping   string `yaml:"mapping" json:"mapping"`
}

type Config struct {
	Namespace      string         `yaml:"namespace" json:"namespace"`
	Extension      string         `yaml:"extension" json:"extension"`
	DefaultVersion string         `yaml:"defaultVersion" json:"defaultVersion"`
	StoreRoots     []string       `yaml:"storeRoots" json:"storeRoots"`
	Output         OutputSettings `yaml:"output" json:"output"`
	Aliases        []icons.Alias  `yaml:"aliases" json:"aliases"`
	Placeholder    string         `yaml:"placeholder" json:"placeholder"`
	Fallbacks      []string       `yaml:"fallbacks" json:"fallbacks"`
}
