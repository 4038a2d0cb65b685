package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rayyankhan47/Blockbase/pkg/assets"
	"github.com/rayyankhan47/Blockbase/pkg/icons"
)

func TestProcess(t *testing.T) {
	// Default config
	config, err := Process([]string{})
	require.NoError(t, err)
	assert.Equal(t, "minecraft", config.Namespace)
	assert.Equal(t, "png", config.Extension)
	assert.Equal(t, "1.18.2", config.DefaultVersion)
	assert.Equal(t, "public", config.Output.PublicDir)
	assert.Equal(t, "src/lib/blockIconMap.json", config.Output.Mapping)
	assert.Equal(t, []icons.Alias{{Source: "redstone_dust", Alias: "redstone_wire"}}, config.Aliases)
	assert.Equal(t, "/window.svg", config.Placeholder)
	assert.Equal(t, []string{"stone", "cobblestone"}, config.Fallbacks)
	assert.Len(t, config.StoreRoots, 3)

	dir := t.TempDir()

	// yaml config
	{
		yaml := filepath.Join(dir, "config.yaml")
		err = os.WriteFile(yaml, []byte(`
defaultVersion: "1.20.1"
storeRoots:
  - /srv/assets
`), 0644)
		require.NoError(t, err)
		config, err = Process([]string{yaml})
		require.NoError(t, err)
		assert.Equal(t, "1.20.1", config.DefaultVersion)
		assert.Equal(t, []string{"/srv/assets"}, config.StoreRoots)
		assert.Equal(t, "minecraft", config.Namespace)
	}

	// json config with comments
	{
		json := filepath.Join(dir, "config.json")
		err = os.WriteFile(json, []byte(`{
  // served from a different folder
  "output": {
    "publicDir": "static",
    "mapping": "icons.json",
  },
}`), 0644)
		require.NoError(t, err)
		config, err = Process([]string{json})
		require.NoError(t, err)
		assert.Equal(t, "static", config.Output.PublicDir)
		assert.Equal(t, "icons.json", config.Output.Mapping)
	}

	// multiple yaml, later files win
	{
		yaml1 := filepath.Join(dir, "config1.yaml")
		err = os.WriteFile(yaml1, []byte(`
namespace: first
placeholder: /first.svg
`), 0644)
		require.NoError(t, err)

		yaml2 := filepath.Join(dir, "config2.yaml")
		err = os.WriteFile(yaml2, []byte(`
namespace: second
`), 0644)
		require.NoError(t, err)
		config, err = Process([]string{yaml1, yaml2})
		require.NoError(t, err)
		assert.Equal(t, "second", config.Namespace)
		assert.Equal(t, "/first.svg", config.Placeholder)
	}

	// Invalid configs
	{
		_, err = Process([]string{filepath.Join(dir, "missing.yaml")})
		assert.Error(t, err)

		unknown := filepath.Join(dir, "unknown.yaml")
		err = os.WriteFile(unknown, []byte("server: {}\n"), 0644)
		require.NoError(t, err)
		_, err = Process([]string{unknown})
		assert.Error(t, err)

		empty := filepath.Join(dir, "empty.yaml")
		err = os.WriteFile(empty, []byte("namespace: \"\"\n"), 0644)
		require.NoError(t, err)
		_, err = Process([]string{empty})
		assert.Error(t, err)

		toml := filepath.Join(dir, "config.toml")
		err = os.WriteFile(toml, []byte("namespace = \"x\"\n"), 0644)
		require.NoError(t, err)
		_, err = Process([]string{toml})
		assert.Error(t, err)
	}
}

func TestRoots(t *testing.T) {
	config, err := Process([]string{})
	require.NoError(t, err)

	home := filepath.Join("/home", "steve")
	roots := config.Roots(home)
	require.Len(t, roots, 3)
	assert.Equal(t, filepath.Join(home, "Library", "Application Support", "minecraft", "assets"), roots[0])
	assert.Equal(t, filepath.Join(home, ".minecraft", "assets"), roots[1])
	assert.Equal(t, filepath.Join(home, "AppData", "Roaming", ".minecraft", "assets"), roots[2])
}

func TestRootsDefault(t *testing.T) {
	config, err := Process([]string{})
	require.NoError(t, err)

	home := filepath.Join("/home", "steve")
	config.StoreRoots = nil
	assert.Equal(t, assets.DefaultStoreRoots(home), config.Roots(home))
}

func TestResolver(t *testing.T) {
	config, err := Process([]string{})
	require.NoError(t, err)

	resolver := config.Resolver(icons.NewMapping())
	assert.Equal(t, "/window.svg", resolver.Resolve("minecraft:anything"))
}
