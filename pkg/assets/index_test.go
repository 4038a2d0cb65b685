package assets

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeIndex(t *testing.T, dir string, name string, modTime time.Time) string {
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(`{"objects": {}}`), 0644))
	require.NoError(t, os.Chtimes(path, modTime, modTime))
	return path
}

func TestPickIndex(t *testing.T) {
	dir := t.TempDir()
	now := time.Now()

	older := writeIndex(t, dir, "1.18.2.json", now.Add(-2*time.Hour))
	newer := writeIndex(t, dir, "1.20.json", now.Add(-1*time.Hour))
	writeIndex(t, dir, "notes.txt", now)

	// Preferred version wins even when it is not the newest
	picked, err := PickIndex(dir, "1.18.2")
	require.NoError(t, err)
	assert.Equal(t, older, picked)

	// Unknown preference falls back to the newest json
	picked, err = PickIndex(dir, "1.12")
	require.NoError(t, err)
	assert.Equal(t, newer, picked)

	picked, err = PickIndex(dir, "")
	require.NoError(t, err)
	assert.Equal(t, newer, picked)
}

func TestPickIndexMissing(t *testing.T) {
	dir := t.TempDir()

	_, err := PickIndex(dir, "1.18.2")
	assert.ErrorIs(t, err, NotFound)

	_, err = PickIndex(filepath.Join(dir, "nope"), "1.18.2")
	assert.ErrorIs(t, err, NotFound)
}

func TestLoadIndexKeepsOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.json")
	err := os.WriteFile(path, []byte(`{
  "objects": {
    "minecraft/textures/item/stick.png": {"hash": "bb22", "size": 2},
    "minecraft/textures/block/stone.png": {"hash": "aa11", "size": 1},
    "minecraft/sounds/step.ogg": {"hash": "cc33", "size": 3}
  }
}`), 0644)
	require.NoError(t, err)

	index, err := LoadIndex(path)
	require.NoError(t, err)
	require.Len(t, index.Objects, 3)
	assert.Equal(t, "minecraft/textures/item/stick.png", index.Objects[0].Name)
	assert.Equal(t, "bb22", index.Objects[0].Object.Hash)
	assert.Equal(t, "minecraft/textures/block/stone.png", index.Objects[1].Name)
	assert.Equal(t, "minecraft/sounds/step.ogg", index.Objects[2].Name)
	assert.Equal(t, int64(3), index.Objects[2].Object.Size)
}

func TestLoadIndexInvalid(t *testing.T) {
	dir := t.TempDir()

	broken := filepath.Join(dir, "broken.json")
	require.NoError(t, os.WriteFile(broken, []byte(`{"objects": [`), 0644))
	_, err := LoadIndex(broken)
	assert.Error(t, err)

	empty := filepath.Join(dir, "empty.json")
	require.NoError(t, os.WriteFile(empty, []byte(`{}`), 0644))
	index, err := LoadIndex(empty)
	require.NoError(t, err)
	assert.Empty(t, index.Objects)
}

func TestUnixPath(t *testing.T) {
	object := AssetObject{Hash: "fe32f3b8"}
	assert.Equal(t, "fe/fe32f3b8", object.UnixPath())
}
