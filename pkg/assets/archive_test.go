package assets

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type zipFile struct {
	name string
	data string
}

func makeZip(t *testing.T, files []zipFile) []byte {
	var buffer bytes.Buffer
	writer := zip.NewWriter(&buffer)

	for _, file := range files {
		out, err := writer.Create(file.name)
		require.NoError(t, err)
		_, err = out.Write([]byte(file.data))
		require.NoError(t, err)
	}

	require.NoError(t, writer.Close())
	return buffer.Bytes()
}

func archiveSource(t *testing.T, files []zipFile) *ArchiveSource {
	data := makeZip(t, files)
	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	return NewArchiveSource(reader, DefaultLayout)
}

func TestArchiveSourceAnchor(t *testing.T) {
	source := archiveSource(t, []zipFile{
		{name: "foo/bar/assets/minecraft/textures/block/stone.png", data: "wrapped"},
		{name: "assets/minecraft/textures/block/dirt.png", data: "bare"},
		{name: "Pack/Assets/Minecraft/Textures/item/stick.PNG", data: "upper"},
	})

	entries, contents := collect(t, source)
	require.Len(t, entries, 3)

	assert.Equal(t, CategoryBlock, entries[0].Category)
	assert.Equal(t, "stone", entries[0].BaseName)
	assert.Equal(t, "wrapped", contents[0])

	assert.Equal(t, CategoryBlock, entries[1].Category)
	assert.Equal(t, "dirt", entries[1].BaseName)

	assert.Equal(t, CategoryItem, entries[2].Category)
	assert.Equal(t, "stick", entries[2].BaseName)
	assert.Equal(t, "upper", contents[2])
}

func TestArchiveSourcePlural(t *testing.T) {
	source := archiveSource(t, []zipFile{
		{name: "assets/minecraft/textures/blocks/stone.png", data: "plural"},
		{name: "assets/minecraft/textures/items/stick.png", data: "plural"},
	})

	entries, _ := collect(t, source)
	require.Len(t, entries, 2)
	assert.Equal(t, CategoryBlock, entries[0].Category)
	assert.Equal(t, "stone", entries[0].BaseName)
	assert.Equal(t, CategoryItem, entries[1].Category)
}

func TestArchiveSourceSkips(t *testing.T) {
	source := archiveSource(t, []zipFile{
		{name: "pack/", data: ""},
		{name: "pack/assets/minecraft/textures/block/", data: ""},
		{name: "pack/assets/minecraft/textures/block/lava.png.mcmeta", data: "meta"},
		{name: "pack/assets/minecraft/textures/entity/pig.png", data: "pig"},
		{name: "pack/assets/minecraft/textures/stone.png", data: "shallow"},
		{name: "pack/assets/other/textures/block/stone.png", data: "other"},
		{name: "pack/pack.png", data: "icon"},
		{name: "pack/assets/minecraft/textures/block/deep/glass.png", data: "deep"},
	})

	entries, contents := collect(t, source)
	require.Len(t, entries, 1)
	assert.Equal(t, "glass", entries[0].BaseName)
	assert.Equal(t, "deep", contents[0])
}

func TestArchiveSourceNoAnchor(t *testing.T) {
	source := archiveSource(t, []zipFile{
		{name: "pack.mcmeta", data: "{}"},
		{name: "textures/block/stone.png", data: "stone"},
	})

	err := source.Each(func(entry Entry) error {
		return nil
	})
	assert.ErrorIs(t, err, NotFound)
}

func TestOpenArchiveSource(t *testing.T) {
	dir := t.TempDir()

	_, err := OpenArchiveSource(filepath.Join(dir, "missing.zip"), DefaultLayout)
	assert.ErrorIs(t, err, NotFound)

	garbage := filepath.Join(dir, "garbage.zip")
	require.NoError(t, os.WriteFile(garbage, []byte("not a zip"), 0644))
	_, err = OpenArchiveSource(garbage, DefaultLayout)
	assert.ErrorIs(t, err, InvalidArchive)

	valid := filepath.Join(dir, "pack.zip")
	require.NoError(t, os.WriteFile(valid, makeZip(t, []zipFile{
		{name: "assets/minecraft/textures/block/stone.png", data: "stone"},
	}), 0644))

	source, err := OpenArchiveSource(valid, DefaultLayout)
	require.NoError(t, err)
	defer source.Close()

	entries, _ := collect(t, source)
	require.Len(t, entries, 1)
	assert.Equal(t, "stone", entries[0].BaseName)
}
