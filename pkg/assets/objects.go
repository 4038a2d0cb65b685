package assets

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
)

// An IndexSource reads textures out of a content-addressed object store using
// a loaded asset index.
//
// Layout on disk:
//
//	<root>/indexes/<version>.json
//	<root>/objects/<hash[0:2]>/<hash>
type IndexSource struct {
	Root   string
	Index  *AssetIndex
	Layout Layout
}

func NewIndexSource(root string, index *AssetIndex, layout Layout) *IndexSource {
	return &IndexSource{
		Root:   root,
		Index:  index,
		Layout: layout,
	}
}

// OpenIndexSource picks an index under root/indexes and loads it.
func OpenIndexSource(root string, preferred string, layout Layout) (*IndexSource, error) {
	indexFile, err := PickIndex(filepath.Join(root, "indexes"), preferred)
	if err != nil {
		return nil, err
	}

	log.Info().Str("index", indexFile).Msg("using asset index")

	index, err := LoadIndex(indexFile)
	if err != nil {
		return nil, err
	}

	return NewIndexSource(root, index, layout), nil
}

func (s *IndexSource) objectPath(object AssetObject) string {
	return filepath.Join(s.Root, "objects", filepath.FromSlash(object.UnixPath()))
}

// classify turns a logical name like minecraft/textures/block/stone.png into
// its category and base name.
func (s *IndexSource) classify(name string) (Category, string, bool) {
	prefix := s.Layout.Namespace + "/"
	if !strings.HasPrefix(name, prefix) || !strings.HasSuffix(name, s.Layout.suffix()) {
		return 0, "", false
	}

	relative := strings.TrimPrefix(name, prefix)
	if !strings.HasPrefix(relative, "textures/") {
		return 0, "", false
	}

	parts := strings.Split(relative, "/")
	if len(parts) != 3 {
		return 0, "", false
	}

	category, ok := ParseCategory(parts[1], false)
	if !ok || parts[1] != category.Dir() {
		return 0, "", false
	}

	base := strings.TrimSuffix(parts[2], s.Layout.suffix())
	if base == "" {
		return 0, "", false
	}

	return category, base, true
}

func (s *IndexSource) Each(fn func(entry Entry) error) error {
	if s.Index == nil {
		return nil
	}

	for _, named := range s.Index.Objects {
		category, base, ok := s.classify(named.Name)
		if !ok {
			continue
		}

		if named.Object.Hash == "" {
			log.Debug().Str("name", named.Name).Msg("skipping entry without hash")
			continue
		}

		source := s.objectPath(named.Object)
		if !FileExists(source) {
			log.Debug().Str("name", named.Name).Str("object", source).Msg("skipping missing object")
			continue
		}

		err := fn(Entry{
			Path:     named.Name,
			Category: category,
			BaseName: base,
			open: func() (io.ReadCloser, error) {
				return os.Open(source)
			},
		})
		if err != nil {
			return err
		}
	}

	return nil
}

var _ Source = (*IndexSource)(nil)
