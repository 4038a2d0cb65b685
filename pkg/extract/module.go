package extract

import (
	"bytes"
	"fmt"
	"io"
	"path"

	"github.com/cespare/xxhash/v2"
	"github.com/rs/zerolog/log"

	"github.com/rayyankhan47/Blockbase/pkg/assets"
)

// Result lists the base names extracted per category in the order they were
// first seen. Each name appears once.
type Result struct {
	Blocks []string
	Items  []string

	// Files written and files left alone because they already matched
	Written   int
	Unchanged int
}

type nameSet struct {
	seen  map[string]struct{}
	names []string
}

func newNameSet() *nameSet {
	return &nameSet{
		seen:  make(map[string]struct{}),
		names: make([]string, 0),
	}
}

func (n *nameSet) add(name string) {
	if _, ok := n.seen[name]; ok {
		return
	}
	n.seen[name] = struct{}{}
	n.names = append(n.names, name)
}

type Extractor struct {
	Store  assets.Store
	Layout assets.Layout
}

func New(store assets.Store, layout assets.Layout) *Extractor {
	return &Extractor{
		Store:  store,
		Layout: layout,
	}
}

// NewFS writes into <outputRoot>/textures/<category>/.
func NewFS(outputRoot string, layout assets.Layout) *Extractor {
	return New(assets.FSStore(outputRoot), layout)
}

// Key returns the slash-separated output location of a texture.
// Example: textures/block/stone.png
func (e *Extractor) Key(category assets.Category, base string) string {
	return path.Join("textures", category.Dir(), fmt.Sprintf("%s.%s", base, e.Layout.Extension))
}

func (e *Extractor) unchanged(key string, data []byte) bool {
	digester, ok := e.Store.(assets.Digester)
	if !ok {
		existing, err := e.Store.Get(key)
		if err != nil {
			return false
		}
		return bytes.Equal(existing, data)
	}

	existing, err := digester.Digest(key)
	if err != nil {
		return false
	}

	return existing == xxhash.Sum64(data)
}

func (e *Extractor) copy(entry assets.Entry, key string) (bool, error) {
	reader, err := entry.Open()
	if err != nil {
		return false, fmt.Errorf("could not open %s: %v", entry.Path, err)
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return false, fmt.Errorf("could not read %s: %v", entry.Path, err)
	}

	if e.unchanged(key, data) {
		return false, nil
	}

	if err := e.Store.Set(key, data); err != nil {
		return false, fmt.Errorf("could not write %s: %v", key, err)
	}

	return true, nil
}

// Extract copies every entry of source into the store. When two entries map
// to the same category and base name the later one wins.
func (e *Extractor) Extract(source assets.Source) (*Result, error) {
	if ensurer, ok := e.Store.(interface{ Ensure(key string) error }); ok {
		for _, category := range []assets.Category{assets.CategoryBlock, assets.CategoryItem} {
			if err := ensurer.Ensure(path.Join("textures", category.Dir())); err != nil {
				return nil, err
			}
		}
	}

	blocks := newNameSet()
	items := newNameSet()
	written := 0
	unchanged := 0

	err := source.Each(func(entry assets.Entry) error {
		key := e.Key(entry.Category, entry.BaseName)

		wrote, err := e.copy(entry, key)
		if err != nil {
			return err
		}

		if wrote {
			written++
		} else {
			unchanged++
		}

		log.Debug().
			Str("from", entry.Path).
			Str("to", key).
			Bool("written", wrote).
			Msg("extracted texture")

		switch entry.Category {
		case assets.CategoryBlock:
			blocks.add(entry.BaseName)
		case assets.CategoryItem:
			items.add(entry.BaseName)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &Result{
		Blocks:    blocks.names,
		Items:     items.names,
		Written:   written,
		Unchanged: unchanged,
	}, nil
}
