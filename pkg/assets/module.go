package assets

import (
	"fmt"
	"io"
	"strings"
)

var (
	NotFound       = fmt.Errorf("not found")
	InvalidArchive = fmt.Errorf("invalid archive")
)

type Category int

const (
	CategoryBlock Category = iota
	CategoryItem
)

func (c Category) String() string {
	switch c {
	case CategoryBlock:
		return "block"
	case CategoryItem:
		return "item"
	}
	return fmt.Sprintf("category(%d)", int(c))
}

// Dir is the name of the output subdirectory for the category.
func (c Category) Dir() string {
	return c.String()
}

// ParseCategory matches a path segment against the known categories. Plural
// spellings are only accepted when plural is set.
func ParseCategory(segment string, plural bool) (Category, bool) {
	switch strings.ToLower(segment) {
	case "block":
		return CategoryBlock, true
	case "item":
		return CategoryItem, true
	case "blocks":
		return CategoryBlock, plural
	case "items":
		return CategoryItem, plural
	}
	return 0, false
}

// An Entry is a texture that a Source found and classified.
type Entry struct {
	// Where the entry came from, for logging.
	// Example: minecraft/textures/block/stone.png
	Path     string
	Category Category
	// The filename without directory or extension.
	// Example: stone
	BaseName string

	open func() (io.ReadCloser, error)
}

func NewEntry(path string, category Category, base string, open func() (io.ReadCloser, error)) Entry {
	return Entry{
		Path:     path,
		Category: category,
		BaseName: base,
		open:     open,
	}
}

func (e Entry) Open() (io.ReadCloser, error) {
	return e.open()
}

// Source yields classified texture entries in a deterministic order. Each
// calls fn once per entry and stops at the first error fn returns.
type Source interface {
	Each(fn func(entry Entry) error) error
}

// Layout describes where textures live inside a source.
type Layout struct {
	// The identifier namespace, ex: minecraft
	Namespace string
	// The image extension without the dot, ex: png
	Extension string
}

var DefaultLayout = Layout{
	Namespace: "minecraft",
	Extension: "png",
}

func (l Layout) suffix() string {
	return "." + l.Extension
}

// TrimExtension removes the layout's extension from a filename, ignoring case.
func (l Layout) TrimExtension(filename string) string {
	suffix := l.suffix()
	if len(filename) >= len(suffix) && strings.EqualFold(filename[len(filename)-len(suffix):], suffix) {
		return filename[:len(filename)-len(suffix)]
	}
	return filename
}

func (l Layout) HasExtension(filename string) bool {
	return strings.HasSuffix(strings.ToLower(filename), strings.ToLower(l.suffix()))
}
