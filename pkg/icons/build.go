package icons

import (
	"fmt"
	"strings"
)

// An Alias shares the texture of Source with Alias when the extracted
// textures do not provide one for Alias directly. Both are base names.
type Alias struct {
	Source string `yaml:"source" json:"source"`
	Alias  string `yaml:"alias" json:"alias"`
}

// The in-game block id differs from the texture's historical name.
var DefaultAliases = []Alias{
	{Source: "redstone_dust", Alias: "redstone_wire"},
}

// Namespaced joins a namespace and a name into an identifier.
// Example: minecraft:stone
func Namespaced(namespace string, name string) string {
	return fmt.Sprintf("%s:%s", namespace, name)
}

// StripNamespace returns everything after the first colon, or the identifier
// itself when it has none.
func StripNamespace(id string) string {
	if index := strings.Index(id, ":"); index != -1 {
		return id[index+1:]
	}
	return id
}

type Builder struct {
	Namespace string
	Extension string
	Aliases   []Alias
}

func NewBuilder(namespace string, extension string, aliases []Alias) *Builder {
	return &Builder{
		Namespace: namespace,
		Extension: extension,
		Aliases:   aliases,
	}
}

func (b *Builder) texturePath(category string, base string) string {
	return fmt.Sprintf("/textures/%s/%s.%s", category, base, b.Extension)
}

// Build creates the mapping for a run. Block textures are added first and an
// item texture only fills an identifier no block claimed. Aliases are applied
// last, in order.
func (b *Builder) Build(blocks []string, items []string) *Mapping {
	mapping := NewMapping()

	for _, base := range blocks {
		mapping.Set(Namespaced(b.Namespace, base), b.texturePath("block", base))
	}

	for _, base := range items {
		key := Namespaced(b.Namespace, base)
		if mapping.Has(key) {
			continue
		}
		mapping.Set(key, b.texturePath("item", base))
	}

	for _, alias := range b.Aliases {
		source, ok := mapping.Get(Namespaced(b.Namespace, alias.Source))
		if !ok {
			continue
		}

		key := Namespaced(b.Namespace, alias.Alias)
		if mapping.Has(key) {
			continue
		}
		mapping.Set(key, source)
	}

	return mapping
}

// Build uses the default namespace, extension and aliases.
func Build(blocks []string, items []string) *Mapping {
	return NewBuilder(DEFAULT_NAMESPACE, DEFAULT_EXTENSION, DefaultAliases).Build(blocks, items)
}
