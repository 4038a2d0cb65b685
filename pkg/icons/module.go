package icons

import (
	"strings"

	"github.com/repeale/fp-go/option"
)

const (
	DEFAULT_NAMESPACE = "minecraft"
	DEFAULT_EXTENSION = "png"
	// Shipped with the web app, so it always exists.
	DEFAULT_ICON = "/window.svg"
)

// Tried in order when nothing resembling the identifier is in the mapping.
var DefaultFallbacks = []string{"stone", "cobblestone"}

// A Resolver turns block identifiers into texture paths. It never mutates
// the mapping and is safe for concurrent use.
type Resolver struct {
	mapping     *Mapping
	Namespace   string
	Fallbacks   []string
	Placeholder string
}

func NewResolver(mapping *Mapping) *Resolver {
	if mapping == nil {
		mapping = NewMapping()
	}

	return &Resolver{
		mapping:     mapping,
		Namespace:   DEFAULT_NAMESPACE,
		Fallbacks:   DefaultFallbacks,
		Placeholder: DEFAULT_ICON,
	}
}

// Candidates lists the names an identifier's texture might be filed under,
// most likely first, without duplicates.
func Candidates(name string) []string {
	candidates := make([]string, 0, 8)
	seen := make(map[string]struct{})
	add := func(candidate string) {
		if _, ok := seen[candidate]; ok {
			return
		}
		seen[candidate] = struct{}{}
		candidates = append(candidates, candidate)
	}

	add(name)

	if name == "redstone_wire" {
		add("redstone_dust")
	}

	if name == "torch" {
		add("torch_on")
		add("redstone_torch_on")
	}

	// oak_door -> door_wood
	if strings.HasSuffix(name, "_door") {
		add("door_wood")
	}

	if strings.HasSuffix(name, "s") {
		add(name[:len(name)-1])
	} else {
		add(name + "s")
	}

	add(strings.ReplaceAll(name, "-", "_"))
	add(strings.ReplaceAll(name, "_", "-"))

	return candidates
}

func (r *Resolver) lookup(id string) (string, bool) {
	path := r.mapping.Lookup(id)
	if opt.IsNone(path) {
		return "", false
	}
	return path.Value, true
}

// scan returns the path of the first entry whose name matches a candidate.
// matched is set even when that entry's path is empty.
func (r *Resolver) scan(candidates []string, match func(name string, candidate string) bool) (path string, matched bool) {
	r.mapping.Each(func(id string, entry string) bool {
		name := StripNamespace(id)
		for _, candidate := range candidates {
			if match(name, candidate) {
				path = entry
				matched = true
				return false
			}
		}
		return true
	})
	return path, matched
}

// Resolve always returns a path. It tries, in order: the identifier itself,
// each candidate name in the namespace, mapping entries whose name ends with
// a candidate, entries whose name contains one, the fallback textures and
// finally the placeholder.
func (r *Resolver) Resolve(id string) string {
	if path, ok := r.lookup(id); ok {
		return path
	}

	candidates := Candidates(StripNamespace(id))

	for _, candidate := range candidates {
		if path, ok := r.lookup(Namespaced(r.Namespace, candidate)); ok {
			return path
		}
	}

	suffix := func(name string, candidate string) bool {
		return name == candidate || strings.HasSuffix(name, candidate)
	}
	// An empty path still ends the loose search
	path, matched := r.scan(candidates, suffix)
	if !matched {
		path, matched = r.scan(candidates, strings.Contains)
	}
	if matched && path != "" {
		return path
	}

	for _, fallback := range r.Fallbacks {
		if path, ok := r.lookup(Namespaced(r.Namespace, fallback)); ok {
			return path
		}
	}

	return r.Placeholder
}
