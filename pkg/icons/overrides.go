package icons

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/repeale/fp-go/option"
	"github.com/tidwall/jsonc"
)

// Overrides are hand-picked texture paths for identifiers the resolver gets
// wrong or that a pack has no texture for. They are not consulted by
// Resolver.Resolve; callers decide whether to check them first.
type Overrides map[string]string

var DefaultOverrides = Overrides{
	// Packs usually only ship the lit torch
	"minecraft:torch": "/textures/block/torch_on.png",
	// Older packs have no observer texture
	"minecraft:observer": "/textures/block/redstone_block.png",
}

func (o Overrides) Lookup(id string) opt.Option[string] {
	path, ok := o[id]
	if !ok || path == "" {
		return opt.None[string]()
	}
	return opt.Some(path)
}

// LoadOverrides reads a JSON object of identifier to path. Comments and
// trailing commas are allowed.
func LoadOverrides(path string) (Overrides, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	overrides := make(Overrides)
	if err := json.Unmarshal(jsonc.ToJSON(data), &overrides); err != nil {
		return nil, fmt.Errorf("could not parse overrides %s: %v", path, err)
	}

	return overrides, nil
}

// ResolveWithOverrides checks the overrides before falling back to the
// resolver.
func ResolveWithOverrides(overrides Overrides, resolver *Resolver, id string) string {
	if path := overrides.Lookup(id); opt.IsSome(path) {
		return path.Value
	}
	return resolver.Resolve(id)
}
