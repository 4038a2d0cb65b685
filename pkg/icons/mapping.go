package icons

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"github.com/repeale/fp-go/option"
)

// Mapping maps namespaced identifiers to texture paths. It remembers the
// order keys were first inserted in; lookups that scan the mapping walk it in
// that order.
type Mapping struct {
	keys  []string
	paths map[string]string
}

func NewMapping() *Mapping {
	return &Mapping{
		keys:  make([]string, 0),
		paths: make(map[string]string),
	}
}

func (m *Mapping) Len() int {
	return len(m.keys)
}

func (m *Mapping) Get(id string) (string, bool) {
	path, ok := m.paths[id]
	return path, ok
}

func (m *Mapping) Lookup(id string) opt.Option[string] {
	path, ok := m.paths[id]
	if !ok || path == "" {
		return opt.None[string]()
	}
	return opt.Some(path)
}

func (m *Mapping) Has(id string) bool {
	_, ok := m.paths[id]
	return ok
}

// Set adds or replaces an entry. Replacing keeps the original position.
func (m *Mapping) Set(id string, path string) {
	if m.paths == nil {
		m.paths = make(map[string]string)
	}
	if _, ok := m.paths[id]; !ok {
		m.keys = append(m.keys, id)
	}
	m.paths[id] = path
}

func (m *Mapping) Keys() []string {
	keys := make([]string, len(m.keys))
	copy(keys, m.keys)
	return keys
}

// Each visits entries in insertion order until fn returns false.
func (m *Mapping) Each(fn func(id string, path string) bool) {
	for _, key := range m.keys {
		if !fn(key, m.paths[key]) {
			return
		}
	}
}

func (m *Mapping) MarshalJSON() ([]byte, error) {
	var buffer bytes.Buffer
	buffer.WriteByte('{')

	for i, key := range m.keys {
		if i > 0 {
			buffer.WriteByte(',')
		}

		encodedKey, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		encodedPath, err := json.Marshal(m.paths[key])
		if err != nil {
			return nil, err
		}

		buffer.Write(encodedKey)
		buffer.WriteByte(':')
		buffer.Write(encodedPath)
	}

	buffer.WriteByte('}')
	return buffer.Bytes(), nil
}

func (m *Mapping) UnmarshalJSON(buf []byte) error {
	decoder := json.NewDecoder(bytes.NewReader(buf))

	token, err := decoder.Token()
	if err != nil {
		return err
	}
	if delim, ok := token.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("icon mapping must be a JSON object")
	}

	fresh := NewMapping()
	for decoder.More() {
		token, err := decoder.Token()
		if err != nil {
			return err
		}

		key, ok := token.(string)
		if !ok {
			return fmt.Errorf("invalid key %v", token)
		}

		var path string
		if err := decoder.Decode(&path); err != nil {
			return fmt.Errorf("invalid path for %s: %v", key, err)
		}

		fresh.Set(key, path)
	}

	if _, err := decoder.Token(); err != nil {
		return err
	}

	*m = *fresh
	return nil
}

type mappingEntry struct {
	_    struct{} `cbor:",toarray"`
	Id   string
	Path string
}

func (m *Mapping) MarshalCBOR() ([]byte, error) {
	entries := make([]mappingEntry, 0, len(m.keys))
	for _, key := range m.keys {
		entries = append(entries, mappingEntry{
			Id:   key,
			Path: m.paths[key],
		})
	}
	return cbor.Marshal(entries)
}

func (m *Mapping) UnmarshalCBOR(buf []byte) error {
	var entries []mappingEntry
	if err := cbor.Unmarshal(buf, &entries); err != nil {
		return err
	}

	fresh := NewMapping()
	for _, entry := range entries {
		fresh.Set(entry.Id, entry.Path)
	}

	*m = *fresh
	return nil
}
