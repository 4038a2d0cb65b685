package icons

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fxamacker/cbor/v2"

	"github.com/rayyankhan47/Blockbase/pkg/assets"
)

func isCBOR(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".cbor")
}

// EncodeMapping renders the mapping as indented JSON, or CBOR for paths
// ending in .cbor.
func EncodeMapping(path string, mapping *Mapping) ([]byte, error) {
	if isCBOR(path) {
		return cbor.Marshal(mapping)
	}
	return json.MarshalIndent(mapping, "", "  ")
}

// SaveMapping replaces whatever is at path with the mapping.
func SaveMapping(path string, mapping *Mapping) error {
	data, err := EncodeMapping(path, mapping)
	if err != nil {
		return fmt.Errorf("could not encode icon map: %v", err)
	}

	return assets.WriteBytes(data, path)
}

func LoadMapping(path string) (*Mapping, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	mapping := NewMapping()
	if isCBOR(path) {
		err = cbor.Unmarshal(data, mapping)
	} else {
		err = json.Unmarshal(data, mapping)
	}
	if err != nil {
		return nil, fmt.Errorf("could not parse icon map %s: %v", path, err)
	}

	return mapping, nil
}
