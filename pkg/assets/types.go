package assets

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// AssetObject is one object referenced by an asset index.
type AssetObject struct {
	Hash string `json:"hash"`
	Size int64  `json:"size"`
}

// UnixPath returns the object's location relative to the objects directory.
// Example: fe/fe32f3b8...
func (a AssetObject) UnixPath() string {
	if len(a.Hash) < 2 {
		return a.Hash
	}
	return a.Hash[:2] + "/" + a.Hash
}

type NamedObject struct {
	Name   string
	Object AssetObject
}

// AssetIndex maps logical asset names to the objects that back them. Objects
// are kept in document order.
type AssetIndex struct {
	Objects []NamedObject
}

func (a *AssetIndex) UnmarshalJSON(buf []byte) error {
	var raw struct {
		Objects json.RawMessage `json:"objects"`
	}
	if err := json.Unmarshal(buf, &raw); err != nil {
		return err
	}

	a.Objects = make([]NamedObject, 0)
	if len(raw.Objects) == 0 || bytes.Equal(raw.Objects, []byte("null")) {
		return nil
	}

	decoder := json.NewDecoder(bytes.NewReader(raw.Objects))
	token, err := decoder.Token()
	if err != nil {
		return err
	}
	if delim, ok := token.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("objects must be a JSON object")
	}

	for decoder.More() {
		token, err := decoder.Token()
		if err != nil {
			return err
		}

		name, ok := token.(string)
		if !ok {
			return fmt.Errorf("invalid object name %v", token)
		}

		var object AssetObject
		if err := decoder.Decode(&object); err != nil {
			return fmt.Errorf("could not decode object %s: %v", name, err)
		}

		a.Objects = append(a.Objects, NamedObject{
			Name:   name,
			Object: object,
		})
	}

	_, err = decoder.Token()
	return err
}
