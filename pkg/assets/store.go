package assets

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
)

// A Store holds extracted files under slash-separated keys.
type Store interface {
	Get(key string) ([]byte, error)
	Set(key string, data []byte) error
}

// An FSStore is just an absolute path on the FS.
type FSStore string

var Missing = fmt.Errorf("file missing")

func (f FSStore) getPath(key string) string {
	return filepath.Join(string(f), filepath.FromSlash(key))
}

func (f FSStore) Get(key string) ([]byte, error) {
	target := f.getPath(key)

	if !FileExists(target) {
		return nil, Missing
	}

	return os.ReadFile(target)
}

func (f FSStore) Set(key string, data []byte) error {
	target := f.getPath(key)
	return WriteBytes(data, target)
}

// Ensure creates the directory for key.
func (f FSStore) Ensure(key string) error {
	return os.MkdirAll(f.getPath(key), 0755)
}

// Digest returns the xxhash of the file stored at key.
func (f FSStore) Digest(key string) (uint64, error) {
	file, err := os.Open(f.getPath(key))
	if os.IsNotExist(err) {
		return 0, Missing
	}
	if err != nil {
		return 0, err
	}
	defer file.Close()

	digest := xxhash.New()
	if _, err := io.Copy(digest, file); err != nil {
		return 0, err
	}

	return digest.Sum64(), nil
}

// A Digester can fingerprint stored files without reading them into memory.
type Digester interface {
	Digest(key string) (uint64, error)
}

var _ Store = (*FSStore)(nil)
var _ Digester = (*FSStore)(nil)
