package assets

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/repeale/fp-go/option"
)

const INDEX_EXTENSION = ".json"

func LoadIndex(path string) (*AssetIndex, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var index AssetIndex
	if err := json.Unmarshal(data, &index); err != nil {
		return nil, fmt.Errorf("could not parse index %s: %v", path, err)
	}

	return &index, nil
}

func preferredIndex(indexDir string, preferred string) opt.Option[string] {
	if preferred == "" {
		return opt.None[string]()
	}

	target := filepath.Join(indexDir, preferred+INDEX_EXTENSION)
	info, err := os.Stat(target)
	if err != nil || info.IsDir() {
		return opt.None[string]()
	}

	return opt.Some(target)
}

// PickIndex chooses the index document for a run: the file named after the
// preferred version if it exists, otherwise the most recently modified one.
func PickIndex(indexDir string, preferred string) (string, error) {
	if found := preferredIndex(indexDir, preferred); opt.IsSome(found) {
		return found.Value, nil
	}

	entries, err := os.ReadDir(indexDir)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: no index directory at %s", NotFound, indexDir)
		}
		return "", err
	}

	type candidate struct {
		path    string
		modTime int64
	}

	candidates := make([]candidate, 0)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), INDEX_EXTENSION) {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			return "", err
		}

		candidates = append(candidates, candidate{
			path:    filepath.Join(indexDir, entry.Name()),
			modTime: info.ModTime().UnixNano(),
		})
	}

	if len(candidates) == 0 {
		return "", fmt.Errorf("%w: no asset index files in %s", NotFound, indexDir)
	}

	// Ties resolve by name so the choice does not depend on directory order
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].modTime != candidates[j].modTime {
			return candidates[i].modTime > candidates[j].modTime
		}
		return candidates[i].path < candidates[j].path
	})

	return candidates[0].path, nil
}
