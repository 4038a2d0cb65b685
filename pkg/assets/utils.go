package assets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
)

func FileExists(path string) bool {
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		return true
	}
	return false
}

func DirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// WriteBytes writes data to path, creating any missing parent directories.
func WriteBytes(data []byte, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = out.Write(data)
	if err != nil {
		return err
	}

	return out.Close()
}

// ExpandHome replaces a leading ~ with the given home directory.
func ExpandHome(path string, home string) string {
	if path == "~" {
		return home
	}

	if strings.HasPrefix(path, "~/") {
		return filepath.Join(home, path[2:])
	}

	return path
}

// DefaultStoreRoots lists where the launcher keeps its asset store on macOS,
// Linux and Windows, in that order.
func DefaultStoreRoots(home string) []string {
	return []string{
		filepath.Join(home, "Library", "Application Support", "minecraft", "assets"),
		filepath.Join(home, ".minecraft", "assets"),
		filepath.Join(home, "AppData", "Roaming", ".minecraft", "assets"),
	}
}

// FindStoreRoot returns the first candidate that exists as a directory.
func FindStoreRoot(candidates []string) (string, error) {
	for _, candidate := range candidates {
		if DirExists(candidate) {
			log.Info().Str("root", candidate).Msg("using asset store")
			return candidate, nil
		}

		log.Debug().Str("root", candidate).Msg("asset store candidate missing")
	}

	return "", fmt.Errorf("%w: no asset store in %s", NotFound, strings.Join(candidates, ", "))
}
