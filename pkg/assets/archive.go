package assets

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zip"
	"github.com/rs/zerolog/log"
)

// The minimum number of segments from the anchor on:
// assets/<namespace>/textures/<category>/<file>
const MIN_ARCHIVE_DEPTH = 5

// An ArchiveSource reads textures out of a resource pack zip. Packs are often
// wrapped in one or more top-level folders, so entries are located by the
// assets/<namespace>/textures/ anchor anywhere in their path.
type ArchiveSource struct {
	reader *zip.Reader
	closer io.Closer
	Layout Layout
}

func NewArchiveSource(reader *zip.Reader, layout Layout) *ArchiveSource {
	return &ArchiveSource{
		reader: reader,
		Layout: layout,
	}
}

func OpenArchiveSource(path string, layout Layout) (*ArchiveSource, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: zip %s", NotFound, path)
		}
		return nil, err
	}

	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", InvalidArchive, path)
	}

	reader, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", InvalidArchive, path, err)
	}

	return &ArchiveSource{
		reader: &reader.Reader,
		closer: reader,
		Layout: layout,
	}, nil
}

func (a *ArchiveSource) Close() error {
	if a.closer == nil {
		return nil
	}
	return a.closer.Close()
}

func (a *ArchiveSource) anchor() string {
	return fmt.Sprintf("assets/%s/textures/", strings.ToLower(a.Layout.Namespace))
}

// classify locates the anchor in an entry name and returns the entry's
// category and base name. found reports whether the anchor occurred at all.
func (a *ArchiveSource) classify(name string) (category Category, base string, found bool, ok bool) {
	lower := strings.ToLower(name)
	index := strings.Index(lower, a.anchor())
	if index == -1 {
		return 0, "", false, false
	}

	if !a.Layout.HasExtension(name) {
		return 0, "", true, false
	}

	parts := strings.Split(name[index:], "/")
	if len(parts) < MIN_ARCHIVE_DEPTH {
		return 0, "", true, false
	}

	category, ok = ParseCategory(parts[3], true)
	if !ok {
		return 0, "", true, false
	}

	base = a.Layout.TrimExtension(parts[len(parts)-1])
	if base == "" {
		return 0, "", true, false
	}

	return category, base, true, true
}

func (a *ArchiveSource) Each(fn func(entry Entry) error) error {
	anchored := false

	for _, file := range a.reader.File {
		name := strings.ReplaceAll(file.Name, "\\", "/")

		category, base, found, ok := a.classify(name)
		anchored = anchored || found

		if file.FileInfo().IsDir() {
			continue
		}

		if !ok {
			if found {
				log.Debug().Str("entry", name).Msg("skipping archive entry")
			}
			continue
		}

		file := file
		err := fn(Entry{
			Path:     name,
			Category: category,
			BaseName: base,
			open: func() (io.ReadCloser, error) {
				return file.Open()
			},
		})
		if err != nil {
			return err
		}
	}

	if !anchored {
		return fmt.Errorf("%w: no %s in archive", NotFound, a.anchor())
	}

	return nil
}

var _ Source = (*ArchiveSource)(nil)
