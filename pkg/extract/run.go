package extract

import (
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/rayyankhan47/Blockbase/pkg/assets"
	"github.com/rayyankhan47/Blockbase/pkg/icons"
)

type Job struct {
	Source    assets.Source
	PublicDir string
	// Where the icon map is written
	Mapping string
	Layout  assets.Layout
	Builder *icons.Builder
}

type Summary struct {
	Result  *Result
	Mapping *icons.Mapping
}

// Run extracts every texture and then writes the icon map. The map is only
// written once extraction finished without error.
func Run(job Job) (*Summary, error) {
	result, err := NewFS(job.PublicDir, job.Layout).Extract(job.Source)
	if err != nil {
		return nil, err
	}

	mapping := job.Builder.Build(result.Blocks, result.Items)

	if err := icons.SaveMapping(job.Mapping, mapping); err != nil {
		return nil, err
	}

	log.Debug().
		Int("written", result.Written).
		Int("unchanged", result.Unchanged).
		Int("entries", mapping.Len()).
		Str("mapping", filepath.ToSlash(job.Mapping)).
		Msg("extraction finished")

	return &Summary{
		Result:  result,
		Mapping: mapping,
	}, nil
}
