package extract

import (
	"fmt"
	"io"
	"path/filepath"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Report prints the two summary lines shown after a successful run. from is
// appended to the first line, ex: " from pack".
func Report(out io.Writer, summary *Summary, projectRoot string, mappingPath string, from string) error {
	printer := message.NewPrinter(language.English)

	_, err := printer.Fprintf(
		out,
		"Extracted %d block textures and %d item textures%s.\n",
		len(summary.Result.Blocks),
		len(summary.Result.Items),
		from,
	)
	if err != nil {
		return err
	}

	relative, err := filepath.Rel(projectRoot, mappingPath)
	if err != nil {
		relative = mappingPath
	}

	_, err = fmt.Fprintf(out, "Wrote icon map: %s\n", relative)
	return err
}
