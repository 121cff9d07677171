// Package writer renders SummaryData to output files. The pipeline defines
// only the summary's shape; these writers are its default renderings.
package writer

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/finscope-dev/finscope/internal/summary"
)

// Writer renders a summary to a stream.
type Writer interface {
	Write(w io.Writer, data *summary.Data) error
	Format() string
}

// ForPath picks a writer by output file extension.
func ForPath(path string) (Writer, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return &CSVWriter{}, nil
	case ".json":
		return &JSONWriter{}, nil
	default:
		return nil, fmt.Errorf("no summary writer for %q", filepath.Ext(path))
	}
}
