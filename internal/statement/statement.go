package statement

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Row is one statement line as a column-name to raw-cell mapping. Line is
// the 1-based position in the source file, kept for per-row error reporting.
type Row struct {
	Line  int
	Cells map[string]string
}

// Get returns the named cell, trimmed; ok is false when the column is absent.
func (r Row) Get(column string) (string, bool) {
	v, ok := r.Cells[column]
	return strings.TrimSpace(v), ok
}

// Statement is a parsed tabular export: the header columns in file order
// plus all data rows. Parsers only ever see this shape; whether the rows
// came from a local file or a cloud download is not their concern.
type Statement struct {
	Columns []string
	Rows    []Row
}

// HasColumns reports whether every named column is present in the header.
func (s *Statement) HasColumns(names ...string) bool {
	for _, n := range names {
		found := false
		for _, c := range s.Columns {
			if c == n {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// FileInfo describes a statement file in the import directory.
type FileInfo struct {
	Name string
	Path string
	Size int64
}

// importDir is the subdirectory for incoming statement exports.
const importDir = "import"

// processedDir is the subdirectory statements move to after a run.
const processedDir = "import/processed"

// Scan returns CSV statement files in <dataRoot>/import/.
func Scan(dataRoot string) ([]FileInfo, error) {
	dir := filepath.Join(dataRoot, importDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading import dir: %w", err)
	}

	var files []FileInfo
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if !strings.HasSuffix(strings.ToLower(e.Name()), ".csv") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", e.Name(), err)
		}
		files = append(files, FileInfo{
			Name: e.Name(),
			Path: filepath.Join(dir, e.Name()),
			Size: info.Size(),
		})
	}
	return files, nil
}

// MarkProcessed moves a file from import/ to import/processed/.
func MarkProcessed(dataRoot, fileName string) error {
	src := filepath.Join(dataRoot, importDir, fileName)
	dstDir := filepath.Join(dataRoot, processedDir)

	if err := os.MkdirAll(dstDir, 0o755); err != nil {
		return fmt.Errorf("creating processed dir: %w", err)
	}

	dst := filepath.Join(dstDir, fileName)
	if err := os.Rename(src, dst); err != nil {
		return fmt.Errorf("moving %s to processed: %w", fileName, err)
	}
	return nil
}
