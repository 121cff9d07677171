package mapping

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// JSONFile persists the merchant mapping as a flat {signature: category}
// JSON object, kept human-editable. Writes merge the delta into the current
// durable state and replace the file with a write-temp-then-rename so an
// interrupted run never leaves a truncated mapping behind.
type JSONFile struct {
	mu   sync.Mutex // one flush in flight per backing file
	path string
}

// NewJSONFile creates a persister for the given file path.
func NewJSONFile(path string) *JSONFile {
	return &JSONFile{path: path}
}

// Load reads the mapping file. A missing file is an empty mapping, not an
// error.
func (f *JSONFile) Load() (map[string]string, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("reading %s: %w", f.path, err)
	}

	mapping := map[string]string{}
	if len(data) == 0 {
		return mapping, nil
	}
	if err := json.Unmarshal(data, &mapping); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", f.path, err)
	}
	return mapping, nil
}

// Write merges delta into the durable mapping and atomically replaces the
// file.
func (f *JSONFile) Write(delta map[string]string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	current, err := f.Load()
	if err != nil {
		return err
	}
	for sig, cat := range delta {
		current[sig] = cat
	}

	data, err := json.MarshalIndent(current, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding merchant mappings: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(f.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(f.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp mapping file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing temp mapping file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp mapping file: %w", err)
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replacing %s: %w", f.path, err)
	}
	return nil
}
