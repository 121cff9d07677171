package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/finscope-dev/finscope/internal/config"
)

func newInitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new finscope data directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := filepath.Abs(dataDirArg(args))
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			return runInit(dir)
		},
	}
}

func runInit(dir string) error {
	dirs := []string{
		"import",
		filepath.Join("import", "processed"),
	}
	for _, d := range dirs {
		if err := os.MkdirAll(filepath.Join(dir, d), 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", d, err)
		}
	}

	cfgPath := filepath.Join(dir, config.FileName)
	if _, err := os.Stat(cfgPath); err == nil {
		return fmt.Errorf("%s already exists in %s", config.FileName, dir)
	}
	cfg := config.Default()
	if err := config.Save(cfgPath, cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	mappingPath := filepath.Join(dir, cfg.MappingFile)
	if err := os.WriteFile(mappingPath, []byte("{}\n"), 0o644); err != nil {
		return fmt.Errorf("writing empty mappings: %w", err)
	}
	return nil
}
