package commands

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/finscope-dev/finscope/internal/config"
	"github.com/finscope-dev/finscope/internal/mapping"
)

func newMappingsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "mappings [directory]",
		Short: "List learned merchant-category mappings",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := filepath.Abs(dataDirArg(args))
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			cfg, err := config.Load(filepath.Join(dir, config.FileName))
			if err != nil {
				return err
			}

			store := mapping.NewStore(mapping.NewJSONFile(filepath.Join(dir, cfg.MappingFile)))
			if err := store.Load(); err != nil {
				return err
			}

			all := store.All()
			sigs := make([]string, 0, len(all))
			for sig := range all {
				sigs = append(sigs, sig)
			}
			sort.Strings(sigs)

			out := cmd.OutOrStdout()
			for _, sig := range sigs {
				fmt.Fprintf(out, "%s\t%s\n", sig, all[sig])
			}
			fmt.Fprintf(out, "%d mappings\n", len(all))
			return nil
		},
	}
}
