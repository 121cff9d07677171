package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/finscope-dev/finscope/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "finscope",
		Short:   "Bank statement categorization and spending summaries",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newImportCommand())
	rootCmd.AddCommand(newBanksCommand())
	rootCmd.AddCommand(newMappingsCommand())

	return rootCmd
}

// dataDirArg resolves the optional positional data directory argument.
func dataDirArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "."
}
