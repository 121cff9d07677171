package commands

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/finscope-dev/finscope/internal/parser"
)

func newBanksCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "banks",
		Short: "List banks with a registered statement parser",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			banks := parser.DefaultRegistry().Banks()
			sort.Strings(banks)
			for _, b := range banks {
				fmt.Fprintln(cmd.OutOrStdout(), b)
			}
			return nil
		},
	}
}
