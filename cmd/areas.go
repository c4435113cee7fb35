// File: cmd/areas.go
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xkilldash9x/forkdrift/internal/analysis"
)

// newAreasCmd creates the `areas` command, which prints the catalog of
// functional areas that upstream commits are grouped into.
func newAreasCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "areas",
		Short: "Prints all areas that upstream commits are grouped into",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, area := range analysis.DefaultCatalog().Areas() {
				fmt.Fprintln(cmd.OutOrStdout(), area)
			}
			return nil
		},
	}
}
