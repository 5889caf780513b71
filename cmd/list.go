package cmd

import (
	"ormcheatsheet/services/catalog"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the catalog query shapes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return printCatalog(cmd.OutOrStdout(), catalog.Definitions())
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
