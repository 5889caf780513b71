package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the CREATE TABLE statements and row counts of the dataset tables",
	Args:  cobra.NoArgs,
	RunE:  runSchema,
}

func init() {
	rootCmd.AddCommand(schemaCmd)
}

func runSchema(cmd *cobra.Command, _ []string) error {
	a, err := openApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	out := cmd.OutOrStdout()
	for _, name := range a.Tables.List() {
		view, err := a.Tables.Describe(cmd.Context(), name)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s;\n-- %d rows\n\n", view.DDL, len(view.Records))
	}
	return nil
}
