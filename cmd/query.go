package cmd

import (
	"fmt"

	"ormcheatsheet/services/catalog"

	"github.com/spf13/cobra"
)

type queryConfig struct {
	sqlOnly bool
	limit   int
}

var queryCfg queryConfig

var queryCmd = &cobra.Command{
	Use:   "query <shape>",
	Short: "Show the expression, SQL and rows of one catalog query",
	Long: `Prints the GORM expression of a query shape, the SQL it renders to and, unless --sql-only
is given, the rows it returns against the generated dataset. Run "list" for shape names.`,
	Args: cobra.ExactArgs(1),
	RunE: runQuery,
}

func init() {
	rootCmd.AddCommand(queryCmd)

	queryCmd.Flags().BoolVar(&queryCfg.sqlOnly, "sql-only", false, "Print the expression and SQL without running the query")
	queryCmd.Flags().IntVarP(&queryCfg.limit, "limit", "n", 0, "Maximum number of rows to print, 0 for all")
}

func runQuery(cmd *cobra.Command, args []string) error {
	shape, err := catalog.ParseShape(args[0])
	if err != nil {
		return err
	}
	if queryCfg.limit < 0 {
		return fmt.Errorf("invalid --limit %d: must be >= 0", queryCfg.limit)
	}

	a, err := openApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	out := cmd.OutOrStdout()
	if queryCfg.sqlOnly {
		q, err := a.Queries.Describe(shape)
		if err != nil {
			return err
		}
		printQuery(cmd, q)
		return nil
	}

	res, err := a.Queries.Run(cmd.Context(), shape)
	if err != nil {
		return err
	}
	printQuery(cmd, &res.Query)

	records := res.Records
	if queryCfg.limit > 0 && len(records) > queryCfg.limit {
		records = records[:queryCfg.limit]
	}
	if err := printRecords(out, res.Columns, records); err != nil {
		return err
	}
	fmt.Fprintf(out, "\n(%d of %d rows)\n", len(records), len(res.Records))
	return nil
}

func printQuery(cmd *cobra.Command, q *catalog.Query) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s [%s]\n\n", q.Title, q.Category)
	fmt.Fprintf(out, "GORM:\n%s\n\n", q.Expression)
	fmt.Fprintf(out, "SQL:\n%s\n\n", q.SQL)
}
