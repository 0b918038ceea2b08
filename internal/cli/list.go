package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/nulzo/routegen/internal/pipeline"
	"github.com/nulzo/routegen/internal/platform/logger"
	"github.com/nulzo/routegen/internal/platform/term"
	"github.com/nulzo/routegen/pkg/autoroute"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:   "list [dir]",
	Short: "Print the route table for a package without writing files",
	Long: `list runs the same scan as generate and prints the resulting route
table to stdout. Nothing is written to disk, so it is safe to run against
a package whose generated file is stale or missing.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runList,
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false,
		"print the routes as JSON instead of a table")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(args)
	if err != nil {
		return err
	}

	rows, err := pipeline.New(cfg, logger.Get()).Rows(cmd.Context())
	if err != nil {
		return err
	}

	if listJSON {
		term.PrettyPrint(rows)
		return nil
	}
	autoroute.WriteTable(os.Stdout, rows)
	return nil
}
