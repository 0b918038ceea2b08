package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nulzo/routegen/internal/config"
	"github.com/nulzo/routegen/internal/pipeline"
	"github.com/nulzo/routegen/internal/platform/logger"
	"github.com/nulzo/routegen/internal/platform/term"
)

var (
	outFile    string
	moduleKeys []string
	useScope   bool
	noListing  bool
)

var generateCmd = &cobra.Command{
	Use:   "generate [dir]",
	Short: "Scan a package and write its generated route file",
	Long: `generate parses every Go file in the target directory, collects the
annotated handlers into a registry, and writes one generated file with a
registration routine per configured target plus a route listing routine.

The scan directory defaults to the configured scan root (usually the
working directory) and can be overridden with a positional argument.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&outFile, "out", "",
		"name of the generated file (default: routes.gen.go)")
	generateCmd.Flags().StringArrayVar(&moduleKeys, "module-key", nil,
		"synthesize a registration routine for this module key (repeatable, overrides configured targets)")
	generateCmd.Flags().BoolVar(&useScope, "use-scope", false,
		"group handlers under their scope prefix (applies to --module-key targets)")
	generateCmd.Flags().BoolVar(&noListing, "no-listing", false,
		"skip the route listing routine")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(args)
	if err != nil {
		return err
	}
	if outFile != "" {
		cfg.Output.File = outFile
	}
	if len(moduleKeys) > 0 {
		cfg.Targets = nil
		for _, key := range moduleKeys {
			cfg.Targets = append(cfg.Targets, config.Target{ModuleKey: key, UseScope: useScope})
		}
	}
	if noListing {
		cfg.Listing.Enabled = false
	}

	res, err := pipeline.New(cfg, logger.Get()).Run(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Printf("%s wrote %s (%d routes, %d targets)\n",
		term.CheckMark(), res.Output, res.Entries, res.Targets)
	return nil
}
