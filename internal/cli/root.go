package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nulzo/routegen/internal/config"
	"github.com/nulzo/routegen/internal/platform/logger"
	"github.com/nulzo/routegen/internal/platform/term"
)

var (
	cfgFile   string
	logLevel  string
	logFormat string
)

var rootCmd = &cobra.Command{
	Use:   "routegen",
	Short: "Route registration generator for gin services",
	Long: `routegen scans a package for annotated handler functions and writes a
generated file containing their route registrations and a route listing.

Handlers opt in with doc comment directives:

	//routegen:register "/events"
	//routegen:get "/search"
	func SearchEvents(c *gin.Context) { ... }`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	defer logger.Sync()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", term.CrossMark(), err)
		logger.Sync()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: .routegen.yaml in the target or working directory)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "",
		"log format: console, json")
}

// loadConfig resolves the effective configuration for a command invocation:
// file and environment first, then persistent flags, then the optional
// positional scan directory, which is also searched for a .routegen.yaml
// ahead of the working directory. It also brings the global logger up.
func loadConfig(args []string) (*config.Config, error) {
	cfg, err := config.Load(cfgFile, args...)
	if err != nil {
		return nil, err
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	if logFormat != "" {
		cfg.Log.Format = logFormat
	}
	if len(args) > 0 {
		cfg.Scan.Root = args[0]
	}

	lcfg := logger.DefaultConfig()
	lcfg.Level = cfg.Log.Level
	lcfg.Format = cfg.Log.Format
	logger.Initialize(lcfg)
	logger.SetLevel(cfg.Log.Level)

	return cfg, nil
}
