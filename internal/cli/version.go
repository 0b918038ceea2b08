package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nulzo/routegen/internal/platform/term"
)

var checkLatest bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the routegen version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("%s %s\n", term.ColorizeRGB("routegen", term.BrandBlue), AppVersion)
		if checkLatest {
			CheckForUpdates()
		}
	},
}

func init() {
	versionCmd.Flags().BoolVar(&checkLatest, "check", false,
		"check GitHub for a newer release")
	rootCmd.AddCommand(versionCmd)
}
