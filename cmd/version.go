package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gowind/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gowind",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gowind v%s\n", version.Version)
		fmt.Println("Wind Action Calculator")
		fmt.Println("Based on AS/NZS 1170.2:2021 (Structural design actions - Wind actions)")
		fmt.Printf("Build: %s (commit %s)\n", version.BuildTime, version.GitCommit)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
