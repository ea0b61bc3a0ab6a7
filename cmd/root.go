package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/gowind/internal/version"
	"github.com/alexiusacademia/gowind/internal/wind"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	verbose bool
	logger  = zap.NewNop().Sugar()
)

var rootCmd = &cobra.Command{
	Use:   "gowind",
	Short: "Wind Action Calculator (AS/NZS 1170.2)",
	Long: `gowind - Go Wind Action Calculator

A CLI tool for design wind pressures on temporary works and small
structures based on AS/NZS 1170.2:2021 Structural design actions,
Part 2: Wind actions.

This tool helps structural engineers compute:
  - Regional and site wind speeds (ULS and SLS)
  - Design wind speed at a reference height
  - Shape factors for free-standing walls, hoardings, screens,
    circular tanks and attached canopies
  - Design wind pressure and its distribution along a wall or up a screen

Direction, shielding and topographic multipliers are taken as 1.0.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if !verbose {
			return nil
		}
		cfg := zap.NewDevelopmentConfig()
		cfg.OutputPaths = []string{"stderr"}
		l, err := cfg.Build()
		if err != nil {
			return fmt.Errorf("create logger: %w", err)
		}
		logger = l.Sugar()
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gowind v%-48s║\n", version.Version)
		fmt.Println("  ║   Go Wind Action Calculator                               ║")
		fmt.Println("  ║   Alexius S. Academia ©  2025                             ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for design wind pressures based on")
		fmt.Println("  AS/NZS 1170.2:2021 Structural design actions - Wind actions.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Regional wind speeds for regions A, W, B1, B2, C and D")
		fmt.Println("    • Terrain/height multipliers with linear interpolation")
		fmt.Println("    • Free-standing walls and hoardings at 0°, 45° and 90°")
		fmt.Println("    • Protection screen pressure profiles")
		fmt.Println("    • Circular tanks and attached canopies")
		fmt.Println("    • Spreadsheet batch runs")
		fmt.Println()
		fmt.Println("  Use 'gowind --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log each calculation step to stderr")
}

// newEngine builds a wind engine that traces to the command logger
func newEngine() *wind.Engine {
	return wind.NewEngine(wind.WithLogger(logger))
}
