package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "dashctl",
	Short: "dashctl explores suicide-statistics CSV datasets",
	Long: `dashctl loads suicide-statistics CSV files (state, year, gender,
age group, cause category, count), filters them and produces grouped summary
tables. It runs the same engine the dashboard API serves, one-shot from the
command line.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "❌ Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ./dashboard.yaml)")
}
