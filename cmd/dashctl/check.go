package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	checkInput     string
	checkColumnMap string
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate a CSV dataset and print the skipped-row report",
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := loadDataset(checkInput, checkColumnMap)
		if err != nil {
			return err
		}

		yearMin, yearMax, _ := res.Dataset.YearRange()
		fmt.Printf("✅ %d rows loaded (%d-%d, %d states, %d categories)\n",
			res.Dataset.Len(), yearMin, yearMax,
			len(res.Dataset.States()), len(res.Dataset.Categories()))
		if res.Rollups > 0 {
			fmt.Printf("   %d pre-aggregated total rows excluded\n", res.Rollups)
		}
		if len(res.Warnings) == 0 {
			fmt.Println("   no rows skipped")
			return nil
		}

		fmt.Printf("⚠️  %d rows skipped:\n", len(res.Warnings))
		for _, w := range res.Warnings {
			fmt.Printf("   %s\n", w)
		}
		return nil
	},
}

func init() {
	checkCmd.Flags().StringVarP(&checkInput, "input", "i", "", "CSV file to check (required)")
	checkCmd.Flags().StringVar(&checkColumnMap, "column-map", "", "YAML column mapping file")
	checkCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(checkCmd)
}
