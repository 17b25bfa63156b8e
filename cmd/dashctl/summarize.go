package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"suicide-analytics-service/internal/engine"
	"suicide-analytics-service/internal/model"
)

var (
	sumInput      string
	sumColumnMap  string
	sumGroupBy    []string
	sumFn         string
	sumStates     []string
	sumGenders    []string
	sumAgeGroups  []string
	sumCategories []string
	sumYearFrom   int
	sumYearTo     int
	sumDense      bool
	sumOutput     string
)

var summarizeCmd = &cobra.Command{
	Use:   "summarize",
	Short: "Filter a CSV dataset and print a grouped summary table",
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := loadDataset(sumInput, sumColumnMap)
		if err != nil {
			return err
		}
		if n := res.Skipped(); n > 0 {
			fmt.Fprintf(os.Stderr, "⚠️  %d rows skipped (run 'dashctl check' for details)\n", n)
		}

		criteria, err := buildCriteria()
		if err != nil {
			return err
		}
		filtered := engine.Filter(res.Dataset, criteria)

		req := model.AggregationRequest{
			Fn:    model.AggregateFunc(strings.ToLower(sumFn)),
			Dense: sumDense,
		}
		for _, d := range sumGroupBy {
			req.GroupBy = append(req.GroupBy, model.Dimension(strings.ToLower(d)))
		}

		table, err := engine.Aggregate(filtered, req)
		if errors.Is(err, engine.ErrEmptyResult) {
			fmt.Println("No data matches the selected filters.")
			return nil
		}
		if err != nil {
			return err
		}

		if sumOutput != "" {
			f, err := os.Create(sumOutput)
			if err != nil {
				return fmt.Errorf("create output: %w", err)
			}
			defer f.Close()
			if err := engine.WriteSummaryCSV(f, table); err != nil {
				return err
			}
			fmt.Printf("✅ Wrote %d rows to %s\n", len(table.Rows), sumOutput)
			return nil
		}

		printTable(table)
		return nil
	},
}

func buildCriteria() (model.FilterCriteria, error) {
	c := model.FilterCriteria{}
	if len(sumStates) > 0 {
		c.States = sumStates
	}
	if len(sumCategories) > 0 {
		c.Category = sumCategories
	}
	for _, g := range sumGenders {
		gender, err := model.ParseGenderValue(g)
		if err != nil {
			return c, err
		}
		c.Genders = append(c.Genders, gender)
	}
	for _, ag := range sumAgeGroups {
		group, err := model.ParseAgeGroupValue(ag)
		if err != nil {
			return c, err
		}
		c.AgeGroups = append(c.AgeGroups, group)
	}
	if sumYearFrom != 0 || sumYearTo != 0 {
		yr := model.YearRange{Min: sumYearFrom, Max: sumYearTo}
		if yr.Max == 0 {
			yr.Max = 999999
		}
		c.Years = &yr
	}
	return c, nil
}

func printTable(table *model.SummaryTable) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	header := make([]string, 0, len(table.GroupBy)+1)
	for _, dim := range table.GroupBy {
		header = append(header, strings.ToUpper(string(dim)))
	}
	header = append(header, strings.ToUpper(string(table.Fn)))
	fmt.Fprintln(w, strings.Join(header, "\t"))
	for _, row := range table.Rows {
		fmt.Fprintf(w, "%s\t%d\n", strings.Join(row.Keys, "\t"), row.Value)
	}
	w.Flush()
	fmt.Printf("\nTotal: %d across %d groups\n", table.Total(), len(table.Rows))
}

func loadDataset(path, columnMap string) (*engine.LoadResult, error) {
	mapping := engine.DefaultColumnMapping()
	if columnMap != "" {
		var err error
		mapping, err = engine.LoadColumnMapping(columnMap)
		if err != nil {
			return nil, err
		}
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()
	return engine.Load(f, mapping)
}

func init() {
	summarizeCmd.Flags().StringVarP(&sumInput, "input", "i", "", "CSV file to load (required)")
	summarizeCmd.Flags().StringVar(&sumColumnMap, "column-map", "", "YAML column mapping file")
	summarizeCmd.Flags().StringSliceVar(&sumGroupBy, "group-by", []string{"state"}, "grouping dimensions")
	summarizeCmd.Flags().StringVar(&sumFn, "fn", "sum", "aggregate function: sum or count")
	summarizeCmd.Flags().StringSliceVar(&sumStates, "states", nil, "state filter")
	summarizeCmd.Flags().StringSliceVar(&sumGenders, "genders", nil, "gender filter")
	summarizeCmd.Flags().StringSliceVar(&sumAgeGroups, "age-groups", nil, "age group filter")
	summarizeCmd.Flags().StringSliceVar(&sumCategories, "categories", nil, "category filter")
	summarizeCmd.Flags().IntVar(&sumYearFrom, "year-from", 0, "lower year bound (inclusive)")
	summarizeCmd.Flags().IntVar(&sumYearTo, "year-to", 0, "upper year bound (inclusive)")
	summarizeCmd.Flags().BoolVar(&sumDense, "dense", false, "zero-fill missing years when grouping by year")
	summarizeCmd.Flags().StringVarP(&sumOutput, "output", "o", "", "write the summary as CSV to this file")
	summarizeCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(summarizeCmd)
}
