// Package main provides pxcorr, which computes correlation matrices of
// the numeric columns of a PC-AXIS or CSV table, grouped by the values
// of one or more columns.  Results are written as CSV.
package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"slices"
	"strconv"

	"github.com/kshedden/pxreader"
	"github.com/kshedden/pxreader/corr"
	"github.com/spf13/cobra"
)

var (
	groupBy    []string
	missing    []string
	outputPath string
	counts     bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "pxcorr",
		Short: "Conditional correlations of PC-AXIS and CSV tables",
		Long: `pxcorr reads a PC-AXIS (.px) file or a flat CSV table and computes the
correlation matrix of its numeric columns within each group of rows
sharing a value of a grouping column.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringArrayVarP(&groupBy, "by", "b", nil, "Grouping column (repeatable)")
	rootCmd.PersistentFlags().StringSliceVar(&missing, "missing", nil, "Values denoting missing cells, e.g. '..,...'")
	rootCmd.PersistentFlags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	_ = rootCmd.MarkPersistentFlagRequired("by")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "matrix [input]",
		Short: "Write one correlation matrix per group",
		Args:  cobra.ExactArgs(1),
		RunE:  runMatrix,
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "flat [input]",
		Short: "Write the correlations below the diagonal as (var1, var2, value) rows",
		Args:  cobra.ExactArgs(1),
		RunE:  runFlat,
	})

	statsCmd := &cobra.Command{
		Use:   "stats [input]",
		Short: "Write the mean, variance and standard deviation of each correlation across groups",
		Args:  cobra.ExactArgs(1),
		RunE:  runStats,
	}
	statsCmd.Flags().BoolVar(&counts, "counts", false, "Write the per-group counts of non-missing values instead")
	rootCmd.AddCommand(statsCmd)

	return rootCmd
}

func readTable(path string) ([]*pxreader.Series, error) {
	rdr, err := pxreader.Open(path, missing)
	if err != nil {
		return nil, err
	}
	return pxreader.ReadAll(rdr)
}

// withOutput runs f with a CSV writer on the output file or stdout.
func withOutput(cmd *cobra.Command, f func(w *csv.Writer) error) error {
	var out io.Writer = cmd.OutOrStdout()
	if outputPath != "" {
		fid, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("failed to create output: %w", err)
		}
		defer fid.Close()
		out = fid
	}

	w := csv.NewWriter(out)
	if err := f(w); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

func formatFloat(x float64) string {
	if math.IsNaN(x) {
		return ""
	}
	return strconv.FormatFloat(x, 'g', -1, 64)
}

func runMatrix(cmd *cobra.Command, args []string) error {
	data, err := readTable(args[0])
	if err != nil {
		return err
	}

	groups, err := corr.Conditional(data, groupBy)
	if err != nil {
		return err
	}

	return withOutput(cmd, func(w *csv.Writer) error {
		return writeMatrices(w, groups)
	})
}

func writeMatrices(w *csv.Writer, groups []*corr.Group) error {
	var (
		column string
		names  []string
	)
	for k, g := range groups {
		m := g.Matrix

		// The variables depend on the grouping column.
		if k == 0 || g.Column != column || !slices.Equal(names, m.Names) {
			column, names = g.Column, m.Names
			head := append([]string{"column", "value", "var"}, names...)
			if err := w.Write(head); err != nil {
				return err
			}
		}
		for i, v := range m.Names {
			row := []string{g.Column, g.Value, v}
			for j := range m.Names {
				row = append(row, formatFloat(m.At(i, j)))
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
	}
	return nil
}

func runFlat(cmd *cobra.Command, args []string) error {
	data, err := readTable(args[0])
	if err != nil {
		return err
	}

	groups, err := corr.Conditional(data, groupBy)
	if err != nil {
		return err
	}

	return withOutput(cmd, func(w *csv.Writer) error {
		if err := w.Write([]string{"column", "value", "var1", "var2", "val"}); err != nil {
			return err
		}
		for _, g := range groups {
			for _, t := range g.Matrix.Flatten() {
				if err := w.Write([]string{g.Column, g.Value, t.Var1, t.Var2, formatFloat(t.Value)}); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

func runStats(cmd *cobra.Command, args []string) error {
	data, err := readTable(args[0])
	if err != nil {
		return err
	}

	sums, err := corr.ConditionalStats(data, groupBy)
	if err != nil {
		return err
	}

	return withOutput(cmd, func(w *csv.Writer) error {
		if counts {
			return writeCounts(w, sums)
		}
		return writeStats(w, sums)
	})
}

func writeStats(w *csv.Writer, sums []*corr.Summary) error {
	if err := w.Write([]string{"column", "var1", "var2", "n", "mean", "var", "std"}); err != nil {
		return err
	}
	for _, sm := range sums {
		for _, p := range sm.Pairs {
			row := []string{sm.Column, p.Var1, p.Var2, strconv.Itoa(p.N),
				formatFloat(p.Mean), formatFloat(p.Variance), formatFloat(p.StdDev)}
			if err := w.Write(row); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeCounts(w *csv.Writer, sums []*corr.Summary) error {
	if err := w.Write([]string{"column", "value", "var", "count"}); err != nil {
		return err
	}
	for _, sm := range sums {
		for _, gc := range sm.Counts {
			for j, c := range gc.Columns {
				if err := w.Write([]string{sm.Column, gc.Value, c, strconv.Itoa(gc.Counts[j])}); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
