package main

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/narrows-ml/narrows/array"
	"github.com/narrows-ml/narrows/slow"
)

var statsCmd = &cobra.Command{
	Use:   "stats [file]",
	Short: "Print NaN-aware summary statistics for a list of numbers",
	Long: `Reads whitespace-separated floating-point values (the literal "nan" is
allowed for missing entries) from a file or stdin and prints NaN-aware
summary statistics.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	in := io.Reader(os.Stdin)
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	vals, err := readValues(in)
	if err != nil {
		return err
	}
	if len(vals) == 0 {
		return fmt.Errorf("no input values")
	}

	nans := 0
	for _, v := range vals {
		if math.IsNaN(v) {
			nans++
		}
	}

	a, err := array.FromSlice(vals, array.Shape{len(vals)})
	if err != nil {
		return err
	}

	fmt.Printf("count:  %d (%d nan)\n", len(vals), nans)
	fmt.Printf("median: %g\n", slow.NaNMedian(a, slow.None).At())
	fmt.Printf("mean:   %g\n", slow.NaNMean(a, slow.None).At())
	fmt.Printf("std:    %g\n", slow.NaNStd(a, slow.None).At())
	fmt.Printf("min:    %g\n", slow.NaNMin(a, slow.None).At())
	fmt.Printf("max:    %g\n", slow.NaNMax(a, slow.None).At())
	return nil
}

func readValues(in io.Reader) ([]float64, error) {
	var vals []float64
	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		v, err := strconv.ParseFloat(scanner.Text(), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid value %q: %w", scanner.Text(), err)
		}
		vals = append(vals, v)
	}
	return vals, scanner.Err()
}
