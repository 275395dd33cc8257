package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/npillmayer/animsync/easing"
	"github.com/spf13/cobra"
)

var easingsCmd = &cobra.Command{
	Use:   "easings [curve ...]",
	Short: "Tabulate timing functions",
	Long: `Prints values of timing functions at evenly spaced points of time.
Curves are given by name or as cubic-bezier(x1, y1, x2, y2); without
arguments, all named curves are printed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		samples, _ := cmd.Flags().GetInt("samples")
		return runEasings(args, samples)
	},
}

func init() {
	easingsCmd.Flags().Int("samples", 5, "number of points in time, including 0 and 1")
	rootCmd.AddCommand(easingsCmd)
}

func runEasings(curves []string, samples int) error {
	if samples < 2 {
		return fmt.Errorf("need at least 2 samples, have %d", samples)
	}
	if len(curves) == 0 {
		curves = easing.Names()
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', tabwriter.AlignRight)
	header := []string{"curve"}
	for i := 0; i < samples; i++ {
		header = append(header, fmt.Sprintf("%.2f", float64(i)/float64(samples-1)))
	}
	fmt.Fprintln(w, strings.Join(header, "\t")+"\t")
	for _, name := range curves {
		f, err := easing.Parse(name)
		if err != nil {
			return err
		}
		row := []string{name}
		for i := 0; i < samples; i++ {
			row = append(row, fmt.Sprintf("%.3f", f(float64(i)/float64(samples-1))))
		}
		fmt.Fprintln(w, strings.Join(row, "\t")+"\t")
	}
	return w.Flush()
}
