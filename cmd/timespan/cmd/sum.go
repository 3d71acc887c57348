package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/timespan/pkg/timespan"
)

var (
	sumTemplate string
	sumSigned   bool
)

var sumCmd = &cobra.Command{
	Use:   "sum <value>...",
	Short: "Add up durations",
	Long: `Parses every value with the template and prints the total.

Examples:
  timespan sum 01:15:00 00:50:00 00:00:30      # 02:05:30
  timespan sum --signed +01:00:00 -- -02:00:00 # -01:00:00`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSum,
}

func init() {
	addTemplateFlags(sumCmd, &sumTemplate, &sumSigned)
	rootCmd.AddCommand(sumCmd)
}

func runSum(cmd *cobra.Command, args []string) error {
	template := resolveTemplate(sumTemplate, sumSigned)

	timer := logger.StartTimer("sum").WithField("values", len(args))
	defer timer.Stop()

	spans := make([]*timespan.Timespan, 0, len(args))
	for _, arg := range args {
		ts, err := timespan.Parse(template, arg)
		if err != nil {
			return err
		}
		spans = append(spans, ts)
	}

	total := (&timespan.Timespan{}).Sum(spans...)
	fmt.Fprintln(cmd.OutOrStdout(), total.Format(template))
	return nil
}
