package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/timespan/foundation/core/error"
	"github.com/msto63/timespan/foundation/utils/timex"
	"github.com/msto63/timespan/pkg/timespan"
)

var (
	diffTemplate string
	diffSigned   bool
	diffSeconds  bool
)

var diffCmd = &cobra.Command{
	Use:   "diff <start> <end>",
	Short: "Duration between two points in time",
	Long: `Prints end - start. Points in time are RFC 3339, "2006-01-02 15:04:05",
"2006-01-02", "02.01.2006 15:04:05" or @<unix seconds>. Values without a zone
are read as UTC.

Examples:
  timespan diff "2026-10-19 08:00" "2026-10-19 17:30"   # 09:30:00
  timespan diff @0 @90 --seconds                       # 90`,
	Args: cobra.ExactArgs(2),
	RunE: runDiff,
}

func init() {
	addTemplateFlags(diffCmd, &diffTemplate, &diffSigned)
	diffCmd.Flags().BoolVar(&diffSeconds, "seconds", false, "print the raw second count")
	rootCmd.AddCommand(diffCmd)
}

func runDiff(cmd *cobra.Command, args []string) error {
	start, err := parseInstant(args[0])
	if err != nil {
		return err
	}
	end, err := parseInstant(args[1])
	if err != nil {
		return err
	}

	ts := timespan.CreateFromDateDiff(start, end)
	out := cmd.OutOrStdout()
	if diffSeconds {
		fmt.Fprintln(out, formatSeconds(ts.Seconds))
		return nil
	}
	fmt.Fprintln(out, ts.Format(resolveTemplate(diffTemplate, diffSigned)))
	return nil
}

func parseInstant(value string) (time.Time, error) {
	t, err := timex.Parse(value)
	if err != nil {
		return time.Time{}, mdwerror.Wrap(err, "invalid point in time").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("cmd.diff").
			WithDetail("value", value)
	}
	return t, nil
}
