package cmd

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/timespan/foundation/core/error"
	"github.com/msto63/timespan/foundation/utils/timex"
	"github.com/msto63/timespan/pkg/timespan"
)

var (
	formatTemplate string
	formatSigned   bool
	formatHMS      string
	formatHuman    bool
)

var formatCmd = &cobra.Command{
	Use:   "format [seconds]",
	Short: "Render a duration with a template",
	Long: `Renders a signed number of seconds, or hours,minutes,seconds given
with --hms, using a template.

Examples:
  timespan format 5430                      # 01:30:30
  timespan format -- -90 --signed           # -00:01:30
  timespan format --hms 0,1.5,0             # 00:01:30
  timespan format 70 -t "%i min %s sec"     # 01 min 10 sec`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFormat,
}

func init() {
	addTemplateFlags(formatCmd, &formatTemplate, &formatSigned)
	formatCmd.Flags().StringVar(&formatHMS, "hms", "", "hours,minutes,seconds instead of a second count")
	formatCmd.Flags().BoolVar(&formatHuman, "human", false, "also print a spelled-out duration")
	rootCmd.AddCommand(formatCmd)
}

func runFormat(cmd *cobra.Command, args []string) error {
	ts, err := durationFromArgs(args, formatHMS)
	if err != nil {
		return err
	}

	template := resolveTemplate(formatTemplate, formatSigned)
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, ts.Format(template))
	if formatHuman {
		fmt.Fprintln(out, timex.FormatSeconds(ts.Seconds))
	}
	return nil
}

// durationFromArgs builds a Timespan from a second count or an h,m,s triple
func durationFromArgs(args []string, hms string) (*timespan.Timespan, error) {
	switch {
	case hms != "" && len(args) > 0:
		return nil, invalidInput("use either a second count or --hms", "cmd.format")
	case hms != "":
		parts := strings.Split(hms, ",")
		if len(parts) != 3 {
			return nil, invalidInput("--hms needs hours,minutes,seconds", "cmd.format").WithDetail("hms", hms)
		}
		values := make([]float64, 3)
		for i, p := range parts {
			v, err := parseFinite(p)
			if err != nil {
				return nil, invalidInput("--hms component is not a finite number", "cmd.format").WithDetail("component", p)
			}
			values[i] = v
		}
		ts := timespan.New(values[0], values[1], values[2])
		if !isFinite(ts.Seconds) {
			return nil, invalidInput("--hms is out of range", "cmd.format").WithDetail("hms", hms)
		}
		return ts, nil
	case len(args) == 1:
		seconds, err := parseFinite(args[0])
		if err != nil {
			return nil, invalidInput("seconds must be a finite number", "cmd.format").WithDetail("value", args[0])
		}
		return timespan.FromSeconds(seconds), nil
	default:
		return nil, invalidInput("a second count or --hms is required", "cmd.format")
	}
}

// parseFinite parses a decimal number and rejects NaN and infinities
func parseFinite(text string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return 0, err
	}
	if !isFinite(v) {
		return 0, strconv.ErrRange
	}
	return v, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func invalidInput(message, operation string) *mdwerror.Error {
	return mdwerror.New(message).
		WithCode(mdwerror.CodeInvalidInput).
		WithOperation(operation)
}
