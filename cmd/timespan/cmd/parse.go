package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/msto63/timespan/pkg/timespan"
)

var (
	parseTemplate string
	parseSigned   bool
	parseUnits    bool
	parseJSON     bool
)

var parseCmd = &cobra.Command{
	Use:   "parse <text>",
	Short: "Parse text into a number of seconds",
	Long: `Parses text with a template and prints the number of seconds.

Examples:
  timespan parse 01:30:00                       # 5400
  timespan parse -- -00:00:15                   # -15
  timespan parse "+15 seconds" -t "%R%s seconds" # 15
  timespan parse 27:00:00 --units`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	addTemplateFlags(parseCmd, &parseTemplate, &parseSigned)
	parseCmd.Flags().BoolVar(&parseUnits, "units", false, "print the unit decomposition")
	parseCmd.Flags().BoolVar(&parseJSON, "json", false, "print the result as JSON")
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	template := resolveTemplate(parseTemplate, parseSigned)

	ts, err := timespan.Parse(template, args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch {
	case parseJSON:
		return writeJSON(out, ts)
	case parseUnits:
		writeUnits(out, ts)
	default:
		fmt.Fprintln(out, formatSeconds(ts.Seconds))
	}
	return nil
}

// result is the JSON form of a parsed duration
type result struct {
	Seconds      float64 `json:"seconds"`
	Hours        float64 `json:"hours"`
	Minutes      float64 `json:"minutes"`
	Second       float64 `json:"second"`
	TotalMinutes float64 `json:"total_minutes"`
	Negative     bool    `json:"negative"`
	Formatted    string  `json:"formatted"`
	Signed       string  `json:"signed"`
}

func newResult(ts *timespan.Timespan) result {
	u := ts.Units()
	return result{
		Seconds:      ts.Seconds,
		Hours:        u.Hours,
		Minutes:      u.Minutes,
		Second:       u.Seconds,
		TotalMinutes: u.TotalMinutes,
		Negative:     u.Negative,
		Formatted:    ts.Format(current.DefaultFormat),
		Signed:       ts.Format(current.SignedFormat),
	}
}

func writeJSON(w io.Writer, ts *timespan.Timespan) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(newResult(ts))
}

func writeUnits(w io.Writer, ts *timespan.Timespan) {
	r := newResult(ts)
	rows := []struct {
		label string
		value string
	}{
		{"seconds", formatSeconds(r.Seconds)},
		{"hours", formatSeconds(r.Hours)},
		{"minutes", formatSeconds(r.Minutes)},
		{"second", formatSeconds(r.Second)},
		{"total minutes", formatSeconds(r.TotalMinutes)},
		{"formatted", r.Formatted},
		{"signed", r.Signed},
	}
	for _, row := range rows {
		fmt.Fprintln(w, labelStyle.Render(row.label)+valueStyle.Render(row.value))
	}
}

func formatSeconds(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
