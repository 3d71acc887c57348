package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	mdwlog "github.com/msto63/timespan/foundation/core/log"
	"github.com/msto63/timespan/foundation/utils/timex"
	"github.com/msto63/timespan/pkg/timespan"
)

var (
	addTemplate string
	addSigned   bool
)

var addCmd = &cobra.Command{
	Use:   "add <base> <expression>...",
	Short: "Add relative expressions to a duration",
	Long: `Parses base with the template, then adds each relative expression
such as "+1 hour", "-30 minutes" or "2h 15m". The result is rendered with
the same template.

Examples:
  timespan add 01:00:00 "+30 minutes"              # 01:30:00
  timespan add --signed +00:10:00 -- "-1 hour"     # -00:50:00`,
	Args: cobra.MinimumNArgs(2),
	RunE: runAdd,
}

func init() {
	addTemplateFlags(addCmd, &addTemplate, &addSigned)
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	template := resolveTemplate(addTemplate, addSigned)

	ts, err := timespan.Parse(template, args[0])
	if err != nil {
		return err
	}

	timer := logger.StartTimer("add").WithField("expressions", len(args)-1)
	defer timer.Stop()

	resolver := timex.Resolver{}
	for _, expr := range args[1:] {
		if _, err := ts.AddFromString(expr, resolver); err != nil {
			return err
		}
		logger.Debug("expression added", mdwlog.Fields{
			"expression": expr,
			"seconds":    ts.Seconds,
		})
	}

	fmt.Fprintln(cmd.OutOrStdout(), ts.Format(template))
	return nil
}
