package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/timespan/foundation/core/error"
	mdwlog "github.com/msto63/timespan/foundation/core/log"
	"github.com/msto63/timespan/pkg/timespan"
)

var validateCmd = &cobra.Command{
	Use:   "validate <template> [text]",
	Short: "Check a template and optionally a value against it",
	Long: `Checks that a template contains at least one placeholder. With a
second argument the text must also match the template.

Examples:
  timespan validate "%h:%i"          # valid
  timespan validate "no placeholder" # exit status 2
  timespan validate "%h:%i" 12:30    # valid`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	template := args[0]
	if !timespan.IsValidTemplate(template) {
		return mdwerror.New("template has no placeholder").
			WithCode(mdwerror.CodeInvalidTemplate).
			WithSeverity(mdwerror.SeverityLow).
			WithOperation("cmd.validate").
			WithDetail("template", template)
	}

	if len(args) == 2 {
		if _, err := timespan.Parse(template, args[1]); err != nil {
			return err
		}
	}

	logger.Debug("template accepted", mdwlog.Fields{"template": template})
	fmt.Fprintln(cmd.OutOrStdout(), okStyle.Render("valid"))
	return nil
}
