package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/timespan/foundation/core/error"
	mdwlog "github.com/msto63/timespan/foundation/core/log"
)

var (
	cfgFile   string
	verbose   bool
	logFormat string
)

var rootCmd = &cobra.Command{
	Use:   "timespan",
	Short: "Format, parse and compute signed durations",
	Long: `timespan converts durations between seconds and text using
placeholder templates.

Placeholders:
  %h  hours, at least two digits
  %i  minutes, two digits
  %s  seconds, two digits
  %r  "-" for negative values
  %R  "-" for negative values, "+" otherwise

Configuration is read from --config, ./timespan.{toml,yaml} or
$HOME/.config/timespan/. TIMESPAN_* environment variables override
file values, for example TIMESPAN_FORMAT_DEFAULT.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute runs the root command and prints a failure to stderr
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		if logger.IsLevelEnabled(mdwlog.LevelDebug) {
			logger.LogError(err)
		}
		printError(rootCmd.ErrOrStderr(), err)
	}
	return err
}

// ExitCode maps an error to the process exit status
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if _, ok := mdwerror.As(err); !ok {
		return 1
	}
	return mdwerror.GetCode(err).ExitCode()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./timespan.toml or $HOME/.config/timespan/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging to stderr")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format: console, text, logfmt or json")
}

func printError(w io.Writer, err error) {
	fmt.Fprintln(w, errorStyle.Render("Error:")+" "+err.Error())
}
