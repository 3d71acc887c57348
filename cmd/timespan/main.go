package main

import (
	"os"

	"github.com/msto63/timespan/cmd/timespan/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(cmd.ExitCode(err))
	}
}
