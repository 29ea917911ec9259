// Command xesthora runs the timetable optimization engine as a single
// batch process: load catalogues, build and solve the MILP model, decode
// and render the result.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// RootCmd is the CLI entry point; subcommands register themselves onto it
// from their own init().
var RootCmd = &cobra.Command{
	Use:   "xesthora",
	Short: "Timetable optimization engine",
	Long: `xesthora builds a mixed-integer linear model of a school's weekly
timetable from a catalogue of teachers, classes, tasks, and eligibility
rules, solves it with an external MILP backend, and renders the resulting
class and teacher calendars.`,
}

func main() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
