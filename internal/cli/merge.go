package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/chancharikmitra/vqascore/internal/console"
	"github.com/chancharikmitra/vqascore/internal/partition"
)

// runMerge builds the handler for the merge command.
func runMerge(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		flags := newFlagSet(cmd, stderr)
		var outputFiles stringList
		flags.Var(&outputFiles, "output_files", "Per-GPU result files in merge order")
		finalOutput := flags.String("final_output", "", "Merged output file")
		noColor := flags.Bool("no-color", false, "Disable colored output")
		if code, ok := parseFlags(cmd, flags, expandMultiValue(args, "output_files"), stdout, stderr); !ok {
			return code
		}
		if rejectExtraArgs(cmd, flags, stderr) {
			return ExitUsage
		}
		if len(outputFiles) == 0 || strings.TrimSpace(*finalOutput) == "" {
			fmt.Fprintln(stderr, "Error: merge command requires --output_files and --final_output")
			return ExitError
		}

		logger := console.New(stdout, *noColor)
		if _, err := partition.Merge(outputFiles, *finalOutput, logger); err != nil {
			logger.Errorf("Merge failed: %v", err)
			return ExitError
		}
		return ExitOK
	}
}
