package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/chancharikmitra/vqascore/internal/console"
	"github.com/chancharikmitra/vqascore/internal/partition"
)

// runSplit builds the handler for the split command.
func runSplit(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		flags := newFlagSet(cmd, stderr)
		inputFile := flags.String("input_file", "", "Input JSON array of work items")
		numGPUs := flags.Int("num_gpus", 0, "Number of partitions")
		outputDir := flags.String("output_dir", "", "Directory for chunk_<n>.json files")
		noColor := flags.Bool("no-color", false, "Disable colored output")
		if code, ok := parseFlags(cmd, flags, args, stdout, stderr); !ok {
			return code
		}
		if rejectExtraArgs(cmd, flags, stderr) {
			return ExitUsage
		}
		if strings.TrimSpace(*inputFile) == "" || *numGPUs == 0 || strings.TrimSpace(*outputDir) == "" {
			fmt.Fprintln(stderr, "Error: split command requires --input_file, --num_gpus, and --output_dir")
			return ExitError
		}

		logger := console.New(stdout, *noColor)
		if _, err := partition.Split(*inputFile, *numGPUs, *outputDir, logger); err != nil {
			logger.Errorf("Split failed: %v", err)
			return ExitError
		}
		return ExitOK
	}
}
