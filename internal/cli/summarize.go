package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/chancharikmitra/vqascore/internal/console"
	"github.com/chancharikmitra/vqascore/internal/duckdb"
	"github.com/chancharikmitra/vqascore/internal/workitem"
)

// runSummarize builds the handler for the summarize command.
func runSummarize(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		flags := newFlagSet(cmd, stderr)
		dbPath := flags.String("db", "", "DuckDB database file (default: in-memory)")
		noColor := flags.Bool("no-color", false, "Disable colored output")
		if code, ok := parseFlags(cmd, flags, args, stdout, stderr); !ok {
			return code
		}
		files := flags.Args()
		if len(files) == 0 {
			fmt.Fprintln(stderr, "Error: summarize command requires at least one scored file")
			return ExitError
		}

		logger := console.New(stdout, *noColor)
		ctx := context.Background()
		db, err := duckdb.Open(ctx, *dbPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to open database: %v\n", err)
			return ExitError
		}
		defer db.Close()

		for _, path := range files {
			records, err := workitem.LoadRecords(path)
			if err != nil {
				fmt.Fprintf(stderr, "Failed to load %s: %v\n", path, err)
				return ExitError
			}
			result, err := duckdb.Ingest(ctx, db, path, records)
			if err != nil {
				fmt.Fprintf(stderr, "Failed to ingest %s: %v\n", path, err)
				return ExitError
			}
			if result.Duplicate {
				logger.Infof("Already loaded %s (batch %s)", path, result.BatchID)
				continue
			}
			logger.Infof("Loaded %d records from %s (batch %s)", result.Inserted, path, result.BatchID)
		}

		stats, err := duckdb.LabelStats(ctx, db)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to summarize: %v\n", err)
			return ExitError
		}
		for _, stat := range stats {
			fmt.Fprintf(stdout, "%s: count=%d scored=%d failed=%d mean=%s min=%s max=%s\n",
				stat.Label, stat.Count, stat.Scored, stat.Failed,
				formatStat(stat.Mean), formatStat(stat.Min), formatStat(stat.Max))
		}
		return ExitOK
	}
}

func formatStat(value *float64) string {
	if value == nil {
		return "n/a"
	}
	return strconv.FormatFloat(*value, 'f', 4, 64)
}
