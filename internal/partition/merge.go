package partition

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/chancharikmitra/vqascore/internal/workitem"
)

// SkipReason explains why a file contributed nothing to a merge.
type SkipReason string

const (
	// SkipMissing marks a path that does not exist.
	SkipMissing SkipReason = "missing"
	// SkipUnreadable marks a file that exists but could not be read or parsed as a JSON array.
	SkipUnreadable SkipReason = "unreadable"
)

// SkippedFile records one input left out of a merge.
type SkippedFile struct {
	Path   string
	Reason SkipReason
	Err    error
}

// MergeReport summarizes a merge run.
type MergeReport struct {
	Total   int
	Merged  []string
	Skipped []SkippedFile
}

// Merge concatenates the JSON arrays in paths, in the given order, and writes the result
// to finalOutput. Missing or malformed inputs are logged, recorded in the report and
// skipped; the run continues with the next path. Only a failed write is returned as an
// error.
func Merge(paths []string, finalOutput string, logger Logger) (MergeReport, error) {
	logger = orDiscard(logger)
	report := MergeReport{}
	all := make([]workitem.Item, 0)

	for _, path := range paths {
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			logger.Warnf("Output file not found: %s", path)
			report.Skipped = append(report.Skipped, SkippedFile{Path: path, Reason: SkipMissing, Err: err})
			continue
		}
		items, err := workitem.LoadArray(path)
		if err != nil {
			logger.Warnf("Failed to load %s: %v", path, err)
			report.Skipped = append(report.Skipped, SkippedFile{Path: path, Reason: SkipUnreadable, Err: err})
			continue
		}
		all = append(all, items...)
		report.Total += len(items)
		report.Merged = append(report.Merged, path)
		logger.Infof("Merged %d results from %s", len(items), filepath.Base(path))
	}

	if err := workitem.WriteJSON(finalOutput, all); err != nil {
		return report, err
	}
	logger.Infof("Total merged results: %d", report.Total)
	return report, nil
}
