package runner

import (
	"context"
	"fmt"
	"strings"

	"github.com/chancharikmitra/vqascore/internal/vqa"
	"github.com/chancharikmitra/vqascore/internal/workitem"
)

// Logger receives scoring progress lines.
type Logger interface {
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
	Donef(format string, args ...any)
}

// Params configures a scoring run.
type Params struct {
	InputPath string
	RefPath   string
	// OutputPath defaults to the input path with a _scored.json suffix.
	OutputPath string
	// QuestionSuffix is appended to each label definition.
	QuestionSuffix string
	Workers        int
	Logger         Logger
	Observer       Observer
	// RunID overrides run identifier generation, primarily for tests.
	RunID func() (string, error)
}

// Summary describes a finished scoring run.
type Summary struct {
	RunID      string
	InputPath  string
	OutputPath string
	Total      int
	Scored     int
	Failed     int
	Skipped    int
	Records    []workitem.Record
}

// job is one work item prepared for scoring.
type job struct {
	index   int
	record  workitem.Record
	skip    bool
	invalid error
}

// jobResult is the outcome of a single job.
type jobResult struct {
	index   int
	record  workitem.Record
	failed  bool
	skipped bool
}

// Score reads work items and reference prompts, scores every item whose label is known,
// and writes the records to the output path. Per-item failures are recorded with a null
// score; unreadable input or reference files and a failed write are returned as errors.
func Score(ctx context.Context, scorer vqa.Scorer, params Params) (Summary, error) {
	if scorer == nil {
		return Summary{}, fmt.Errorf("scorer is required")
	}
	logger := params.Logger
	if logger == nil {
		logger = discardLogger{}
	}
	items, err := workitem.LoadArray(params.InputPath)
	if err != nil {
		return Summary{}, fmt.Errorf("load input: %w", err)
	}
	refs, err := workitem.LoadReferences(params.RefPath)
	if err != nil {
		return Summary{}, fmt.Errorf("load reference: %w", err)
	}

	newRunID := params.RunID
	if newRunID == nil {
		newRunID = NewRunID
	}
	runID, err := newRunID()
	if err != nil {
		return Summary{}, fmt.Errorf("create run id: %w", err)
	}

	outputPath := strings.TrimSpace(params.OutputPath)
	if outputPath == "" {
		outputPath = workitem.ScoredPath(params.InputPath)
	}
	summary := Summary{
		RunID:      runID,
		InputPath:  params.InputPath,
		OutputPath: outputPath,
		Total:      len(items),
	}

	observer := newSyncObserver(params.Observer)
	observer.start(runID, params.InputPath, len(items))

	jobs := buildJobs(items, refs, params.QuestionSuffix)
	for _, j := range jobs {
		observer.emit(ItemEvent{Index: j.index, Video: j.record.Video, Label: j.record.Label, Type: ItemQueued})
	}

	deps := jobDeps{scorer: scorer, logger: logger, observer: observer}
	var results []jobResult
	if params.Workers <= 1 {
		results = runJobsSequential(ctx, jobs, deps)
	} else {
		results = runJobsConcurrent(ctx, jobs, params.Workers, deps)
	}

	records := make([]workitem.Record, 0, len(results))
	for _, result := range results {
		if result.skipped {
			summary.Skipped++
			continue
		}
		records = append(records, result.record)
		if result.failed {
			summary.Failed++
		} else {
			summary.Scored++
		}
	}
	summary.Records = records

	if err := workitem.WriteJSON(outputPath, records); err != nil {
		return summary, fmt.Errorf("write results: %w", err)
	}
	logger.Donef("Results written to %s", outputPath)
	observer.end(summary)
	return summary, nil
}

// buildJobs decodes every item and resolves its question. Items with unknown labels are
// marked skipped; undecodable items are kept so they are recorded as failures.
func buildJobs(items []workitem.Item, refs map[string]workitem.Reference, suffix string) []job {
	jobs := make([]job, 0, len(items))
	for index, item := range items {
		input, err := workitem.DecodeScoreInput(item)
		j := job{
			index:  index,
			record: workitem.Record{Video: input.Video, Label: input.Label},
		}
		if err != nil {
			j.invalid = err
			jobs = append(jobs, j)
			continue
		}
		ref, ok := refs[input.Label]
		if !ok {
			j.skip = true
			jobs = append(jobs, j)
			continue
		}
		j.record.Question = vqa.BuildQuestion(ref.Definition, suffix)
		jobs = append(jobs, j)
	}
	return jobs
}

type discardLogger struct{}

func (discardLogger) Infof(string, ...any)  {}
func (discardLogger) Warnf(string, ...any)  {}
func (discardLogger) Errorf(string, ...any) {}
func (discardLogger) Donef(string, ...any)  {}
