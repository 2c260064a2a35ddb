package runner

import (
	"context"
	"sync"

	"github.com/chancharikmitra/vqascore/internal/vqa"
)

// jobDeps bundles what a worker needs to score one item.
type jobDeps struct {
	scorer   vqa.Scorer
	logger   Logger
	observer *syncObserver
}

// runJobsSequential scores jobs one at a time in input order.
func runJobsSequential(ctx context.Context, jobs []job, deps jobDeps) []jobResult {
	results := make([]jobResult, 0, len(jobs))
	for _, j := range jobs {
		results = append(results, executeJob(ctx, j, deps))
	}
	return results
}

// runJobsConcurrent scores jobs with a bounded worker pool and returns results in
// input order regardless of completion order.
func runJobsConcurrent(ctx context.Context, jobs []job, workers int, deps jobDeps) []jobResult {
	results := make([]jobResult, len(jobs))
	work := make(chan int)
	var wg sync.WaitGroup
	for i := 0; i < min(workers, len(jobs)); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for position := range work {
				results[position] = executeJob(ctx, jobs[position], deps)
			}
		}()
	}
	for position := range jobs {
		work <- position
	}
	close(work)
	wg.Wait()
	return results
}

// executeJob scores a single job, converting any failure into a null-score record.
// Jobs with unknown labels are reported as skipped at their place in the run.
func executeJob(ctx context.Context, j job, deps jobDeps) jobResult {
	record := j.record
	event := ItemEvent{Index: j.index, Video: record.Video, Label: record.Label}

	fail := func(err error) jobResult {
		record.Score = nil
		record.Error = err.Error()
		event.Type = ItemFailed
		event.Error = record.Error
		deps.observer.emit(event)
		return jobResult{index: j.index, record: record, failed: true}
	}

	if j.skip {
		deps.logger.Warnf("Label '%s' not found in reference file. Skipping.", record.Label)
		event.Type = ItemSkipped
		deps.observer.emit(event)
		return jobResult{index: j.index, record: record, skipped: true}
	}
	if j.invalid != nil {
		deps.logger.Errorf("Invalid work item %d: %v", j.index, j.invalid)
		return fail(j.invalid)
	}
	if err := ctx.Err(); err != nil {
		deps.logger.Errorf("Failed to score video: %s for label: %s. Error: %v", record.Video, record.Label, err)
		return fail(err)
	}

	event.Type = ItemRunning
	deps.observer.emit(event)
	score, err := deps.scorer.Score(ctx, vqa.Request{
		Media:    record.Video,
		Label:    record.Label,
		Question: record.Question,
	})
	if err != nil {
		deps.logger.Errorf("Failed to score video: %s for label: %s. Error: %v", record.Video, record.Label, err)
		return fail(err)
	}

	record.Score = &score
	event.Type = ItemScored
	event.Score = record.Score
	deps.observer.emit(event)
	return jobResult{index: j.index, record: record}
}
