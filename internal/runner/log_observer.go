package runner

// LogObserver reports progress as log lines when the live UI is off.
type LogObserver struct {
	Logger Logger

	total int
	done  int
}

// OnRunStart logs the run header.
func (o *LogObserver) OnRunStart(runID string, inputPath string, total int) {
	o.total = total
	o.done = 0
	o.Logger.Infof("Run %s: scoring %d items from %s", runID, total, inputPath)
}

// OnItemEvent logs one line per scored item.
func (o *LogObserver) OnItemEvent(event ItemEvent) {
	if !event.Type.IsTerminal() {
		return
	}
	o.done++
	if event.Type == ItemScored && event.Score != nil {
		o.Logger.Infof("[%d/%d] %s (%s): %.4f", o.done, o.total, event.Video, event.Label, *event.Score)
	}
}

// OnRunEnd logs the run totals.
func (o *LogObserver) OnRunEnd(summary Summary) {
	o.Logger.Infof("Scored %d, failed %d, skipped %d of %d items", summary.Scored, summary.Failed, summary.Skipped, summary.Total)
}
