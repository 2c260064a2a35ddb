package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/chancharikmitra/vqascore/internal/config"
	"github.com/chancharikmitra/vqascore/internal/console"
	"github.com/chancharikmitra/vqascore/internal/runner"
	"github.com/chancharikmitra/vqascore/internal/ui/live"
	"github.com/chancharikmitra/vqascore/internal/vqa"
)

// newScorer builds the model client for a resolved config.
var newScorer = func(cfg config.Config) (vqa.Scorer, error) {
	return vqa.NewOpenAIScorer(vqa.Options{
		BaseURL:     cfg.Model.BaseURL,
		APIKey:      cfg.APIKey(),
		Model:       cfg.Model.Name,
		TopLogprobs: cfg.Model.TopLogprobs,
		Media:       vqa.MediaMode(cfg.Model.Media),
		Timeout:     modelTimeout(cfg.Model),
	})
}

// modelTimeout converts the configured per-call timeout; zero means unbounded.
func modelTimeout(model config.ModelConfig) time.Duration {
	if model.TimeoutSeconds == nil {
		return 0
	}
	return time.Duration(*model.TimeoutSeconds) * time.Second
}

// startLiveUI launches the live UI controller.
var startLiveUI = func(stdout io.Writer, opts live.Options) scoreObserver {
	return live.Start(stdout, opts)
}

// scoreObserver is a runner observer whose UI can be shut down.
type scoreObserver interface {
	runner.Observer
	Close()
	Wait()
}

// runScore builds the handler for the score command.
func runScore(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		flags := newFlagSet(cmd, stderr)
		var inputFile, refFile string
		flags.StringVar(&inputFile, "input_file", "", "JSON array of {video, label} work items")
		flags.StringVar(&inputFile, "i", "", "Shorthand for --input_file")
		flags.StringVar(&refFile, "ref_file", "", "JSON object mapping labels to {definition}")
		flags.StringVar(&refFile, "r", "", "Shorthand for --ref_file")
		configPath := flags.String("config", "", "Path to config file (default: search for .vqascore/config.yml)")
		model := flags.String("model", "", "Override model name")
		baseURL := flags.String("base-url", "", "Override model endpoint base URL")
		workers := flags.Int("workers", 0, "Concurrent scoring workers")
		output := flags.String("output", "", "Output path (default: <input>_scored.json)")
		uiMode := flags.String("ui", "auto", "Console UI mode: auto|live|plain")
		noColor := flags.Bool("no-color", false, "Disable colored output")
		if code, ok := parseFlags(cmd, flags, args, stdout, stderr); !ok {
			return code
		}
		if rejectExtraArgs(cmd, flags, stderr) {
			return ExitUsage
		}
		if strings.TrimSpace(inputFile) == "" || strings.TrimSpace(refFile) == "" {
			fmt.Fprintln(stderr, "Error: score command requires --input_file and --ref_file")
			return ExitError
		}

		cfg, _, err := config.Resolve(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
			return ExitError
		}
		applyScoreOverrides(&cfg, *model, *baseURL, *workers)
		if err := config.Validate(&cfg); err != nil {
			fmt.Fprintf(stderr, "Invalid configuration:\n%v\n", err)
			return ExitError
		}

		decision, err := resolveUIMode(*uiMode, stdout)
		if err != nil {
			fmt.Fprintf(stderr, "Invalid arguments: %v\n", err)
			return ExitUsage
		}
		if decision.warning != "" {
			fmt.Fprintln(stderr, decision.warning)
		}

		scorer, err := newScorer(cfg)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to create scorer: %v\n", err)
			return ExitError
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
		defer stop()

		var (
			logger   *console.Logger
			observer runner.Observer
			buffered bytes.Buffer
			ui       scoreObserver
		)
		if decision.useLive {
			logger = console.New(&buffered, true)
			ui = startLiveUI(stdout, live.Options{NoColor: *noColor, OnInterrupt: cancel})
			observer = ui
		} else {
			logger = console.New(stdout, *noColor)
			observer = &runner.LogObserver{Logger: logger}
		}

		summary, err := runner.Score(ctx, scorer, runner.Params{
			InputPath:      inputFile,
			RefPath:        refFile,
			OutputPath:     *output,
			QuestionSuffix: *cfg.Score.QuestionSuffix,
			Workers:        cfg.Score.Workers,
			Logger:         logger,
			Observer:       observer,
		})
		if ui != nil {
			ui.Close()
			ui.Wait()
			_, _ = io.Copy(stdout, &buffered)
		}
		if err != nil {
			fmt.Fprintf(stderr, "Scoring failed: %v\n", err)
			return ExitError
		}
		if ctx.Err() != nil {
			fmt.Fprintf(stderr, "Scoring interrupted; %d of %d items scored\n", summary.Scored, summary.Total)
			return ExitError
		}
		return ExitOK
	}
}

// applyScoreOverrides layers command-line flags over the resolved config.
func applyScoreOverrides(cfg *config.Config, model, baseURL string, workers int) {
	if value := strings.TrimSpace(model); value != "" {
		cfg.Model.Name = value
	}
	if value := strings.TrimSpace(baseURL); value != "" {
		cfg.Model.BaseURL = value
	}
	if workers != 0 {
		cfg.Score.Workers = workers
	}
}
