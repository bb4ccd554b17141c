package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spacesedan/introscore/config"
	"github.com/spacesedan/introscore/internal/logging"
	"github.com/spacesedan/introscore/internal/scoring"
	"github.com/spacesedan/introscore/internal/semantic"
	"github.com/spacesedan/introscore/internal/textproc"
)

// sampleTranscript mirrors the demo text shipped with the tool.
const sampleTranscript = "Hello everyone, my name is Muskan. I am 13 years old and I study in " +
	"class 8B at Christ Public School. We are a family of three and they are " +
	"very kind and soft spoken. In my free time, I love playing cricket and " +
	"sometimes talk to myself in the mirror. Thank you for listening."

type options struct {
	duration float64
	file     string
	sample   bool
	markdown bool
	asJSON   bool
}

func main() {
	var opts options
	flag.Float64Var(&opts.duration, "duration", 60, "duration of the speech in seconds")
	flag.StringVar(&opts.file, "file", "", "read the transcript from a file instead of stdin")
	flag.BoolVar(&opts.sample, "sample", false, "score the built-in sample transcript")
	flag.BoolVar(&opts.markdown, "markdown", false, "strip markdown formatting and links before scoring")
	flag.BoolVar(&opts.asJSON, "json", false, "print the raw result record as JSON")
	flag.Parse()

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)
	logging.InitLogger()

	if err := run(opts); err != nil {
		slog.Error("[Scorer] Run failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(opts options) error {
	transcript, err := readTranscript(opts.file, opts.sample)
	if err != nil {
		return err
	}
	if transcript == "" {
		return fmt.Errorf("empty transcript, nothing to score")
	}

	if opts.markdown {
		transcript = textproc.Sanitize(transcript)
	}

	start := time.Now()
	engine, err := semantic.GetEngine()
	if err != nil {
		return fmt.Errorf("failed to initialize semantic engine: %w", err)
	}
	defer engine.Close()
	slog.Debug("[Scorer] Semantic engine ready", slog.Duration("elapsed", time.Since(start)))

	scorer := scoring.NewScorer(engine)

	start = time.Now()
	result, err := scorer.Score(transcript, opts.duration)
	if err != nil {
		return fmt.Errorf("scoring failed: %w", err)
	}
	slog.Debug("[Scorer] Transcript scored",
		slog.Int("total", result.TotalScore),
		slog.Duration("elapsed", time.Since(start)))

	if opts.asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		return nil
	}

	render(os.Stdout, transcript, result)
	return nil
}

func readTranscript(file string, sample bool) (string, error) {
	if sample {
		return sampleTranscript, nil
	}
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", file, err)
		}
		return string(data), nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}
