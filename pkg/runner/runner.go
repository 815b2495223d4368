package runner

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"runtime"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/yaklabco/pastemd/internal/logging"
	"github.com/yaklabco/pastemd/pkg/config"
	"github.com/yaklabco/pastemd/pkg/diff"
	"github.com/yaklabco/pastemd/pkg/langdetect"
	"github.com/yaklabco/pastemd/pkg/transform"
)

// Runner transforms many files concurrently.
type Runner struct {
	engine *transform.Engine
	logger *log.Logger
}

// New creates a runner around the given engine. A nil engine gets a default
// one.
func New(engine *transform.Engine) *Runner {
	if engine == nil {
		engine = transform.New()
	}
	return &Runner{engine: engine, logger: logging.Default()}
}

// WithLogger replaces the diagnostics logger and returns the runner.
func (r *Runner) WithLogger(logger *log.Logger) *Runner {
	if logger != nil {
		r.logger = logger
	}
	return r
}

// Run discovers files under opts.Paths and transforms them with a worker
// pool. Results come back ordered by path regardless of completion order.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{Files: make([]FileOutcome, 0, len(files))}
	result.Stats.FilesDiscovered = len(files)

	r.logger.Debug("discovered files", logging.FieldFilesDiscovered, len(files))

	if len(files) == 0 {
		return result, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	if jobs > len(files) {
		jobs = len(files)
	}

	workCh := make(chan string)
	outCh := make(chan FileOutcome)

	var wg sync.WaitGroup
	for range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.worker(ctx, workCh, outCh, opts.Config)
		}()
	}

	go func() {
		defer close(workCh)
		for _, path := range files {
			select {
			case <-ctx.Done():
				return
			case workCh <- path:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(outCh)
	}()

	// Workers finish out of order; reassemble by discovery order.
	outcomes := make(map[string]FileOutcome, len(files))
	for outcome := range outCh {
		outcomes[outcome.Path] = outcome
	}
	for _, path := range files {
		if outcome, ok := outcomes[path]; ok {
			result.accumulate(outcome)
		}
	}

	if ctx.Err() != nil {
		return result, fmt.Errorf("run cancelled: %w", ctx.Err())
	}
	return result, nil
}

func (r *Runner) worker(ctx context.Context, workCh <-chan string, outCh chan<- FileOutcome, cfg *config.Config) {
	for path := range workCh {
		select {
		case <-ctx.Done():
			return
		default:
		}

		outcome := r.processFile(path, cfg)

		select {
		case <-ctx.Done():
			return
		case outCh <- outcome:
		}
	}
}

// processFile transforms a single file according to cfg. Check mode never
// writes; write mode rewrites the file in place with its original
// permissions.
func (r *Runner) processFile(path string, cfg *config.Config) FileOutcome {
	outcome := FileOutcome{Path: path}

	raw, err := os.ReadFile(path)
	if err != nil {
		outcome.Error = fmt.Errorf("read %s: %w", path, err)
		return outcome
	}
	before := string(raw)

	after := before
	if cfg.DetectCode {
		if tag, isCode := langdetect.Detect(before); isCode {
			outcome.Fenced = true
			outcome.Language = tag
			after = langdetect.Fence(before, tag)
			r.logger.Debug("fenced code paste",
				logging.FieldPath, path,
				logging.FieldLanguage, tag)
		}
	}

	if !outcome.Fenced {
		res := r.engine.Transform(before, cfg, transform.Options{
			ContextLevel: cfg.ContextLevel,
			Escape:       cfg.Escape,
		})
		after = res.Content
		outcome.Rules = res.Rules
		outcome.Changed = res.Changed
	} else {
		outcome.Changed = true
	}

	if !outcome.Changed {
		return outcome
	}

	if cfg.Diff {
		outcome.Patch = diff.Compute(path, before, after)
	}

	if cfg.Write && !cfg.Check {
		mode := fs.FileMode(0o644)
		if info, statErr := os.Stat(path); statErr == nil {
			mode = info.Mode().Perm()
		}
		if err := os.WriteFile(path, []byte(after), mode); err != nil {
			outcome.Error = fmt.Errorf("write %s: %w", path, err)
			return outcome
		}
		outcome.Written = true
	}

	return outcome
}
