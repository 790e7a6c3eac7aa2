package cmd

import (
	"context"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/bep/debounce"
	"github.com/charmbracelet/log"
	"github.com/jsphweid/gct/analysis"
	"github.com/jsphweid/gct/constants"
	"github.com/jsphweid/gct/util"
	"github.com/spf13/cobra"
)

var watchFlags scaleFlags

func init() {
	watchFlags.register(watchCmd)
	rootCmd.AddCommand(watchCmd)
}

var watchCmd = &cobra.Command{
	Use:   "watch DIR",
	Short: "Analyzes MIDI files as they appear in a directory",
	Long: `Polls DIR every GCT_WATCH_INTERVAL for new MIDI files. New files are
analyzed once no further files showed up for GCT_DEBOUNCE.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, enc, err := watchFlags.resolve()
		if err != nil {
			return err
		}
		a := &analysis.Analyzer{
			Encoder:      enc,
			Scale:        s,
			MaxChordSize: constants.GetMaxChordSize(),
			Logger:       logger,
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		out := cmd.OutOrStdout()
		w := newWatcher(args[0], constants.GetDebounce(), logger, func(path string) {
			analyzeAndPrint(a, out, path)
		})
		logger.Info("watching", "dir", args[0], "interval", constants.GetWatchInterval())
		return w.run(ctx, constants.GetWatchInterval())
	},
}

func analyzeAndPrint(a *analysis.Analyzer, out io.Writer, path string) {
	report, err := a.AnalyzeFile(path)
	if err != nil {
		logger.Error("could not analyze", "file", path, "err", err)
		return
	}
	if err := printReport(out, report, false); err != nil {
		logger.Error("could not print report", "file", path, "err", err)
	}
}

type watcher struct {
	dir       string
	logger    *log.Logger
	handle    func(path string)
	debounced func(f func())

	// guards pending; flushes run on timer goroutines
	mu      sync.Mutex
	pending []string
	seen    map[string]bool
}

func newWatcher(dir string, quiet time.Duration, logger *log.Logger, handle func(path string)) *watcher {
	return &watcher{
		dir:       dir,
		logger:    logger,
		handle:    handle,
		debounced: debounce.New(quiet),
		seen:      make(map[string]bool),
	}
}

// poll queues the files not seen before and schedules a flush.
func (w *watcher) poll() error {
	paths, err := util.GatherAllMidiPaths(w.dir, 0)
	if err != nil {
		return err
	}

	w.mu.Lock()
	var found int
	for _, path := range paths {
		if !w.seen[path] {
			w.seen[path] = true
			w.pending = append(w.pending, path)
			found++
		}
	}
	w.mu.Unlock()

	if found > 0 {
		w.logger.Debug("detected files", "count", found)
		w.debounced(w.flush)
	}
	return nil
}

func (w *watcher) flush() {
	w.mu.Lock()
	paths := w.pending
	w.pending = nil
	w.mu.Unlock()

	for _, path := range paths {
		w.handle(path)
	}
}

func (w *watcher) run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if err := w.poll(); err != nil {
			w.logger.Error("poll failed", "dir", w.dir, "err", err)
		}
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}
