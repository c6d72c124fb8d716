package recurrence

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

// Worker runs the engine once at start and then on a fixed interval.
// Scan failures are logged and swallowed: the engine is best-effort and
// self-healing on the next pass.
type Worker struct {
	engine   *Engine
	interval time.Duration
}

// NewWorker returns a worker scanning on the given interval.
func NewWorker(engine *Engine, interval time.Duration) *Worker {
	return &Worker{
		engine:   engine,
		interval: interval,
	}
}

// Run blocks until the context is canceled.
func (w *Worker) Run(ctx context.Context) error {
	w.scan(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			w.scan(ctx)
		}
	}
}

func (w *Worker) scan(ctx context.Context) {
	count, err := w.engine.Scan(ctx)
	if err != nil {
		log.Error().Err(err).Msg("recurring transaction scan failed")
		return
	}

	log.Debug().Int("generated", count).Msg("recurring transaction scan complete")
}
