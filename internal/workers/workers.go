package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/store"
)

type Workers struct {
	workers []Worker
}

// NewWorkers builds the workers enabled by cfg. The journal cleaner is
// skipped when retention or interval is not positive.
func NewWorkers(storages *store.Storages, cfg config.Workers, logger *logger.Logger) *Workers {
	w := &Workers{}

	if cfg.JournalRetention > 0 && cfg.JournalCleanupInterval > 0 {
		w.workers = append(w.workers, NewJournalCleaner(storages.EventRepository, cfg.JournalRetention, cfg.JournalCleanupInterval, logger))
	} else {
		logger.Info().Msg("journal cleaner is disabled")
	}

	return w
}

// Run starts every worker in its own goroutine and waits until all of them
// return.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, worker := range w.workers {
		wg.Go(func() {
			worker.Run(ctx)
		})
	}
	wg.Wait()
}
