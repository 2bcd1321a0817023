// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/store"
)

// JournalCleaner periodically removes journal events older than the
// retention period.
type JournalCleaner struct {
	events    store.EventRepository
	retention time.Duration
	interval  time.Duration
	now       func() time.Time

	logger *logger.Logger
}

func NewJournalCleaner(events store.EventRepository, retention, interval time.Duration, logger *logger.Logger) *JournalCleaner {
	return &JournalCleaner{
		events:    events,
		retention: retention,
		interval:  interval,
		now:       time.Now,
		logger:    logger,
	}
}

// Run cleans once immediately and then on every tick until ctx is done.
func (c *JournalCleaner) Run(ctx context.Context) {
	c.logger.Info().
		Dur("retention", c.retention).
		Dur("interval", c.interval).
		Msg("journal cleaner started")
	defer func() {
		c.logger.Info().Msg("journal cleaner stopped")
	}()

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	c.clean(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			// a tick and cancellation can be ready together
			if ctx.Err() != nil {
				return
			}
			c.clean(ctx)
		}
	}
}

func (c *JournalCleaner) clean(ctx context.Context) {
	cutoff := c.now().Add(-c.retention)

	deleted, err := c.events.DeleteEventsBefore(ctx, cutoff)
	if err != nil {
		if ctx.Err() == nil {
			c.logger.Err(err).Time("cutoff", cutoff).Msg("error cleaning journal")
		}
		return
	}

	if deleted > 0 {
		c.logger.Info().Int64("deleted", deleted).Time("cutoff", cutoff).Msg("journal cleaned")
	}
}
