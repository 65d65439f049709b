// SPDX-License-Identifier: Apache-2.0

// Package worker runs the scheduled-message poller: a cron-driven loop
// that delivers due deferred sends through the service layer.
package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/coach-courier/internal/config"
	"github.com/MKhiriev/coach-courier/internal/logger"
	"github.com/MKhiriev/coach-courier/internal/service"
	"github.com/robfig/cron/v3"
)

// defaultPollInterval drives the poll cadence when none is configured.
const defaultPollInterval = 30 * time.Second

// Poller periodically processes due scheduled messages. Delivery
// semantics live in the service layer; the poller only owns the cadence
// and lifecycle.
type Poller struct {
	cron      *cron.Cron
	scheduled service.ScheduledMessageService

	interval time.Duration

	logger *logger.Logger
}

// NewPoller constructs the scheduled-message poller.
func NewPoller(scheduled service.ScheduledMessageService, cfg config.Workers, logger *logger.Logger) *Poller {
	interval := cfg.PollInterval
	if interval <= 0 {
		interval = defaultPollInterval
	}

	return &Poller{
		cron:      cron.New(),
		scheduled: scheduled,
		interval:  interval,
		logger:    logger,
	}
}

// Start registers the poll job and begins the cron loop. ctx bounds the
// lifetime of every poll pass; Start returns immediately.
func (p *Poller) Start(ctx context.Context) error {
	spec := fmt.Sprintf("@every %s", p.interval)
	if _, err := p.cron.AddFunc(spec, func() { p.poll(ctx) }); err != nil {
		return fmt.Errorf("registering poll job: %w", err)
	}

	p.cron.Start()
	p.logger.Info().Str("interval", p.interval.String()).Msg("scheduled-message poller started")
	return nil
}

// Stop halts the cron loop and waits for a running poll pass to finish.
func (p *Poller) Stop() {
	<-p.cron.Stop().Done()
	p.logger.Info().Msg("scheduled-message poller stopped")
}

func (p *Poller) poll(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}

	ctx = p.logger.With().Str("component", "worker").Logger().WithContext(ctx)
	if err := p.scheduled.ProcessDue(ctx); err != nil {
		p.logger.Err(err).Msg("poll pass failed")
	}
}
