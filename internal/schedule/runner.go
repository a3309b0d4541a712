// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package schedule runs the fetch job on a fixed interval. It replaces the
// cron-style automation that used to overwrite the artifact once a day.
package schedule

import (
	"context"
	"fmt"
	"io"
	"time"
)

// Job is one scheduled unit of work. The context carries the per-run
// timeout.
type Job func(ctx context.Context) error

// Runner executes a Job immediately and then on every interval tick until
// its context is cancelled. A failed run is logged and the loop keeps
// going; transient scrape failures must not stop the schedule.
type Runner struct {
	interval   time.Duration
	runTimeout time.Duration
	job        Job
	out        io.Writer
}

// NewRunner builds a runner. A non-positive interval defaults to 24h and
// a non-positive run timeout to 2m.
func NewRunner(interval, runTimeout time.Duration, job Job, out io.Writer) *Runner {
	if interval <= 0 {
		interval = 24 * time.Hour
	}
	if runTimeout <= 0 {
		runTimeout = 2 * time.Minute
	}
	return &Runner{
		interval:   interval,
		runTimeout: runTimeout,
		job:        job,
		out:        out,
	}
}

// Run blocks until ctx is cancelled, then returns nil.
func (r *Runner) Run(ctx context.Context) error {
	fmt.Fprintf(r.out, "schedule: running every %s\n", r.interval)

	r.runOnce(ctx)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			fmt.Fprintln(r.out, "schedule: stopping")
			return nil
		case <-ticker.C:
			r.runOnce(ctx)
		}
	}
}

func (r *Runner) runOnce(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}

	runCtx, cancel := context.WithTimeout(ctx, r.runTimeout)
	defer cancel()

	start := time.Now()
	if err := r.job(runCtx); err != nil {
		fmt.Fprintf(r.out, "schedule: run failed after %s: %v\n", time.Since(start).Round(time.Millisecond), err)
		return
	}
	fmt.Fprintf(r.out, "schedule: run completed in %s\n", time.Since(start).Round(time.Millisecond))
}
