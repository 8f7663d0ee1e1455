// Package app runs the sample overlay: it opens one overlay, places it in
// front of the tracked device, and pumps runtime events once per frame until
// the runtime asks it to quit.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"

	"vr-overlay/internal/config"
	"vr-overlay/internal/overlay"
	"vr-overlay/internal/vr"
)

// Runner drives one overlay from a resolved config.
type Runner struct {
	rt    vr.Runtime
	cfg   config.Config
	clock clockwork.Clock
	probe func() bool
	log   *slog.Logger
}

// Option configures a Runner.
type Option func(*Runner)

// WithClock replaces the wall clock used for the frame ticker and probe waits.
func WithClock(c clockwork.Clock) Option {
	return func(r *Runner) {
		if c != nil {
			r.clock = c
		}
	}
}

// WithProbe replaces the compositor liveness check.
func WithProbe(probe func() bool) Option {
	return func(r *Runner) {
		if probe != nil {
			r.probe = probe
		}
	}
}

// WithLogger sets the logger for the runner and its controller.
func WithLogger(l *slog.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.log = l
		}
	}
}

// New returns a Runner. cfg should already be resolved.
func New(rt vr.Runtime, cfg config.Config, opts ...Option) *Runner {
	r := &Runner{
		rt:    rt,
		cfg:   cfg,
		clock: clockwork.NewRealClock(),
		probe: overlay.IsRuntimeRunning,
		log:   slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run opens the overlay, shows it and processes events every frame. It
// returns nil once a quit event arrives or ctx is canceled after the overlay
// was shown. Canceling while still waiting for the compositor returns
// ctx.Err(). The overlay is always disposed before Run returns.
func (r *Runner) Run(ctx context.Context) error {
	format, err := r.cfg.Format()
	if err != nil {
		return err
	}
	tracking, err := config.ParseTracking(r.cfg.Tracking)
	if err != nil {
		return err
	}

	if r.cfg.WaitForRuntime {
		every, err := r.cfg.ProbeEvery()
		if err != nil {
			return err
		}
		if err := r.waitForRuntime(ctx, every); err != nil {
			return err
		}
	}

	c, err := overlay.Open(r.rt, r.cfg.AppName, r.cfg.AppKey, format, overlay.WithLogger(r.log))
	if err != nil {
		return fmt.Errorf("app: open overlay: %w", err)
	}
	defer c.Close()

	r.log.Info("Overlay created",
		"key", r.cfg.AppKey,
		"handle", uint64(c.Handle()),
		"format", format.String(),
		"tracking", tracking.String(),
	)

	if err := r.place(c, tracking); err != nil {
		return err
	}
	c.SetShow(true)

	return r.loop(ctx, c)
}

// place applies the configured pose and surface settings, then submits the
// transform once.
func (r *Runner) place(c *overlay.Controller, tracking overlay.Tracking) error {
	c.SetTracking(tracking)
	c.SetRotation(r.cfg.Rotation, overlay.UpdateDeferred)
	c.SetScale(r.cfg.ScaleVec(), overlay.UpdateDeferred)
	c.SetMirror(r.cfg.MirrorX, r.cfg.MirrorY, overlay.UpdateDeferred)
	c.SetPosition(r.cfg.PositionVec(), overlay.UpdateImmediate)

	c.SetWidth(r.cfg.Width)
	if r.cfg.Alpha != nil {
		c.SetAlpha(*r.cfg.Alpha)
	}

	if r.cfg.Texture != "" {
		if err := c.SetTextureFromFile(r.cfg.Texture); err != nil {
			return fmt.Errorf("app: texture: %w", err)
		}
	}
	return nil
}

func (r *Runner) loop(ctx context.Context, c *overlay.Controller) error {
	ticker := r.clock.NewTicker(r.cfg.FrameInterval())
	defer ticker.Stop()

	for {
		if c.ProcessEvent(r.cfg.DebugEvents) {
			r.log.Info("Quit requested by runtime")
			return nil
		}

		select {
		case <-ctx.Done():
			r.log.Info("Shutting down")
			return nil
		case <-ticker.Chan():
		}
	}
}

// waitForRuntime polls the probe until the compositor process shows up.
func (r *Runner) waitForRuntime(ctx context.Context, every time.Duration) error {
	for !r.probe() {
		r.log.Info("Waiting for compositor", "process", overlay.CompositorProcess, "retry_in", every)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-r.clock.After(every):
		}
	}
	return nil
}
