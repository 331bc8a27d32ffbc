package driver

import (
	"context"
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"github.com/san-kum/gravsim/internal/sim"
)

// DefaultInterval paces the loop at roughly 60 frames per second.
const DefaultInterval = 16 * time.Millisecond

// Renderer consumes one extracted frame. The frame is only valid for the
// duration of the call; implementations that keep it must copy it.
type Renderer interface {
	Render(frame []float32) error
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(frame []float32) error

func (f RendererFunc) Render(frame []float32) error { return f(frame) }

type Config struct {
	Format    sim.Format
	Scale     float64
	Interval  time.Duration // 0 runs unpaced
	MaxFrames int           // 0 runs until stopped
}

// Loop repeats step, extract, render, wait. The running flag and the context
// are checked once per iteration, so a step that has started always finishes
// and is rendered before the loop exits.
type Loop struct {
	container *sim.Container
	renderer  Renderer
	cfg       Config
	running   atomic.Bool
	stopped   atomic.Bool
	frames    int
	buf       []float32
}

func New(c *sim.Container, r Renderer, cfg Config) *Loop {
	return &Loop{
		container: c,
		renderer:  r,
		cfg:       cfg,
		buf:       make([]float32, 0, c.Len()*cfg.Format.Components()),
	}
}

// Run drives the container until Stop is called, ctx is done, MaxFrames is
// reached or the renderer fails. Stop and MaxFrames end with a nil error.
// A loop stopped before Run returns at once without stepping.
func (l *Loop) Run(ctx context.Context) error {
	if l.stopped.Load() {
		return nil
	}
	l.running.Store(true)
	defer l.running.Store(false)

	log.Printf("driver: started (bodies=%d format=%s interval=%v)", l.container.Len(), l.cfg.Format, l.cfg.Interval)
	defer func() { log.Printf("driver: stopped after %d frames", l.frames) }()

	var tick <-chan time.Time
	if l.cfg.Interval > 0 {
		ticker := time.NewTicker(l.cfg.Interval)
		defer ticker.Stop()
		tick = ticker.C
	}

	for {
		if l.stopped.Load() {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		l.container.Step()
		l.buf = l.container.Extract(l.buf, l.cfg.Format, l.cfg.Scale)
		if err := l.renderer.Render(l.buf); err != nil {
			return fmt.Errorf("render frame %d: %w", l.frames, err)
		}
		l.frames++

		if l.cfg.MaxFrames > 0 && l.frames >= l.cfg.MaxFrames {
			return nil
		}

		if tick != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-tick:
			}
		}
	}
}

// Stop asks the loop to exit after its current iteration, or not to start if
// Run has not been called yet. Stop is final for this Loop. It is safe to call
// from any goroutine.
func (l *Loop) Stop() {
	l.stopped.Store(true)
	l.running.Store(false)
}

func (l *Loop) Running() bool { return l.running.Load() }
func (l *Loop) Frames() int   { return l.frames }

type multi []Renderer

// Multi fans each frame out to every renderer in order, stopping at the first
// error.
func Multi(renderers ...Renderer) Renderer {
	return multi(renderers)
}

func (m multi) Render(frame []float32) error {
	for _, r := range m {
		if err := r.Render(frame); err != nil {
			return err
		}
	}
	return nil
}
