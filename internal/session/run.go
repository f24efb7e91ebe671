package session

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"stretch-menu/internal/clock"
)

var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

// SetLogger replaces the package logger.
func SetLogger(l *slog.Logger) {
	if l != nil {
		logger = l
	}
}

// Target receives replayed input. *menu.Menu satisfies it.
type Target interface {
	Open()
	Close()
	Tick()
	Wheel(deltaY float64)
	PointerDown(x, y float64)
	PointerMove(x, y float64)
	PointerUp(x, y float64)
	Click(x, y float64)
	Resize(w, h int)
}

// FrameFunc is called after every tick with the frame number and the
// session time.
type FrameFunc func(frame int, at time.Duration)

// Run replays s against t. Each frame advances clk by one step, delivers
// the events that are due, then ticks t.
func Run(ctx context.Context, t Target, clk *clock.Mock, s *Script, onFrame FrameFunc) error {
	if err := s.Validate(); err != nil {
		return fmt.Errorf("session: %w", err)
	}

	step := s.Step()
	frames := s.Frames()
	next := 0
	var at time.Duration

	for f := 0; f < frames; f++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		at += step
		clk.Advance(step)

		for next < len(s.Events) && s.Events[next].At() <= at {
			deliver(t, s.Events[next])
			next++
		}

		t.Tick()
		if onFrame != nil {
			onFrame(f, at)
		}
	}

	if next < len(s.Events) {
		logger.Warn("events past the end of the session", "dropped", len(s.Events)-next)
	}
	return nil
}

func deliver(t Target, e Event) {
	logger.Debug("event", "type", e.Type, "t", e.T)
	switch e.Type {
	case Open:
		t.Open()
	case Close:
		t.Close()
	case Wheel:
		t.Wheel(e.DeltaY)
	case Down:
		t.PointerDown(e.X, e.Y)
	case Move, Hover:
		t.PointerMove(e.X, e.Y)
	case Up:
		t.PointerUp(e.X, e.Y)
	case Click:
		t.Click(e.X, e.Y)
	case Resize:
		t.Resize(e.Width, e.Height)
	}
}
