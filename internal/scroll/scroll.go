// Package scroll derives the visibility of the scroll-to-top control from
// viewport scroll samples.
package scroll

import (
	"errors"
	"fmt"
)

const (
	// DefaultThreshold is the vertical offset, in CSS pixels, above which
	// the control is shown.
	DefaultThreshold = 300
	DefaultBehavior  = BehaviorSmooth
)

// Behavior is the animation used when scrolling back to the top.
type Behavior string

const (
	BehaviorSmooth Behavior = "smooth"
	BehaviorAuto   Behavior = "auto"
)

func (b Behavior) Valid() bool {
	return b == BehaviorSmooth || b == BehaviorAuto
}

type Visibility int

const (
	Hidden Visibility = iota
	Shown
)

func (v Visibility) String() string {
	if v == Shown {
		return "SHOWN"
	}
	return "HIDDEN"
}

// Next returns the state after one sample. Only the offset matters, so
// repeated samples on the same side of the threshold leave the state as is.
func Next(_ Visibility, offset, threshold float64) Visibility {
	if offset > threshold {
		return Shown
	}
	return Hidden
}

// Source delivers scroll offsets. Subscribe registers fn and returns the
// function that removes it.
type Source interface {
	Subscribe(fn func(offset float64)) (unsubscribe func())
}

// Scroller moves the viewport.
type Scroller interface {
	ScrollTo(top float64, behavior Behavior) error
}

// ErrSubscribed is returned when a Watcher is asked to subscribe twice.
var ErrSubscribed = errors.New("scroll: watcher already subscribed")

type Options struct {
	Threshold float64
	Behavior  Behavior
}

func DefaultOptions() Options {
	return Options{Threshold: DefaultThreshold, Behavior: DefaultBehavior}
}

// Watcher owns the scroll subscription of one page shell. Samples are
// handled synchronously, in delivery order, on the caller's goroutine.
type Watcher struct {
	opts        Options
	scroller    Scroller
	state       Visibility
	unsubscribe func()
}

// New returns a hidden, unsubscribed watcher. A nil scroller makes
// ScrollToTop a no-op.
func New(opts Options, scroller Scroller) *Watcher {
	if !opts.Behavior.Valid() {
		opts.Behavior = DefaultBehavior
	}
	return &Watcher{opts: opts, scroller: scroller}
}

// Subscribe starts receiving samples from src. A nil src means the platform
// has no scroll events; the watcher then stays hidden. Callers must pair a
// successful Subscribe with Unsubscribe.
func (w *Watcher) Subscribe(src Source) error {
	if w.unsubscribe != nil {
		return ErrSubscribed
	}
	if src == nil {
		return nil
	}
	cancel := src.Subscribe(w.sample)
	if cancel == nil {
		cancel = func() {}
	}
	w.unsubscribe = cancel
	return nil
}

// Unsubscribe releases the subscription. It is safe to call more than once.
func (w *Watcher) Unsubscribe() {
	if w.unsubscribe == nil {
		return
	}
	w.unsubscribe()
	w.unsubscribe = nil
}

func (w *Watcher) Subscribed() bool { return w.unsubscribe != nil }

func (w *Watcher) sample(offset float64) {
	w.state = Next(w.state, offset, w.opts.Threshold)
}

func (w *Watcher) State() Visibility { return w.state }

func (w *Watcher) Visible() bool { return w.state == Shown }

// ScrollToTop asks the viewport to scroll to offset 0. The visibility is
// left to the samples that follow.
func (w *Watcher) ScrollToTop() error {
	if w.scroller == nil {
		return nil
	}
	if err := w.scroller.ScrollTo(0, w.opts.Behavior); err != nil {
		return fmt.Errorf("scroll to top: %w", err)
	}
	return nil
}
