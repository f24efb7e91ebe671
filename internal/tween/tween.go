// Package tween animates named numeric properties of elements over time.
// At most one tween is active per element: starting a new one cancels
// whatever was running on it.
package tween

import (
	"sort"
	"time"
)

// Element is a bag of animatable properties.
type Element struct {
	Name  string
	props map[string]float64
}

// NewElement creates an element with initial property values.
func NewElement(name string, props map[string]float64) *Element {
	e := &Element{Name: name, props: make(map[string]float64, len(props))}
	for k, v := range props {
		e.props[k] = v
	}
	return e
}

// Get returns a property value (0 when unset).
func (e *Element) Get(prop string) float64 {
	return e.props[prop]
}

// Set assigns a property value immediately.
func (e *Element) Set(prop string, v float64) {
	e.props[prop] = v
}

// Options are the optional parts of a tween.
type Options struct {
	Delay      time.Duration
	OnStart    func()
	OnComplete func()
}

type tween struct {
	el       *Element
	from     map[string]float64
	to       map[string]float64
	duration time.Duration
	delay    time.Duration
	elapsed  time.Duration
	ease     EaseFunc
	started  bool
	opts     Options
}

// Engine runs tweens. It is not safe for concurrent use; drive it from
// the frame loop.
type Engine struct {
	active map[*Element]*tween
}

// NewEngine creates an idle engine.
func NewEngine() *Engine {
	return &Engine{active: make(map[*Element]*tween)}
}

// To animates el toward props over d. Any tween already running on el is
// cancelled first; its OnComplete does not fire.
func (en *Engine) To(el *Element, props map[string]float64, d time.Duration, ease string, opts Options) error {
	fn, err := ParseEase(ease)
	if err != nil {
		return err
	}
	en.Kill(el)

	tw := &tween{
		el:       el,
		to:       copyProps(props),
		duration: d,
		delay:    opts.Delay,
		ease:     fn,
		opts:     opts,
	}
	en.active[el] = tw
	if tw.delay <= 0 {
		tw.start()
		if tw.duration <= 0 && en.active[el] == tw {
			en.finish(tw)
		}
	}
	return nil
}

// Set cancels any tween on el and assigns props immediately.
func (en *Engine) Set(el *Element, props map[string]float64) {
	en.Kill(el)
	for k, v := range props {
		el.Set(k, v)
	}
}

// Kill cancels the tween running on el, leaving properties where they are.
func (en *Engine) Kill(el *Element) {
	delete(en.active, el)
}

// Active reports whether el has a running or delayed tween.
func (en *Engine) Active(el *Element) bool {
	_, ok := en.active[el]
	return ok
}

// Len returns the number of active tweens.
func (en *Engine) Len() int {
	return len(en.active)
}

// Advance moves every tween forward by dt, firing callbacks as tweens
// start and finish.
func (en *Engine) Advance(dt time.Duration) {
	if len(en.active) == 0 {
		return
	}

	// Stable order so callbacks fire deterministically.
	tws := make([]*tween, 0, len(en.active))
	for _, tw := range en.active {
		tws = append(tws, tw)
	}
	sort.Slice(tws, func(i, j int) bool { return tws[i].el.Name < tws[j].el.Name })

	for _, tw := range tws {
		// A callback earlier in this pass may have replaced the tween.
		if en.active[tw.el] != tw {
			continue
		}
		remaining := dt
		if !tw.started {
			if remaining < tw.delay {
				tw.delay -= remaining
				continue
			}
			remaining -= tw.delay
			tw.delay = 0
			tw.start()
			if en.active[tw.el] != tw {
				continue
			}
		}
		tw.elapsed += remaining
		if tw.elapsed >= tw.duration {
			en.finish(tw)
			continue
		}
		tw.apply(float64(tw.elapsed) / float64(tw.duration))
	}
}

func (tw *tween) start() {
	tw.started = true
	tw.from = make(map[string]float64, len(tw.to))
	for k := range tw.to {
		tw.from[k] = tw.el.Get(k)
	}
	if tw.opts.OnStart != nil {
		tw.opts.OnStart()
	}
}

func (tw *tween) apply(progress float64) {
	p := tw.ease(progress)
	for k, to := range tw.to {
		from := tw.from[k]
		tw.el.Set(k, from+(to-from)*p)
	}
}

func (en *Engine) finish(tw *tween) {
	for k, to := range tw.to {
		tw.el.Set(k, to)
	}
	delete(en.active, tw.el)
	if tw.opts.OnComplete != nil {
		tw.opts.OnComplete()
	}
}

func copyProps(in map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
