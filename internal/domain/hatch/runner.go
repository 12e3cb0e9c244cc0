package hatch

import (
	"sync"
	"sync/atomic"
	"time"
)

// Effects aplica los comandos que no son timers (player de animaciones, UI).
// Se llama siempre desde la goroutine del Runner.
type Effects interface {
	Apply(cmd Command)
}

// EffectsFunc adapta una función a Effects.
type EffectsFunc func(cmd Command)

func (f EffectsFunc) Apply(cmd Command) { f(cmd) }

type timerMsg struct {
	timer Timer
	seq   uint64
}

// Runner corre un Controller con timers reales en una sola goroutine.
// El player reporta fin/falla de clips con Post(ClipFinished(...)) / Post(ClipFailed(...)).
type Runner struct {
	ctrl    *Controller
	effects Effects

	events chan Event
	fired  chan timerMsg
	done   chan struct{}
	exited chan struct{}

	startOnce sync.Once
	closeOnce sync.Once
	started   atomic.Bool

	// solo los toca la goroutine del loop
	timers map[Timer]*time.Timer
	seq    map[Timer]uint64
}

// NewRunner prepara el runner; el loop arranca con Start.
func NewRunner(ctrl *Controller, effects Effects) *Runner {
	r := &Runner{
		ctrl:    ctrl,
		effects: effects,
		events:  make(chan Event, 16),
		fired:   make(chan timerMsg, 8),
		done:    make(chan struct{}),
		exited:  make(chan struct{}),
		timers:  map[Timer]*time.Timer{},
		seq:     map[Timer]uint64{},
	}
	return r
}

// Start lanza el loop y ejecuta Start del controller. Idempotente.
func (r *Runner) Start() {
	r.startOnce.Do(func() {
		r.started.Store(true)
		go r.loop()
	})
}

// Post encola un evento. Devuelve false si el runner ya cerró.
func (r *Runner) Post(ev Event) bool {
	select {
	case <-r.done:
		return false
	default:
	}
	select {
	case r.events <- ev:
		return true
	case <-r.done:
		return false
	}
}

// Tap es un atajo de Post(Tap()).
func (r *Runner) Tap() bool {
	return r.Post(Tap())
}

// Close aplica Teardown, frena todos los timers y espera a que el loop termine.
func (r *Runner) Close() {
	r.closeOnce.Do(func() { close(r.done) })
	if r.started.Load() {
		<-r.exited
	}
}

func (r *Runner) loop() {
	defer close(r.exited)

	r.apply(r.ctrl.Start())

	for {
		select {
		case <-r.done:
			r.apply(r.ctrl.Handle(Teardown()))
			r.stopAll()
			return
		case ev := <-r.events:
			r.apply(r.ctrl.Handle(ev))
		case m := <-r.fired:
			// un timer cancelado o reprogramado puede disparar tarde
			if m.seq != r.seq[m.timer] {
				continue
			}
			delete(r.timers, m.timer)
			r.apply(r.ctrl.Handle(Event{Kind: EventTimerFired, Timer: m.timer}))
		}
	}
}

func (r *Runner) apply(cmds []Command) {
	for _, cmd := range cmds {
		switch c := cmd.(type) {
		case StartTimer:
			r.startTimer(c.Timer, c.After)
		case CancelTimer:
			r.stopTimer(c.Timer)
		default:
			if r.effects != nil {
				r.effects.Apply(cmd)
			}
		}
	}
}

func (r *Runner) startTimer(t Timer, d time.Duration) {
	r.stopTimer(t)
	r.seq[t]++
	msg := timerMsg{timer: t, seq: r.seq[t]}
	r.timers[t] = time.AfterFunc(d, func() {
		select {
		case r.fired <- msg:
		case <-r.done:
		}
	})
}

func (r *Runner) stopTimer(t Timer) {
	if tm, ok := r.timers[t]; ok {
		tm.Stop()
		delete(r.timers, t)
	}
	r.seq[t]++
}

func (r *Runner) stopAll() {
	for t := range r.timers {
		r.stopTimer(t)
	}
}
