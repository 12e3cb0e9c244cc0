package hatch

import (
	"fmt"
	"time"

	"sopets-web/internal/domain/pets"
)

// PetPicker sortea el pet que sale del huevo.
type PetPicker interface {
	RandomHatchPet(pool []string) pets.Pet
}

type Options struct {
	Timings Timings  // zero value => DefaultTimings
	Pool    []string // imágenes precargadas; nil => pool del catálogo
	Picker  PetPicker
}

// Snapshot es el estado observable del controller (UI, tests).
type Snapshot struct {
	State         State
	Step          int  // taps aceptados (0..5)
	Clip          Clip // clip one-shot en curso, "" si no hay
	Attracting    bool
	PromptVisible bool
	Confetti      bool
	Pet           *pets.Pet
	Err           error
}

// Controller es la máquina de estados del tap-to-hatch.
// No es concurrente: Runner serializa los eventos en una sola goroutine.
type Controller struct {
	timings Timings
	pool    []string
	picker  PetPicker

	state         State
	step          int
	current       Clip
	attracting    bool
	revealPlaying bool

	started bool
	torn    bool

	prompt   bool
	confetti bool
	armed    map[Timer]bool

	pet *pets.Pet
	err error
}

func NewController(opts Options) *Controller {
	t := opts.Timings
	if t == (Timings{}) {
		t = DefaultTimings()
	}

	picker, pool := opts.Picker, opts.Pool
	if picker == nil || pool == nil {
		gen := pets.NewGenerator(pets.DefaultCatalog(), pets.DefaultImageCount, nil)
		if picker == nil {
			picker = gen
		}
		if pool == nil {
			pool = gen.ImagePool()
		}
	}

	return &Controller{
		timings: t,
		pool:    pool,
		picker:  picker,
		state:   StateIdle,
		armed:   map[Timer]bool{},
	}
}

// Start se llama cuando los assets cargaron: idle en loop + timers de attract y prompt.
// Taps previos a Start se descartan.
func (c *Controller) Start() []Command {
	if c.started || c.torn {
		return nil
	}
	c.started = true
	return []Command{
		c.play(ClipIdle, true),
		c.startTimer(TimerIdle, c.timings.IdleTimeout),
		c.startTimer(TimerPrompt, c.timings.PromptFirstDelay),
	}
}

func (c *Controller) Snapshot() Snapshot {
	return Snapshot{
		State:         c.state,
		Step:          c.step,
		Clip:          c.current,
		Attracting:    c.attracting,
		PromptVisible: c.prompt,
		Confetti:      c.confetti,
		Pet:           c.pet,
		Err:           c.err,
	}
}

// Handle aplica un evento y devuelve los efectos a ejecutar, en orden.
func (c *Controller) Handle(ev Event) []Command {
	if c.torn {
		return nil
	}
	if ev.Kind == EventTeardown {
		return c.teardown()
	}
	if !c.started {
		return nil
	}

	switch ev.Kind {
	case EventTap:
		return c.onTap()
	case EventClipFinished:
		return c.onClipFinished(ev.Clip)
	case EventClipFailed:
		return c.onClipFailed(ev)
	case EventTimerFired:
		if !c.armed[ev.Timer] {
			return nil
		}
		c.armed[ev.Timer] = false
		return c.onTimer(ev.Timer)
	}
	return nil
}

func (c *Controller) onTap() []Command {
	switch c.state {
	case StateIdle:
		if c.attracting {
			return nil
		}
		out := c.cancelTimer(nil, TimerIdle)
		out = c.hidePrompt(out)
		c.step = 1
		c.state = StatePlaying
		return append(out, c.play(ProgressClip(1), false))

	case StateSettling:
		out := c.hidePrompt(nil)
		c.step++
		c.state = StatePlaying
		if c.step == TapsToHatch {
			return append(out, c.play(ClipSwingLeft2, false))
		}
		return append(out, c.play(ProgressClip(c.step), false))
	}

	// clip en curso, revelando, completo o fallado
	return nil
}

func (c *Controller) onClipFinished(clip Clip) []Command {
	if clip == "" || clip != c.current {
		return nil
	}
	c.current = ""

	switch c.state {
	case StateIdle:
		if !c.attracting {
			return nil
		}
		c.attracting = false
		return []Command{
			c.play(ClipIdle, true),
			c.startTimer(TimerIdle, c.timings.IdleTimeout),
		}

	case StatePlaying:
		if c.step == TapsToHatch {
			c.state = StateRevealing
			return []Command{c.startTimer(TimerRevealDelay, c.timings.RevealDelay)}
		}
		c.state = StateSettling
		return []Command{
			c.play(SettledClip(c.step), true),
			c.startTimer(TimerPrompt, c.promptDelay()),
		}

	case StateRevealing:
		if !c.revealPlaying {
			return nil
		}
		c.state = StateComplete
		pet := c.picker.RandomHatchPet(c.pool)
		c.pet = &pet
		c.confetti = true
		return []Command{
			Hatched{Pet: pet},
			StartConfetti{},
			c.startTimer(TimerConfetti, c.timings.ConfettiDuration),
		}
	}
	return nil
}

func (c *Controller) onClipFailed(ev Event) []Command {
	if c.state == StateComplete || c.state == StateFailed {
		return nil
	}

	err := fmt.Errorf("%w: %s", ErrAnimation, ev.Clip)
	if ev.Err != nil {
		err = fmt.Errorf("%w: %s: %w", ErrAnimation, ev.Clip, ev.Err)
	}
	c.state = StateFailed
	c.err = err
	c.current = ""
	c.attracting = false

	out := c.cancelAll(nil)
	out = c.hidePrompt(out)
	return append(out, Failed{Err: err})
}

func (c *Controller) onTimer(t Timer) []Command {
	switch t {
	case TimerIdle:
		if c.state != StateIdle || c.step > 0 || c.attracting {
			return nil
		}
		c.attracting = true
		return []Command{c.play(ClipBark, false)}

	case TimerPrompt:
		if c.state == StateComplete || c.state == StateFailed || c.step >= TapsToHatch {
			return nil
		}
		if c.prompt {
			c.prompt = false
			return []Command{
				ShowPrompt{Visible: false},
				c.startTimer(TimerPrompt, c.promptDelay()),
			}
		}
		c.prompt = true
		return []Command{
			ShowPrompt{Visible: true},
			c.startTimer(TimerPrompt, c.timings.PromptVisible),
		}

	case TimerRevealDelay:
		if c.state != StateRevealing || c.revealPlaying {
			return nil
		}
		c.revealPlaying = true
		return []Command{c.play(ClipReveal, false)}

	case TimerConfetti:
		if !c.confetti {
			return nil
		}
		c.confetti = false
		return []Command{StopConfetti{}}
	}
	return nil
}

func (c *Controller) teardown() []Command {
	c.torn = true
	out := c.cancelAll(nil)
	if c.confetti {
		c.confetti = false
		out = append(out, StopConfetti{})
	}
	return out
}

// -------------------------
// helpers
// -------------------------

func (c *Controller) play(clip Clip, loop bool) Command {
	if loop {
		c.current = ""
	} else {
		c.current = clip
	}
	return PlayClip{Clip: clip, Loop: loop}
}

func (c *Controller) startTimer(t Timer, d time.Duration) Command {
	c.armed[t] = true
	return StartTimer{Timer: t, After: d}
}

func (c *Controller) cancelTimer(out []Command, t Timer) []Command {
	if !c.armed[t] {
		return out
	}
	c.armed[t] = false
	return append(out, CancelTimer{Timer: t})
}

func (c *Controller) cancelAll(out []Command) []Command {
	for _, t := range allTimers {
		out = c.cancelTimer(out, t)
	}
	return out
}

// hidePrompt oculta el prompt y corta su ciclo (se reprograma al terminar el clip).
func (c *Controller) hidePrompt(out []Command) []Command {
	out = c.cancelTimer(out, TimerPrompt)
	if c.prompt {
		c.prompt = false
		out = append(out, ShowPrompt{Visible: false})
	}
	return out
}

func (c *Controller) promptDelay() time.Duration {
	if c.step == 0 {
		return c.timings.PromptFirstDelay
	}
	return c.timings.PromptRepeatDelay
}
