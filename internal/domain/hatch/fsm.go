package hatch

import (
	"errors"
	"fmt"
	"time"

	"sopets-web/internal/domain/pets"
)

var ErrAnimation = errors.New("failed to play animation")

// State del huevo.
type State int

const (
	StateIdle      State = iota // antes del primer tap (incluye el bark de "atención")
	StatePlaying                // clip de progreso del tap Step en curso
	StateSettling               // loop idle_crackStep, esperando el siguiente tap
	StateRevealing              // closing clip terminado: delay + clip reveal
	StateComplete
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePlaying:
		return "playing"
	case StateSettling:
		return "settling"
	case StateRevealing:
		return "revealing"
	case StateComplete:
		return "complete"
	case StateFailed:
		return "failed"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Timer identifica los timers que maneja el controller.
type Timer int

const (
	TimerIdle Timer = iota
	TimerPrompt
	TimerRevealDelay
	TimerConfetti
)

var allTimers = []Timer{TimerIdle, TimerPrompt, TimerRevealDelay, TimerConfetti}

func (t Timer) String() string {
	switch t {
	case TimerIdle:
		return "idle"
	case TimerPrompt:
		return "prompt"
	case TimerRevealDelay:
		return "reveal_delay"
	case TimerConfetti:
		return "confetti"
	}
	return fmt.Sprintf("timer(%d)", int(t))
}

// Timings del efecto. DefaultTimings replica el sitio.
type Timings struct {
	IdleTimeout       time.Duration // attract (bark) antes del primer tap
	PromptFirstDelay  time.Duration // primer prompt sin interacción
	PromptRepeatDelay time.Duration // prompt una vez que hubo taps
	PromptVisible     time.Duration
	RevealDelay       time.Duration // entre closing clip y reveal
	ConfettiDuration  time.Duration
}

func DefaultTimings() Timings {
	return Timings{
		IdleTimeout:       6 * time.Second,
		PromptFirstDelay:  2 * time.Second,
		PromptRepeatDelay: time.Second,
		PromptVisible:     5 * time.Second,
		RevealDelay:       time.Second,
		ConfettiDuration:  5 * time.Second,
	}
}

// -------------------------
// Events
// -------------------------

type EventKind int

const (
	EventTap EventKind = iota
	EventClipFinished
	EventClipFailed
	EventTimerFired
	EventTeardown
)

// Event entra al controller. Clip aplica a ClipFinished/ClipFailed, Timer a TimerFired.
type Event struct {
	Kind  EventKind
	Clip  Clip
	Timer Timer
	Err   error
}

func Tap() Event                         { return Event{Kind: EventTap} }
func ClipFinished(c Clip) Event          { return Event{Kind: EventClipFinished, Clip: c} }
func ClipFailed(c Clip, err error) Event { return Event{Kind: EventClipFailed, Clip: c, Err: err} }
func Teardown() Event                    { return Event{Kind: EventTeardown} }

func IdleTimeout() Event        { return Event{Kind: EventTimerFired, Timer: TimerIdle} }
func PromptTimeout() Event      { return Event{Kind: EventTimerFired, Timer: TimerPrompt} }
func RevealDelayElapsed() Event { return Event{Kind: EventTimerFired, Timer: TimerRevealDelay} }
func ConfettiTimeout() Event    { return Event{Kind: EventTimerFired, Timer: TimerConfetti} }

// -------------------------
// Commands
// -------------------------

// Command es un efecto que el runner (o la UI) tiene que aplicar.
type Command interface {
	command()
}

type PlayClip struct {
	Clip Clip
	Loop bool
}

type StartTimer struct {
	Timer Timer
	After time.Duration
}

type CancelTimer struct {
	Timer Timer
}

type ShowPrompt struct {
	Visible bool
}

type StartConfetti struct{}

type StopConfetti struct{}

type Hatched struct {
	Pet pets.Pet
}

type Failed struct {
	Err error
}

func (PlayClip) command()      {}
func (StartTimer) command()    {}
func (CancelTimer) command()   {}
func (ShowPrompt) command()    {}
func (StartConfetti) command() {}
func (StopConfetti) command()  {}
func (Hatched) command()       {}
func (Failed) command()        {}
