package hatch

import (
	"errors"
	"math/rand/v2"
	"testing"
	"time"

	"sopets-web/internal/domain/pets"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type firstPicker struct{ calls int }

func (p *firstPicker) RandomHatchPet(pool []string) pets.Pet {
	p.calls++
	if len(pool) == 0 {
		return pets.Pet{Image: "/pets/pet_0.png"}
	}
	return pets.Pet{Image: pool[0]}
}

func newTestController() (*Controller, *firstPicker) {
	p := &firstPicker{}
	c := NewController(Options{Pool: []string{"/pets/pet_7.png", "/pets/pet_2.png"}, Picker: p})
	return c, p
}

func TestParseClip(t *testing.T) {
	c, err := ParseClip("03_rotate_left_right")
	require.NoError(t, err)
	assert.Equal(t, ClipRotate, c)

	_, err = ParseClip("08_dance")
	assert.ErrorIs(t, err, ErrUnknownClip)
}

func TestController_TapsBeforeStartAreDropped(t *testing.T) {
	c, _ := newTestController()
	assert.Nil(t, c.Handle(Tap()))
	assert.Equal(t, 0, c.Snapshot().Step)
}

func TestController_Start(t *testing.T) {
	c, _ := newTestController()
	d := DefaultTimings()

	assert.Equal(t, []Command{
		PlayClip{Clip: ClipIdle, Loop: true},
		StartTimer{Timer: TimerIdle, After: d.IdleTimeout},
		StartTimer{Timer: TimerPrompt, After: d.PromptFirstDelay},
	}, c.Start())
	assert.Nil(t, c.Start(), "Start is idempotent")
}

func TestController_FullSequence(t *testing.T) {
	c, picker := newTestController()
	d := DefaultTimings()
	c.Start()

	// tap 1 corta attract y prompt
	assert.Equal(t, []Command{
		CancelTimer{Timer: TimerIdle},
		CancelTimer{Timer: TimerPrompt},
		PlayClip{Clip: ClipBark},
	}, c.Handle(Tap()))
	assert.Equal(t, StatePlaying, c.Snapshot().State)
	assert.Nil(t, c.Handle(Tap()), "tap while playing is dropped")
	assert.Equal(t, 1, c.Snapshot().Step)

	assert.Equal(t, []Command{
		PlayClip{Clip: ClipIdleCrack1, Loop: true},
		StartTimer{Timer: TimerPrompt, After: d.PromptRepeatDelay},
	}, c.Handle(ClipFinished(ClipBark)))
	assert.Equal(t, StateSettling, c.Snapshot().State)

	for k := 2; k <= 4; k++ {
		assert.Equal(t, []Command{
			CancelTimer{Timer: TimerPrompt},
			PlayClip{Clip: ProgressClip(k)},
		}, c.Handle(Tap()), "tap %d", k)
		assert.Equal(t, []Command{
			PlayClip{Clip: SettledClip(k), Loop: true},
			StartTimer{Timer: TimerPrompt, After: d.PromptRepeatDelay},
		}, c.Handle(ClipFinished(ProgressClip(k))), "settle %d", k)
	}

	// tap 5: closing clip
	assert.Equal(t, []Command{
		CancelTimer{Timer: TimerPrompt},
		PlayClip{Clip: ClipSwingLeft2},
	}, c.Handle(Tap()))
	assert.Nil(t, c.Handle(Tap()))

	assert.Equal(t, []Command{
		StartTimer{Timer: TimerRevealDelay, After: d.RevealDelay},
	}, c.Handle(ClipFinished(ClipSwingLeft2)))
	assert.Equal(t, StateRevealing, c.Snapshot().State)
	assert.Nil(t, c.Handle(Tap()), "tap while revealing is dropped")

	assert.Equal(t, []Command{PlayClip{Clip: ClipReveal}}, c.Handle(RevealDelayElapsed()))

	want := pets.Pet{Image: "/pets/pet_7.png"}
	assert.Equal(t, []Command{
		Hatched{Pet: want},
		StartConfetti{},
		StartTimer{Timer: TimerConfetti, After: d.ConfettiDuration},
	}, c.Handle(ClipFinished(ClipReveal)))

	snap := c.Snapshot()
	assert.Equal(t, StateComplete, snap.State)
	assert.Equal(t, TapsToHatch, snap.Step)
	require.NotNil(t, snap.Pet)
	assert.Equal(t, want, *snap.Pet)
	assert.True(t, snap.Confetti)

	// nada más después de completar
	assert.Nil(t, c.Handle(Tap()))
	assert.Nil(t, c.Handle(ClipFinished(ClipReveal)))
	assert.Nil(t, c.Handle(PromptTimeout()))
	assert.Equal(t, 1, picker.calls, "hatched exactly once")

	assert.Equal(t, []Command{StopConfetti{}}, c.Handle(ConfettiTimeout()))
	assert.False(t, c.Snapshot().Confetti)
}

func TestController_Attract(t *testing.T) {
	c, _ := newTestController()
	d := DefaultTimings()
	c.Start()

	assert.Equal(t, []Command{PlayClip{Clip: ClipBark}}, c.Handle(IdleTimeout()))
	assert.True(t, c.Snapshot().Attracting)
	assert.Nil(t, c.Handle(Tap()), "tap during attract bark is dropped")
	assert.Equal(t, 0, c.Snapshot().Step)

	assert.Equal(t, []Command{
		PlayClip{Clip: ClipIdle, Loop: true},
		StartTimer{Timer: TimerIdle, After: d.IdleTimeout},
	}, c.Handle(ClipFinished(ClipBark)))

	// se repite hasta el primer tap
	assert.Equal(t, []Command{PlayClip{Clip: ClipBark}}, c.Handle(IdleTimeout()))
	c.Handle(ClipFinished(ClipBark))

	cmds := c.Handle(Tap())
	assert.Contains(t, cmds, CancelTimer{Timer: TimerIdle})
	assert.Nil(t, c.Handle(IdleTimeout()), "idle timer is gone after the first tap")
}

func TestController_Prompt(t *testing.T) {
	c, _ := newTestController()
	d := DefaultTimings()
	c.Start()

	assert.Equal(t, []Command{
		ShowPrompt{Visible: true},
		StartTimer{Timer: TimerPrompt, After: d.PromptVisible},
	}, c.Handle(PromptTimeout()))
	assert.True(t, c.Snapshot().PromptVisible)

	assert.Equal(t, []Command{
		ShowPrompt{Visible: false},
		StartTimer{Timer: TimerPrompt, After: d.PromptFirstDelay},
	}, c.Handle(PromptTimeout()))

	c.Handle(PromptTimeout()) // visible otra vez
	assert.Equal(t, []Command{
		CancelTimer{Timer: TimerIdle},
		CancelTimer{Timer: TimerPrompt},
		ShowPrompt{Visible: false},
		PlayClip{Clip: ClipBark},
	}, c.Handle(Tap()))

	// después del primer tap el ciclo usa el delay corto
	c.Handle(ClipFinished(ClipBark))
	c.Handle(PromptTimeout())
	assert.Equal(t, []Command{
		ShowPrompt{Visible: false},
		StartTimer{Timer: TimerPrompt, After: d.PromptRepeatDelay},
	}, c.Handle(PromptTimeout()))
}

func TestController_StaleEventsIgnored(t *testing.T) {
	c, _ := newTestController()
	c.Start()

	assert.Nil(t, c.Handle(RevealDelayElapsed()), "timer never armed")
	assert.Nil(t, c.Handle(ConfettiTimeout()))
	assert.Nil(t, c.Handle(ClipFinished(ClipBark)), "no clip playing")

	c.Handle(Tap())
	assert.Nil(t, c.Handle(ClipFinished(ClipRotate)), "finish for another clip")
	assert.Equal(t, StatePlaying, c.Snapshot().State)
}

func TestController_ClipFailure(t *testing.T) {
	c, _ := newTestController()
	c.Start()
	c.Handle(Tap())

	boom := errors.New("track missing")
	cmds := c.Handle(ClipFailed(ClipBark, boom))
	require.Len(t, cmds, 1)
	f, ok := cmds[0].(Failed)
	require.True(t, ok)
	assert.ErrorIs(t, f.Err, ErrAnimation)
	assert.ErrorIs(t, f.Err, boom)

	snap := c.Snapshot()
	assert.Equal(t, StateFailed, snap.State)
	assert.ErrorIs(t, snap.Err, ErrAnimation)

	assert.Nil(t, c.Handle(Tap()))
	assert.Nil(t, c.Handle(ClipFinished(ClipBark)))
	assert.Nil(t, c.Handle(ClipFailed(ClipBark, boom)))
}

func TestController_FailureCancelsTimers(t *testing.T) {
	c, _ := newTestController()
	c.Start()

	cmds := c.Handle(ClipFailed(ClipIdle, nil))
	require.Len(t, cmds, 3)
	assert.Equal(t, []Command{
		CancelTimer{Timer: TimerIdle},
		CancelTimer{Timer: TimerPrompt},
		cmds[2],
	}, cmds)
	assert.ErrorIs(t, cmds[2].(Failed).Err, ErrAnimation)
}

func TestController_FailureWhilePromptVisible(t *testing.T) {
	c, _ := newTestController()
	c.Start()
	c.Handle(PromptTimeout())
	require.True(t, c.Snapshot().PromptVisible)

	cmds := c.Handle(ClipFailed(ClipIdle, nil))
	require.Len(t, cmds, 4)
	assert.Equal(t, []Command{
		CancelTimer{Timer: TimerIdle},
		CancelTimer{Timer: TimerPrompt},
		ShowPrompt{Visible: false},
		cmds[3],
	}, cmds)
	assert.IsType(t, Failed{}, cmds[3])
	assert.False(t, c.Snapshot().PromptVisible)
}

func TestController_Teardown(t *testing.T) {
	c, _ := newTestController()
	c.Start()

	assert.Equal(t, []Command{
		CancelTimer{Timer: TimerIdle},
		CancelTimer{Timer: TimerPrompt},
	}, c.Handle(Teardown()))

	assert.Nil(t, c.Handle(Tap()))
	assert.Nil(t, c.Handle(IdleTimeout()))
	assert.Nil(t, c.Handle(Teardown()))
}

func TestController_DefaultPool(t *testing.T) {
	c := NewController(Options{Timings: Timings{RevealDelay: time.Millisecond}})
	assert.Len(t, c.pool, pets.DefaultImageCount)
	assert.Equal(t, time.Millisecond, c.timings.RevealDelay)
}

// Secuencias aleatorias de eventos: nunca más de 5 taps, un solo Hatched,
// y el contador solo avanza con taps aceptados.
func TestController_RandomEvents_Invariants(t *testing.T) {
	rnd := rand.New(rand.NewPCG(7, 11))
	events := []func() Event{
		Tap, Tap, Tap,
		IdleTimeout, PromptTimeout, RevealDelayElapsed, ConfettiTimeout,
		func() Event { return ClipFinished(AllClips[rnd.IntN(len(AllClips))]) },
	}

	for run := 0; run < 200; run++ {
		c, picker := newTestController()
		c.Start()

		hatched := 0
		for i := 0; i < 300; i++ {
			ev := events[rnd.IntN(len(events))]()
			// el clip en curso a veces termina de verdad
			if rnd.IntN(3) == 0 && c.Snapshot().Clip != "" {
				ev = ClipFinished(c.Snapshot().Clip)
			}

			before := c.Snapshot()
			cmds := c.Handle(ev)
			after := c.Snapshot()

			for _, cmd := range cmds {
				if _, ok := cmd.(Hatched); ok {
					hatched++
				}
			}

			require.LessOrEqual(t, after.Step, TapsToHatch)
			require.GreaterOrEqual(t, after.Step, before.Step)
			if after.Step > before.Step {
				require.Equal(t, EventTap, ev.Kind)
				require.Equal(t, before.Step+1, after.Step)
				require.Contains(t, []State{StateIdle, StateSettling}, before.State)
			}
		}
		require.LessOrEqual(t, hatched, 1)
		require.Equal(t, hatched, picker.calls)
	}
}
