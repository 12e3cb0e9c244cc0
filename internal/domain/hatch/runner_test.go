package hatch

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func fastTimings() Timings {
	return Timings{
		IdleTimeout:       time.Hour,
		PromptFirstDelay:  2 * time.Millisecond,
		PromptRepeatDelay: time.Millisecond,
		PromptVisible:     3 * time.Millisecond,
		RevealDelay:       5 * time.Millisecond,
		ConfettiDuration:  5 * time.Millisecond,
	}
}

// autoPlayer termina cada clip one-shot apenas empieza.
type autoPlayer struct {
	runner *Runner
	cmds   chan Command
}

func (p *autoPlayer) Apply(cmd Command) {
	p.cmds <- cmd
	if pc, ok := cmd.(PlayClip); ok && !pc.Loop {
		go p.runner.Post(ClipFinished(pc.Clip))
	}
}

func waitFor(t *testing.T, ch <-chan Command, match func(Command) bool) Command {
	t.Helper()
	timeout := time.After(2 * time.Second)
	for {
		select {
		case cmd := <-ch:
			if match(cmd) {
				return cmd
			}
		case <-timeout:
			t.Fatalf("timed out waiting for command")
			return nil
		}
	}
}

func isPlay(clip Clip) func(Command) bool {
	return func(cmd Command) bool {
		pc, ok := cmd.(PlayClip)
		return ok && pc.Clip == clip
	}
}

func TestRunner_HatchesWithRealTimers(t *testing.T) {
	defer goleak.VerifyNone(t)

	p := &autoPlayer{cmds: make(chan Command, 256)}
	ctrl := NewController(Options{Timings: fastTimings(), Pool: []string{"/pets/pet_4.png"}})

	p.runner = NewRunner(ctrl, p)
	p.runner.Start()

	waitFor(t, p.cmds, isPlay(ClipIdle))

	for k := 1; k < TapsToHatch; k++ {
		require.True(t, p.runner.Tap())
		waitFor(t, p.cmds, isPlay(SettledClip(k)))
	}
	require.True(t, p.runner.Tap())
	waitFor(t, p.cmds, isPlay(ClipSwingLeft2))
	waitFor(t, p.cmds, isPlay(ClipReveal))

	h := waitFor(t, p.cmds, func(cmd Command) bool { _, ok := cmd.(Hatched); return ok })
	assert.Equal(t, "/pets/pet_4.png", h.(Hatched).Pet.Image)
	waitFor(t, p.cmds, func(cmd Command) bool { _, ok := cmd.(StopConfetti); return ok })

	p.runner.Close()

	snap := ctrl.Snapshot()
	assert.Equal(t, StateComplete, snap.State)
	assert.Equal(t, TapsToHatch, snap.Step)
	assert.False(t, p.runner.Post(Tap()), "post after close")
}

func TestRunner_CloseStopsTimers(t *testing.T) {
	defer goleak.VerifyNone(t)

	cmds := make(chan Command, 64)
	r := NewRunner(NewController(Options{Timings: Timings{
		IdleTimeout:       time.Millisecond,
		PromptFirstDelay:  time.Millisecond,
		PromptRepeatDelay: time.Millisecond,
		PromptVisible:     time.Millisecond,
		RevealDelay:       time.Millisecond,
		ConfettiDuration:  time.Millisecond,
	}}), EffectsFunc(func(cmd Command) {
		select {
		case cmds <- cmd:
		default:
		}
	}))
	r.Start()

	waitFor(t, cmds, isPlay(ClipIdle))
	// attract arranca solo con el idle timer
	waitFor(t, cmds, isPlay(ClipBark))

	r.Close()
	r.Close()
}

func TestRunner_CloseWithoutStart(t *testing.T) {
	defer goleak.VerifyNone(t)

	r := NewRunner(NewController(Options{}), nil)
	r.Close()
	assert.False(t, r.Tap())
}
