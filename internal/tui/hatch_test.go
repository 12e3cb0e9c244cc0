package tui

import (
	"math/rand/v2"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sopets-web/internal/domain/hatch"
	"sopets-web/internal/domain/pets"
)

const testPetImage = "/pets/pet_3.png"

func newTestModel(t *testing.T) HatchModel {
	t.Helper()
	m := NewHatchModel(Options{
		Hatch: hatch.Options{
			Pool:   []string{testPetImage},
			Picker: pets.NewGenerator(pets.DefaultCatalog(), pets.DefaultImageCount, rand.NewPCG(1, 2)),
		},
	})
	m, _ = send(t, m, m.Init()())
	return m
}

func send(t *testing.T, m HatchModel, msg tea.Msg) (HatchModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	hm, ok := next.(HatchModel)
	require.True(t, ok, "Update must return HatchModel")
	return hm, cmd
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// finishClip simula que el clip one-shot en curso terminó.
func finishClip(t *testing.T, m HatchModel) HatchModel {
	t.Helper()
	clip := m.Snapshot().Clip
	require.NotEmpty(t, clip, "no clip playing")
	m, _ = send(t, m, clipDoneMsg{clip: clip, seq: m.clipSeq})
	return m
}

func fireTimer(t *testing.T, m HatchModel, timer hatch.Timer) HatchModel {
	t.Helper()
	m, _ = send(t, m, timerMsg{timer: timer, seq: m.timerSeq[timer]})
	return m
}

func TestHatchModel_StartLoopsIdle(t *testing.T) {
	m := newTestModel(t)

	s := m.Snapshot()
	assert.Equal(t, hatch.StateIdle, s.State)
	assert.Equal(t, hatch.ClipIdle, m.loop)
	assert.Equal(t, 1, m.timerSeq[hatch.TimerIdle])
	assert.Equal(t, 1, m.timerSeq[hatch.TimerPrompt])
}

func TestHatchModel_FullSequence(t *testing.T) {
	m := newTestModel(t)

	for step := 1; step <= hatch.TapsToHatch; step++ {
		var cmd tea.Cmd
		m, cmd = send(t, m, key("t"))
		require.NotNil(t, cmd, "tap %d should schedule the clip", step)

		s := m.Snapshot()
		require.Equal(t, hatch.StatePlaying, s.State, "tap %d", step)
		require.Equal(t, step, s.Step)

		// tap durante el clip se ignora
		m, _ = send(t, m, key(" "))
		require.Equal(t, step, m.Snapshot().Step)

		m = finishClip(t, m)
		if step < hatch.TapsToHatch {
			assert.Equal(t, hatch.StateSettling, m.Snapshot().State)
			assert.Equal(t, hatch.SettledClip(step), m.loop)
		}
	}

	require.Equal(t, hatch.StateRevealing, m.Snapshot().State)
	m = fireTimer(t, m, hatch.TimerRevealDelay)
	require.Equal(t, hatch.ClipReveal, m.Snapshot().Clip)

	m = finishClip(t, m)
	s := m.Snapshot()
	require.Equal(t, hatch.StateComplete, s.State)
	require.NotNil(t, s.Pet)
	assert.Equal(t, testPetImage, s.Pet.Image)
	assert.True(t, s.Confetti)
	assert.Contains(t, m.View(), testPetImage)

	m = fireTimer(t, m, hatch.TimerConfetti)
	assert.False(t, m.Snapshot().Confetti)
}

func TestHatchModel_StaleTicksIgnored(t *testing.T) {
	m := newTestModel(t)

	staleIdle := timerMsg{timer: hatch.TimerIdle, seq: m.timerSeq[hatch.TimerIdle]}
	m, _ = send(t, m, key("t"))

	// el tap canceló el timer de attract
	m, _ = send(t, m, staleIdle)
	assert.False(t, m.Snapshot().Attracting)

	// un clipDone con seq viejo no avanza
	m, _ = send(t, m, clipDoneMsg{clip: m.Snapshot().Clip, seq: m.clipSeq - 1})
	assert.Equal(t, hatch.StatePlaying, m.Snapshot().State)
}

func TestHatchModel_PromptShownInView(t *testing.T) {
	m := newTestModel(t)
	assert.NotContains(t, m.View(), "Tap to hatch!")

	m = fireTimer(t, m, hatch.TimerPrompt)
	require.True(t, m.Snapshot().PromptVisible)
	assert.Contains(t, m.View(), "Tap to hatch!")

	m = fireTimer(t, m, hatch.TimerPrompt)
	assert.False(t, m.Snapshot().PromptVisible)
}

func TestHatchModel_AttractOnIdle(t *testing.T) {
	m := newTestModel(t)

	m = fireTimer(t, m, hatch.TimerIdle)
	s := m.Snapshot()
	require.True(t, s.Attracting)
	assert.Equal(t, hatch.ClipBark, s.Clip)

	// tap durante el attract se descarta
	m, _ = send(t, m, key("t"))
	assert.Equal(t, 0, m.Snapshot().Step)

	m = finishClip(t, m)
	assert.False(t, m.Snapshot().Attracting)
	assert.Equal(t, hatch.ClipIdle, m.loop)
}

func TestHatchModel_SimulatedFailure(t *testing.T) {
	m := newTestModel(t)
	m, _ = send(t, m, key("t"))
	m, _ = send(t, m, key("f"))

	s := m.Snapshot()
	require.Equal(t, hatch.StateFailed, s.State)
	require.ErrorIs(t, s.Err, hatch.ErrAnimation)
	assert.Contains(t, m.View(), "animation failed")

	// nada más avanza
	m, _ = send(t, m, key("t"))
	assert.Equal(t, hatch.StateFailed, m.Snapshot().State)
}

func TestHatchModel_QuitTearsDown(t *testing.T) {
	m := newTestModel(t)

	m, cmd := send(t, m, key("q"))
	require.NotNil(t, cmd)
	_, isQuit := cmd().(tea.QuitMsg)
	assert.True(t, isQuit)
	assert.Empty(t, m.View())

	// después del teardown los timers pendientes no hacen nada
	m = fireTimer(t, m, hatch.TimerIdle)
	assert.False(t, m.Snapshot().Attracting)
}

func TestHatchModel_LogIsBounded(t *testing.T) {
	m := newTestModel(t)
	for i := 0; i < 20; i++ {
		m = fireTimer(t, m, hatch.TimerPrompt)
	}
	assert.LessOrEqual(t, len(m.log), maxLogLines)
	assert.True(t, strings.HasPrefix(m.log[len(m.log)-1], "timer "))
}

func TestProgressBar(t *testing.T) {
	assert.Equal(t, "○○○○○", progressBar(0))
	assert.Equal(t, "●●○○○", progressBar(2))
	assert.Equal(t, "●●●●●", progressBar(hatch.TapsToHatch))
}
