package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"sopets-web/internal/domain/hatch"
)

// DefaultClipDuration simula lo que dura un clip one-shot en la preview.
const DefaultClipDuration = 700 * time.Millisecond

const maxLogLines = 8

var errSimulated = errors.New("simulated failure")

type Options struct {
	Hatch        hatch.Options
	ClipDuration time.Duration
}

// Mensajes internos. seq descarta ticks de clips/timers ya reemplazados o cancelados.
type (
	startMsg    struct{}
	clipDoneMsg struct {
		clip hatch.Clip
		seq  int
	}
	timerMsg struct {
		timer hatch.Timer
		seq   int
	}
)

// HatchModel es la preview en terminal del tap-to-hatch: mismo controller que el sitio,
// con bubbletea como loop de eventos.
type HatchModel struct {
	ctrl         *hatch.Controller
	clipDuration time.Duration

	clipSeq  int
	timerSeq map[hatch.Timer]int
	loop     hatch.Clip

	log   []string
	width int
	quit  bool
}

func NewHatchModel(opts Options) HatchModel {
	d := opts.ClipDuration
	if d <= 0 {
		d = DefaultClipDuration
	}
	return HatchModel{
		ctrl:         hatch.NewController(opts.Hatch),
		clipDuration: d,
		timerSeq:     map[hatch.Timer]int{},
	}
}

// Snapshot expone el estado del controller (tests).
func (m HatchModel) Snapshot() hatch.Snapshot {
	return m.ctrl.Snapshot()
}

func (m HatchModel) Init() tea.Cmd {
	return func() tea.Msg { return startMsg{} }
}

func (m HatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case startMsg:
		return m.apply(m.ctrl.Start())

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			next, _ := m.apply(m.ctrl.Handle(hatch.Teardown()))
			next.quit = true
			return next, tea.Quit
		case " ", "enter", "t":
			return m.apply(m.ctrl.Handle(hatch.Tap()))
		case "f":
			clip := m.ctrl.Snapshot().Clip
			if clip == "" {
				clip = m.loop
			}
			return m.apply(m.ctrl.Handle(hatch.ClipFailed(clip, errSimulated)))
		}
		return m, nil

	case clipDoneMsg:
		if msg.seq != m.clipSeq {
			return m, nil
		}
		return m.apply(m.ctrl.Handle(hatch.ClipFinished(msg.clip)))

	case timerMsg:
		if msg.seq != m.timerSeq[msg.timer] {
			return m, nil
		}
		return m.apply(m.ctrl.Handle(hatch.Event{Kind: hatch.EventTimerFired, Timer: msg.timer}))
	}
	return m, nil
}

// apply traduce los comandos del controller a tea.Cmd (ticks) y registra cada uno en el log.
func (m HatchModel) apply(cmds []hatch.Command) (HatchModel, tea.Cmd) {
	var out []tea.Cmd
	for _, c := range cmds {
		switch c := c.(type) {
		case hatch.PlayClip:
			if c.Loop {
				m.loop = c.Clip
				m.clipSeq++
				m.logf("loop %s", c.Clip)
				continue
			}
			m.clipSeq++
			seq, clip := m.clipSeq, c.Clip
			out = append(out, tea.Tick(m.clipDuration, func(time.Time) tea.Msg {
				return clipDoneMsg{clip: clip, seq: seq}
			}))
			m.logf("play %s", c.Clip)

		case hatch.StartTimer:
			m.timerSeq[c.Timer]++
			seq, timer := m.timerSeq[c.Timer], c.Timer
			out = append(out, tea.Tick(c.After, func(time.Time) tea.Msg {
				return timerMsg{timer: timer, seq: seq}
			}))
			m.logf("timer %s in %s", c.Timer, c.After)

		case hatch.CancelTimer:
			m.timerSeq[c.Timer]++
			m.logf("cancel %s", c.Timer)

		case hatch.ShowPrompt:
			m.logf("prompt visible=%t", c.Visible)
		case hatch.StartConfetti:
			m.logf("confetti on")
		case hatch.StopConfetti:
			m.logf("confetti off")
		case hatch.Hatched:
			m.logf("hatched %s", c.Pet.Image)
		case hatch.Failed:
			m.logf("failed: %v", c.Err)
		}
	}
	return m, tea.Batch(out...)
}

func (m *HatchModel) logf(format string, args ...any) {
	m.log = append(m.log, fmt.Sprintf(format, args...))
	if len(m.log) > maxLogLines {
		m.log = m.log[len(m.log)-maxLogLines:]
	}
}

func (m HatchModel) View() string {
	if m.quit {
		return ""
	}
	s := m.ctrl.Snapshot()

	var b strings.Builder
	b.WriteString(titleStyle.Render("SoPets · hatch preview"))
	b.WriteString("\n\n")

	switch {
	case s.State == hatch.StateFailed:
		b.WriteString(errorStyle.Render("animation failed"))
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render(s.Err.Error()))
	case s.Pet != nil:
		if s.Confetti {
			b.WriteString(confettiStyle.Render("*  .  *  .  *  .  *"))
			b.WriteString("\n")
		}
		b.WriteString(petCardStyle.Render(fmt.Sprintf("It hatched!\n%s", s.Pet.Image)))
	default:
		b.WriteString(eggStyle.Render(renderEgg(s.Step)))
	}
	b.WriteString("\n\n")

	b.WriteString(progressBar(s.Step))
	b.WriteString("  ")
	b.WriteString(mutedStyle.Render(fmt.Sprintf("%s %s", s.State, m.clipLabel(s))))
	b.WriteString("\n")

	if s.PromptVisible {
		b.WriteString(promptStyle.Render("Tap to hatch!"))
	}
	b.WriteString("\n")

	b.WriteString(logStyle.Render(strings.Join(m.log, "\n")))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("space: tap · f: fail clip · q: quit"))
	return b.String()
}

func (m HatchModel) clipLabel(s hatch.Snapshot) string {
	if s.Clip != "" {
		return string(s.Clip)
	}
	return string(m.loop)
}

func renderEgg(step int) string {
	lines := []string{
		"   ___   ",
		"  /   \\  ",
		" |     | ",
		" |     | ",
		"  \\___/  ",
	}
	// cada tap agrega una grieta
	cracks := []struct {
		line int
		col  int
	}{{2, 3}, {3, 5}, {2, 6}, {3, 2}, {1, 4}}
	for i := 0; i < step && i < len(cracks); i++ {
		c := cracks[i]
		row := []rune(lines[c.line])
		row[c.col] = '╱'
		lines[c.line] = string(row)
	}
	out := strings.Join(lines, "\n")
	if step > 0 {
		return crackStyle.Render(out)
	}
	return out
}

func progressBar(step int) string {
	return strings.Repeat("●", step) + strings.Repeat("○", hatch.TapsToHatch-step)
}
