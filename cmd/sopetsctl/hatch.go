package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"sopets-web/internal/domain/hatch"
	"sopets-web/internal/tui"
)

type hatchFlags struct {
	skeleton     string
	clipDuration time.Duration
	idleTimeout  time.Duration
}

func newHatchCmd(a *app) *cobra.Command {
	var f hatchFlags

	cmd := &cobra.Command{
		Use:   "hatch",
		Short: "Terminal preview of the egg hatch sequence",
		Long: `Run the tap-to-hatch controller in the terminal.

Press space to tap, f to simulate a failed animation, q to quit.
With --skeleton the egg skeleton JSON is checked for every clip first.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, clips, err := f.options()
			if err != nil {
				return err
			}
			if len(clips) > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "skeleton ok: %d clips (%s)\n", len(clips), joinClips(clips))
			}
			p := tea.NewProgram(tui.NewHatchModel(opts), tea.WithAltScreen(), tea.WithContext(cmd.Context()))
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("tui error: %w", err)
			}
			a.log.Debug("hatch preview closed", nil)
			return nil
		},
	}
	cmd.Flags().StringVar(&f.skeleton, "skeleton", "", "egg skeleton JSON to validate before starting")
	cmd.Flags().DurationVar(&f.clipDuration, "clip-duration", tui.DefaultClipDuration, "simulated one-shot clip length")
	cmd.Flags().DurationVar(&f.idleTimeout, "idle-timeout", hatch.DefaultTimings().IdleTimeout, "idle time before the attract animation")
	return cmd
}

// options arma la config de la preview; con --skeleton devuelve además los clips declarados.
func (f hatchFlags) options() (tui.Options, []hatch.Clip, error) {
	var clips []hatch.Clip
	if f.skeleton != "" {
		data, err := os.ReadFile(f.skeleton)
		if err != nil {
			return tui.Options{}, nil, fmt.Errorf("read skeleton: %w", err)
		}
		if err := hatch.ValidateSkeleton(data); err != nil {
			return tui.Options{}, nil, err
		}
		clips = hatch.SkeletonClips(data)
	}

	timings := hatch.DefaultTimings()
	if f.idleTimeout > 0 {
		timings.IdleTimeout = f.idleTimeout
	}
	return tui.Options{
		Hatch:        hatch.Options{Timings: timings},
		ClipDuration: f.clipDuration,
	}, clips, nil
}

func joinClips(clips []hatch.Clip) string {
	names := make([]string, 0, len(clips))
	for _, c := range clips {
		names = append(names, string(c))
	}
	return strings.Join(names, ", ")
}
