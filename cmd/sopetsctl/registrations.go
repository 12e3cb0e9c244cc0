package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"sopets-web/internal/domain/registrations"
)

func newRegistrationsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "registrations",
		Aliases: []string{"reg"},
		Short:   "Inspect and review beta registrations",
	}
	cmd.AddCommand(
		newRegistrationsGetCmd(a),
		newRegistrationsSetStatusCmd(a),
		newRegistrationsCountCmd(a),
	)
	return cmd
}

func newRegistrationsGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <email>",
		Short: "Show a registration by email",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, closeFn, err := a.registrations(cmd)
			if err != nil {
				return err
			}
			defer closeFn()

			reg, err := svc.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(toOutput(reg))
		},
	}
}

func newRegistrationsSetStatusCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "set-status <id> <pending|approved|rejected>",
		Short: "Change the review status of a registration",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, closeFn, err := a.registrations(cmd)
			if err != nil {
				return err
			}
			defer closeFn()

			if err := svc.UpdateStatus(cmd.Context(), args[0], args[1]); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s\n", args[0], strings.TrimSpace(args[1]))
			return err
		},
	}
}

func newRegistrationsCountCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "count",
		Short: "Count beta registrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, closeFn, err := a.registrations(cmd)
			if err != nil {
				return err
			}
			defer closeFn()

			n, err := svc.Count(cmd.Context())
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), n)
			return err
		},
	}
}

func (a *app) registrations(cmd *cobra.Command) (*registrations.Service, func() error, error) {
	cfg, err := a.loadConfig()
	if err != nil {
		return nil, nil, err
	}
	return a.openRegistrations(cmd.Context(), cfg)
}

type registrationOutput struct {
	ID                   string   `json:"id"`
	Email                string   `json:"email"`
	DiscordUsername      string   `json:"discord_username"`
	TelegramHandle       string   `json:"telegram_handle"`
	PlayStyle            string   `json:"playstyle"`
	PlayStyleOther       string   `json:"playstyle_other,omitempty"`
	DiscoverySource      string   `json:"discovery_source"`
	DiscoverySourceOther string   `json:"discovery_source_other,omitempty"`
	GameGenres           []string `json:"game_genres"`
	GameGenresOther      string   `json:"game_genres_other,omitempty"`
	CreatedAt            string   `json:"created_at"`
	Status               string   `json:"status"`
	WelcomeEmailSent     bool     `json:"welcome_email_sent"`
}

func toOutput(reg registrations.Registration) registrationOutput {
	genres := make([]string, 0, len(reg.GameGenres))
	for _, g := range reg.GameGenres {
		genres = append(genres, string(g))
	}
	return registrationOutput{
		ID:                   reg.ID,
		Email:                reg.Email,
		DiscordUsername:      reg.DiscordUsername,
		TelegramHandle:       reg.TelegramHandle,
		PlayStyle:            string(reg.PlayStyle),
		PlayStyleOther:       reg.PlayStyleOther,
		DiscoverySource:      string(reg.DiscoverySource),
		DiscoverySourceOther: reg.DiscoverySourceOther,
		GameGenres:           genres,
		GameGenresOther:      reg.GameGenresOther,
		CreatedAt:            reg.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		Status:               string(reg.Status),
		WelcomeEmailSent:     reg.WelcomeEmailSent,
	}
}
