package registrations

import (
	"fmt"
	"strings"
)

// Input es el payload crudo del formulario; los enums llegan como string
// y se validan acá.
type Input struct {
	Email                string
	DiscordUsername      string
	TelegramHandle       string
	PlayStyle            string
	PlayStyleOther       string
	DiscoverySource      string
	DiscoverySourceOther string
	GameGenres           []string
	GameGenresOther      string
}

// ValidationError reporta el primer campo inválido.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

func invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// ValidEmail es el chequeo mínimo que hace el sitio: no vacío y con "@".
func ValidEmail(email string) bool {
	email = strings.TrimSpace(email)
	return email != "" && strings.Contains(email, "@")
}

// Validate normaliza el input a una Registration (sin ID/timestamps).
// El orden de chequeo define qué campo se reporta primero.
func Validate(in Input) (Registration, error) {
	email := strings.TrimSpace(in.Email)
	if email == "" {
		return Registration{}, invalid("email", "required")
	}
	if !ValidEmail(email) {
		return Registration{}, invalid("email", "must contain @")
	}

	discord := strings.TrimSpace(in.DiscordUsername)
	if discord == "" {
		return Registration{}, invalid("discord_username", "required")
	}
	telegram := strings.TrimSpace(in.TelegramHandle)
	if telegram == "" {
		return Registration{}, invalid("telegram_handle", "required")
	}

	rawStyle := strings.TrimSpace(in.PlayStyle)
	if rawStyle == "" {
		return Registration{}, invalid("playstyle", "required")
	}
	style, ok := ParsePlayStyle(rawStyle)
	if !ok {
		return Registration{}, invalid("playstyle", "unknown value")
	}
	var styleOther string
	if style == PlayStyleOther {
		styleOther = strings.TrimSpace(in.PlayStyleOther)
		if styleOther == "" {
			return Registration{}, invalid("playstyle_other", "required when playstyle is Other")
		}
	}

	rawSource := strings.TrimSpace(in.DiscoverySource)
	if rawSource == "" {
		return Registration{}, invalid("discovery_source", "required")
	}
	source, ok := ParseDiscoverySource(rawSource)
	if !ok {
		return Registration{}, invalid("discovery_source", "unknown value")
	}
	var sourceOther string
	if source == DiscoveryOther {
		sourceOther = strings.TrimSpace(in.DiscoverySourceOther)
		if sourceOther == "" {
			return Registration{}, invalid("discovery_source_other", "required when discovery_source is Other")
		}
	}

	genres := make([]GameGenre, 0, len(in.GameGenres))
	seen := map[GameGenre]struct{}{}
	for _, raw := range in.GameGenres {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		g, ok := ParseGameGenre(raw)
		if !ok {
			return Registration{}, invalid("game_genres", "unknown value "+raw)
		}
		if _, dup := seen[g]; dup {
			continue
		}
		seen[g] = struct{}{}
		genres = append(genres, g)
	}
	if len(genres) == 0 {
		return Registration{}, invalid("game_genres", "select at least one")
	}
	var genresOther string
	if _, ok := seen[GenreOther]; ok {
		genresOther = strings.TrimSpace(in.GameGenresOther)
		if genresOther == "" {
			return Registration{}, invalid("game_genres_other", "required when game_genres includes Other")
		}
	}

	return Registration{
		Email:                email,
		DiscordUsername:      discord,
		TelegramHandle:       telegram,
		PlayStyle:            style,
		PlayStyleOther:       styleOther,
		DiscoverySource:      source,
		DiscoverySourceOther: sourceOther,
		GameGenres:           genres,
		GameGenresOther:      genresOther,
	}, nil
}
