package registrations

import "time"

// PlayStyle es la respuesta a "¿cómo te gusta jugar?".
type PlayStyle string

const (
	PlayStylePetCollector PlayStyle = "Pet Collector"
	PlayStyleCozyObserver PlayStyle = "Cozy Observer"
	PlayStyleTapToConnect PlayStyle = "Tap To Connect"
	PlayStyleOther        PlayStyle = "Other"
)

var playStyles = []PlayStyle{
	PlayStylePetCollector,
	PlayStyleCozyObserver,
	PlayStyleTapToConnect,
	PlayStyleOther,
}

func ParsePlayStyle(s string) (PlayStyle, bool) {
	for _, v := range playStyles {
		if string(v) == s {
			return v, true
		}
	}
	return "", false
}

// DiscoverySource es "¿cómo nos conociste?".
type DiscoverySource string

const (
	DiscoveryInstagram   DiscoverySource = "Instagram"
	DiscoveryTiktok      DiscoverySource = "Tiktok"
	DiscoveryReddit      DiscoverySource = "Reddit"
	DiscoveryX           DiscoverySource = "X"
	DiscoveryWordOfMouth DiscoverySource = "Word of Mouth"
	DiscoveryTeamFriends DiscoverySource = "Friends of Development Team Members"
	DiscoveryOther       DiscoverySource = "Other"
)

var discoverySources = []DiscoverySource{
	DiscoveryInstagram,
	DiscoveryTiktok,
	DiscoveryReddit,
	DiscoveryX,
	DiscoveryWordOfMouth,
	DiscoveryTeamFriends,
	DiscoveryOther,
}

func ParseDiscoverySource(s string) (DiscoverySource, bool) {
	for _, v := range discoverySources {
		if string(v) == s {
			return v, true
		}
	}
	return "", false
}

// GameGenre: selección múltiple.
type GameGenre string

const (
	GenreGacha          GameGenre = "Collections / Gacha Games"
	GenreCasualMobile   GameGenre = "Casual mobile games"
	GenreCompetitiveMob GameGenre = "Competitive Mobile Games"
	GenrePCCompetitive  GameGenre = "PC Competitive games"
	GenrePCRolePlaying  GameGenre = "PC Role Playing Games"
	GenrePCCozy         GameGenre = "PC Cozy games"
	GenreWeb3           GameGenre = "Web3 Games"
	GenreAesthetical    GameGenre = "Aesthetical Games"
	GenreDontPlay       GameGenre = "I don't play games"
	GenreOther          GameGenre = "Other"
)

var gameGenres = []GameGenre{
	GenreGacha,
	GenreCasualMobile,
	GenreCompetitiveMob,
	GenrePCCompetitive,
	GenrePCRolePlaying,
	GenrePCCozy,
	GenreWeb3,
	GenreAesthetical,
	GenreDontPlay,
	GenreOther,
}

func ParseGameGenre(s string) (GameGenre, bool) {
	for _, v := range gameGenres {
		if string(v) == s {
			return v, true
		}
	}
	return "", false
}

// Status del review manual de la registración.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusPending, StatusApproved, StatusRejected:
		return Status(s), true
	}
	return "", false
}

// Registration es una inscripción a la beta. Email es único (lo garantiza el store).
type Registration struct {
	ID string

	Email           string
	DiscordUsername string
	TelegramHandle  string

	PlayStyle      PlayStyle
	PlayStyleOther string // solo si PlayStyle == Other

	DiscoverySource      DiscoverySource
	DiscoverySourceOther string // solo si DiscoverySource == Other

	GameGenres      []GameGenre
	GameGenresOther string // solo si GameGenres incluye Other

	CreatedAt        time.Time
	Status           Status
	WelcomeEmailSent bool
}

// Outcome distingue los resultados no-error de Register.
type Outcome string

const (
	OutcomeRegistered             Outcome = "registered"
	OutcomeRegisteredNotifyFailed Outcome = "registered_notify_failed"
	OutcomeAlreadyExists          Outcome = "already_exists"
)

type Result struct {
	Outcome      Outcome
	Registration Registration // vacío si OutcomeAlreadyExists

	// NotifyErr viene seteado solo con OutcomeRegisteredNotifyFailed.
	NotifyErr error
}
