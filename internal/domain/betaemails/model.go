package betaemails

import "time"

// SourceWebsiteDownload es el origen que se guarda para el botón de descarga del sitio.
const SourceWebsiteDownload = "website_download"

// Email es un alta en la colección beta_emails.
type Email struct {
	ID        string
	Email     string
	CreatedAt time.Time
	Source    string
}

// Outcome de Submit.
type Outcome string

const (
	OutcomeSubmitted     Outcome = "submitted"
	OutcomeAlreadyExists Outcome = "already_exists"
)
