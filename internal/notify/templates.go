package notify

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"strings"
)

//go:embed templates/*.html
var templatesFS embed.FS

var templates = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

const ThankYouSubject = "Thank You for Joining SoPets Beta! 🎉"

// Platform del email de bienvenida.
type Platform string

const (
	PlatformIOS     Platform = "ios"
	PlatformAndroid Platform = "android"
)

var ErrMissingLink = errors.New("missing platform download link")

// Message es un email ya renderizado.
type Message struct {
	To      string
	Subject string
	HTML    string
}

// WelcomeData alimenta el email de bienvenida por plataforma.
type WelcomeData struct {
	UserName       string
	Platform       Platform
	TestFlightLink string
	PlayStoreLink  string
}

// RenderThankYou arma el email que se manda apenas alguien se registra.
func RenderThankYou(to, userName string) (Message, error) {
	body, err := render("thank_you.html", map[string]string{"UserName": userName})
	if err != nil {
		return Message{}, err
	}
	return Message{To: to, Subject: ThankYouSubject, HTML: body}, nil
}

// RenderWelcome arma el email de acceso a la beta (iOS => TestFlight, Android => Play Store).
func RenderWelcome(to string, d WelcomeData) (Message, error) {
	switch d.Platform {
	case PlatformIOS:
		if strings.TrimSpace(d.TestFlightLink) == "" {
			return Message{}, fmt.Errorf("%w: testflight", ErrMissingLink)
		}
	case PlatformAndroid:
		if strings.TrimSpace(d.PlayStoreLink) == "" {
			return Message{}, fmt.Errorf("%w: play store", ErrMissingLink)
		}
	default:
		return Message{}, fmt.Errorf("unknown platform %q", d.Platform)
	}

	body, err := render("welcome.html", d)
	if err != nil {
		return Message{}, err
	}
	return Message{
		To:      to,
		Subject: fmt.Sprintf("Welcome to SoPets Beta, %s! 🎉", d.UserName),
		HTML:    body,
	}, nil
}

func render(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return buf.String(), nil
}
