package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// API agrupa la configuración del servidor HTTP.
// Si DB_DSN / MONGO_URI vienen vacíos, el router usa stores in-memory (modo dev).
type API struct {
	Port string `env:"PORT" envDefault:"8080"`

	DBDSN         string `env:"DB_DSN"`
	MongoURI      string `env:"MONGO_URI"`
	MongoDatabase string `env:"MONGO_DATABASE" envDefault:"sopets"`

	// RetryMaxAttempts: reintentos de beta_registrations (x1.5) e intentos
	// totales de beta_emails (lineal).
	RetryBaseDelay   time.Duration `env:"RETRY_BASE_DELAY" envDefault:"1s"`
	RetryMaxAttempts uint          `env:"RETRY_MAX_ATTEMPTS" envDefault:"3"`

	SubmitRatePerMinute int `env:"SUBMIT_RATE_PER_MINUTE" envDefault:"30"`

	GoogleClientID     string `env:"GOOGLE_CLIENT_ID"`
	GoogleClientSecret string `env:"GOOGLE_CLIENT_SECRET"`
	GoogleRedirectURL  string `env:"GOOGLE_REDIRECT_URL"`

	SessionSecret string        `env:"SESSION_SECRET"`
	SessionTTL    time.Duration `env:"SESSION_TTL" envDefault:"24h"`

	AdminEmails []string `env:"ADMIN_EMAILS" envSeparator:","`

	// Modo dev: cualquier usuario autenticado tiene todas las capabilities.
	AllowAllCapabilities bool `env:"ALLOW_ALL_CAPABILITIES"`

	OTLPEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`

	PetImageCount int `env:"PET_IMAGE_COUNT" envDefault:"14"`
}

// ParseEnv carga cualquier struct con tags `env`.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadAPI lee env y normaliza valores.
func LoadAPI() (API, error) {
	var cfg API
	if err := ParseEnv(&cfg); err != nil {
		return API{}, err
	}
	cfg.normalize()
	return cfg, nil
}

// Addr devuelve ":<port>" para http.Server.
func (c API) Addr() string {
	return ":" + strings.TrimPrefix(strings.TrimSpace(c.Port), ":")
}

// GoogleConfigured indica si hay credenciales OAuth suficientes.
func (c API) GoogleConfigured() bool {
	return c.GoogleClientID != "" && c.GoogleClientSecret != "" && c.GoogleRedirectURL != ""
}

func (c *API) normalize() {
	if c.RetryMaxAttempts == 0 {
		c.RetryMaxAttempts = 3
	}
	if c.RetryBaseDelay < 0 {
		c.RetryBaseDelay = 0
	}
	if c.PetImageCount <= 0 {
		c.PetImageCount = 14
	}

	admins := make([]string, 0, len(c.AdminEmails))
	for _, e := range c.AdminEmails {
		e = strings.ToLower(strings.TrimSpace(e))
		if e != "" {
			admins = append(admins, e)
		}
	}
	c.AdminEmails = admins
}
