package google

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"sopets-web/internal/domain/users"
	"sopets-web/internal/platform/httpclient"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/endpoints"
)

const DefaultUserInfoURL = "https://openidconnect.googleapis.com/v1/userinfo"

var (
	ErrNotConfigured = errors.New("google oauth not configured")
	ErrExchange      = errors.New("google code exchange failed")
	ErrUserInfo      = errors.New("google userinfo failed")
)

// Config del cliente OAuth. Endpoint y UserInfoURL se pisan en tests.
type Config struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string

	Endpoint    oauth2.Endpoint
	UserInfoURL string

	Timeout time.Duration
}

// Client implementa users.Authenticator contra Google.
type Client struct {
	oauth    *oauth2.Config
	userInfo string
	http     *httpclient.Client
}

func NewClient(cfg Config) *Client {
	ep := cfg.Endpoint
	if ep.AuthURL == "" {
		ep = endpoints.Google
	}
	ui := strings.TrimSpace(cfg.UserInfoURL)
	if ui == "" {
		ui = DefaultUserInfoURL
	}

	return &Client{
		oauth: &oauth2.Config{
			ClientID:     strings.TrimSpace(cfg.ClientID),
			ClientSecret: strings.TrimSpace(cfg.ClientSecret),
			RedirectURL:  strings.TrimSpace(cfg.RedirectURL),
			Endpoint:     ep,
			Scopes:       []string{"openid", "email", "profile"},
		},
		userInfo: ui,
		http:     httpclient.New(cfg.Timeout),
	}
}

func (c *Client) IsConfigured() bool {
	return c != nil && c.oauth.ClientID != "" && c.oauth.ClientSecret != "" && c.oauth.RedirectURL != ""
}

func (c *Client) AuthCodeURL(state string) string {
	return c.oauth.AuthCodeURL(state, oauth2.SetAuthURLParam("prompt", "select_account"))
}

// Identify intercambia el code y trae el perfil de userinfo.
func (c *Client) Identify(ctx context.Context, code string) (users.Identity, error) {
	if !c.IsConfigured() {
		return users.Identity{}, ErrNotConfigured
	}

	// oauth2 usa el mismo *http.Client (timeout) para el token endpoint.
	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.http.HTTP)

	tok, err := c.oauth.Exchange(ctx, strings.TrimSpace(code))
	if err != nil {
		return users.Identity{}, fmt.Errorf("%w: %v", ErrExchange, err)
	}

	var out struct {
		Sub     string `json:"sub"`
		Email   string `json:"email"`
		Name    string `json:"name"`
		Picture string `json:"picture"`
	}
	if err := c.http.DoJSON(ctx, httpclient.Request{
		Method:      "GET",
		URL:         c.userInfo,
		BearerToken: tok.AccessToken,
		Out:         &out,
	}); err != nil {
		return users.Identity{}, fmt.Errorf("%w: %v", ErrUserInfo, err)
	}

	return users.Identity{
		Subject:   out.Sub,
		Email:     out.Email,
		Name:      out.Name,
		AvatarURL: out.Picture,
	}, nil
}
