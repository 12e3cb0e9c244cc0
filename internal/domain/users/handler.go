package users

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"sopets-web/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

const stateCookie = "sopets_oauth_state"

// Authenticator es el proveedor OAuth (Google).
type Authenticator interface {
	AuthCodeURL(state string) string
	Identify(ctx context.Context, code string) (Identity, error)
}

// SessionIssuer firma el token de sesión que después verifica middleware.AuthContext.
type SessionIssuer interface {
	Issue(p Profile) (token string, expiresAt time.Time, err error)
}

// RegisterRoutes monta el flujo OAuth. Si authn == nil, login/callback responden 503.
func RegisterRoutes(r chi.Router, svc *Service, authn Authenticator, sessions SessionIssuer) {
	r.Route("/api/auth", func(rr chi.Router) {
		rr.Get("/google/login", loginHandler(authn))
		rr.Get("/google/callback", callbackHandler(svc, authn, sessions))
		rr.Get("/session", sessionHandler())
		rr.Post("/logout", logoutHandler())
	})
}

type sessionResponse struct {
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	Name      string    `json:"name,omitempty"`
	ExpiresAt time.Time `json:"expires_at,omitempty"`
}

type errorResponse struct {
	Message string `json:"message"`
}

// loginHandler godoc
// @Summary Iniciar sesión con Google
// @Tags auth
// @Success 302
// @Failure 503 {object} errorResponse
// @Router /api/auth/google/login [get]
func loginHandler(authn Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if authn == nil {
			writeJSON(w, http.StatusServiceUnavailable, errorResponse{Message: "google sign-in not configured"})
			return
		}

		state := uuid.NewString()
		http.SetCookie(w, &http.Cookie{
			Name:     stateCookie,
			Value:    state,
			Path:     "/api/auth",
			MaxAge:   int((10 * time.Minute).Seconds()),
			HttpOnly: true,
			Secure:   r.TLS != nil,
			SameSite: http.SameSiteLaxMode,
		})
		http.Redirect(w, r, authn.AuthCodeURL(state), http.StatusFound)
	}
}

// callbackHandler godoc
// @Summary Callback OAuth de Google
// @Description Intercambia el code, hace upsert del perfil (best-effort) y setea la cookie de sesión.
// @Tags auth
// @Param code query string true "Authorization code"
// @Param state query string true "State"
// @Success 303
// @Failure 400 {object} errorResponse
// @Failure 401 {object} errorResponse
// @Failure 403 {object} errorResponse
// @Failure 502 {object} errorResponse
// @Router /api/auth/google/callback [get]
func callbackHandler(svc *Service, authn Authenticator, sessions SessionIssuer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if authn == nil || sessions == nil {
			writeJSON(w, http.StatusServiceUnavailable, errorResponse{Message: "google sign-in not configured"})
			return
		}

		q := r.URL.Query()
		if e := q.Get("error"); e != "" {
			writeJSON(w, http.StatusUnauthorized, errorResponse{Message: "sign-in cancelled: " + e})
			return
		}

		c, err := r.Cookie(stateCookie)
		if err != nil || c.Value == "" || c.Value != q.Get("state") {
			writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid oauth state"})
			return
		}
		code := strings.TrimSpace(q.Get("code"))
		if code == "" {
			writeJSON(w, http.StatusBadRequest, errorResponse{Message: "missing code"})
			return
		}

		id, err := authn.Identify(r.Context(), code)
		if err != nil {
			writeJSON(w, http.StatusBadGateway, errorResponse{Message: "could not verify google account"})
			return
		}

		p, err := svc.SignIn(r.Context(), id)
		if err != nil {
			if errors.Is(err, ErrNoEmail) {
				writeJSON(w, http.StatusForbidden, errorResponse{Message: "google account has no email"})
				return
			}
			writeJSON(w, http.StatusInternalServerError, errorResponse{Message: "internal error"})
			return
		}

		token, exp, err := sessions.Issue(p)
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, errorResponse{Message: "internal error"})
			return
		}

		http.SetCookie(w, &http.Cookie{Name: stateCookie, Value: "", Path: "/api/auth", MaxAge: -1})
		http.SetCookie(w, &http.Cookie{
			Name:     middleware.SessionCookie,
			Value:    token,
			Path:     "/",
			Expires:  exp,
			HttpOnly: true,
			Secure:   r.TLS != nil,
			SameSite: http.SameSiteLaxMode,
		})
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

// sessionHandler godoc
// @Summary Sesión actual
// @Tags auth
// @Produce json
// @Success 200 {object} sessionResponse
// @Failure 401 {object} errorResponse
// @Router /api/auth/session [get]
func sessionHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			writeJSON(w, http.StatusUnauthorized, errorResponse{Message: "unauthorized"})
			return
		}
		writeJSON(w, http.StatusOK, sessionResponse{
			UserID:    claims.UserID,
			Email:     claims.Email,
			Name:      claims.Name,
			ExpiresAt: claims.ExpiresAt,
		})
	}
}

// logoutHandler godoc
// @Summary Cerrar sesión
// @Tags auth
// @Success 204
// @Router /api/auth/logout [post]
func logoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{
			Name:     middleware.SessionCookie,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
		})
		w.WriteHeader(http.StatusNoContent)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
