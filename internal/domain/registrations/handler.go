package registrations

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"sopets-web/internal/middleware"
	"sopets-web/internal/ports/capabilities"

	"github.com/go-chi/chi/v5"
)

// FeatureReview habilita leer y cambiar el estado de registraciones.
const FeatureReview = "beta:review"

// RegisterRoutes monta el formulario y las rutas admin. mw aplica solo al POST público
// (rate limit por IP).
func RegisterRoutes(r chi.Router, svc *Service, caps capabilities.CapabilitiesResolver, mw ...func(http.Handler) http.Handler) {
	r.Route("/api/beta-registrations", func(rr chi.Router) {
		rr.With(mw...).Post("/", createRegistrationHandler(svc))

		// Admin: requiere capability beta:review
		rr.Get("/{email}", getRegistrationHandler(svc, caps))
		rr.Patch("/{id}/status", updateStatusHandler(svc, caps))
	})
}

type createRegistrationRequest struct {
	Email                string   `json:"email"`
	DiscordUsername      string   `json:"discord_username"`
	TelegramHandle       string   `json:"telegram_handle"`
	PlayStyle            string   `json:"playstyle" enums:"Pet Collector,Cozy Observer,Tap To Connect,Other"`
	PlayStyleOther       string   `json:"playstyle_other"`
	DiscoverySource      string   `json:"discovery_source"`
	DiscoverySourceOther string   `json:"discovery_source_other"`
	GameGenres           []string `json:"game_genres"`
	GameGenresOther      string   `json:"game_genres_other"`
}

type registrationResponse struct {
	ID                   string          `json:"id"`
	Email                string          `json:"email"`
	DiscordUsername      string          `json:"discord_username"`
	TelegramHandle       string          `json:"telegram_handle"`
	PlayStyle            PlayStyle       `json:"playstyle"`
	PlayStyleOther       string          `json:"playstyle_other,omitempty"`
	DiscoverySource      DiscoverySource `json:"discovery_source"`
	DiscoverySourceOther string          `json:"discovery_source_other,omitempty"`
	GameGenres           []GameGenre     `json:"game_genres"`
	GameGenresOther      string          `json:"game_genres_other,omitempty"`
	CreatedAt            time.Time       `json:"created_at"`
	Status               Status          `json:"status"`
	WelcomeEmailSent     bool            `json:"welcome_email_sent"`
}

type createRegistrationResponse struct {
	Message          string                `json:"message"`
	Outcome          Outcome               `json:"outcome"`
	AlreadyExists    bool                  `json:"alreadyExists,omitempty"`
	NotificationSent bool                  `json:"notificationSent"`
	Registration     *registrationResponse `json:"registration,omitempty"`
}

type errorResponse struct {
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

type updateStatusRequest struct {
	Status string `json:"status" enums:"pending,approved,rejected"`
}

// createRegistrationHandler godoc
// @Summary Registrarse en la beta
// @Description Valida el formulario, evita duplicados por email, persiste con status=pending y envía (loguea) un email de agradecimiento. Si el email falla la registración se mantiene y outcome=registered_notify_failed.
// @Tags beta
// @Accept json
// @Produce json
// @Param body body createRegistrationRequest true "Formulario beta"
// @Success 201 {object} createRegistrationResponse
// @Success 200 {object} createRegistrationResponse "Ya registrado"
// @Failure 400 {object} errorResponse
// @Failure 429 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Failure 503 {object} errorResponse
// @Router /api/beta-registrations [post]
func createRegistrationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createRegistrationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid json"})
			return
		}

		res, err := svc.Register(r.Context(), Input{
			Email:                req.Email,
			DiscordUsername:      req.DiscordUsername,
			TelegramHandle:       req.TelegramHandle,
			PlayStyle:            req.PlayStyle,
			PlayStyleOther:       req.PlayStyleOther,
			DiscoverySource:      req.DiscoverySource,
			DiscoverySourceOther: req.DiscoverySourceOther,
			GameGenres:           req.GameGenres,
			GameGenresOther:      req.GameGenresOther,
		})
		if err != nil {
			writeError(w, err)
			return
		}

		switch res.Outcome {
		case OutcomeAlreadyExists:
			writeJSON(w, http.StatusOK, createRegistrationResponse{
				Message:       ErrAlreadyExists.Error(),
				Outcome:       res.Outcome,
				AlreadyExists: true,
			})
		case OutcomeRegistered, OutcomeRegisteredNotifyFailed:
			out := toRegistrationResponse(res.Registration)
			writeJSON(w, http.StatusCreated, createRegistrationResponse{
				Message:          "Thank you for joining the beta!",
				Outcome:          res.Outcome,
				NotificationSent: res.Outcome == OutcomeRegistered,
				Registration:     &out,
			})
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse{Message: "internal error"})
		}
	}
}

// getRegistrationHandler godoc
// @Summary Ver registración por email
// @Tags beta
// @Produce json
// @Param email path string true "Email"
// @Success 200 {object} registrationResponse
// @Failure 401 {object} errorResponse
// @Failure 403 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Failure 503 {object} errorResponse
// @Router /api/beta-registrations/{email} [get]
func getRegistrationHandler(svc *Service, caps capabilities.CapabilitiesResolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !authorizeReview(w, r, caps) {
			return
		}

		reg, err := svc.Get(r.Context(), chi.URLParam(r, "email"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toRegistrationResponse(reg))
	}
}

// updateStatusHandler godoc
// @Summary Aprobar / rechazar registración
// @Tags beta
// @Accept json
// @Produce json
// @Param id path string true "Registration ID"
// @Param body body updateStatusRequest true "Nuevo estado"
// @Success 204
// @Failure 400 {object} errorResponse
// @Failure 401 {object} errorResponse
// @Failure 403 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /api/beta-registrations/{id}/status [patch]
func updateStatusHandler(svc *Service, caps capabilities.CapabilitiesResolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !authorizeReview(w, r, caps) {
			return
		}

		var req updateStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid json"})
			return
		}

		if err := svc.UpdateStatus(r.Context(), chi.URLParam(r, "id"), req.Status); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func authorizeReview(w http.ResponseWriter, r *http.Request, caps capabilities.CapabilitiesResolver) bool {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok || strings.TrimSpace(claims.UserID) == "" {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Message: "unauthorized"})
		return false
	}
	if caps == nil {
		writeJSON(w, http.StatusForbidden, errorResponse{Message: "forbidden"})
		return false
	}
	allowed, err := caps.HasFeature(r.Context(), capabilities.CapabilityCheck{
		UserID:  claims.UserID,
		Email:   claims.Email,
		Feature: FeatureReview,
	})
	if err != nil || !allowed {
		writeJSON(w, http.StatusForbidden, errorResponse{Message: "forbidden"})
		return false
	}
	return true
}

func writeError(w http.ResponseWriter, err error) {
	var verr *ValidationError
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: verr.Error(), Field: verr.Field})
	case errors.Is(err, ErrInvalidInput):
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: err.Error()})
	case errors.Is(err, ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Message: "not found"})
	case errors.Is(err, ErrUnavailable):
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Message: "Service temporarily unavailable. Please try again."})
	default:
		// ErrStore no transitorio (constraint, driver) y cualquier otro error.
		writeJSON(w, http.StatusInternalServerError, errorResponse{Message: "internal error"})
	}
}

func toRegistrationResponse(reg Registration) registrationResponse {
	genres := reg.GameGenres
	if genres == nil {
		genres = []GameGenre{}
	}
	return registrationResponse{
		ID:                   reg.ID,
		Email:                reg.Email,
		DiscordUsername:      reg.DiscordUsername,
		TelegramHandle:       reg.TelegramHandle,
		PlayStyle:            reg.PlayStyle,
		PlayStyleOther:       reg.PlayStyleOther,
		DiscoverySource:      reg.DiscoverySource,
		DiscoverySourceOther: reg.DiscoverySourceOther,
		GameGenres:           genres,
		GameGenresOther:      reg.GameGenresOther,
		CreatedAt:            reg.CreatedAt,
		Status:               reg.Status,
		WelcomeEmailSent:     reg.WelcomeEmailSent,
	}
}

// writeJSON está duplicado en cada módulo a propósito (mismo criterio que el resto de handlers).
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
