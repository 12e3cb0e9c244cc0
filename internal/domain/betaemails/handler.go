package betaemails

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes monta POST /api/submit-email. Los demás métodos responden 405 en JSON.
// mw se aplica solo a esta ruta (rate limit).
func RegisterRoutes(r chi.Router, svc *Service, mw ...func(http.Handler) http.Handler) {
	r.With(mw...).HandleFunc("/api/submit-email", submitEmailHandler(svc))
}

type submitEmailRequest struct {
	Email string `json:"email"`
}

type submitEmailResponse struct {
	Message       string `json:"message"`
	Success       bool   `json:"success,omitempty"`
	AlreadyExists bool   `json:"alreadyExists,omitempty"`
}

type errorResponse struct {
	Message string `json:"message"`
}

// submitEmailHandler godoc
// @Summary Dejar email para la beta
// @Description Guarda el email en beta_emails con source=website_download. Si ya existe responde "Welcome back!".
// @Tags beta
// @Accept json
// @Produce json
// @Param body body submitEmailRequest true "Email"
// @Success 200 {object} submitEmailResponse
// @Failure 400 {object} errorResponse
// @Failure 403 {object} errorResponse
// @Failure 405 {object} errorResponse
// @Failure 429 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Failure 503 {object} errorResponse
// @Router /api/submit-email [post]
func submitEmailHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.Header().Set("Allow", http.MethodPost)
			writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Message: "Method not allowed"})
			return
		}

		var req submitEmailRequest
		// Body inválido cuenta como email faltante.
		_ = json.NewDecoder(r.Body).Decode(&req)

		outcome, err := svc.Submit(r.Context(), req.Email)
		if err != nil {
			writeError(w, err)
			return
		}

		if outcome == OutcomeAlreadyExists {
			writeJSON(w, http.StatusOK, submitEmailResponse{Message: "Welcome back!", AlreadyExists: true})
			return
		}
		writeJSON(w, http.StatusOK, submitEmailResponse{Message: "Email submitted successfully", Success: true})
	}
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidEmail):
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "Invalid email address"})
	case errors.Is(err, ErrPermissionDenied):
		writeJSON(w, http.StatusForbidden, errorResponse{Message: "Database permission denied. Please check security rules."})
	case errors.Is(err, ErrUnavailable):
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Message: "Service temporarily unavailable. Please try again."})
	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse{Message: "Internal server error"})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
