package pets

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, gen *Generator) {
	r.Route("/api/pets", func(pr chi.Router) {
		pr.Get("/explore", exploreHandler(gen))
		pr.Get("/hatch", hatchHandler(gen))
	})
}

type petResponse struct {
	ID          string   `json:"id,omitempty"`
	Name        string   `json:"name,omitempty"`
	Description string   `json:"description,omitempty"`
	Image       string   `json:"image"`
	Background  string   `json:"background,omitempty"`
	Traits      []string `json:"traits,omitempty"`
	Rarity      string   `json:"rarity,omitempty"`
}

type errorResponse struct {
	Message string `json:"message"`
}

// exploreHandler godoc
// @Summary Galería de pets
// @Description Genera pets de display (se regeneran en cada request).
// @Tags pets
// @Produce json
// @Param count query int false "Cantidad (1..16, default 16)"
// @Success 200 {array} petResponse
// @Failure 400 {object} errorResponse
// @Router /api/pets/explore [get]
func exploreHandler(gen *Generator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		n := DefaultExplore
		if raw := strings.TrimSpace(r.URL.Query().Get("count")); raw != "" {
			v, err := strconv.Atoi(raw)
			if err != nil || v < 1 || v > gen.MaxExplore() {
				writeJSON(w, http.StatusBadRequest, errorResponse{Message: "count must be between 1 and " + strconv.Itoa(gen.MaxExplore())})
				return
			}
			n = v
		}

		list := gen.Explore(n)
		out := make([]petResponse, 0, len(list))
		for _, p := range list {
			out = append(out, toPetResponse(p))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// hatchHandler godoc
// @Summary Pet sorteado para el hatch
// @Tags pets
// @Produce json
// @Success 200 {object} petResponse
// @Router /api/pets/hatch [get]
func hatchHandler(gen *Generator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, toPetResponse(gen.RandomHatchPet(gen.ImagePool())))
	}
}

func toPetResponse(p Pet) petResponse {
	return petResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Image:       p.Image,
		Background:  p.Background,
		Traits:      p.Traits,
		Rarity:      p.Rarity,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
