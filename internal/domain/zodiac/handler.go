package zodiac

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router) {
	r.Get("/api/zodiac", readHandler())
}

type branchResponse struct {
	Korean string `json:"korean"`
	Hanja  string `json:"hanja"`
	Animal string `json:"animal"`
	Label  string `json:"label"`
}

// readingResponse son los 지지 del dueño para el formulario de compatibilidad.
type readingResponse struct {
	YearBranch branchResponse  `json:"yearBranch"`
	TimeBranch *branchResponse `json:"timeBranch,omitempty"`
	Label      string          `json:"label"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// readHandler godoc
// @Summary Calcular 12지지 del dueño
// @Description Devuelve el 지지 del año y, si se envía la hora, el de la franja horaria. Es el mismo label que compatibility calcula cuando el cliente no lo manda.
// @Tags zodiac
// @Produce json
// @Param date query string true "Fecha de nacimiento YYYY-MM-DD"
// @Param time query string false "Hora de nacimiento HH:MM"
// @Success 200 {object} readingResponse
// @Failure 400 {object} errorResponse
// @Router /api/zodiac [get]
func readHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		reading, err := Read(q.Get("date"), q.Get("time"))
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}

		resp := readingResponse{
			YearBranch: branchResponse{
				Korean: reading.Year.Korean,
				Hanja:  reading.Year.Hanja,
				Animal: reading.Year.Animal,
				Label:  reading.Year.YearLabel(),
			},
			Label: reading.Label,
		}
		if reading.Time != nil {
			resp.TimeBranch = &branchResponse{
				Korean: reading.Time.Korean,
				Hanja:  reading.Time.Hanja,
				Animal: reading.Time.Animal,
				Label:  reading.Time.TimeLabel(),
			}
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
