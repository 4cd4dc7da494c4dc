package fortune

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"pawstars-api/internal/domain/pets"
)

// maxBodyBytes: el formulario es chico; más que esto es un cliente roto.
const maxBodyBytes = 64 << 10

// SourceHeader expone el origen del texto sin tocar el body.
const SourceHeader = "X-PawStars-Source"

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Post("/api/fortune", tellHandler(svc))
}

// tellRequest es el cuerpo que manda la pantalla de nueva fortuna.
type tellRequest struct {
	Name             string  `json:"name"`
	Breed            string  `json:"breed"`
	Sex              string  `json:"sex" enums:"male,female"`
	BirthDate        *string `json:"birthDate"` // YYYY-MM-DD o null
	Personality      string  `json:"personality"`
	FavoriteActivity string  `json:"favoriteActivity"`
	HealthCondition  string  `json:"healthCondition"`
}

type tellResponse struct {
	Fortune string `json:"fortune"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// tellHandler godoc
// @Summary Generar la fortuna del día
// @Description Genera el texto con el proveedor de completion configurado. Ante cualquier fallo del proveedor (sin credencial, red, timeout, status no-2xx, contenido vacío) responde igual con texto de fallback.
// @Tags fortune
// @Accept json
// @Produce json
// @Param payload body tellRequest true "Datos del perro; name y breed obligatorios"
// @Success 200 {object} tellResponse
// @Failure 400 {object} errorResponse "Invalid JSON / name and breed are required"
// @Router /api/fortune [post]
func tellHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req tellRequest
		if err := decodeJSON(w, r, &req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid JSON"})
			return
		}

		res, err := svc.Tell(r.Context(), Input{
			Dog:              pets.NewProfile(req.Name, req.Breed, req.Sex, req.BirthDate),
			Personality:      req.Personality,
			FavoriteActivity: req.FavoriteActivity,
			HealthCondition:  req.HealthCondition,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			default:
				writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
			}
			return
		}

		w.Header().Set(SourceHeader, string(res.Source))
		writeJSON(w, http.StatusOK, tellResponse{Fortune: res.Text})
	}
}

// writeJSON se repite en cada módulo de dominio; no hay paquete de helpers HTTP compartido.
// decodeJSON exige un único valor JSON en el body; texto extra => error.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		return err
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errors.New("unexpected data after JSON body")
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
