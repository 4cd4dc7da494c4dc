package compatibility

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"pawstars-api/internal/domain/pets"
)

const (
	maxBodyBytes = 64 << 10
	SourceHeader = "X-PawStars-Source"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Post("/api/compatibility", matchHandler(svc))
}

// matchRequest: dogBreed es la key canónica; "breed" no se acepta como alias.
type matchRequest struct {
	DogName         string  `json:"dogName"`
	DogBreed        string  `json:"dogBreed"`
	DogSex          string  `json:"dogSex" enums:"male,female"`
	DogBirthDate    *string `json:"dogBirthDate"`
	OwnerName       string  `json:"ownerName"`
	OwnerBirthDate  string  `json:"ownerBirthDate"`
	OwnerBirthTime  *string `json:"ownerBirthTime"`
	OwnerYearZodiac string  `json:"ownerYearZodiac"`
	OwnerTimeZodiac string  `json:"ownerTimeZodiac"`
}

type matchResponse struct {
	Compatibility string `json:"compatibility"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// matchHandler godoc
// @Summary Generar compatibilidad perro-dueño
// @Description Combina datos del perro y del dueño (incluido su 12지지). Si el cliente no manda ownerYearZodiac, se calcula desde ownerBirthDate/ownerBirthTime. Los fallos del proveedor se reemplazan por texto de fallback.
// @Tags compatibility
// @Accept json
// @Produce json
// @Param payload body matchRequest true "dogName, dogBreed y ownerName obligatorios"
// @Success 200 {object} matchResponse
// @Failure 400 {object} errorResponse "Invalid JSON / missing required fields"
// @Router /api/compatibility [post]
func matchHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req matchRequest
		if err := decodeJSON(w, r, &req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid JSON"})
			return
		}

		res, err := svc.Match(r.Context(), Input{
			Dog:   pets.NewProfile(req.DogName, req.DogBreed, req.DogSex, req.DogBirthDate),
			Owner: NewOwner(req.OwnerName, req.OwnerBirthDate, req.OwnerBirthTime, req.OwnerYearZodiac, req.OwnerTimeZodiac),
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
		writeJSON(w, http.StatusOK, matchResponse{Compatibility: res.Text})
	}
}

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
