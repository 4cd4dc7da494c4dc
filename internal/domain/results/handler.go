package results

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

const maxBodyBytes = 64 << 10

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/api/results", func(rr chi.Router) {
		rr.Post("/", createResultHandler(svc))
		rr.Get("/{resultID}", getResultHandler(svc))
		rr.Get("/{resultID}/share", shareResultHandler(svc))
	})
}

type createResultRequest struct {
	Kind      string `json:"kind" enums:"fortune,compatibility"`
	Text      string `json:"text"`
	DogName   string `json:"dogName"`
	OwnerName string `json:"ownerName"`
}

type resultResponse struct {
	ID        string    `json:"id"`
	Kind      Kind      `json:"kind"`
	Text      string    `json:"text"`
	DogName   string    `json:"dogName"`
	OwnerName string    `json:"ownerName"`
	CreatedAt time.Time `json:"createdAt"`
	ShareURL  string    `json:"shareUrl"`
}

type shareResponse struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// createResultHandler godoc
// @Summary Guardar un resultado para compartir
// @Tags results
// @Accept json
// @Produce json
// @Param payload body createResultRequest true "ownerName obligatorio si kind=compatibility"
// @Success 201 {object} resultResponse
// @Failure 400 {object} errorResponse
// @Router /api/results [post]
func createResultHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createResultRequest
		if err := decodeJSON(w, r, &req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid JSON"})
			return
		}

		res, err := svc.Create(r.Context(), CreateInput{
			Kind:      Kind(req.Kind),
			Text:      req.Text,
			DogName:   req.DogName,
			OwnerName: req.OwnerName,
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

		writeJSON(w, http.StatusCreated, toResultResponse(svc, res))
	}
}

// getResultHandler godoc
// @Summary Obtener un resultado guardado
// @Tags results
// @Produce json
// @Param resultID path string true "Result ID"
// @Success 200 {object} resultResponse
// @Failure 404 {object} errorResponse
// @Router /api/results/{resultID} [get]
func getResultHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, err := svc.GetByID(r.Context(), chi.URLParam(r, "resultID"))
		if err != nil {
			writeLookupError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toResultResponse(svc, res))
	}
}

// shareResultHandler godoc
// @Summary Payload para compartir (KakaoTalk / Web Share)
// @Tags results
// @Produce json
// @Param resultID path string true "Result ID"
// @Success 200 {object} shareResponse
// @Failure 404 {object} errorResponse
// @Router /api/results/{resultID}/share [get]
func shareResultHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sh, err := svc.Share(r.Context(), chi.URLParam(r, "resultID"))
		if err != nil {
			writeLookupError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, shareResponse{
			Title:       sh.Title,
			Description: sh.Description,
			URL:         sh.URL,
		})
	}
}

func writeLookupError(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrNotFound) {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: ErrNotFound.Error()})
		return
	}
	writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
}

func toResultResponse(svc *Service, r Result) resultResponse {
	return resultResponse{
		ID:        r.ID,
		Kind:      r.Kind,
		Text:      r.Text,
		DogName:   r.DogName,
		OwnerName: r.OwnerName,
		CreatedAt: r.CreatedAt,
		ShareURL:  svc.ShareURL(r.ID),
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
