package results

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

const (
	MaxTextLength = 4000 // en caracteres, no bytes
	ShareTitle    = "PawStars 결과"
)

type Service struct {
	repo    Repository
	now     func() time.Time
	baseURL string
}

// NewService: baseURL es la URL pública del front (PUBLIC_BASE_URL). Vacía => links relativos.
func NewService(repo Repository, baseURL string) *Service {
	return &Service{
		repo:    repo,
		now:     time.Now,
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
	}
}

type CreateInput struct {
	Kind      Kind
	Text      string
	DogName   string
	OwnerName string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Result, error) {
	text := strings.TrimSpace(in.Text)
	dog := strings.TrimSpace(in.DogName)
	owner := strings.TrimSpace(in.OwnerName)

	if !in.Kind.Valid() {
		return Result{}, fmt.Errorf("%w: kind must be fortune or compatibility", ErrInvalidInput)
	}
	if text == "" {
		return Result{}, fmt.Errorf("%w: text is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(text) > MaxTextLength {
		return Result{}, fmt.Errorf("%w: text exceeds %d characters", ErrInvalidInput, MaxTextLength)
	}
	if dog == "" {
		return Result{}, fmt.Errorf("%w: dogName is required", ErrInvalidInput)
	}
	if in.Kind == KindCompatibility && owner == "" {
		return Result{}, fmt.Errorf("%w: ownerName is required for compatibility", ErrInvalidInput)
	}
	if in.Kind == KindFortune {
		owner = ""
	}

	r := Result{
		ID:        uuid.NewString(),
		Kind:      in.Kind,
		Text:      text,
		DogName:   dog,
		OwnerName: owner,
		CreatedAt: s.now().UTC(),
	}
	if err := s.repo.Create(ctx, r); err != nil {
		return Result{}, err
	}
	return r, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Result, error) {
	// ids ajenos a uuid no pueden existir; evita ir al storage.
	// Mayúsculas, {...} y urn:uuid: se normalizan a la forma canónica guardada.
	parsed, err := uuid.Parse(strings.TrimSpace(id))
	if err != nil {
		return Result{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, parsed.String())
}

func (s *Service) Share(ctx context.Context, id string) (Share, error) {
	r, err := s.GetByID(ctx, id)
	if err != nil {
		return Share{}, err
	}
	return Share{
		Title:       ShareTitle,
		Description: firstLine(r.Text),
		URL:         s.ShareURL(r.ID),
	}, nil
}

func (s *Service) ShareURL(id string) string {
	return s.baseURL + "/results/" + id
}

func firstLine(text string) string {
	for _, line := range strings.Split(text, "\n") {
		if l := strings.TrimSpace(line); l != "" {
			return l
		}
	}
	return ""
}
