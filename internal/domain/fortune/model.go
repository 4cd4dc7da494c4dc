package fortune

import (
	"strings"

	"pawstars-api/internal/domain/pets"
)

// Input es lo que el handler valida antes de armar el prompt.
type Input struct {
	Dog pets.Profile

	// Opcionales; el formulario de la app los manda como texto libre.
	Personality      string
	FavoriteActivity string
	HealthCondition  string
}

func (in Input) normalized() Input {
	in.Personality = strings.TrimSpace(in.Personality)
	in.FavoriteActivity = strings.TrimSpace(in.FavoriteActivity)
	in.HealthCondition = strings.TrimSpace(in.HealthCondition)
	return in
}

// Source indica de dónde salió el texto.
type Source string

const (
	SourceCompletion Source = "completion"
	SourceFallback   Source = "fallback"
)

// Result siempre trae Text no vacío.
type Result struct {
	Text   string
	Source Source
}
