package results

import "time"

type Kind string

const (
	KindFortune       Kind = "fortune"
	KindCompatibility Kind = "compatibility"
)

func (k Kind) Valid() bool {
	switch k {
	case KindFortune, KindCompatibility:
		return true
	default:
		return false
	}
}

// Result es un texto ya generado (fortuna o compatibilidad) guardado para compartir.
type Result struct {
	ID        string
	Kind      Kind
	Text      string
	DogName   string
	OwnerName string // solo compatibility
	CreatedAt time.Time
}

// Share es el payload para KakaoTalk / Web Share.
type Share struct {
	Title       string
	Description string
	URL         string
}
