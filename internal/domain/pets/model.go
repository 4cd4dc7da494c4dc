package pets

import "strings"

// UnknownLabel es el texto que va al prompt cuando falta un dato.
const UnknownLabel = "모름"

// Sex define el sexo del perro.
// @Enum male, female, unknown
type Sex string

const (
	SexMale    Sex = "male"
	SexFemale  Sex = "female"
	SexUnknown Sex = "unknown"
)

// ParseSex tolera mayúsculas/espacios; cualquier otro valor => unknown.
func ParseSex(s string) Sex {
	switch Sex(strings.ToLower(strings.TrimSpace(s))) {
	case SexMale:
		return SexMale
	case SexFemale:
		return SexFemale
	default:
		return SexUnknown
	}
}

// KoreanLabel es la etiqueta que usa el prompt.
func (s Sex) KoreanLabel() string {
	switch s {
	case SexMale:
		return "수컷"
	case SexFemale:
		return "암컷"
	default:
		return UnknownLabel
	}
}

// Profile es el perfil mínimo de un perro para fortune/compatibility.
// No se persiste: vive lo que dura el request.
type Profile struct {
	Name      string
	Breed     string
	Sex       Sex
	BirthDate string // YYYY-MM-DD o "" si se desconoce
}

// NewProfile normaliza los campos crudos del request.
// birthDate nil (JSON null) equivale a desconocido.
func NewProfile(name, breed, sex string, birthDate *string) Profile {
	p := Profile{
		Name:  strings.TrimSpace(name),
		Breed: strings.TrimSpace(breed),
		Sex:   ParseSex(sex),
	}
	if birthDate != nil {
		p.BirthDate = strings.TrimSpace(*birthDate)
	}
	return p
}

// Valid exige nombre y raza.
func (p Profile) Valid() bool {
	return p.Name != "" && p.Breed != ""
}

func (p Profile) BirthLabel() string {
	if p.BirthDate == "" {
		return UnknownLabel
	}
	return p.BirthDate
}
