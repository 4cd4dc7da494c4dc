package compatibility

import (
	"strings"

	"pawstars-api/internal/domain/pets"
	"pawstars-api/internal/domain/zodiac"
)

// Owner son los datos del dueño. Solo Name es obligatorio.
type Owner struct {
	Name       string
	BirthDate  string // YYYY-MM-DD
	BirthTime  string // HH:MM
	YearZodiac string // calculado por el cliente (opcional)
	TimeZodiac string
}

func NewOwner(name, birthDate string, birthTime *string, yearZodiac, timeZodiac string) Owner {
	o := Owner{
		Name:       strings.TrimSpace(name),
		BirthDate:  strings.TrimSpace(birthDate),
		YearZodiac: strings.TrimSpace(yearZodiac),
		TimeZodiac: strings.TrimSpace(timeZodiac),
	}
	if birthTime != nil {
		o.BirthTime = strings.TrimSpace(*birthTime)
	}
	return o
}

// ZodiacLabel prioriza lo que mandó el cliente; lo que falte se calcula
// desde la fecha/hora si se pueden parsear. Sin nada => "모름".
func (o Owner) ZodiacLabel() string {
	year := o.YearZodiac
	tm := o.TimeZodiac

	if year == "" && o.BirthDate != "" {
		if r, err := zodiac.Read(o.BirthDate, ""); err == nil {
			year = r.Year.YearLabel()
		}
	}
	if tm == "" && o.BirthDate != "" && o.BirthTime != "" {
		if r, err := zodiac.Read(o.BirthDate, o.BirthTime); err == nil && r.Time != nil {
			tm = r.Time.TimeLabel()
		}
	}

	if label := zodiac.Label(year, tm); label != "" {
		return label
	}
	return pets.UnknownLabel
}

func (o Owner) birthDateLabel() string {
	if o.BirthDate == "" {
		return pets.UnknownLabel
	}
	return o.BirthDate
}

func (o Owner) birthTimeLabel() string {
	if o.BirthTime == "" {
		return pets.UnknownLabel
	}
	return o.BirthTime
}

type Input struct {
	Dog   pets.Profile
	Owner Owner
}

func (in Input) Valid() bool {
	return in.Dog.Valid() && in.Owner.Name != ""
}

type Source string

const (
	SourceCompletion Source = "completion"
	SourceFallback   Source = "fallback"
)

type Result struct {
	Text   string
	Source Source
}
