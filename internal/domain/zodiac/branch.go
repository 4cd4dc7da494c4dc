package zodiac

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrInvalidDate = errors.New("date must be YYYY-MM-DD")
	ErrInvalidTime = errors.New("time must be HH:MM")
)

const labelSeparator = " / "

// Branch es uno de los 12 지지 (earthly branches).
type Branch struct {
	Korean string // 자
	Hanja  string // 子
	Animal string // 쥐
}

// Orden canónico: 자(子) ... 해(亥).
var branches = [12]Branch{
	{"자", "子", "쥐"},
	{"축", "丑", "소"},
	{"인", "寅", "호랑이"},
	{"묘", "卯", "토끼"},
	{"진", "辰", "용"},
	{"사", "巳", "뱀"},
	{"오", "午", "말"},
	{"미", "未", "양"},
	{"신", "申", "원숭이"},
	{"유", "酉", "닭"},
	{"술", "戌", "개"},
	{"해", "亥", "돼지"},
}

// Branches devuelve copia de los 12 지지 en orden.
func Branches() []Branch {
	out := make([]Branch, len(branches))
	copy(out[:], branches[:])
	return out
}

// YearLabel: "진(辰) 용띠".
func (b Branch) YearLabel() string {
	return fmt.Sprintf("%s(%s) %s띠", b.Korean, b.Hanja, b.Animal)
}

// TimeLabel: "오시(午時)".
func (b Branch) TimeLabel() string {
	return fmt.Sprintf("%s시(%s時)", b.Korean, b.Hanja)
}

// YearBranch usa año calendario (1984 = 자). No ajusta por 입춘.
func YearBranch(year int) Branch {
	return branches[mod12(year-4)]
}

// TimeBranch usa las franjas tradicionales de dos horas: 자시 = 23:30–01:29, 축시 = 01:30–03:29, …
func TimeBranch(hour, minute int) (Branch, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return Branch{}, ErrInvalidTime
	}
	mins := hour*60 + minute
	return branches[mod12((mins+30)/120)], nil
}

// Label une año y hora: "{year}" o "{year} / {time}".
func Label(yearLabel, timeLabel string) string {
	yearLabel = strings.TrimSpace(yearLabel)
	timeLabel = strings.TrimSpace(timeLabel)
	if timeLabel == "" {
		return yearLabel
	}
	if yearLabel == "" {
		return timeLabel
	}
	return yearLabel + labelSeparator + timeLabel
}

// Reading es el resultado de calcular los 지지 de una fecha/hora de nacimiento.
type Reading struct {
	Year  Branch
	Time  *Branch // nil si no se conoce la hora
	Label string
}

// Read calcula año (obligatorio) y hora (opcional, "" = desconocida).
func Read(birthDate, birthTime string) (Reading, error) {
	d, err := time.Parse("2006-01-02", strings.TrimSpace(birthDate))
	if err != nil {
		return Reading{}, ErrInvalidDate
	}

	r := Reading{Year: YearBranch(d.Year())}

	if bt := strings.TrimSpace(birthTime); bt != "" {
		t, err := time.Parse("15:04", bt)
		if err != nil {
			return Reading{}, ErrInvalidTime
		}
		tb, err := TimeBranch(t.Hour(), t.Minute())
		if err != nil {
			return Reading{}, err
		}
		r.Time = &tb
	}

	timeLabel := ""
	if r.Time != nil {
		timeLabel = r.Time.TimeLabel()
	}
	r.Label = Label(r.Year.YearLabel(), timeLabel)
	return r, nil
}

func mod12(n int) int {
	return ((n % 12) + 12) % 12
}
