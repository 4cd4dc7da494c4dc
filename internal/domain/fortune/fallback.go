package fortune

import (
	"fmt"

	"pawstars-api/internal/platform/phrases"
)

var tips = []string{
	"오늘은 산책 길에 새로운 냄새가 가득! 코로 세상을 탐험해요.",
	"물 충분히 마시기, 특히 활동량이 많다면 더 중요해요.",
	"간식은 평소보다 한 번 덜, 대신 칭찬은 두 배로!",
	"눈 마주치고 이름을 불러주는 시간이 좋은 교감이 돼요.",
	"가벼운 트릭 훈련으로 자신감을 높여보세요.",
}

const fallbackTemplate = "🐾 %s (%s)의 오늘의 운세\n" +
	"- %s\n" +
	"- 실내 놀이와 휴식의 균형을 맞추면 좋아요.\n" +
	"- 새로운 사람/강아지와의 만남은 천천히, 안전하게.\n\n" +
	"오늘의 한 줄: 편안한 호흡으로 천천히, 서로의 리듬을 맞춰요."

// Fallback arma el texto local; solo la línea de tip es aleatoria.
func Fallback(p *phrases.Picker, in Input) string {
	return fmt.Sprintf(fallbackTemplate, in.Dog.Name, in.Dog.Breed, p.Pick(tips))
}

// Tips expone el pool (solo lectura) para tests de otros paquetes.
func Tips() []string {
	out := make([]string, len(tips))
	copy(out, tips)
	return out
}
