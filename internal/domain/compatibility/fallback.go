package compatibility

import (
	"fmt"
	"strings"

	"pawstars-api/internal/platform/phrases"
)

var (
	positives = []string{
		"교감이 빠르게 형성되고 일상 리듬이 잘 맞아요.",
		"산책 템포가 비슷해 스트레스가 적어요.",
		"훈련 시 칭찬 반응이 좋아 성장세가 뚜렷해요.",
	}
	cautions = []string{
		"규칙이 흔들리면 금방 루틴이 무너질 수 있어요.",
		"간식 의존도가 올라가지 않도록 주기를 조절하세요.",
		"새로운 환경에서는 천천히 적응 시간을 주세요.",
	}
	activities = []string{"산책 루트 탐험", "냄새 놀이", "조용한 교감 시간"}
)

const fallbackTemplate = "💝 %s × %s 궁합\n" +
	"총평: %s\n\n" +
	"함께하면 좋아요: %s\n" +
	"주의할 점: %s\n\n" +
	"한 줄 조언: 서로의 페이스를 존중하면 매일이 편안해져요."

// Fallback: una línea positiva y una de cuidado al azar; el resto es fijo.
func Fallback(p *phrases.Picker, in Input) string {
	return fmt.Sprintf(fallbackTemplate,
		in.Dog.Name,
		in.Owner.Name,
		p.Pick(positives),
		strings.Join(activities, ", "),
		p.Pick(cautions),
	)
}
