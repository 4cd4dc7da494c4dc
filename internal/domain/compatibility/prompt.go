package compatibility

import (
	"strings"

	"pawstars-api/internal/ports/completion"
)

const (
	systemPersona = "You are a friendly pet-owner compatibility reader who knows the 12 earthly branches. Respond in Korean."

	temperature = 0.8
	maxTokens   = 500
)

func BuildPrompt(in Input) string {
	return strings.Join([]string{
		"강아지-주인 궁합을 12지지를 참조하여 분석해줘.",
		"강아지 이름: " + in.Dog.Name,
		"견종: " + in.Dog.Breed,
		"성별: " + in.Dog.Sex.KoreanLabel(),
		"생년월일: " + in.Dog.BirthLabel(),
		"주인 이름: " + in.Owner.Name,
		"주인 12지지: " + in.Owner.ZodiacLabel(),
		"주인 생년월일: " + in.Owner.birthDateLabel(),
		"주인 태어난 시간: " + in.Owner.birthTimeLabel(),
		"요청사항:",
		"- 궁합 총평 2~3문장.",
		"- 함께하면 좋은 활동 2~3가지.",
		"- 주의할 점 2가지.",
		"- 마지막에 한 줄 조언.",
	}, "\n")
}

func completionRequest(in Input) completion.Request {
	return completion.Request{
		System:      systemPersona,
		User:        BuildPrompt(in),
		Temperature: temperature,
		MaxTokens:   maxTokens,
	}
}
