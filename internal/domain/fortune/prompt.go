package fortune

import (
	"strings"

	"pawstars-api/internal/ports/completion"
)

const (
	systemPersona = "You are a friendly pet fortune teller. Respond in Korean."

	temperature = 0.8
	maxTokens   = 500
)

// BuildPrompt es determinístico: mismo Input => mismo texto.
func BuildPrompt(in Input) string {
	in = in.normalized()

	lines := []string{
		"강아지 사주와 오늘의 운세를 만들어줘.",
		"이름: " + in.Dog.Name,
		"견종: " + in.Dog.Breed,
		"성별: " + in.Dog.Sex.KoreanLabel(),
		"생년월일: " + in.Dog.BirthLabel(),
	}
	if in.Personality != "" {
		lines = append(lines, "성격: "+in.Personality)
	}
	if in.FavoriteActivity != "" {
		lines = append(lines, "좋아하는 활동: "+in.FavoriteActivity)
	}
	if in.HealthCondition != "" {
		lines = append(lines, "건강 상태: "+in.HealthCondition)
	}
	lines = append(lines,
		"요청사항:",
		"- 오늘의 운세를 핵심 3~5가지 포인트로 간단히.",
		"- 건강, 산책/활동, 식사/간식, 교감/훈련 포인트를 포함.",
		"- 마지막에 하루 루틴 한 줄 조언.",
	)
	return strings.Join(lines, "\n")
}

func completionRequest(in Input) completion.Request {
	return completion.Request{
		System:      systemPersona,
		User:        BuildPrompt(in),
		Temperature: temperature,
		MaxTokens:   maxTokens,
	}
}
