package services

const (
	questionnaireWeight = 0.6
	emotionWeight       = 0.4
)

// QuestionnairePercent normalizes a questionnaire score to a percentage.
func QuestionnairePercent(questionnaireScore int) float64 {
	return float64(questionnaireScore) / MaxQuestionnaireScore * 100
}

// Fuse blends the questionnaire and emotion scores into a stress percentage.
// The weighted sum is truncated toward zero. Inputs are clamped to their
// domains so the result always stays within [0, 100].
func Fuse(questionnaireScore, emotionScore int) int {
	questionnaireScore = clamp(questionnaireScore, 0, MaxQuestionnaireScore)
	emotionScore = clamp(emotionScore, 0, 100)

	// explicit conversions keep the compiler from fusing into an FMA
	q := float64(questionnaireWeight * QuestionnairePercent(questionnaireScore))
	e := float64(emotionWeight * float64(emotionScore))
	return clamp(int(q+e), 0, 100)
}

func clamp(v, low, high int) int {
	if v < low {
		return low
	}
	if v > high {
		return high
	}
	return v
}
