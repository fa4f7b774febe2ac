package models

import "fmt"

// Severity is the ordered stress level derived from a fused score.
type Severity int

const (
	SeverityMild Severity = iota + 1
	SeverityModerate
	SeveritySevere
)

func (s Severity) String() string {
	switch s {
	case SeverityMild:
		return "Stres Ringan"
	case SeverityModerate:
		return "Stres Sedang"
	case SeveritySevere:
		return "Stres Berat"
	}
	return fmt.Sprintf("Severity(%d)", int(s))
}

// MarshalText renders the severity as its display label.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Assessment is the outcome of one photo plus questionnaire run.
type Assessment struct {
	RunID                string         `json:"runId"`
	Emotion              EmotionReading `json:"emotion"`
	QuestionnaireScore   int            `json:"questionnaireScore"`
	QuestionnairePercent float64        `json:"questionnairePercent"`
	Score                int            `json:"score"`
	Severity             Severity       `json:"severity"`
}

// Stage names a step of the assessment run reported to progress listeners.
type Stage string

const (
	StageDetectingEmotion Stage = "detecting_emotion"
	StageEmotionDetected  Stage = "emotion_detected"
	StageScored           Stage = "scored"
	StageGeneratingAdvice Stage = "generating_advice"
	StageAdviceReady      Stage = "advice_ready"
	StageFailed           Stage = "failed"
)

// ProgressEvent is emitted as a run moves through its stages.
type ProgressEvent struct {
	Type    Stage       `json:"type"`
	RunID   string      `json:"runId"`
	Payload interface{} `json:"payload,omitempty"`
}
