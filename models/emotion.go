package models

// UndetectedEmotion is reported when no face could be classified.
const UndetectedEmotion = "undetected"

// EmotionReading is the emotion signal derived from one face photo.
type EmotionReading struct {
	DominantEmotion string `json:"dominantEmotion"`
	Score           int    `json:"score"`
}

// Detected reports whether the classifier produced a real category.
func (r EmotionReading) Detected() bool {
	return r.DominantEmotion != UndetectedEmotion
}
