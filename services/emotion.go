package services

import (
	"context"
	"fmt"
	"image"
	"strings"

	"stresscheck/models"

	"go.uber.org/zap"
)

// NeutralEmotionScore is used when the emotion is unknown or undetected.
const NeutralEmotionScore = 50

// EmotionCategories are the categories the face classifier reports.
var EmotionCategories = []string{"angry", "fear", "disgust", "sad", "neutral", "surprise", "happy"}

var emotionScores = map[string]int{
	"angry":    90,
	"fear":     85,
	"disgust":  80,
	"sad":      75,
	"neutral":  50,
	"surprise": 40,
	"happy":    20,
}

//go:generate mockgen -source=emotion.go -destination=../mocks/mock_emotion_classifier.go -package=mocks

// EmotionClassifier returns the dominant emotion of the single face in img.
// It must fail when no face is detected instead of guessing.
type EmotionClassifier interface {
	DominantEmotion(ctx context.Context, img image.Image) (string, error)
}

// EmotionScore maps a classifier category to its stress contribution.
func EmotionScore(emotion string) int {
	if score, ok := emotionScores[strings.ToLower(strings.TrimSpace(emotion))]; ok {
		return score
	}
	return NeutralEmotionScore
}

// EmotionAnalyzer turns a face photo into an emotion reading. Classifier
// failures never propagate: they resolve to a neutral, undetected reading.
type EmotionAnalyzer struct {
	classifier EmotionClassifier
	log        *zap.Logger
}

func NewEmotionAnalyzer(classifier EmotionClassifier, log *zap.Logger) *EmotionAnalyzer {
	if log == nil {
		log = zap.NewNop()
	}
	return &EmotionAnalyzer{classifier: classifier, log: log}
}

// AnalyzeEmotion classifies img and scores its dominant emotion.
func (a *EmotionAnalyzer) AnalyzeEmotion(ctx context.Context, img image.Image) models.EmotionReading {
	emotion, failure := a.detect(ctx, img)
	if failure != nil {
		return a.undetected(failure)
	}
	return models.EmotionReading{DominantEmotion: emotion, Score: EmotionScore(emotion)}
}

// AnalyzeImage decodes raw upload bytes before classifying them. A decode
// failure is treated like any other detection failure.
func (a *EmotionAnalyzer) AnalyzeImage(ctx context.Context, data []byte) models.EmotionReading {
	img, _, err := DecodeImage(data)
	if err != nil {
		return a.undetected(&DetectionFailure{Reason: "decode image", Err: err})
	}
	return a.AnalyzeEmotion(ctx, img)
}

func (a *EmotionAnalyzer) undetected(failure *DetectionFailure) models.EmotionReading {
	a.log.Warn("Emotion not detected, using neutral score", zap.Error(failure))
	return models.EmotionReading{DominantEmotion: models.UndetectedEmotion, Score: NeutralEmotionScore}
}

func (a *EmotionAnalyzer) detect(ctx context.Context, img image.Image) (emotion string, failure *DetectionFailure) {
	if a.classifier == nil {
		return "", &DetectionFailure{Reason: "no classifier configured"}
	}
	if img == nil {
		return "", &DetectionFailure{Reason: "no image"}
	}

	defer func() {
		if r := recover(); r != nil {
			emotion = ""
			failure = &DetectionFailure{Reason: "classifier panic", Err: fmt.Errorf("%v", r)}
		}
	}()

	emotion, err := a.classifier.DominantEmotion(ctx, img)
	if err != nil {
		return "", &DetectionFailure{Reason: "classify", Err: err}
	}
	emotion = strings.ToLower(strings.TrimSpace(emotion))
	if emotion == "" {
		return "", &DetectionFailure{Reason: "empty emotion label"}
	}
	return emotion, nil
}
