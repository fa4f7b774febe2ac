package services

import (
	"context"
	"fmt"

	"stresscheck/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ProgressFunc receives stage events while a run is in flight.
type ProgressFunc func(models.ProgressEvent)

// Pipeline runs one photo plus questionnaire assessment from start to end.
// Every step runs sequentially in the caller's goroutine.
type Pipeline struct {
	emotion *EmotionAnalyzer
	advice  *AdviceBuilder
	log     *zap.Logger
}

func NewPipeline(emotion *EmotionAnalyzer, advice *AdviceBuilder, log *zap.Logger) *Pipeline {
	if log == nil {
		log = zap.NewNop()
	}
	return &Pipeline{emotion: emotion, advice: advice, log: log}
}

// Assess scores the photo and answers. The emotion step never fails; an
// incomplete questionnaire is rejected before the classifier is called.
func (p *Pipeline) Assess(ctx context.Context, imageData []byte, answers models.Answers, progress ProgressFunc) (*models.Assessment, error) {
	runID := uuid.NewString()
	log := p.log.With(zap.String("run_id", runID))

	if err := answers.Validate(); err != nil {
		emit(progress, models.StageFailed, runID, err.Error())
		return nil, fmt.Errorf("%w: %v", ErrIncompleteAnswers, err)
	}

	emit(progress, models.StageDetectingEmotion, runID, nil)
	reading := p.emotion.AnalyzeImage(ctx, imageData)
	emit(progress, models.StageEmotionDetected, runID, reading)

	qScore := ScoreAnswers(answers)
	score := Fuse(qScore, reading.Score)
	assessment := &models.Assessment{
		RunID:                runID,
		Emotion:              reading,
		QuestionnaireScore:   qScore,
		QuestionnairePercent: QuestionnairePercent(qScore),
		Score:                score,
		Severity:             Classify(score),
	}
	emit(progress, models.StageScored, runID, assessment)

	log.Info("Assessment scored",
		zap.String("emotion", reading.DominantEmotion),
		zap.Int("emotion_score", reading.Score),
		zap.Int("questionnaire_score", qScore),
		zap.Int("score", score),
		zap.Stringer("severity", assessment.Severity),
	)
	return assessment, nil
}

// Advise generates advice text for a scored assessment. Errors from the
// text generator are returned to the caller.
func (p *Pipeline) Advise(ctx context.Context, assessment *models.Assessment, answers models.Answers, progress ProgressFunc) (string, error) {
	log := p.log.With(zap.String("run_id", assessment.RunID))

	emit(progress, models.StageGeneratingAdvice, assessment.RunID, nil)
	text, err := p.advice.BuildAdvice(ctx, assessment.Score, assessment.Severity, answers)
	if err != nil {
		log.Error("Advice generation failed", zap.Error(err))
		emit(progress, models.StageFailed, assessment.RunID, err.Error())
		return "", err
	}
	emit(progress, models.StageAdviceReady, assessment.RunID, text)
	log.Info("Advice generated", zap.String("model", p.advice.Model()), zap.Int("length", len(text)))
	return text, nil
}

// AdviseScore generates advice for a score computed by an earlier run.
func (p *Pipeline) AdviseScore(ctx context.Context, score int, answers models.Answers) (*models.Assessment, string, error) {
	if err := answers.Validate(); err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrIncompleteAnswers, err)
	}
	assessment := &models.Assessment{
		RunID:    uuid.NewString(),
		Score:    clamp(score, 0, 100),
		Severity: Classify(clamp(score, 0, 100)),
	}
	text, err := p.Advise(ctx, assessment, answers, nil)
	if err != nil {
		return assessment, "", err
	}
	return assessment, text, nil
}

func emit(progress ProgressFunc, stage models.Stage, runID string, payload interface{}) {
	if progress == nil {
		return
	}
	progress(models.ProgressEvent{Type: stage, RunID: runID, Payload: payload})
}
