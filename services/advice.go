package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"stresscheck/models"
)

//go:generate mockgen -source=advice.go -destination=../mocks/mock_text_generator.go -package=mocks

// TextGenerator produces free text for a prompt with the named model.
type TextGenerator interface {
	Generate(ctx context.Context, model, prompt string) (string, error)
}

// AdviceBuilder asks the text generator for supportive advice about an
// assessment. It makes exactly one attempt and never invents a fallback.
type AdviceBuilder struct {
	generator TextGenerator
	model     string
}

func NewAdviceBuilder(generator TextGenerator, model string) *AdviceBuilder {
	if model == "" {
		model = DefaultAdviceModel
	}
	return &AdviceBuilder{generator: generator, model: model}
}

// Model returns the model identifier sent with every request.
func (b *AdviceBuilder) Model() string {
	return b.model
}

// BuildAdvicePrompt renders the counselor prompt for one assessment.
func BuildAdvicePrompt(score int, severity models.Severity, answers models.Answers) string {
	var sb strings.Builder
	sb.WriteString("Anda adalah seorang konselor psikologi AI yang empatik, bijak, dan suportif dalam bahasa Indonesia.\n")
	sb.WriteString("Berikut ringkasan:\n")
	sb.WriteString(fmt.Sprintf("- Tingkat stres: %s (%d%%)\n", severity, score))
	sb.WriteString(fmt.Sprintf("- Pikiran dominan: %s\n", answers.Q1))
	sb.WriteString(fmt.Sprintf("- Durasi: %s\n", answers.Q2))
	sb.WriteString(fmt.Sprintf("- Emosi: %s\n", answers.Q3))
	sb.WriteString(fmt.Sprintf("- Tidur: %s\n", answers.Q4))
	sb.WriteString(fmt.Sprintf("- Cara mengatasi: %s\n", answers.Q5))
	sb.WriteString(fmt.Sprintf("- Dukungan sosial: %s\n", answers.Q6))
	sb.WriteString(fmt.Sprintf("- Kebutuhan: %s\n", answers.Q7))
	sb.WriteString("\n")
	sb.WriteString("1. Validasi perasaan mereka secara empatik.\n")
	sb.WriteString("2. Berikan 2-3 saran praktis.\n")
	sb.WriteString("3. Akhiri dengan penyemangat.\n")
	sb.WriteString("Format poin dan jangan berikan disclaimer profesional.\n")
	return sb.String()
}

// BuildAdvice returns the generated advice text unmodified.
func (b *AdviceBuilder) BuildAdvice(ctx context.Context, score int, severity models.Severity, answers models.Answers) (string, error) {
	if b.generator == nil {
		return "", ErrMissingCredential
	}

	text, err := b.generator.Generate(ctx, b.model, BuildAdvicePrompt(score, severity, answers))
	if err != nil {
		if errors.Is(err, ErrMissingCredential) {
			return "", err
		}
		return "", fmt.Errorf("%w: %w", ErrExternalService, err)
	}
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: empty response", ErrExternalService)
	}
	return text, nil
}
