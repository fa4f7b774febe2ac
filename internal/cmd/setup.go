package cmd

import (
	"context"
	"fmt"

	"stresscheck/config"
	"stresscheck/services"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// buildPipeline wires the classifier client and Gemini generator from cfg.
func buildPipeline(ctx context.Context, cfg *config.Config, log *zap.Logger) (*services.Pipeline, error) {
	if err := services.ValidateScoringTables(); err != nil {
		return nil, fmt.Errorf("invalid scoring tables: %w", err)
	}

	generator, err := services.NewGeminiGenerator(ctx, cfg.Gemini.ApiKey)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	if !generator.Configured() {
		log.Warn("Gemini API key not set, advice generation disabled")
	}

	classifier := services.NewDeepFaceClient(cfg.Emotion.Endpoint, cfg.Emotion.DetectorBackend, cfg.Emotion.Timeout)
	emotion := services.NewEmotionAnalyzer(classifier, log)
	advice := services.NewAdviceBuilder(generator, cfg.Gemini.Model)
	return services.NewPipeline(emotion, advice, log), nil
}
