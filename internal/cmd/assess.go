package cmd

import (
	"fmt"
	"io"
	"os"

	"stresscheck/models"
	"stresscheck/services"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// NewAssessCommand creates the assess subcommand scoring one photo and answer file
func NewAssessCommand() *cobra.Command {
	var (
		imagePath   string
		answersPath string
		withAdvice  bool
	)

	cmd := &cobra.Command{
		Use:   "assess --image <photo> --answers <answers.yaml>",
		Short: "Score one face photo and questionnaire",
		Long: `Run a single assessment: detect the dominant emotion of the photo,
score the answers file (keys q1..q7, see "stresscheck questions"),
print the fused stress score and label and, with --advice, the
generated advice.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			pipeline, err := buildPipeline(cmd.Context(), cfg, zap.NewNop())
			if err != nil {
				return err
			}
			return runAssess(cmd, pipeline, imagePath, answersPath, withAdvice)
		},
	}

	cmd.Flags().StringVar(&imagePath, "image", "", "face photo (JPEG or PNG)")
	cmd.Flags().StringVar(&answersPath, "answers", "", "YAML file with answers q1..q7")
	cmd.Flags().BoolVar(&withAdvice, "advice", false, "also generate advice with Gemini")
	_ = cmd.MarkFlagRequired("image")
	_ = cmd.MarkFlagRequired("answers")

	return cmd
}

func runAssess(cmd *cobra.Command, pipeline *services.Pipeline, imagePath, answersPath string, withAdvice bool) error {
	imageData, err := os.ReadFile(imagePath)
	if err != nil {
		return fmt.Errorf("failed to read image: %w", err)
	}
	if _, err := services.CheckImageType(imageData); err != nil {
		return err
	}

	answers, err := loadAnswers(answersPath)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	ctx := cmd.Context()
	fmt.Fprintln(out, "Detecting emotion...")
	assessment, err := pipeline.Assess(ctx, imageData, answers, nil)
	if err != nil {
		return err
	}
	printAssessment(out, assessment)

	if !withAdvice {
		return nil
	}
	fmt.Fprintln(out, "Generating advice...")
	advice, err := pipeline.Advise(ctx, assessment, answers, nil)
	if err != nil {
		return err
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, advice)
	return nil
}

func loadAnswers(path string) (models.Answers, error) {
	var answers models.Answers
	data, err := os.ReadFile(path)
	if err != nil {
		return answers, fmt.Errorf("failed to read answers file: %w", err)
	}
	if err := yaml.Unmarshal(data, &answers); err != nil {
		return answers, fmt.Errorf("failed to parse answers file: %w", err)
	}
	return answers, nil
}

func severityColor(s models.Severity) *color.Color {
	switch s {
	case models.SeveritySevere:
		return color.New(color.FgRed, color.Bold)
	case models.SeverityModerate:
		return color.New(color.FgYellow, color.Bold)
	default:
		return color.New(color.FgGreen, color.Bold)
	}
}

func printAssessment(out io.Writer, a *models.Assessment) {
	fmt.Fprintf(out, "Dominant emotion:    %s (score %d)\n", a.Emotion.DominantEmotion, a.Emotion.Score)
	fmt.Fprintf(out, "Questionnaire score: %d/%d (%.2f%%)\n", a.QuestionnaireScore, services.MaxQuestionnaireScore, a.QuestionnairePercent)
	fmt.Fprintf(out, "Stress level:        %s (%d%%)\n", severityColor(a.Severity).Sprint(a.Severity.String()), a.Score)
}
