package cmd

import (
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for stresscheck
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stresscheck",
		Short: "Stress level estimation from a face photo and a short questionnaire",
		Long: `Stresscheck blends the dominant emotion of a face photo with the
answers to a seven question survey into a stress percentage, labels it
as mild, moderate or severe stress, and asks Gemini for supportive advice.`,
		Version:      Version,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().String("config", "", "path to the YAML config file")

	cmd.AddCommand(NewServeCommand())
	cmd.AddCommand(NewAssessCommand())
	cmd.AddCommand(NewQuestionsCommand())

	return cmd
}
