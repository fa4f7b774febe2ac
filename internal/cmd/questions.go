package cmd

import (
	"fmt"
	"io"

	"stresscheck/models"
	"stresscheck/services"

	"github.com/spf13/cobra"
)

// NewQuestionsCommand creates the questions subcommand listing the survey
func NewQuestionsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "questions",
		Short: "List the questionnaire with its options and points",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			printQuestions(cmd.OutOrStdout())
			return nil
		},
	}
}

func printQuestions(out io.Writer) {
	for _, q := range models.Questionnaire {
		fmt.Fprintf(out, "%s: %s\n", q.ID, q.Prompt)
		for _, opt := range q.Options {
			fmt.Fprintf(out, "    - %q (%d)\n", opt, services.OptionPoints(q.ID, opt))
		}
	}
}
