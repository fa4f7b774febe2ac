package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)

	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"--help"})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, buf.String(), "stresscheck")
	assert.Contains(t, buf.String(), "questionnaire")
}

func TestRootCommandHasSubcommands(t *testing.T) {
	cmd := NewRootCommand()

	names := make([]string, 0)
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	for _, want := range []string{"serve", "assess", "questions"} {
		assert.Contains(t, names, want)
	}
}

func TestQuestionsCommand(t *testing.T) {
	cmd := NewRootCommand()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"questions"})
	require.NoError(t, cmd.Execute())

	out := buf.String()
	assert.Equal(t, 7, strings.Count(out, "\nq")+1)
	assert.Contains(t, out, `"Finansial atau Kesehatan" (20)`)
	assert.Contains(t, out, `"Nyenyak & cukup" (0)`)
}

func TestAssessCommand_RequiresFlags(t *testing.T) {
	cmd := NewRootCommand()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"assess"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required flag")
}
