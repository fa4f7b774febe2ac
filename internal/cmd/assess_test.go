package cmd

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"stresscheck/mocks"
	"stresscheck/services"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const answersYAML = `q1: "Pekerjaan / tugas"
q2: "Beberapa hari"
q3: "Lelah atau Mati rasa"
q4: "Sulit tidur"
q5: "Menarik diri dari sekitar"
q6: "Tidak ada"
q7: "Tidak tahu, tapi ingin merasa lebih baik"
`

func writeFixtures(t *testing.T) (imagePath, answersPath string) {
	t.Helper()
	dir := t.TempDir()

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewGray(image.Rect(0, 0, 4, 4))))
	imagePath = filepath.Join(dir, "face.png")
	require.NoError(t, os.WriteFile(imagePath, buf.Bytes(), 0644))

	answersPath = filepath.Join(dir, "answers.yaml")
	require.NoError(t, os.WriteFile(answersPath, []byte(answersYAML), 0644))
	return imagePath, answersPath
}

func testCommand() (*cobra.Command, *bytes.Buffer) {
	cmd := &cobra.Command{}
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetContext(context.Background())
	return cmd, buf
}

func testPipeline(t *testing.T) (*services.Pipeline, *mocks.MockEmotionClassifier, *mocks.MockTextGenerator) {
	t.Helper()
	ctrl := gomock.NewController(t)
	classifier := mocks.NewMockEmotionClassifier(ctrl)
	generator := mocks.NewMockTextGenerator(ctrl)
	return services.NewPipeline(services.NewEmotionAnalyzer(classifier, nil), services.NewAdviceBuilder(generator, ""), nil), classifier, generator
}

func TestRunAssess(t *testing.T) {
	imagePath, answersPath := writeFixtures(t)
	pipeline, classifier, _ := testPipeline(t)
	classifier.EXPECT().DominantEmotion(gomock.Any(), gomock.Any()).Return("angry", nil)

	cmd, buf := testCommand()
	require.NoError(t, runAssess(cmd, pipeline, imagePath, answersPath, false))

	out := buf.String()
	assert.Contains(t, out, "angry (score 90)")
	assert.Contains(t, out, "105/135")
	assert.Contains(t, out, "Stres Berat")
	assert.Contains(t, out, "(82%)")
}

func TestRunAssess_WithAdvice(t *testing.T) {
	imagePath, answersPath := writeFixtures(t)
	pipeline, classifier, generator := testPipeline(t)
	classifier.EXPECT().DominantEmotion(gomock.Any(), gomock.Any()).Return("neutral", nil)
	generator.EXPECT().Generate(gomock.Any(), gomock.Any(), gomock.Any()).Return("- Jalan santai sore hari", nil)

	cmd, buf := testCommand()
	require.NoError(t, runAssess(cmd, pipeline, imagePath, answersPath, true))
	assert.Contains(t, buf.String(), "- Jalan santai sore hari")
}

func TestRunAssess_AdviceFailure(t *testing.T) {
	imagePath, answersPath := writeFixtures(t)
	pipeline, classifier, generator := testPipeline(t)
	classifier.EXPECT().DominantEmotion(gomock.Any(), gomock.Any()).Return("sad", nil)
	generator.EXPECT().Generate(gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("permission denied"))

	cmd, _ := testCommand()
	err := runAssess(cmd, pipeline, imagePath, answersPath, true)
	assert.ErrorIs(t, err, services.ErrExternalService)
}

func TestRunAssess_InputErrors(t *testing.T) {
	imagePath, answersPath := writeFixtures(t)
	pipeline, _, _ := testPipeline(t)
	cmd, _ := testCommand()

	err := runAssess(cmd, pipeline, filepath.Join(t.TempDir(), "missing.png"), answersPath, false)
	assert.ErrorContains(t, err, "failed to read image")

	err = runAssess(cmd, pipeline, answersPath, answersPath, false)
	assert.ErrorIs(t, err, services.ErrUnsupportedImage)

	err = runAssess(cmd, pipeline, imagePath, filepath.Join(t.TempDir(), "missing.yaml"), false)
	assert.ErrorContains(t, err, "failed to read answers file")
}
