package websocket

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/png"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"stresscheck/mocks"
	"stresscheck/models"
	"stresscheck/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var streamAnswers = models.Answers{
	Q1: "Finansial atau Kesehatan",
	Q2: "Beberapa bulan",
	Q3: "Cemas / khawatir berlebihan",
	Q4: "Sering bangun / gelisah",
	Q5: "Menyibukkan diri",
	Q6: "Tidak yakin",
	Q7: "Arahan atau solusi praktis",
}

func encodedPNG(t *testing.T) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewGray(image.Rect(0, 0, 4, 4))))
	return base64.StdEncoding.EncodeToString(buf.Bytes())
}

func startStream(t *testing.T) (*websocket.Conn, *mocks.MockEmotionClassifier, *mocks.MockTextGenerator) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	classifier := mocks.NewMockEmotionClassifier(ctrl)
	generator := mocks.NewMockTextGenerator(ctrl)
	pipeline := services.NewPipeline(
		services.NewEmotionAnalyzer(classifier, nil),
		services.NewAdviceBuilder(generator, ""),
		nil,
	)

	router := gin.New()
	router.GET("/ws/assessments", NewAssessmentStream(pipeline, nil, []string{"http://localhost:5173"}, nil).Handle)
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws/assessments"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn, classifier, generator
}

func readEvents(t *testing.T, conn *websocket.Conn) []models.ProgressEvent {
	t.Helper()
	var events []models.ProgressEvent
	for {
		_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		var ev models.ProgressEvent
		if err := conn.ReadJSON(&ev); err != nil {
			return events
		}
		events = append(events, ev)
	}
}

func eventTypes(events []models.ProgressEvent) []models.Stage {
	out := make([]models.Stage, 0, len(events))
	for _, ev := range events {
		out = append(out, ev.Type)
	}
	return out
}

func TestAssessmentStream_WithAdvice(t *testing.T) {
	conn, classifier, generator := startStream(t)
	classifier.EXPECT().DominantEmotion(gomock.Any(), gomock.Any()).Return("fear", nil)
	generator.EXPECT().Generate(gomock.Any(), gomock.Any(), gomock.Any()).Return("Pelan-pelan saja", nil)

	require.NoError(t, conn.WriteJSON(StreamRequest{Image: encodedPNG(t), Answers: streamAnswers, Advice: true}))
	events := readEvents(t, conn)

	assert.Equal(t, []models.Stage{
		models.StageDetectingEmotion,
		models.StageEmotionDetected,
		models.StageScored,
		models.StageGeneratingAdvice,
		models.StageAdviceReady,
	}, eventTypes(events))
	assert.Equal(t, "Pelan-pelan saja", events[len(events)-1].Payload)
}

func TestAssessmentStream_WithoutAdvice(t *testing.T) {
	conn, classifier, _ := startStream(t)
	classifier.EXPECT().DominantEmotion(gomock.Any(), gomock.Any()).Return("", assert.AnError)

	require.NoError(t, conn.WriteJSON(StreamRequest{Image: encodedPNG(t), Answers: streamAnswers}))
	events := readEvents(t, conn)

	require.Len(t, events, 3)
	assert.Equal(t, models.StageScored, events[2].Type)
}

func TestAssessmentStream_RejectsBadImage(t *testing.T) {
	conn, _, _ := startStream(t)

	require.NoError(t, conn.WriteJSON(StreamRequest{Image: "%%%", Answers: streamAnswers}))
	events := readEvents(t, conn)

	require.Len(t, events, 1)
	assert.Equal(t, models.StageFailed, events[0].Type)
}
