package websocket

import (
	"encoding/base64"
	"net/http"
	"sync"

	"stresscheck/internal/quota"
	"stresscheck/models"
	"stresscheck/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const maxStreamMessageBytes = 16 << 20

// StreamRequest is the single message a client sends to start a run.
type StreamRequest struct {
	Image   string         `json:"image"`
	Answers models.Answers `json:"answers"`
	Advice  bool           `json:"advice"`
}

// streamClient serializes writes to one connection.
type streamClient struct {
	conn    *websocket.Conn
	writeMu sync.Mutex
}

func (sc *streamClient) SafeWriteJSON(v interface{}) error {
	sc.writeMu.Lock()
	defer sc.writeMu.Unlock()
	return sc.conn.WriteJSON(v)
}

// AssessmentStream runs one assessment per connection and pushes a progress
// event for every stage so the client can show a waiting indicator.
type AssessmentStream struct {
	pipeline *services.Pipeline
	limiter  *quota.RateLimiter
	upgrader websocket.Upgrader
	log      *zap.Logger
}

func NewAssessmentStream(pipeline *services.Pipeline, limiter *quota.RateLimiter, allowedOrigins []string, log *zap.Logger) *AssessmentStream {
	if log == nil {
		log = zap.NewNop()
	}
	origins := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		origins[o] = true
	}
	return &AssessmentStream{
		pipeline: pipeline,
		limiter:  limiter,
		log:      log,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return origin == "" || origins[origin]
			},
		},
	}
}

// Handle upgrades the request, reads one StreamRequest and streams the run.
func (s *AssessmentStream) Handle(c *gin.Context) {
	conn, err := s.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		s.log.Warn("WebSocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()
	conn.SetReadLimit(maxStreamMessageBytes)

	client := &streamClient{conn: conn}
	progress := func(ev models.ProgressEvent) {
		if err := client.SafeWriteJSON(ev); err != nil {
			s.log.Debug("Failed to write progress event", zap.String("type", string(ev.Type)), zap.Error(err))
		}
	}

	var req StreamRequest
	if err := conn.ReadJSON(&req); err != nil {
		progress(models.ProgressEvent{Type: models.StageFailed, Payload: "invalid request"})
		return
	}
	imageData, err := base64.StdEncoding.DecodeString(req.Image)
	if err != nil {
		progress(models.ProgressEvent{Type: models.StageFailed, Payload: "image must be base64 encoded"})
		return
	}
	if _, err := services.CheckImageType(imageData); err != nil {
		progress(models.ProgressEvent{Type: models.StageFailed, Payload: err.Error()})
		return
	}

	ctx := c.Request.Context()
	assessment, err := s.pipeline.Assess(ctx, imageData, req.Answers, progress)
	if err != nil || !req.Advice {
		return
	}
	if !s.limiter.AllowAdvice(ctx, c.ClientIP()) {
		progress(models.ProgressEvent{Type: models.StageFailed, RunID: assessment.RunID, Payload: services.ErrRateLimited.Error()})
		return
	}
	_, _ = s.pipeline.Advise(ctx, assessment, req.Answers, progress)
}
