package controllers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"stresscheck/internal/quota"
	"stresscheck/middlewares"
	"stresscheck/models"
	"stresscheck/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AssessmentController serves the questionnaire, assessments and advice.
type AssessmentController struct {
	pipeline       *services.Pipeline
	limiter        *quota.RateLimiter
	maxUploadBytes int64
	log            *zap.Logger
}

func NewAssessmentController(pipeline *services.Pipeline, limiter *quota.RateLimiter, maxUploadBytes int64, log *zap.Logger) *AssessmentController {
	if log == nil {
		log = zap.NewNop()
	}
	return &AssessmentController{
		pipeline:       pipeline,
		limiter:        limiter,
		maxUploadBytes: maxUploadBytes,
		log:            log,
	}
}

type AssessmentResponse struct {
	Assessment *models.Assessment `json:"assessment"`
	Advice     string             `json:"advice,omitempty"`
}

type AdviceRequest struct {
	Score   *int           `json:"score" binding:"required,min=0,max=100"`
	Answers models.Answers `json:"answers"`
}

// GetQuestionnaire returns the questions and their options.
func (ac *AssessmentController) GetQuestionnaire(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"questions": models.Questionnaire})
}

// CreateAssessment scores a multipart upload holding the face photo and the
// answers, either as an "answers" JSON field or as q1..q7 form fields.
func (ac *AssessmentController) CreateAssessment(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, ac.maxUploadBytes)

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image file is required"})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read image"})
		return
	}
	defer file.Close()

	imageData, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read image"})
		return
	}
	if _, err := services.CheckImageType(imageData); err != nil {
		c.JSON(http.StatusUnsupportedMediaType, gin.H{"error": "Only JPEG and PNG photos are supported"})
		return
	}

	answers, err := bindAnswers(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid answers payload"})
		return
	}

	ctx := c.Request.Context()
	assessment, err := ac.pipeline.Assess(ctx, imageData, answers, nil)
	if err != nil {
		ac.writeError(c, err)
		return
	}
	c.Set(middlewares.RunIDKey, assessment.RunID)

	resp := AssessmentResponse{Assessment: assessment}
	if c.Query("advice") == "true" {
		if !ac.limiter.AllowAdvice(ctx, c.ClientIP()) {
			ac.writeError(c, services.ErrRateLimited)
			return
		}
		advice, err := ac.pipeline.Advise(ctx, assessment, answers, nil)
		if err != nil {
			ac.writeError(c, err)
			return
		}
		resp.Advice = advice
	}

	c.JSON(http.StatusOK, resp)
}

// CreateAdvice generates advice for a score returned by an earlier assessment.
func (ac *AssessmentController) CreateAdvice(c *gin.Context) {
	var req AdviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	ctx := c.Request.Context()
	if !ac.limiter.AllowAdvice(ctx, c.ClientIP()) {
		ac.writeError(c, services.ErrRateLimited)
		return
	}

	assessment, advice, err := ac.pipeline.AdviseScore(ctx, *req.Score, req.Answers)
	if assessment != nil {
		c.Set(middlewares.RunIDKey, assessment.RunID)
	}
	if err != nil {
		ac.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, AssessmentResponse{Assessment: assessment, Advice: advice})
}

func bindAnswers(c *gin.Context) (models.Answers, error) {
	var answers models.Answers
	if raw := c.PostForm("answers"); raw != "" {
		err := json.Unmarshal([]byte(raw), &answers)
		return answers, err
	}
	err := c.ShouldBind(&answers)
	return answers, err
}

func (ac *AssessmentController) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrIncompleteAnswers):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrRateLimited):
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "Too many advice requests. Try again later."})
	case errors.Is(err, services.ErrMissingCredential):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Advice generation is not configured"})
	case errors.Is(err, services.ErrExternalService):
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to generate advice"})
	default:
		ac.log.Error("Unexpected assessment error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
