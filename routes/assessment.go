package routes

import (
	"stresscheck/controllers"
	"stresscheck/websocket"

	"github.com/gin-gonic/gin"
)

// SetupAssessmentRoutes registers the questionnaire, assessment and advice
// endpoints plus the progress stream.
func SetupAssessmentRoutes(router *gin.Engine, ctrl *controllers.AssessmentController, stream *websocket.AssessmentStream) {
	api := router.Group("/api")
	{
		api.GET("/questionnaire", ctrl.GetQuestionnaire)
		api.POST("/assessments", ctrl.CreateAssessment)
		api.POST("/advice", ctrl.CreateAdvice)
	}
	router.GET("/ws/assessments", stream.Handle)
}
