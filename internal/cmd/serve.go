package cmd

import (
	"fmt"
	"net/http"
	"strconv"

	"stresscheck/config"
	"stresscheck/controllers"
	"stresscheck/internal/logging"
	"stresscheck/internal/quota"
	"stresscheck/middlewares"
	"stresscheck/routes"
	"stresscheck/websocket"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// NewServeCommand creates the serve subcommand running the HTTP API
func NewServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the assessment HTTP and WebSocket API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return serve(cmd, cfg)
		},
	}
}

func serve(cmd *cobra.Command, cfg *config.Config) error {
	log, err := logging.New(cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer log.Sync()

	ctx := cmd.Context()
	pipeline, err := buildPipeline(ctx, cfg, log)
	if err != nil {
		return err
	}

	var limiter *quota.RateLimiter
	if cfg.Redis.Addr != "" {
		rdb, err := quota.Connect(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return err
		}
		defer rdb.Close()
		limiter = quota.NewRateLimiter(rdb, cfg.Redis.AdviceLimit, cfg.Redis.AdviceWindow, log)
		log.Info("Advice rate limit enabled",
			zap.Int("limit", cfg.Redis.AdviceLimit),
			zap.Duration("window", cfg.Redis.AdviceWindow),
		)
	}

	ctrl := controllers.NewAssessmentController(pipeline, limiter, cfg.Server.MaxUploadBytes, log)
	stream := websocket.NewAssessmentStream(pipeline, limiter, cfg.Server.AllowedOrigins, log)
	router := setupRouter(cfg, log, ctrl, stream)

	port := strconv.Itoa(cfg.Server.Port)
	log.Info("Server starting", zap.String("port", port))
	if err := router.Run(":" + port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}

func setupRouter(cfg *config.Config, log *zap.Logger, ctrl *controllers.AssessmentController, stream *websocket.AssessmentStream) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middlewares.RequestLogger(log))

	router.SetTrustedProxies([]string{"127.0.0.1", "localhost"})

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	router.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })
	routes.SetupAssessmentRoutes(router, ctrl, stream)

	return router
}
