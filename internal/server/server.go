package server

import (
	"strings"
	"time"

	"anoa.com/internhub/internal/config"
	"anoa.com/internhub/internal/handler"
	"anoa.com/internhub/internal/middleware"
	"anoa.com/internhub/internal/model"
	"anoa.com/internhub/internal/repository"
	"anoa.com/internhub/internal/service"
	"anoa.com/internhub/pkg/token"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Server struct {
	engine *gin.Engine
	db     *gorm.DB
}

func NewServer(db *gorm.DB, redisClient *redis.Client, cfg *config.Config) *Server {
	tokens := token.NewProvider(cfg.JWTSecret, cfg.AccessTTL, cfg.RefreshTTL)

	userRepo := repository.NewUserRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	submissionRepo := repository.NewSubmissionRepository(db)

	authSvc := service.NewAuthService(userRepo, tokens, redisClient, cfg.PhoneRegion, cfg.LoginRateLimit)
	authHandler := handler.NewAuthHandler(authSvc)

	taskSvc := service.NewTaskService(taskRepo, userRepo)
	taskHandler := handler.NewTaskHandler(taskSvc)

	submissionSvc := service.NewSubmissionService(submissionRepo, taskRepo, cfg.SubmissionVisibility)
	submissionHandler := handler.NewSubmissionHandler(submissionSvc)

	authMiddleware := middleware.NewAuthMiddleware(userRepo, tokens)

	router := gin.Default()
	setupCORS(router, cfg.AllowedOrigins)

	api := router.Group("/api")

	// Unauthenticated routes
	api.POST("/account-registration", authHandler.Register)
	api.POST("/account-login", authHandler.Login)

	protected := api.Group("")
	protected.Use(authMiddleware.RequireAuth())
	{
		protected.POST("/task-create",
			authMiddleware.RequireRole(model.RoleSupervisor),
			taskHandler.CreateTask)
		protected.PATCH("/task-edit/:id",
			authMiddleware.RequireRole(model.RoleSupervisor),
			taskHandler.EditTask)
		protected.GET("/task-list-supervisor", taskHandler.ListSupervisorTasks)
		protected.GET("/task-list-intern", taskHandler.ListInternTasks)

		protected.POST("/submit-task",
			authMiddleware.RequireRole(model.RoleIntern),
			submissionHandler.SubmitTask)
		protected.PATCH("/submit-task-edit/:id",
			authMiddleware.RequireRole(model.RoleSupervisor),
			submissionHandler.ReviewSubmission)
		protected.GET("/submitted-task-list",
			authMiddleware.RequireRole(model.RoleIntern, model.RoleSupervisor),
			submissionHandler.ListSubmissions)
	}

	return &Server{
		engine: router,
		db:     db,
	}
}

func (s *Server) Run(addr string) error {
	return s.engine.Run(addr)
}

func setupCORS(router *gin.Engine, allowedOrigins string) {
	var origins []string
	if allowedOrigins != "" {
		origins = strings.Split(allowedOrigins, ",")
	} else {
		origins = []string{"http://localhost:3000"}
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
}
