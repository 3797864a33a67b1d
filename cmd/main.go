package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lshigami/QuizMaster/config"
	"github.com/lshigami/QuizMaster/database"
	adminctrl "github.com/lshigami/QuizMaster/internal/controller/admin"
	authctrl "github.com/lshigami/QuizMaster/internal/controller/auth"
	userctrl "github.com/lshigami/QuizMaster/internal/controller/user"
	"github.com/lshigami/QuizMaster/internal/logger"
	"github.com/lshigami/QuizMaster/internal/middleware"
	"github.com/lshigami/QuizMaster/internal/model"
	"github.com/lshigami/QuizMaster/internal/repository"
	"github.com/lshigami/QuizMaster/internal/service"
	"github.com/lshigami/QuizMaster/internal/session"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

func main() {
	logger.Init()

	app := fx.New(
		// Core application components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			session.NewManager,
			NewGinEngine,
		),

		// Repositories layer
		fx.Provide(
			repository.NewUserRepository,
			repository.NewSubjectRepository,
			repository.NewChapterRepository,
			repository.NewQuizRepository,
			repository.NewQuestionRepository,
			repository.NewScoreRepository,
		),

		// Services layer
		fx.Provide(
			service.NewAuthService,
			service.NewSubjectService,
			service.NewChapterService,
			service.NewQuizService,
			service.NewQuestionService,
			service.NewAttemptService,
			service.NewDashboardService,
			service.NewUserAdminService,
		),

		// Controllers layer
		fx.Provide(
			authctrl.NewAuthController,
			adminctrl.NewAdminController,
			userctrl.NewUserController,
		),

		fx.Invoke(AutoMigrateDB),
		fx.Invoke(BootstrapAdmin),
		fx.Invoke(RegisterRoutesAndStartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("user_agent", param.Request.UserAgent()).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.LoadHTMLGlob("templates/*.html")

	return r
}

// RegisterRoutesAndStartServer composes the route table at startup and
// manages the HTTP server lifecycle. Role gating is declared once per group.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	sessions *session.Manager,
	userRepo repository.UserRepository,
	authCtrl *authctrl.AuthController,
	adminCtrl *adminctrl.AdminController,
	userCtrl *userctrl.UserController,
) {
	router.GET("/", authCtrl.Home)

	authGroup := router.Group("/auth")
	{
		authGroup.GET("/login", authCtrl.ShowLogin)
		authGroup.POST("/login", authCtrl.Login)
		authGroup.GET("/register", authCtrl.ShowRegister)
		authGroup.POST("/register", authCtrl.Register)
		authGroup.GET("/logout", middleware.RequireAuth(sessions, userRepo), authCtrl.Logout)
	}

	adminGroup := router.Group("/admin", middleware.RequireAuth(sessions, userRepo), middleware.RequireAdmin())
	{
		adminGroup.GET("/dashboard", adminCtrl.Dashboard)

		adminGroup.GET("/subjects", adminCtrl.Subjects)
		adminGroup.POST("/subjects", adminCtrl.Subjects)
		adminGroup.GET("/edit_subject/:id", adminCtrl.EditSubject)
		adminGroup.POST("/edit_subject/:id", adminCtrl.EditSubject)
		adminGroup.POST("/delete_subject/:id", adminCtrl.DeleteSubject)

		adminGroup.GET("/chapters", adminCtrl.Chapters)
		adminGroup.POST("/chapters", adminCtrl.Chapters)
		adminGroup.POST("/add_chapter", adminCtrl.AddChapter)
		adminGroup.GET("/edit_chapter/:id", adminCtrl.EditChapter)
		adminGroup.POST("/edit_chapter/:id", adminCtrl.EditChapter)
		adminGroup.POST("/delete_chapter/:id", adminCtrl.DeleteChapter)
		adminGroup.GET("/get_chapters", adminCtrl.GetChapters)

		adminGroup.GET("/quizzes", adminCtrl.Quizzes)
		adminGroup.POST("/quizzes", adminCtrl.Quizzes)
		adminGroup.GET("/add_quiz", adminCtrl.AddQuiz)
		adminGroup.POST("/add_quiz", adminCtrl.AddQuiz)
		adminGroup.GET("/edit_quiz/:id", adminCtrl.EditQuiz)
		adminGroup.POST("/edit_quiz/:id", adminCtrl.EditQuiz)
		adminGroup.POST("/delete_quiz/:id", adminCtrl.DeleteQuiz)

		adminGroup.GET("/questions/:quiz_id", adminCtrl.Questions)
		adminGroup.POST("/questions/:quiz_id", adminCtrl.AddQuestion)
		adminGroup.POST("/add_question/:quiz_id", adminCtrl.AddQuestion)
		adminGroup.POST("/edit_question/:quiz_id", adminCtrl.EditQuestion)
		adminGroup.POST("/delete_question/:quiz_id", adminCtrl.DeleteQuestion)

		adminGroup.GET("/users", adminCtrl.Users)
		adminGroup.POST("/users/delete/:id", adminCtrl.DeleteUser)
	}

	userGroup := router.Group("/user", middleware.RequireAuth(sessions, userRepo))
	{
		userGroup.GET("/dashboard", userCtrl.Dashboard)

		quizGroup := userGroup.Group("/quiz", middleware.RequireLearner())
		quizGroup.GET("/:id", userCtrl.ShowQuiz)
		quizGroup.POST("/:id", userCtrl.SubmitQuiz)
		quizGroup.GET("/:id/results", userCtrl.Results)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Quiz master server starting on port %s", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.User{},
		&model.Subject{},
		&model.Chapter{},
		&model.Quiz{},
		&model.Question{},
		&model.Score{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}

// BootstrapAdmin ensures the designated admin account exists. Idempotent.
func BootstrapAdmin(cfg *config.Config, authService service.AuthService) error {
	return authService.EnsureAdmin(cfg.Admin)
}
