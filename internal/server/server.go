package server

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/basquehq/basque-backend/internal/ai"
	"github.com/basquehq/basque-backend/internal/config"
	"github.com/basquehq/basque-backend/internal/geo"
	"github.com/basquehq/basque-backend/internal/handler"
	"github.com/basquehq/basque-backend/internal/repository"
	"github.com/basquehq/basque-backend/internal/scrape"
	"github.com/basquehq/basque-backend/internal/service"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"
)

type Server struct {
	e          *echo.Echo
	userRepo   repository.UserRepository
	actionRepo repository.ActionRepository
	sha        string
	build      string
}

type requestValidator struct {
	validate *validator.Validate
}

func (v *requestValidator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

func New(db *gorm.DB, cfg *config.Config, sha, buildTime string) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Validator = &requestValidator{validate: validator.New()}
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:     []string{"Content-Type"},
		AllowCredentials: true,
		AllowOriginFunc: func(origin string) (bool, error) {
			low := strings.ToLower(origin)
			if strings.HasPrefix(low, "http://localhost:") || strings.HasPrefix(low, "http://127.0.0.1:") ||
				strings.HasPrefix(low, "https://localhost:") || strings.HasPrefix(low, "https://127.0.0.1:") {
				return true, nil
			}
			u, err := url.Parse(origin)
			if err != nil {
				return false, nil
			}
			if u.Scheme != "http" && u.Scheme != "https" {
				return false, nil
			}
			if strings.HasSuffix(u.Hostname(), "vercel.app") {
				return true, nil
			}
			return false, nil
		},
	}))

	userRepo := repository.NewUserRepository(db)
	actionRepo := repository.NewActionRepository(db)

	userSvc := service.NewUserService(userRepo)
	leaderboardSvc := service.NewLeaderboardService(userRepo)
	taskSvc := service.NewTaskService(userRepo, actionRepo)
	statsSvc := service.NewStatsService(userRepo, actionRepo)
	recommendSvc := service.NewRecommendationService(
		scrape.NewClient(time.Duration(cfg.ScrapeTimeoutSeconds) * time.Second))

	quizHandler := handler.NewQuizHandler(userSvc)
	userHandler := handler.NewUserHandler(userSvc)
	leaderboardHandler := handler.NewLeaderboardHandler(leaderboardSvc)
	taskHandler := handler.NewTaskHandler(taskSvc)
	statsHandler := handler.NewStatsHandler(statsSvc)
	recommendHandler := handler.NewRecommendationHandler(recommendSvc)
	chatHandler := handler.NewChatHandler(
		ai.NewChatClient(cfg.GeminiModel), cfg.GeminiAPIKey != "", cfg.GeminiMock)
	zipcodeHandler := handler.NewZipcodeHandler(geo.NewClient(5 * time.Second))

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"ok":         "true",
			"git_sha":    sha,
			"build_time": buildTime,
		})
	})

	api := e.Group("/api")
	api.POST("/quiz-submit", quizHandler.Submit)
	api.GET("/user", userHandler.Get)
	api.GET("/leaderboard", leaderboardHandler.Get)
	api.GET("/map-data", leaderboardHandler.MapData)
	api.GET("/tasks", taskHandler.List)
	api.POST("/complete-action", taskHandler.Complete)
	api.GET("/user-stats", statsHandler.Get)
	api.POST("/recommendations", recommendHandler.Post)
	api.POST("/chat", chatHandler.Post)
	api.GET("/zipcode-lookup", zipcodeHandler.Get)

	return &Server{e: e, userRepo: userRepo, actionRepo: actionRepo, sha: sha, build: buildTime}
}

func (s *Server) Start(addr string) error {
	return s.e.Start(addr)
}

func (s *Server) SetDB(db *gorm.DB) {
	if s.userRepo != nil {
		s.userRepo.SetDB(db)
	}
	if s.actionRepo != nil {
		s.actionRepo.SetDB(db)
	}
}
