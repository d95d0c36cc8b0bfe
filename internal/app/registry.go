package app

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"

	"github.com/baobabplus/application-agent-services/internal/auth"
	"github.com/baobabplus/application-agent-services/internal/classification"
	"github.com/baobabplus/application-agent-services/internal/config"
	"github.com/baobabplus/application-agent-services/internal/country"
	"github.com/baobabplus/application-agent-services/internal/employee"
	"github.com/baobabplus/application-agent-services/internal/erp"
	"github.com/baobabplus/application-agent-services/internal/messaging/kafka"
	"github.com/baobabplus/application-agent-services/internal/middleware"
	"github.com/baobabplus/application-agent-services/internal/prospect"
	"github.com/baobabplus/application-agent-services/internal/report"
	"github.com/baobabplus/application-agent-services/internal/screen"
	"github.com/baobabplus/application-agent-services/internal/task"
)

func registerModules(
	router *gin.Engine,
	cfg config.Config,
	client *erp.Client,
	cache *redis.Client,
	publisher *kafka.Publisher,
) error {
	table := classification.Default()

	// --- Repositories ---
	employeeRepo := employee.NewRepository(client)
	otpRepo := auth.NewOTPRepository(client)
	reportRepo := report.NewRepository(client)
	taskRepo := task.NewRepository(client)
	prospectRepo := prospect.NewRepository(client)

	// --- Services ---
	issuer := auth.NewTokenIssuer(
		cfg.AccessTokenSecret, cfg.RefreshTokenSecret,
		cfg.AccessTokenExpire, cfg.RefreshTokenExpire,
	)
	var loginEvents auth.EventPublisher
	if publisher != nil {
		loginEvents = publisher
	}
	authService := auth.NewService(employeeRepo, otpRepo, issuer, loginEvents, auth.Options{
		OTPSecret:      cfg.OTPSecret,
		OTPInterval:    cfg.OTPInterval,
		OTPValidWindow: cfg.OTPValidWindow,
		Prod:           cfg.IsProd(),
	})
	reportService := report.NewService(reportRepo, table)
	taskService := task.NewService(taskRepo, task.Options{
		SlowPayerSegmentations: cfg.SlowPayerSegmentations,
		HypercareSegmentations: cfg.HypercareSegmentations,
		SlowPayerMidDays:       cfg.SlowPayerMidDays,
		SlowPayerRedDays:       cfg.SlowPayerRedDays,
		HypercareDays:          cfg.HypercareDays,
		HypercareAmberMax:      cfg.HypercareAmberMax,
		HypercareRedMin:        cfg.HypercareRedMin,
	})
	prospectService := prospect.NewService(prospectRepo)
	var screenCache redis.Cmdable
	if cache != nil {
		screenCache = cache
	}
	screenService := screen.NewService(reportService, taskService, screenCache, cfg.SummaryCacheTTL)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	countryHandler := country.NewHandler()
	reportHandler := report.NewHandler(reportService)
	taskHandler := task.NewHandler(taskService)
	prospectHandler := prospect.NewHandler(prospectService)
	screenHandler := screen.NewHandler(screenService)

	router.Use(middleware.RequestID())

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		sendLimiter := middleware.RateLimit(rate.Every(time.Minute), 5)
		auth.RegisterRoutes(api, authHandler, sendLimiter)
		country.RegisterRoutes(api, countryHandler)

		authed := api.Group("")
		authed.Use(middleware.Auth(cfg.AccessTokenSecret))
		{
			report.RegisterRoutes(authed, reportHandler)
			task.RegisterRoutes(authed, taskHandler)
			prospect.RegisterRoutes(authed, prospectHandler)
			screen.RegisterRoutes(authed, screenHandler)
		}
	}

	return nil
}
