package app

import (
	"net/http"
	"time"

	"go-attendo/config"
	"go-attendo/internal/aggregate"
	"go-attendo/internal/middleware"
	"go-attendo/internal/reminder"
	"go-attendo/internal/shared/clock"
	"go-attendo/internal/shared/locker"
	"go-attendo/internal/shift"
	"go-attendo/internal/workstatus"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type modules struct {
	shifts     shift.Service
	reminders  reminder.Service
	aggregates aggregate.Service
	workstatus workstatus.Service
	location   *time.Location
}

func newModules(cfg *config.Config, be *backend, logger *zap.Logger) (*modules, error) {
	loc, err := cfg.TimeLocation()
	if err != nil {
		return nil, err
	}
	policy, err := reminder.ParsePolicy(cfg.Reminder.DefaultPolicy)
	if err != nil {
		return nil, err
	}

	clk := clock.New(loc)
	// One lock set for every service so writes for a user never interleave.
	locks := locker.New()

	// --- Repositories ---
	shiftRepo := shift.NewRepository(be.store)
	reminderRepo := reminder.NewRepository(be.store)
	viewRepo := aggregate.NewRepository(be.store)
	statusRepo := workstatus.NewRepository(be.store)

	// --- Services ---
	reminderService := reminder.NewService(reminderRepo, be.queue, shiftRepo, clk, locks, policy, logger)
	shiftService := shift.NewService(shiftRepo, reminderService, workstatus.NewStatusResetter(statusRepo, clk), locks, logger)
	aggregateService := aggregate.NewService(viewRepo, clk, locks, logger)
	statusService := workstatus.NewService(statusRepo, viewRepo, shiftRepo, reminderService, clk, locks, logger)

	return &modules{
		shifts:     shiftService,
		reminders:  reminderService,
		aggregates: aggregateService,
		workstatus: statusService,
		location:   loc,
	}, nil
}

func registerRoutes(router *gin.Engine, cfg *config.Config, mods *modules, rdb *redis.Client, logger *zap.Logger) {
	// --- Handlers ---
	shiftHandler := shift.NewHandler(mods.shifts, logger)
	reminderHandler := reminder.NewHandler(mods.reminders, logger)
	aggregateHandler := aggregate.NewHandler(mods.aggregates, mods.location, logger)
	statusHandler := workstatus.NewHandler(mods.workstatus, logger)

	router.Use(middleware.RequestID())
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	limit, burst := rate.Limit(cfg.Server.RateLimit), cfg.Server.RateBurst
	api.Use(
		middleware.RateLimitByIP(limit*4, burst*4),
		middleware.AuthMiddleware(cfg.Auth.JWTSecret),
		middleware.ContextLogger(logger),
		middleware.RateLimitByUser(limit, burst),
	)
	{
		shift.RegisterRoutes(api, shiftHandler)
		reminder.RegisterRoutes(api, reminderHandler)
		aggregate.RegisterRoutes(api, aggregateHandler)
		workstatus.RegisterRoutes(api, statusHandler, rdb)
	}
}
