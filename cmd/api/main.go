package main

import (
	"os"

	"go-attendo/config"
	"go-attendo/internal/app"
	"go-attendo/internal/bootstrap"
	"go-attendo/internal/shared/apperror"
	"go-attendo/internal/shared/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load(os.Getenv("ATTENDO_CONFIG"))
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	apperror.Init()
	r := gin.New()
	r.Use(gin.Recovery())

	// build dependency + routes
	closeApp, err := app.BuildApp(r, cfg, log)
	if err != nil {
		log.Fatal("build app failed", zap.Error(err))
	}

	auditLogger := bootstrap.NewStdoutAuditLogger(log)
	bootstrap.StartHTTPServer(
		r,
		cfg.Server,
		auditLogger,
		closeApp,
	)
}
