package main

import (
	"context"
	"flag"
	"fmt"

	"nexus/api/middleware"
	"nexus/api/routes"
	"nexus/config"
	"nexus/db"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("no .env file found, relying on environment variables")
	}

	var configPath string
	flag.StringVar(&configPath, "config", "config.yaml", "Path to the configuration file")
	flag.Parse()

	conf, err := config.LoadConfig(configPath)
	if err != nil {
		logrus.WithError(err).Fatal("failed to load configuration")
	}

	if conf.Logs.Level != "" {
		level, err := logrus.ParseLevel(conf.Logs.Level)
		if err != nil {
			logrus.WithError(err).Fatal("invalid log level")
		}
		logrus.SetLevel(level)
	}

	store, err := db.Open(conf.Database)
	if err != nil {
		logrus.WithError(err).Fatal("failed to open database")
	}

	// Seeding finishes before the listener starts, so the check-then-insert
	// gap is never raced by a request.
	ctx := context.Background()
	if err := store.Seed(ctx); err != nil {
		logrus.WithError(err).Fatal("failed to seed database")
	}
	if err := store.SeedDemo(ctx, conf.Seed.FakeUsers, conf.Seed.FakePosts); err != nil {
		logrus.WithError(err).Fatal("failed to seed demo data")
	}

	if conf.Backend.Mode != "" {
		gin.SetMode(conf.Backend.Mode)
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.PrometheusMiddleware())

	routes.PublicApi(router, store)
	if gin.Mode() == gin.ReleaseMode {
		routes.StaticUI(router, conf.Backend.StaticDir)
	}

	addr := fmt.Sprintf("%s:%d", conf.Backend.Host, conf.Backend.Port)
	logrus.WithField("addr", addr).Info("starting server")
	if err := router.Run(addr); err != nil {
		logrus.WithError(err).Fatal("server stopped")
	}
}
