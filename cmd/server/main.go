package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/muthita66/Winai-school-sub002/config"
	"github.com/muthita66/Winai-school-sub002/database"
	"github.com/muthita66/Winai-school-sub002/httputil"
	"github.com/muthita66/Winai-school-sub002/routes"
)

func main() {
	cfg := config.Load()

	// fail early when the DB is not up
	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(middleware.CORS())
	e.Validator = httputil.NewValidator()
	e.HTTPErrorHandler = httputil.ErrorHandler

	routes.Register(e, db, cfg)

	addr := ":" + cfg.AppPort
	go func() {
		log.Printf("server listening at %s", addr)
		if err := e.Start(addr); err != nil {
			log.Printf("server stopped: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("shutdown failed: %v", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
