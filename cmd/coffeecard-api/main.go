package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cafeanalog/coffeecard-api/internal/bootstrap"
	"github.com/cafeanalog/coffeecard-api/internal/config"
	"github.com/cafeanalog/coffeecard-api/internal/modules/handler"
	"github.com/cafeanalog/coffeecard-api/internal/router"
	"github.com/samber/do"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	inj := bootstrap.BuildContainer()

	cfg, err := do.Invoke[*config.Config](inj)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger, err := do.Invoke[*zap.Logger](inj)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	r := router.NewRouter(router.RouterDeps{
		Config:          cfg,
		DB:              do.MustInvoke[*gorm.DB](inj),
		Log:             logger,
		ProductHandler:  do.MustInvoke[*handler.ProductHandler](inj),
		PurchaseHandler: do.MustInvoke[*handler.PurchaseHandler](inj),
		TicketHandler:   do.MustInvoke[*handler.TicketHandler](inj),
		WebhookHandler:  do.MustInvoke[*handler.WebhookHandler](inj),
	})

	srv := &http.Server{
		Addr:    cfg.App.Addr,
		Handler: r,
	}

	go func() {
		logger.Info("server listening", zap.String("addr", cfg.App.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown", zap.Error(err))
	}
	if err := inj.Shutdown(); err != nil {
		logger.Error("container shutdown", zap.Error(err))
	}
}
