package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"go.uber.org/zap"

	"github.com/souqpay/souqpay/internal/app"
)

//	@title			SouqPay API
//	@version		1.0
//	@description	Marketplace wallet ledger and payment settlement API

// @host		localhost:8080
// @BasePath	/
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a := app.New()
	if err := a.Start(ctx); err != nil {
		log.Error().Err(err).Msg("startup failed")
		zap.L().Fatal("startup failed", zap.Error(err))
	}

	if err := a.Wait(ctx, stop); err != nil {
		zap.L().Fatal("shutdown finished with errors", zap.Error(err))
	}

	zap.L().Info("shutdown complete")
}
