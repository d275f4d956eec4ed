package client

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MaftunbekOff/Ulta-Secure-Messenger-sub000/internal/config"
	"github.com/MaftunbekOff/Ulta-Secure-Messenger-sub000/internal/logger"
	"github.com/MaftunbekOff/Ulta-Secure-Messenger-sub000/internal/service"
)

type App struct {
	services *service.ClientServices
	cfg      config.ClientConfig
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, cfg config.ClientConfig, logger *logger.Logger) *App {
	return &App{services: services, cfg: cfg, logger: logger}
}

// Run opens the messaging session and blocks until a stop signal arrives.
// Logout runs even when the session was interrupted, so the local vault and
// plaintext caches never outlive the process.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	ctx = a.logger.WithContext(ctx)

	if err := a.services.SessionService.Login(ctx); err != nil {
		return fmt.Errorf("open session: %w", err)
	}
	a.logger.Info().Str("accountID", a.cfg.AccountID).Msg("session opened")

	<-ctx.Done()
	a.logger.Info().Msg("stop signal received, closing session")

	if err := a.services.SessionService.Logout(context.Background()); err != nil {
		return fmt.Errorf("close session: %w", err)
	}
	a.logger.Info().Msg("session closed")

	return nil
}
