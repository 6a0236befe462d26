package routes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"lista_presentes/internal/adapter/http/handlers"
	"lista_presentes/internal/infrastructure/auth"
	"lista_presentes/internal/infrastructure/config"
	"lista_presentes/internal/infrastructure/logging"
	"lista_presentes/internal/infrastructure/notification"
	"lista_presentes/internal/usecase"
)

const shutdownTimeout = 10 * time.Second

// Run wires the configured backend into the HTTP router and serves until
// SIGINT or SIGTERM.
func Run(cfg config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := openStorage(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.close(); err != nil {
			logging.Log.Errorf("[routes] storage close failed err=%v", err)
		}
	}()

	tokens := auth.NewJWTIssuer(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTL)
	authUseCase := usecase.NewAuthUseCase(usecase.Credentials{
		Username:     cfg.Auth.Username,
		Password:     cfg.Auth.Password,
		PasswordHash: cfg.Auth.PasswordHash,
	}, tokens, store.revoked)
	giftItemUseCase := usecase.NewGiftItemUseCase(store.items)

	h := Handlers{
		Auth:     handlers.NewAuthHandler(authUseCase),
		GiftItem: handlers.NewGiftItemHandler(giftItemUseCase),
	}
	if cfg.EmailEnabled {
		mailer, err := notification.NewSMTPMailer(cfg.SMTP)
		if err != nil {
			return fmt.Errorf("email notifications: %w", err)
		}
		h.Notification = handlers.NewNotificationHandler(usecase.NewNotificationUseCase(mailer))
	}

	router := NewRouter(Options{
		AuthRequired:  cfg.AuthRequired,
		AllowedOrigin: cfg.AllowedOrigin,
	}, authUseCase, h)

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.HTTPPort),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.Log.WithField("addr", srv.Addr).Infof("[routes] listening backend=%s auth_required=%t email=%t",
			cfg.StorageBackend, cfg.AuthRequired, cfg.EmailEnabled)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("failed to startup the application: %w", err)
	case <-ctx.Done():
	}

	logging.Log.Info("[routes] shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
