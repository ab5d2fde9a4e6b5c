// mockapi levanta el backend de desarrollo de bookly en memoria.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/dropDatabas3/bookly/internal/config"
	"github.com/dropDatabas3/bookly/internal/mockapi"
	"github.com/dropDatabas3/bookly/internal/observability/logger"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load(os.Getenv("BOOKLY_CONFIG"))
	if err != nil {
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}
	logger.Init(logger.Config{
		Env:         cfg.App.Env,
		Level:       cfg.Log.Level,
		ServiceName: "bookly-mockapi",
	})
	defer logger.Sync()
	log := logger.Named("mockapi")

	store := mockapi.NewStore()
	if cfg.Mock.Seed {
		mockapi.Seed(store)
	}
	srv := mockapi.New(store, mockapi.NewTokenIssuer(cfg.Mock.JWTSecret, cfg.TokenTTL()))

	httpSrv := &http.Server{
		Addr:              cfg.Mock.Addr,
		Handler:           srv.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("listening", zap.String("addr", cfg.Mock.Addr))
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("serve", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(ctx); err != nil {
		log.Warn("shutdown", zap.Error(err))
	}
	log.Info("stopped")
}
