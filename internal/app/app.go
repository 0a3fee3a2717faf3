package app

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/jorgeortega123/megamobilier-test-frontend/internal/app/config"
	apphttp "github.com/jorgeortega123/megamobilier-test-frontend/internal/app/http"
	"github.com/jorgeortega123/megamobilier-test-frontend/internal/infra/quoteapi"
	"github.com/jorgeortega123/megamobilier-test-frontend/internal/infra/session"
)

func Run() {
	cfg := config.MustLoad()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	log := logger.Sugar()

	store := session.NewStore()
	api := quoteapi.New(cfg.APIURL, cfg.UpstreamTimeout, log)

	router := apphttp.NewRouter(cfg, log, store, api)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Infof("listening on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("serve: %v", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Warnf("shutdown: %v", err)
	}
}
