// @title         Stopwords API
// @version       0.1.0
// @description   Read only endpoints resolving stopword lists by language and source

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"stopwords/internal/core/stopwords"
	"stopwords/internal/platform/config"
	"stopwords/internal/platform/logger"
	phttp "stopwords/internal/platform/net/http"

	"stopwords/internal/services/api"
)

func main() {
	// service-scoped config for HTTP etc (CORE_API_*)
	apiCfg := config.New().Prefix("CORE_API_")

	// bring up logging early
	l := logger.Get()

	// registry and name table are built once here (STOPWORDS_DATA_DIR overlays)
	svc, err := stopwords.Default()
	if err != nil {
		l.Panic().Err(err).Msg("stopwords registry failed to load")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// http server (reads CORE_API_PORT)
	srv := phttp.NewServer(apiCfg)

	// mount our API
	api.Mount(srv.Router(), api.OptionsFromConfig(apiCfg, svc))

	// run
	if err := srv.Run(ctx); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
