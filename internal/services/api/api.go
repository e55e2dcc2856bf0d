// Package api provides the HTTP API for the stopwords resolver
package api

import (
	"stopwords/internal/core/stopwords"
	"stopwords/internal/platform/config"
	"stopwords/internal/platform/logger"
	phttp "stopwords/internal/platform/net/http"
	"stopwords/internal/platform/net/middleware"

	"stopwords/internal/modkit"
	"stopwords/internal/modkit/httpkit"
	"stopwords/internal/modkit/swaggerkit"

	metamod "stopwords/internal/services/api/meta/module"
	"stopwords/internal/services/api/stopwords/domain"
	stopwordsmod "stopwords/internal/services/api/stopwords/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Logger         *logger.Logger
	Stopwords      *stopwords.Service
	EnableSwagger  bool
	EnableProfiler bool
}

// OptionsFromConfig reads SWAGGER and PROFILER from cfg
func OptionsFromConfig(cfg config.Conf, svc *stopwords.Service) Options {
	return Options{
		Config:         cfg,
		Logger:         logger.Named("api"),
		Stopwords:      svc,
		EnableSwagger:  cfg.MayBool("SWAGGER", true),
		EnableProfiler: cfg.MayBool("PROFILER", false),
	}
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	deps := modkit.Deps{
		Log:       opt.Logger,
		Cfg:       opt.Config,
		Stopwords: opt.Stopwords,
	}

	// the stopwords module owns the catalog port meta reports on
	words := stopwordsmod.New(deps)
	catalog := modkit.MustPortsOf[domain.CatalogPort](words)

	mods := []modkit.Module{
		metamod.New(deps, modkit.WithPorts(metamod.Ports{Catalog: catalog})),
		words,
	}

	r.Use(middleware.Heartbeat("/healthz"))
	swaggerkit.Mount(r, opt.EnableSwagger)
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

	httpkit.MountAPIV1(r, httpkit.CommonStack(httpkit.StackFromConfig(opt.Config)), func(api httpkit.Router) {
		for _, m := range mods {
			m.MountRoutes(api)
			deps.Logger("api").Debug().Str("module", m.Name()).Msg("module mounted")
		}
	})
}
