// Package module wires the stopwords API into HTTP via modkit
package module

import (
	"net/http"

	"stopwords/internal/modkit"
	"stopwords/internal/modkit/httpkit"
	"stopwords/internal/platform/strings"
	"stopwords/internal/services/api/stopwords/domain"

	stopwordshttp "stopwords/internal/services/api/stopwords/http"
	"stopwords/internal/services/api/stopwords/service"
)

// Ports exposes the service for cross-module lookups
type Ports struct {
	Service domain.ServicePort
	Catalog domain.CatalogPort
}

// Module implements the stopwords module
type Module struct {
	name   string
	prefix string
	mws    []func(http.Handler) http.Handler
	ports  Ports

	register func(httpkit.Router)
}

// New constructs the stopwords module; deps.Stopwords must be set
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("stopwords"),
		modkit.WithPrefix("/stopwords"),
	}, opts...)...)

	svc := service.New(deps.Stopwords)
	m := &Module{
		name:   b.Name,
		prefix: b.Prefix,
		mws:    b.Mw,
		ports:  Ports{Service: svc, Catalog: svc},
	}

	external := b.Register
	m.register = func(r httpkit.Router) {
		stopwordshttp.Register(r, svc)
		external(r)
	}
	return m
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	httpkit.MountUnder(r, m.Prefix(), m.mws, m.register)
}

// Name is the module name
func (m *Module) Name() string { return strings.MustString(m.name, "module name") }

// Prefix is the module route prefix
func (m *Module) Prefix() string { return strings.MustPrefix(m.prefix) }

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
