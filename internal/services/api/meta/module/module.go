// Package module wires meta endpoints into the API using a tiny module
package module

import (
	"net/http"
	"time"

	"stopwords/internal/modkit"
	"stopwords/internal/modkit/httpkit"
	str "stopwords/internal/platform/strings"
	"stopwords/internal/services/api/stopwords/domain"

	metahttp "stopwords/internal/services/api/meta/http"
)

// Ports are the ports the meta module consumes
type Ports struct {
	Catalog domain.CatalogPort
}

// Module implements the modkit.Module interface
type Module struct {
	name     string
	prefix   string
	mws      []func(http.Handler) http.Handler
	register func(httpkit.Router)

	startedAt time.Time
}

// New constructs a meta module. Inject the stopwords catalog with
// modkit.WithPorts(Ports{...}) to list sources on /meta/service
func New(_ modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("meta"),
		modkit.WithPrefix("/meta"),
	}, opts...)...)

	m := &Module{
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		startedAt: time.Now(),
	}

	var catalog domain.CatalogPort
	if p, ok := b.Ports.(Ports); ok {
		catalog = p.Catalog
	}

	external := b.Register
	m.register = func(r httpkit.Router) {
		metahttp.Register(r, metahttp.Deps{
			ServiceName: "stopwords-api",
			StartedAt:   m.startedAt,
			Catalog:     catalog,
		})
		external(r)
	}
	return m
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	httpkit.MountUnder(r, m.Prefix(), m.mws, m.register)
}

// Name implements the modkit.Module interface
func (m *Module) Name() string { return str.MustString(m.name, "meta") }

// Prefix is the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Ports implements the modkit.Module interface
func (m *Module) Ports() any { return nil }
