// Package http provides meta endpoints
package http

import (
	"net/http"
	"time"

	"stopwords/internal/core/version"
	"stopwords/internal/modkit/httpkit"
	"stopwords/internal/services/api/stopwords/domain"
)

// Deps are the handler dependencies
type Deps struct {
	ServiceName string
	StartedAt   time.Time
	// Catalog is optional; without it /service omits the source list
	Catalog domain.CatalogPort
}

type handlers struct {
	deps Deps
	now  func() time.Time
}

// Register mounts the meta routes
func Register(r httpkit.Router, d Deps) {
	h := &handlers{deps: d, now: time.Now}

	httpkit.Get(r, "/health", h.health)
	httpkit.Get(r, "/version", h.version)
	httpkit.Get(r, "/service", h.service)
}

// HealthResponse is the health payload
type HealthResponse struct {
	OK      bool   `json:"ok"      example:"true"`
	Service string `json:"service" example:"stopwords-api"`
	Started string `json:"started" example:"2026-01-02T13:00:00Z"`
	Now     string `json:"now"     example:"2026-01-02T13:05:00Z"`
}

// ServiceResponse describes service info
type ServiceResponse struct {
	Name    string   `json:"name"              example:"stopwords-api"`
	Started string   `json:"started"           example:"2026-01-02T13:00:00Z"`
	Uptime  int64    `json:"uptime"            example:"300"`
	Sources []string `json:"sources,omitempty"`
}

// @Summary Health check
// @Tags Meta
// @Produce json
// @Success 200 {object} HealthResponse "ok"
// @Router /meta/health [get]
func (h *handlers) health(_ *http.Request) (any, error) {
	return HealthResponse{
		OK:      true,
		Service: h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Now:     h.now().UTC().Format(time.RFC3339),
	}, nil
}

// @Summary Build and version info
// @Tags Meta
// @Produce json
// @Success 200 {object} version.BuildInfo "ok"
// @Router /meta/version [get]
func (h *handlers) version(_ *http.Request) (any, error) {
	return version.Info(), nil
}

// @Summary Service info, uptime and sources
// @Tags Meta
// @Produce json
// @Success 200 {object} ServiceResponse "ok"
// @Router /meta/service [get]
func (h *handlers) service(r *http.Request) (any, error) {
	out := ServiceResponse{
		Name:    h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Uptime:  int64(h.now().Sub(h.deps.StartedAt) / time.Second),
	}
	if h.deps.Catalog != nil {
		src, err := h.deps.Catalog.Sources(r.Context())
		if err != nil {
			return nil, err
		}
		out.Sources = src.Sources
	}
	return out, nil
}
