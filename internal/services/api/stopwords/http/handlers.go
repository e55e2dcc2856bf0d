// Package http provides HTTP transport for the stopwords API
package http

import (
	stdhttp "net/http"

	"stopwords/internal/modkit/httpkit"
	"stopwords/internal/services/api/stopwords/domain"
)

// Register mounts the stopwords endpoints on the given router
func Register(r httpkit.Router, s domain.ServicePort) {
	h := &handlers{svc: s}

	httpkit.GetQuery(r, "/", h.lookup)
	httpkit.PostJSON(r, "/lookup", h.lookupBody)
	httpkit.Get(r, "/sources", h.sources)
	httpkit.Get(r, "/sources/{source}/languages", h.languages)
	httpkit.GetQuery(r, "/codes", h.code)
}

type handlers struct{ svc domain.ServicePort }

// swagger:route GET /stopwords Stopwords stopwordsGet
// @Summary Stopword list for a language and source
// @Tags Stopwords
// @Produce json
// @Param language query string false "ISO 639-1 code or language name" default(en)
// @Param source query string false "Source name" default(snowball)
// @Param simplify query bool false "Flatten nested lists" default(true)
// @Success 200 {object} domain.LookupResp "ok"
// @Router /stopwords [get]
func (h *handlers) lookup(r *stdhttp.Request, in domain.LookupQuery) (any, error) {
	return h.svc.Lookup(r.Context(), in)
}

// swagger:route POST /stopwords/lookup Stopwords stopwordsLookup
// @Summary Stopword list from a JSON body
// @Tags Stopwords
// @Accept json
// @Produce json
// @Param payload body domain.LookupInput true "Lookup"
// @Success 200 {object} domain.LookupResp "ok"
// @Router /stopwords/lookup [post]
func (h *handlers) lookupBody(r *stdhttp.Request, in domain.LookupInput) (any, error) {
	return h.svc.LookupBody(r.Context(), in)
}

// @Summary Registered sources
// @Tags Stopwords
// @Produce json
// @Success 200 {object} domain.SourcesResp "ok"
// @Router /stopwords/sources [get]
func (h *handlers) sources(r *stdhttp.Request) (any, error) {
	return h.svc.Sources(r.Context())
}

// @Summary Language codes of a source
// @Tags Stopwords
// @Produce json
// @Param source path string true "Source name"
// @Success 200 {object} domain.LanguagesResp "ok"
// @Router /stopwords/sources/{source}/languages [get]
func (h *handlers) languages(r *stdhttp.Request) (any, error) {
	return h.svc.Languages(r.Context(), httpkit.Param(r, "source"))
}

// @Summary Resolve a language name to a code
// @Tags Stopwords
// @Produce json
// @Param name query string true "Language name or code"
// @Param source query string false "Source for the key fallback"
// @Success 200 {object} domain.CodeResp "ok"
// @Router /stopwords/codes [get]
func (h *handlers) code(r *stdhttp.Request, in domain.CodeQuery) (any, error) {
	return h.svc.Code(r.Context(), in)
}
