// Package swaggerkit mounts Swagger UI over the embedded OpenAPI document
package swaggerkit

import (
	_ "embed"
	"encoding/json"
	"net/http"

	"stopwords/internal/core/version"
	"stopwords/internal/platform/logger"
	phttp "stopwords/internal/platform/net/http"

	httpSwagger "github.com/swaggo/http-swagger"
)

//go:embed openapi.json
var openapi []byte

// DocPath is where the OpenAPI document is served
const DocPath = "/api/docs/doc.json"

// Mount the Swagger UI and OpenAPI document if enabled
func Mount(r phttp.Router, enabled bool) {
	if !enabled {
		return
	}
	doc, err := Doc()
	if err != nil {
		logger.Named("swagger").Error().Err(err).Msg("openapi document unusable; docs not mounted")
		return
	}
	r.Get("/api/docs", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/api/docs/", http.StatusPermanentRedirect)
	})
	r.Get(DocPath, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_, _ = w.Write(doc)
	})
	r.Handle("/api/docs/*", httpSwagger.Handler(
		httpSwagger.InstanceName("stopwords"),
		httpSwagger.URL(DocPath),
	))
}

// Doc returns the embedded document with the build version stamped in
func Doc() ([]byte, error) {
	var doc map[string]any
	if err := json.Unmarshal(openapi, &doc); err != nil {
		return nil, err
	}
	if info, ok := doc["info"].(map[string]any); ok {
		info["version"] = version.Info().Version
	}
	return json.Marshal(doc)
}
