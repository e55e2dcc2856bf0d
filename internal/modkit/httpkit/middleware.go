package httpkit

import (
	"compress/flate"
	"net/http"
	"time"

	"stopwords/internal/platform/config"
	"stopwords/internal/platform/net/middleware"
)

// StackOptions tunes CommonStack
type StackOptions struct {
	CORSOrigins []string
	Timeout     time.Duration
	SlowRequest time.Duration
	// MaxInFlight caps concurrent requests; 0 disables the limit
	MaxInFlight int
}

// StackFromConfig reads CORS_ORIGINS, TIMEOUT, SLOW_MS and MAX_INFLIGHT from cfg
func StackFromConfig(cfg config.Conf) StackOptions {
	return StackOptions{
		CORSOrigins: cfg.MayCSV("CORS_ORIGINS", nil),
		Timeout:     cfg.MayDuration("TIMEOUT", 30*time.Second),
		SlowRequest: time.Duration(cfg.MayInt("SLOW_MS", 250)) * time.Millisecond,
		MaxInFlight: cfg.MayInt("MAX_INFLIGHT", 0),
	}
}

// CommonStack returns the baseline middleware slice for the versioned API
func CommonStack(o StackOptions) []func(http.Handler) http.Handler {
	if o.Timeout <= 0 {
		o.Timeout = 30 * time.Second
	}
	mws := []func(http.Handler) http.Handler{
		// tracing / correlation
		middleware.RequestID(),
		middleware.RealIP(),

		// observability, outside recover so panics are logged with their status
		middleware.AccessLog(middleware.AccessLogOptions{Slow: o.SlowRequest}),

		// safety
		middleware.RecoverJSON,

		// cache / freshness
		middleware.NoCache(),

		middleware.CORS(middleware.CORSOptions{AllowedOrigins: o.CORSOrigins}),
		middleware.Compress(flate.BestSpeed),
		middleware.StripSlashes(),
		middleware.Timeout(o.Timeout),
	}
	if o.MaxInFlight > 0 {
		mws = append(mws, middleware.Throttle(o.MaxInFlight))
	}
	return mws
}
