// Package modkit provides module wiring and core deps
package modkit

import (
	"stopwords/internal/core/stopwords"
	"stopwords/internal/platform/config"
	"stopwords/internal/platform/logger"
)

// Deps holds core dependencies passed to modules
// this is wiring only and does not introduce new abstractions
type Deps struct {
	Log       *logger.Logger
	Cfg       config.Conf
	Stopwords *stopwords.Service
}

// Logger returns Log or the named process logger when unset
func (d Deps) Logger(component string) *logger.Logger {
	if d.Log != nil {
		l := d.Log.With().Str("component", component).Logger()
		return &l
	}
	return logger.Named(component)
}
