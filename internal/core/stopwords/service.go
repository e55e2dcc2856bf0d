// Package stopwords resolves a language specifier and a source name into a
// stopword list
package stopwords

import (
	"context"
	"fmt"
	"sync"
	"unicode/utf8"

	"stopwords/internal/core/langcode"
	"stopwords/internal/core/sources"
	perr "stopwords/internal/platform/errors"
	"stopwords/internal/platform/logger"
)

// Request selects a stopword list. Language and Source hold the raw values
// supplied by the caller: an empty slice (or a single empty string) selects
// the default, more than one value is rejected
type Request struct {
	Language []string
	Source   []string
	Simplify bool
}

// NewRequest builds a single-valued request that flattens nested lists.
// An empty language or source selects the default
func NewRequest(language, source string) Request {
	r := Request{Simplify: true}
	if language != "" {
		r.Language = []string{language}
	}
	if source != "" {
		r.Source = []string{source}
	}
	return r
}

// Result is a resolved list and the arguments it was resolved with
type Result struct {
	Language string       `json:"language"`
	Source   string       `json:"source"`
	Words    sources.List `json:"words"`
	Notices  []Notice     `json:"notices,omitempty"`
}

// Service resolves stopword requests against a registry. It holds no
// mutable state and is safe for concurrent use
type Service struct {
	reg      *sources.Registry
	resolver *langcode.Resolver
	sink     Sink
}

// Option configures a Service
type Option func(*Service)

// WithSink routes notices to s; the default logs them
func WithSink(s Sink) Option {
	return func(svc *Service) {
		if s != nil {
			svc.sink = s
		}
	}
}

// WithTable swaps the language name table
func WithTable(t *langcode.Table) Option {
	return func(svc *Service) { svc.resolver = langcode.NewResolver(t, catalogOf(svc.reg)) }
}

// catalogOf keeps a nil registry out of the Catalog interface so the
// resolver sees no catalog rather than a nil pointer
func catalogOf(reg *sources.Registry) langcode.Catalog {
	if reg == nil {
		return nil
	}
	return reg
}

// New builds a Service over reg
func New(reg *sources.Registry, opts ...Option) *Service {
	s := &Service{
		reg:      reg,
		resolver: langcode.NewResolver(langcode.Default(), catalogOf(reg)),
		sink:     LogSink(),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

var (
	defOnce sync.Once
	defSvc  *Service
	defErr  error
)

// Default returns the process-wide Service over sources.Default
func Default() (*Service, error) {
	defOnce.Do(func() {
		reg, err := sources.Default()
		if err != nil {
			defErr = err
			return
		}
		defSvc = New(reg)
	})
	return defSvc, defErr
}

// Sources returns the registered source names in registration order
func (s *Service) Sources() []string { return s.reg.Names() }

// Languages returns the sorted language codes of source
func (s *Service) Languages(source string) ([]string, error) {
	return s.reg.Languages(source)
}

// Code runs only the language name resolver. An empty source selects the default
func (s *Service) Code(name, source string) (string, error) {
	if source == "" {
		source = DefaultSource
	}
	return s.resolver.Resolve(name, source)
}

// Label returns the table name of code, e.g. "German" for "de"
func (s *Service) Label(code string) (string, bool) {
	return s.resolver.Table().Name(code)
}

// Stopwords resolves a single language and source
func (s *Service) Stopwords(language, source string, simplify bool) (sources.List, error) {
	req := NewRequest(language, source)
	req.Simplify = simplify
	res, err := s.Lookup(context.Background(), req)
	if err != nil {
		return sources.List{}, err
	}
	return res.Words, nil
}

// Lookup resolves req.
//
// Steps run in a fixed order: arity check, the "smart" rewrite, name
// resolution for specifiers longer than two characters, the misc rewrite,
// source and language lookup, then flattening when Simplify is set
func (s *Service) Lookup(ctx context.Context, req Request) (Result, error) {
	language, languageSet, err := scalar("language", req.Language, DefaultLanguage)
	if err != nil {
		return Result{}, err
	}
	source, sourceSet, err := scalar("source", req.Source, DefaultSource)
	if err != nil {
		return Result{}, err
	}
	log := logger.C(ctx)

	var notices []Notice
	notify := func(n *Notice) {
		if n == nil {
			return
		}
		notices = append(notices, *n)
		s.sink.Notify(ctx, *n)
	}

	if languageSet {
		lang, src, n := rewriteSmart(language, sourceSet)
		if n != nil {
			language, source = lang, src
			notify(n)
		}
	}

	if utf8.RuneCountInString(language) > 2 {
		code, err := s.resolver.Resolve(language, source)
		if err != nil {
			return Result{}, resolveError(err, language, source)
		}
		language = code
	}

	if lang, src, n := rewriteMisc(language, sourceSet); n != nil {
		language, source = lang, src
		notify(n)
	}

	ds, err := s.reg.Dataset(source)
	if err != nil {
		fail := MakeError(perr.ErrorCodeSourceNotFound, fmt.Sprintf("Source %q not found.", source), noteSources)
		return Result{}, perr.WithField(fail(perr.MessageOf(err)), "source")
	}

	list, ok := ds.Lookup(language)
	if !ok {
		fail := MakeError(perr.ErrorCodeLanguageNotFound, fmt.Sprintf("Language %q not found.", language), noteLanguages(source))
		return Result{}, perr.WithField(fail(), "language")
	}
	if req.Simplify {
		list = list.Simplify()
	}

	log.Debug().
		Str("language", language).
		Str("source", source).
		Int("words", list.Len()).
		Bool("nested", list.Nested()).
		Msg("stopwords resolved")

	return Result{Language: language, Source: source, Words: list, Notices: notices}, nil
}

// scalar reduces a raw argument to one value; set reports whether the
// caller supplied a non-empty value
func scalar(name string, vals []string, def string) (v string, set bool, err error) {
	switch {
	case len(vals) > 1:
		fail := MakeError(
			perr.ErrorCodeInvalidArgument,
			fmt.Sprintf("Argument %q must be a single value; got %d.", name, len(vals)),
			noteArity,
		)
		return "", false, perr.WithField(fail(), name)
	case len(vals) == 0 || vals[0] == "":
		return def, false, nil
	default:
		return vals[0], true, nil
	}
}

// resolveError maps a name resolution failure. Only ambiguity keeps the
// resolver's message, since it carries the candidate names
func resolveError(err error, language, source string) error {
	switch perr.CodeOf(err) {
	case perr.ErrorCodeAmbiguousLanguage:
		fail := MakeError(
			perr.ErrorCodeAmbiguousLanguage,
			fmt.Sprintf("Language %q not available in source %q.", language, source),
			noteLanguages(source),
		)
		return perr.WithField(fail(perr.MessageOf(err)), "language")
	case perr.ErrorCodeSourceNotFound:
		fail := MakeError(perr.ErrorCodeSourceNotFound, fmt.Sprintf("Source %q not found.", source), noteSources)
		return perr.WithField(fail(perr.MessageOf(err)), "source")
	default:
		fail := MakeError(
			perr.CodeOf(err),
			fmt.Sprintf("Language %q not available in source %q.", language, source),
			noteLanguages(source),
		)
		return perr.WithField(fail(), "language")
	}
}
