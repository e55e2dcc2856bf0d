// Package service implements the stopwords API facade over the core resolver
package service

import (
	"context"

	"stopwords/internal/core/stopwords"
	pstrings "stopwords/internal/platform/strings"
	"stopwords/internal/services/api/stopwords/domain"
)

// Service is the concrete implementation of domain.ServicePort
type Service struct {
	core *stopwords.Service
}

var _ domain.ServicePort = (*Service)(nil)

// New constructs the facade
func New(core *stopwords.Service) *Service {
	if core == nil {
		panic("stopwords api service requires a non-nil core service")
	}
	return &Service{core: core}
}

// Lookup resolves a query-string request
func (s *Service) Lookup(ctx context.Context, in domain.LookupQuery) (domain.LookupResp, error) {
	return s.resolve(ctx, stopwords.Request{
		Language: in.Language,
		Source:   in.Source,
		Simplify: simplify(in.Simplify),
	})
}

// LookupBody resolves a JSON body request
func (s *Service) LookupBody(ctx context.Context, in domain.LookupInput) (domain.LookupResp, error) {
	req := stopwords.NewRequest(in.Language, in.Source)
	req.Simplify = simplify(in.Simplify)
	return s.resolve(ctx, req)
}

// Sources lists the registry
func (s *Service) Sources(_ context.Context) (domain.SourcesResp, error) {
	return domain.SourcesResp{Default: stopwords.DefaultSource, Sources: s.core.Sources()}, nil
}

// Languages lists the codes of source
func (s *Service) Languages(_ context.Context, source string) (domain.LanguagesResp, error) {
	langs, err := s.core.Languages(source)
	if err != nil {
		return domain.LanguagesResp{}, err
	}
	return domain.LanguagesResp{Source: source, Languages: langs}, nil
}

// Code runs the language name resolver alone
func (s *Service) Code(_ context.Context, in domain.CodeQuery) (domain.CodeResp, error) {
	source := pstrings.FirstNonEmpty(in.Source, stopwords.DefaultSource)
	code, err := s.core.Code(in.Name, source)
	if err != nil {
		return domain.CodeResp{}, err
	}
	label, _ := s.core.Label(code)
	return domain.CodeResp{Name: in.Name, Code: code, Source: source, Label: label}, nil
}

func (s *Service) resolve(ctx context.Context, req stopwords.Request) (domain.LookupResp, error) {
	res, err := s.core.Lookup(ctx, req)
	if err != nil {
		return domain.LookupResp{}, err
	}
	return domain.LookupResp{
		Language: res.Language,
		Source:   res.Source,
		Count:    res.Words.Len(),
		Nested:   res.Words.Nested(),
		Words:    res.Words,
		Notices:  res.Notices,
	}, nil
}

// simplify defaults to true when the caller did not say
func simplify(p *bool) bool { return p == nil || *p }
