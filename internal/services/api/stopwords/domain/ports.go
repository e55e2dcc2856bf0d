package domain

import "context"

// ServicePort is the stopwords API facade
type ServicePort interface {
	Lookup(ctx context.Context, in LookupQuery) (LookupResp, error)
	LookupBody(ctx context.Context, in LookupInput) (LookupResp, error)
	Sources(ctx context.Context) (SourcesResp, error)
	Languages(ctx context.Context, source string) (LanguagesResp, error)
	Code(ctx context.Context, in CodeQuery) (CodeResp, error)
}

// CatalogPort is the read-only view other modules use to describe the registry
type CatalogPort interface {
	Sources(ctx context.Context) (SourcesResp, error)
}
