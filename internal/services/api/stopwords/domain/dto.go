// Package domain holds the transport DTOs and ports of the stopwords API
package domain

import (
	"stopwords/internal/core/sources"
	"stopwords/internal/core/stopwords"
)

// LookupQuery is bound from GET /stopwords. Language and Source keep every
// repeated value so the resolver can reject multi valued input
type LookupQuery struct {
	Language []string `query:"language" validate:"dive,langspec"`
	Source   []string `query:"source"   validate:"dive,source"`
	Simplify *bool    `query:"simplify"`
}

// LookupInput is the JSON body of POST /stopwords/lookup
type LookupInput struct {
	Language string `json:"language" validate:"langspec" example:"German"`
	Source   string `json:"source"   validate:"source"   example:"snowball"`
	Simplify *bool  `json:"simplify"                     example:"true"`
}

// LookupResp is a resolved stopword list
type LookupResp struct {
	Language string             `json:"language" example:"de"`
	Source   string             `json:"source"   example:"snowball"`
	Count    int                `json:"count"    example:"231"`
	Nested   bool               `json:"nested"   example:"false"`
	Words    sources.List       `json:"words"`
	Notices  []stopwords.Notice `json:"notices,omitempty"`
}

// SourcesResp lists the registered sources
type SourcesResp struct {
	Default string   `json:"default" example:"snowball"`
	Sources []string `json:"sources"`
}

// LanguagesResp lists the codes of one source
type LanguagesResp struct {
	Source    string   `json:"source"    example:"misc"`
	Languages []string `json:"languages"`
}

// CodeQuery is bound from GET /stopwords/codes
type CodeQuery struct {
	Name   string `query:"name"   validate:"required,langspec"`
	Source string `query:"source" validate:"source"`
}

// CodeResp is the outcome of a language name lookup
type CodeResp struct {
	Name   string `json:"name"            example:"german"`
	Code   string `json:"code"            example:"de"`
	Source string `json:"source"          example:"snowball"`
	Label  string `json:"label,omitempty" example:"German"`
}
