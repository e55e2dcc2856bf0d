package langcode

import (
	"strings"
	"unicode/utf8"

	perr "stopwords/internal/platform/errors"
)

// Catalog lists the language keys available in a source
type Catalog interface {
	Languages(source string) ([]string, error)
}

// Resolver turns a language name or code into the key used by a source
type Resolver struct {
	table   *Table
	catalog Catalog
}

// NewResolver binds a name table to a source catalog
func NewResolver(t *Table, c Catalog) *Resolver {
	if t == nil {
		t = Default()
	}
	return &Resolver{table: t, catalog: c}
}

// Table returns the name table used by the resolver
func (r *Resolver) Table() *Table { return r.table }

// Resolve maps name to a code for source.
//
// A two-character name is returned as is. Otherwise the name is searched
// as a substring of every table name: one hit returns its code, several
// hits fail with AmbiguousLanguage, and no hit falls back to name itself
// when it is a key of source. The substring search runs first
func (r *Resolver) Resolve(name, source string) (string, error) {
	if utf8.RuneCountInString(name) == 2 {
		return name, nil
	}

	hits := r.table.Match(name)
	switch len(hits) {
	case 1:
		return hits[0].Code, nil
	case 0:
		return r.fallback(name, source)
	default:
		names := make([]string, len(hits))
		for i, h := range hits {
			names[i] = h.Name
		}
		return "", perr.WithField(
			perr.Ambiguousf("Language name %q is ambiguous; matching names:\n%s", name, strings.Join(names, "\n")),
			"language",
		)
	}
}

func (r *Resolver) fallback(name, source string) (string, error) {
	if r.catalog != nil {
		langs, err := r.catalog.Languages(source)
		if err != nil {
			return "", err
		}
		for _, l := range langs {
			if l == name {
				return name, nil
			}
		}
	}
	return "", perr.WithField(
		perr.LanguageNotFoundf("Language %q not found in source %q.", name, source),
		"language",
	)
}
