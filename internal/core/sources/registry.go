// Package sources holds the stopword datasets and the registry that maps a
// source name to its dataset
package sources

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"stopwords/internal/platform/config"
	perr "stopwords/internal/platform/errors"
	"stopwords/internal/platform/logger"
)

//go:embed data/*.json
var embedded embed.FS

// Builtin lists the embedded sources in registration order
var Builtin = []string{"snowball", "stopwords-iso", "misc", "smart", "marimo", "nltk", "ancient"}

// Registry maps source names to datasets. It is built once and never mutated
type Registry struct {
	order []string
	sets  map[string]*Dataset
}

// Build assembles a registry; names keep argument order and must be unique
func Build(sets ...*Dataset) (*Registry, error) {
	r := &Registry{sets: make(map[string]*Dataset, len(sets))}
	for _, d := range sets {
		if d == nil || d.Name() == "" {
			return nil, perr.InvalidArgf("sources: dataset without a name")
		}
		if _, dup := r.sets[d.Name()]; dup {
			return nil, perr.Conflictf("sources: source %q registered twice", d.Name())
		}
		r.sets[d.Name()] = d
		r.order = append(r.order, d.Name())
	}
	return r, nil
}

// Names returns every registered source name in registration order
func (r *Registry) Names() []string { return append([]string(nil), r.order...) }

// Dataset returns the dataset registered under source
func (r *Registry) Dataset(source string) (*Dataset, error) {
	d, ok := r.sets[source]
	if !ok {
		return nil, perr.WithField(
			perr.SourceNotFoundf("Source %q not found; registered sources: %s.", source, strings.Join(r.order, ", ")),
			"source",
		)
	}
	return d, nil
}

// Languages returns the sorted language codes available for source
func (r *Registry) Languages(source string) ([]string, error) {
	d, err := r.Dataset(source)
	if err != nil {
		return nil, err
	}
	return d.Languages(), nil
}

// Options controls how the default registry is assembled
type Options struct {
	// Dir holds extra <source>.json datasets registered after the builtin ones
	Dir string
}

// OptionsFromEnv reads STOPWORDS_DATA_DIR
func OptionsFromEnv() Options {
	return Options{Dir: config.New().Prefix("STOPWORDS_").MayDir("DATA_DIR")}
}

// LoadEmbedded parses the builtin datasets in registration order
func LoadEmbedded() ([]*Dataset, error) {
	out := make([]*Dataset, 0, len(Builtin))
	for _, name := range Builtin {
		raw, err := embedded.ReadFile("data/" + name + ".json")
		if err != nil {
			return nil, fmt.Errorf("sources: read %s: %w", name, err)
		}
		d, err := Parse(name, raw)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

// LoadDir parses every *.json file in dir; the file stem is the source name.
// Files are taken in lexical order so registration order is stable
func LoadDir(dir string) ([]*Dataset, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("sources: scan %s: %w", dir, err)
	}
	sort.Strings(paths)
	out := make([]*Dataset, 0, len(paths))
	for _, p := range paths {
		raw, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("sources: read %s: %w", p, err)
		}
		d, err := Parse(strings.TrimSuffix(filepath.Base(p), ".json"), raw)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

// Open builds a registry from the builtin datasets plus opt.Dir
func Open(opt Options) (*Registry, error) {
	sets, err := LoadEmbedded()
	if err != nil {
		return nil, err
	}
	if opt.Dir != "" {
		extra, err := LoadDir(opt.Dir)
		if err != nil {
			return nil, err
		}
		sets = append(sets, extra...)
	}
	return Build(sets...)
}

var (
	defOnce sync.Once
	defReg  *Registry
	defErr  error
)

// Default returns the process-wide registry, built on first use from the
// builtin datasets and STOPWORDS_DATA_DIR. Later calls return the same value
func Default() (*Registry, error) {
	defOnce.Do(func() {
		opt := OptionsFromEnv()
		defReg, defErr = Open(opt)
		if defErr != nil {
			return
		}
		logger.Named("sources").Debug().
			Strs("sources", defReg.Names()).
			Str("overlay", opt.Dir).
			Msg("stopword registry ready")
	})
	return defReg, defErr
}
