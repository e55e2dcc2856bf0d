package stopwords

import "stopwords/internal/core/sources"

// Stopwords resolves language and source against the process-wide registry
func Stopwords(language, source string, simplify bool) (sources.List, error) {
	svc, err := Default()
	if err != nil {
		return sources.List{}, err
	}
	return svc.Stopwords(language, source, simplify)
}

// Sources lists the sources of the process-wide registry
func Sources() ([]string, error) {
	svc, err := Default()
	if err != nil {
		return nil, err
	}
	return svc.Sources(), nil
}

// Languages lists the codes of source in the process-wide registry
func Languages(source string) ([]string, error) {
	svc, err := Default()
	if err != nil {
		return nil, err
	}
	return svc.Languages(source)
}
