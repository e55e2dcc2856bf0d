package bind

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"sync"

	perr "stopwords/internal/platform/errors"

	"github.com/go-playground/form/v4"
)

var (
	qOnce    sync.Once
	qDecoder *form.Decoder
)

// queryDecoder returns the shared form decoder reading `query:"name"` tags
func queryDecoder() *form.Decoder {
	qOnce.Do(func() {
		d := form.NewDecoder()
		d.SetTagName("query")
		d.RegisterCustomTypeFunc(decodeBool, false)
		d.RegisterCustomTypeFunc(decodeInt, 0)
		qDecoder = d
	})
	return qDecoder
}

// ParseQuery binds query parameters into the fields of T tagged
// `query:"name"` and validates the result. A []string keeps every repeated
// value and a *bool stays nil when the parameter is absent
func ParseQuery[T any](r *http.Request) (T, error) {
	var dst T
	if err := queryDecoder().Decode(&dst, r.URL.Query()); err != nil {
		var zero T
		return zero, queryError(err)
	}
	if err := Struct(dst); err != nil {
		var zero T
		return zero, err
	}
	return dst, nil
}

// decodeBool treats a bare ?flag as true
func decodeBool(vals []string) (any, error) {
	if len(vals) == 0 || vals[0] == "" {
		return true, nil
	}
	b, err := strconv.ParseBool(vals[0])
	if err != nil {
		return nil, errors.New("must be a boolean")
	}
	return b, nil
}

func decodeInt(vals []string) (any, error) {
	if len(vals) == 0 {
		return 0, nil
	}
	n, err := strconv.Atoi(vals[0])
	if err != nil {
		return nil, errors.New("must be an integer")
	}
	return n, nil
}

// queryError reports the first failing parameter, by name, as a validation error
func queryError(err error) error {
	var derrs form.DecodeErrors
	if !errors.As(err, &derrs) || len(derrs) == 0 {
		return perr.Wrapf(err, perr.ErrorCodeValidation, "invalid query: %v", err)
	}
	names := make([]string, 0, len(derrs))
	for name := range derrs {
		names = append(names, name)
	}
	sort.Strings(names)
	name := names[0]
	return perr.WithField(perr.New(perr.ErrorCodeValidation, fmt.Sprintf("%s %v", name, derrs[name])), name)
}
