package net_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	perr "stopwords/internal/platform/errors"
	"stopwords/internal/platform/logger"
	pnet "stopwords/internal/platform/net"
)

func TestWithRequest(t *testing.T) {
	base := context.Background()

	ctx := pnet.WithRequest(base, "req-123")
	if got := pnet.RequestID(ctx); got != "req-123" {
		t.Fatalf("RequestID got %q want %q", got, "req-123")
	}
	if got := logger.RequestID(ctx); got != "req-123" {
		t.Fatalf("logger RequestID got %q", got)
	}

	if ctx := pnet.WithRequest(base, ""); ctx != base {
		t.Fatalf("expected ctx to be unchanged for an empty id")
	}
	if got := pnet.RequestID(base); got != "" {
		t.Fatalf("RequestID got %q want empty", got)
	}
}

func TestOK(t *testing.T) {
	status, w := pnet.OK([]string{"a"}, "req-1")
	if status != http.StatusOK || w.StatusCode != http.StatusOK || w.Status != "OK" {
		t.Fatalf("unexpected envelope %+v", w)
	}
	if w.RequestID != "req-1" || w.Error != "" || w.Code != 0 {
		t.Fatalf("unexpected envelope %+v", w)
	}
}

func TestError(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		kind   string
	}{
		{"invalid", perr.InvalidArgf("bad"), http.StatusUnprocessableEntity, "invalid_argument"},
		{"source", perr.SourceNotFoundf("nope"), http.StatusNotFound, "source_not_found"},
		{"language", perr.LanguageNotFoundf("nope"), http.StatusNotFound, "language_not_found"},
		{"ambiguous", perr.Ambiguousf("a\nb"), http.StatusConflict, "ambiguous_language"},
		{"foreign", errors.New("boom"), http.StatusInternalServerError, "unknown"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			status, w := pnet.Error(c.err, "r")
			if status != c.status || w.StatusCode != c.status {
				t.Fatalf("status %d want %d", status, c.status)
			}
			if w.Kind != c.kind {
				t.Fatalf("kind %q want %q", w.Kind, c.kind)
			}
			if w.Error == "" {
				t.Fatalf("missing message")
			}
		})
	}

	status, w := pnet.Error(perr.WithField(perr.InvalidArgf("x"), "language"), "")
	if status != http.StatusUnprocessableEntity || w.Field != "language" {
		t.Fatalf("field not carried: %+v", w)
	}

	if status, _ := pnet.Error(nil, ""); status != http.StatusOK {
		t.Fatalf("nil error status %d", status)
	}
}
