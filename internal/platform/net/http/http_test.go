package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"stopwords/internal/platform/config"
	perr "stopwords/internal/platform/errors"
	pnet "stopwords/internal/platform/net"
	phttp "stopwords/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
)

type echoQuery struct {
	Language []string `query:"language" validate:"dive,langspec"`
	Simplify *bool    `query:"simplify"`
}

type echoBody struct {
	Language string `json:"language" validate:"required"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) phttp.Envelope {
	t.Helper()
	var env phttp.Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
	return env
}

func newRouter() phttp.Router {
	r := phttp.AdaptChi(chi.NewRouter())
	phttp.GetJSON(r, "/ok", func(*http.Request) (any, error) { return []string{"a"}, nil })
	phttp.GetJSON(r, "/fail", func(*http.Request) (any, error) {
		return nil, perr.LanguageNotFoundf("Language \"zz\" not found.\nnote")
	})
	phttp.GetJSON(r, "/plain", func(*http.Request) (any, error) { return nil, errors.New("boom") })
	phttp.GetJSON(r, "/created", func(*http.Request) (any, error) {
		return phttp.Response{Status: http.StatusCreated, Body: "x", Header: http.Header{"X-Extra": {"1"}}}, nil
	})
	phttp.GetQuery(r, "/query", func(_ *http.Request, q echoQuery) (any, error) { return q, nil })
	phttp.PostJSON(r, "/body", func(_ *http.Request, b echoBody) (any, error) { return b, nil })
	r.Route("/items", func(sub phttp.Router) {
		sub.Get("/{id}", func(w http.ResponseWriter, req *http.Request) {
			phttp.RespondOK(w, req, phttp.Param(req, "id"))
		})
	})
	return r
}

func serve(r phttp.Router, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, req)
	return rec
}

func TestEnvelopeSuccess(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	req = req.WithContext(pnet.WithRequest(req.Context(), "rid-1"))
	rec := serve(newRouter(), req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Fatalf("content-type %q", ct)
	}
	env := decode(t, rec)
	if env.StatusCode != 200 || env.RequestID != "rid-1" || env.Data == nil {
		t.Fatalf("bad envelope %+v", env)
	}
}

func TestEnvelopeErrors(t *testing.T) {
	r := newRouter()

	rec := serve(r, httptest.NewRequest(http.MethodGet, "/fail", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status %d", rec.Code)
	}
	env := decode(t, rec)
	if env.Kind != "language_not_found" || env.Error != "Language \"zz\" not found.\nnote" {
		t.Fatalf("bad envelope %+v", env)
	}

	rec = serve(r, httptest.NewRequest(http.MethodGet, "/plain", nil))
	if rec.Code != http.StatusInternalServerError || decode(t, rec).Kind != "unknown" {
		t.Fatalf("foreign error mapped to %d", rec.Code)
	}

	rec = serve(r, httptest.NewRequest(http.MethodGet, "/nowhere", nil))
	if rec.Code != http.StatusNotFound || decode(t, rec).Kind != "not_found" {
		t.Fatalf("unknown route %d", rec.Code)
	}

	rec = serve(r, httptest.NewRequest(http.MethodPost, "/ok", nil))
	if rec.Code != http.StatusMethodNotAllowed || decode(t, rec).StatusCode != http.StatusMethodNotAllowed {
		t.Fatalf("wrong method %d", rec.Code)
	}
}

func TestResponsePassThrough(t *testing.T) {
	rec := serve(newRouter(), httptest.NewRequest(http.MethodGet, "/created", nil))
	if rec.Code != http.StatusCreated || rec.Header().Get("X-Extra") != "1" {
		t.Fatalf("status %d header %v", rec.Code, rec.Header())
	}
}

func TestQueryAndBodyBinding(t *testing.T) {
	r := newRouter()

	rec := serve(r, httptest.NewRequest(http.MethodGet, "/query?language=en&language=de&simplify=0", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("query status %d: %s", rec.Code, rec.Body.String())
	}
	data := decode(t, rec).Data.(map[string]any)
	if langs := data["Language"].([]any); len(langs) != 2 {
		t.Fatalf("languages %v", langs)
	}

	rec = serve(r, httptest.NewRequest(http.MethodGet, "/query?simplify=nope", nil))
	if rec.Code != http.StatusBadRequest || decode(t, rec).Field != "simplify" {
		t.Fatalf("bad bool status %d", rec.Code)
	}

	rec = serve(r, httptest.NewRequest(http.MethodPost, "/body", strings.NewReader(`{"language":"en"}`)))
	if rec.Code != http.StatusOK {
		t.Fatalf("body status %d", rec.Code)
	}
	rec = serve(r, httptest.NewRequest(http.MethodPost, "/body", strings.NewReader(`{}`)))
	if rec.Code != http.StatusBadRequest || decode(t, rec).Kind != "validation" {
		t.Fatalf("missing field status %d", rec.Code)
	}
}

func TestParam(t *testing.T) {
	rec := serve(newRouter(), httptest.NewRequest(http.MethodGet, "/items/snowball", nil))
	if env := decode(t, rec); env.Data != "snowball" {
		t.Fatalf("param = %v", env.Data)
	}
}

func TestProfilerMount(t *testing.T) {
	r := phttp.AdaptChi(chi.NewRouter())
	phttp.MountProfiler(r, "/debug", true)
	rec := serve(r, httptest.NewRequest(http.MethodGet, "/debug/pprof/", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("pprof index status %d", rec.Code)
	}

	off := phttp.AdaptChi(chi.NewRouter())
	phttp.MountProfiler(off, "/debug", false)
	if rec := serve(off, httptest.NewRequest(http.MethodGet, "/debug/pprof/", nil)); rec.Code != http.StatusNotFound {
		t.Fatalf("disabled profiler answered %d", rec.Code)
	}
}

func TestServerRunStopsOnCancel(t *testing.T) {
	t.Setenv("TEST_API_PORT", "127.0.0.1:0")
	srv := phttp.NewServer(config.New().Prefix("TEST_API_"))
	if srv.Addr() != "127.0.0.1:0" {
		t.Fatalf("addr = %q", srv.Addr())
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()
	time.Sleep(20 * time.Millisecond)
	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("server did not stop")
	}
}

func TestServerDefaultAddr(t *testing.T) {
	srv := phttp.NewServer(config.New().Prefix("UNSET_PREFIX_"))
	if srv.Addr() != ":4000" {
		t.Fatalf("default addr = %q", srv.Addr())
	}
	if srv.Handler() == nil || srv.Router().Mux() == nil {
		t.Fatalf("nil handler")
	}
}
