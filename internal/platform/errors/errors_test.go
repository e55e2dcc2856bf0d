package errors

import (
	stderrs "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPStatusCodeMapping(t *testing.T) {
	cases := []struct {
		code ErrorCode
		want int
	}{
		{ErrorCodeNotFound, http.StatusNotFound},
		{ErrorCodeSourceNotFound, http.StatusNotFound},
		{ErrorCodeLanguageNotFound, http.StatusNotFound},
		{ErrorCodeInvalidArgument, http.StatusUnprocessableEntity},
		{ErrorCodeAmbiguousLanguage, http.StatusConflict},
		{ErrorCodeConflict, http.StatusConflict},
		{ErrorCodeValidation, http.StatusBadRequest},
		{ErrorCodeJSON, http.StatusBadRequest},
		{ErrorCodePanic, http.StatusInternalServerError},
		{ErrorCodeUnknown, http.StatusInternalServerError},
		{9999, http.StatusInternalServerError}, // default branch
	}
	for _, c := range cases {
		if got := HTTPStatusCode(c.code); got != c.want {
			t.Fatalf("HTTPStatusCode(%v) = %d, want %d", c.code, got, c.want)
		}
	}
}

func TestErrorCodeString(t *testing.T) {
	if got := ErrorCodeAmbiguousLanguage.String(); got != "ambiguous_language" {
		t.Fatalf("String() = %q", got)
	}
	if got := ErrorCode(777).String(); got != "code(777)" {
		t.Fatalf("String() for unknown = %q", got)
	}
}

func TestErrorTypeAndMethods(t *testing.T) {
	var e *Error
	if e.Error() != "<nil>" {
		t.Fatalf("nil *Error render = %q, want <nil>", e.Error())
	}

	e1 := New(ErrorCodeValidation, "bad stuff")
	if CodeOf(e1) != ErrorCodeValidation {
		t.Fatalf("CodeOf(New) = %v", CodeOf(e1))
	}
	e2 := Newf(ErrorCodeJSON, "bad json %d", 12)
	if got := e2.Error(); got != "bad json 12" {
		t.Fatalf("Newf().Error = %q", got)
	}

	src := stderrs.New("root")
	e3 := Wrap(src, ErrorCodeSourceNotFound, "open failed")
	if u := stderrs.Unwrap(e3); u == nil || u.Error() != "root" {
		t.Fatalf("Wrap did not keep orig")
	}
	if got := e3.Error(); got != "open failed: root" {
		t.Fatalf("Wrap().Error = %q", got)
	}
	if got := MessageOf(e3); got != "open failed" {
		t.Fatalf("MessageOf(Wrap) = %q", got)
	}
	e4 := Wrapf(src, ErrorCodeUnknown, "step %s", "x")
	if Root(e4) != src {
		t.Fatalf("Root did not reach orig")
	}
	if Root(nil) != nil {
		t.Fatalf("Root(nil) should be nil")
	}
}

func TestMutatorsCopyOnWrite(t *testing.T) {
	base := InvalidArgf("language must be a single value")
	withField := WithField(base, "language")
	withOp := WithOp(withField, "lookup")

	b, _ := As(base)
	if b.Field() != "" || b.Op() != "" {
		t.Fatalf("base mutated: field=%q op=%q", b.Field(), b.Op())
	}
	w, _ := As(withOp)
	if w.Field() != "language" || w.Op() != "lookup" {
		t.Fatalf("mutators lost data: field=%q op=%q", w.Field(), w.Op())
	}

	foreign := fmt.Errorf("plain")
	if WithField(foreign, "x") != foreign || WithOp(foreign, "y") != foreign {
		t.Fatalf("foreign errors must pass through unchanged")
	}
}

func TestSugarCodes(t *testing.T) {
	cases := []struct {
		err  error
		code ErrorCode
	}{
		{NotFoundf("x"), ErrorCodeNotFound},
		{InvalidArgf("x"), ErrorCodeInvalidArgument},
		{SourceNotFoundf("x"), ErrorCodeSourceNotFound},
		{LanguageNotFoundf("x"), ErrorCodeLanguageNotFound},
		{Ambiguousf("x"), ErrorCodeAmbiguousLanguage},
		{Conflictf("x"), ErrorCodeConflict},
		{JSONErrf("x"), ErrorCodeJSON},
		{PanicErrf("x"), ErrorCodePanic},
		{Internalf("x"), ErrorCodeUnknown},
	}
	for _, c := range cases {
		if !IsCode(c.err, c.code) {
			t.Fatalf("IsCode(%v, %v) = false", c.err, c.code)
		}
	}
}

func TestWireAndHTTP(t *testing.T) {
	if w := WireFrom(nil); w != (Wire{}) {
		t.Fatalf("WireFrom(nil) = %+v", w)
	}
	w := WireFrom(WithField(LanguageNotFoundf("Language \"zz\" not found."), "language"))
	if w.Code != ErrorCodeLanguageNotFound || w.Field != "language" || w.Message != "Language \"zz\" not found." {
		t.Fatalf("unexpected wire %+v", w)
	}
	fw := WireFrom(stderrs.New("boom"))
	if fw.Code != ErrorCodeUnknown || fw.Message != "boom" {
		t.Fatalf("foreign wire %+v", fw)
	}

	status, wire := HTTP(Ambiguousf("two matches"))
	if status != http.StatusConflict || wire.Code != ErrorCodeAmbiguousLanguage {
		t.Fatalf("HTTP() = %d %+v", status, wire)
	}
	status, wire = HTTP(nil)
	if status != http.StatusOK || wire != (Wire{}) {
		t.Fatalf("HTTP(nil) = %d %+v", status, wire)
	}
}
