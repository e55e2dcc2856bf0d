package stopwords

import (
	"context"
	"encoding/json"
	"reflect"
	"strings"
	"sync"
	"testing"

	"stopwords/internal/core/sources"
	perr "stopwords/internal/platform/errors"
	"stopwords/internal/platform/testkit"
)

type recorder struct {
	mu      sync.Mutex
	notices []Notice
}

func (r *recorder) Notify(_ context.Context, n Notice) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notices = append(r.notices, n)
}

func newService(t *testing.T) (*Service, *recorder) {
	t.Helper()
	reg, err := sources.Open(sources.Options{})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	rec := &recorder{}
	return New(reg, WithSink(rec)), rec
}

func TestEveryListedLanguageResolves(t *testing.T) {
	svc, rec := newService(t)
	for _, src := range svc.Sources() {
		langs, err := svc.Languages(src)
		if err != nil {
			t.Fatalf("Languages(%s): %v", src, err)
		}
		for _, code := range langs {
			l, err := svc.Stopwords(code, src, true)
			if err != nil {
				t.Fatalf("Stopwords(%s, %s): %v", code, src, err)
			}
			if l.Len() == 0 || l.Nested() {
				t.Fatalf("Stopwords(%s, %s) = %+v", code, src, l)
			}
		}
	}
	if len(rec.notices) != 0 {
		t.Fatalf("explicit source must not raise notices: %v", rec.notices)
	}
}

func TestDefaults(t *testing.T) {
	svc, _ := newService(t)
	res, err := svc.Lookup(context.Background(), Request{Simplify: true})
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if res.Language != "en" || res.Source != "snowball" {
		t.Fatalf("defaults = %s/%s", res.Language, res.Source)
	}

	en, err := svc.Stopwords("en", "", true)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(en, res.Words) {
		t.Fatalf(`Stopwords("en") differs from the default list`)
	}
	de, err := svc.Stopwords("de", "", true)
	if err != nil || de.Len() == 0 {
		t.Fatalf(`Stopwords("de") = %d words, %v`, de.Len(), err)
	}
}

func TestSmartRewrite(t *testing.T) {
	svc, rec := newService(t)
	got, err := svc.Lookup(context.Background(), NewRequest("SMART", ""))
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	want, err := svc.Stopwords("en", "smart", true)
	if err != nil {
		t.Fatal(err)
	}
	if got.Source != "smart" || got.Language != "en" || !reflect.DeepEqual(got.Words, want) {
		t.Fatalf("smart rewrite = %s/%s", got.Language, got.Source)
	}
	if len(got.Notices) != 1 || len(rec.notices) != 1 {
		t.Fatalf("expected one notice, got %v / %v", got.Notices, rec.notices)
	}
	testkit.MustContain(t, got.Notices[0].Replacement, `source="smart"`)

	// an explicit source turns the rewrite off; "smart" is then a name lookup
	_, err = svc.Lookup(context.Background(), NewRequest("smart", "snowball"))
	testkit.MustCode(t, err, perr.ErrorCodeLanguageNotFound)
}

func TestMiscRewrite(t *testing.T) {
	svc, _ := newService(t)
	want, err := svc.Stopwords("el", "misc", true)
	if err != nil {
		t.Fatal(err)
	}
	for _, spec := range []string{"el", "EL", "greek", "Greek"} {
		t.Run(spec, func(t *testing.T) {
			res, err := svc.Lookup(context.Background(), NewRequest(spec, ""))
			if err != nil {
				t.Fatalf("Lookup(%s): %v", spec, err)
			}
			if res.Source != "misc" || res.Language != "el" {
				t.Fatalf("rewrite = %s/%s", res.Language, res.Source)
			}
			if !reflect.DeepEqual(res.Words, want) {
				t.Fatalf("words differ from misc/el")
			}
			if len(res.Notices) != 1 {
				t.Fatalf("notices = %v", res.Notices)
			}
		})
	}

	// explicit source keeps the caller's choice
	res, err := svc.Lookup(context.Background(), NewRequest("el", "stopwords-iso"))
	if err != nil {
		t.Fatal(err)
	}
	if res.Source != "stopwords-iso" || len(res.Notices) != 0 {
		t.Fatalf("explicit source rewritten: %+v", res)
	}
}

func TestNameResolution(t *testing.T) {
	svc, _ := newService(t)
	res, err := svc.Lookup(context.Background(), NewRequest("German", ""))
	if err != nil {
		t.Fatal(err)
	}
	if res.Language != "de" {
		t.Fatalf("German -> %s", res.Language)
	}

	// three-letter key with no name match falls back to the source keys
	res, err = svc.Lookup(context.Background(), NewRequest("grc", "ancient"))
	if err != nil {
		t.Fatal(err)
	}
	if res.Language != "grc" {
		t.Fatalf("grc -> %s", res.Language)
	}
}

func TestAmbiguousName(t *testing.T) {
	svc, _ := newService(t)
	_, err := svc.Stopwords("malay", "", true)
	testkit.MustCode(t, err, perr.ErrorCodeAmbiguousLanguage)
	msg := err.Error()
	for _, name := range []string{"\nMalay\n", "\nMalayalam\n"} {
		testkit.MustContain(t, msg, name)
	}
	if !strings.HasSuffix(msg, noteLanguages("snowball")) {
		t.Fatalf("missing note: %q", msg)
	}
}

func TestNotFound(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.Stopwords("en", "not-a-real-source", true)
	testkit.MustCode(t, err, perr.ErrorCodeSourceNotFound)
	testkit.MustContain(t, err.Error(), "not-a-real-source")
	testkit.MustContain(t, err.Error(), "\n"+noteSources)

	_, err = svc.Stopwords("zz", "", true)
	testkit.MustCode(t, err, perr.ErrorCodeLanguageNotFound)
	if err.Error() != "Language \"zz\" not found.\n"+noteLanguages("snowball") {
		t.Fatalf("Error() = %q", err.Error())
	}

	_, err = svc.Stopwords("klingon", "", true)
	testkit.MustCode(t, err, perr.ErrorCodeLanguageNotFound)
	testkit.MustContain(t, err.Error(), `"klingon"`)

	// the resolver's fallback sees the unknown source first
	_, err = svc.Stopwords("grc", "nowhere", true)
	testkit.MustCode(t, err, perr.ErrorCodeSourceNotFound)
}

func TestSimplify(t *testing.T) {
	svc, _ := newService(t)
	nested, err := svc.Stopwords("en", "marimo", false)
	if err != nil {
		t.Fatal(err)
	}
	if !nested.Nested() || len(nested.Groups) < 2 {
		t.Fatalf("expected nested list, got %+v", nested)
	}
	flat, err := svc.Stopwords("en", "marimo", true)
	if err != nil {
		t.Fatal(err)
	}
	if flat.Nested() {
		t.Fatalf("simplify returned nested list")
	}
	sum := 0
	var want []string
	for _, g := range nested.Groups {
		sum += len(g.Words)
		want = append(want, g.Words...)
	}
	if len(flat.Words) != sum || !reflect.DeepEqual(flat.Words, want) {
		t.Fatalf("flattened %d words, want %d in group order", len(flat.Words), sum)
	}

	// flat sources ignore the flag
	a, _ := svc.Stopwords("en", "snowball", false)
	b, _ := svc.Stopwords("en", "snowball", true)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("simplify changed a flat list")
	}

	out, err := json.Marshal(nested)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(out), `{"`+nested.Groups[0].Name+`":`) {
		t.Fatalf("nested JSON lost group order: %.40s", out)
	}
}

func TestResultsDoNotShareRegistryMemory(t *testing.T) {
	svc, _ := newService(t)

	flat, err := svc.Stopwords("en", "", true)
	if err != nil {
		t.Fatal(err)
	}
	first := flat.Words[0]
	flat.Words[0] = "CORRUPTED"
	again, _ := svc.Stopwords("en", "", true)
	if again.Words[0] != first {
		t.Fatalf("first word after mutating a result = %q, want %q", again.Words[0], first)
	}

	nested, err := svc.Stopwords("en", "marimo", false)
	if err != nil {
		t.Fatal(err)
	}
	word, name := nested.Groups[0].Words[0], nested.Groups[0].Name
	nested.Groups[0].Words[0] = "CORRUPTED"
	nested.Groups[0].Name = "CORRUPTED"

	raw, _ := svc.Stopwords("en", "marimo", false)
	if raw.Groups[0].Words[0] != word || raw.Groups[0].Name != name {
		t.Fatalf("nested list changed through a result: %q/%q", raw.Groups[0].Name, raw.Groups[0].Words[0])
	}
	simple, _ := svc.Stopwords("en", "marimo", true)
	if simple.Words[0] != word {
		t.Fatalf("flattened first word = %q, want %q", simple.Words[0], word)
	}

	res, err := svc.Lookup(context.Background(), NewRequest("de", ""))
	if err != nil {
		t.Fatal(err)
	}
	res.Words.Words[0] = "CORRUPTED"
	if again, _ := svc.Stopwords("de", "", true); again.Words[0] == "CORRUPTED" {
		t.Fatalf("Lookup result aliases the registry")
	}
}

func TestBlankAndPaddedSpecifiers(t *testing.T) {
	svc, _ := newService(t)
	cases := []struct {
		name     string
		language string
		code     perr.ErrorCode
		msg      string
	}{
		{"single space", " ", perr.ErrorCodeLanguageNotFound,
			"Language \" \" not found.\n" + noteLanguages("snowball")},
		{"only whitespace", "   ", perr.ErrorCodeLanguageNotFound,
			"Language \"   \" not available in source \"snowball\".\n" + noteLanguages("snowball")},
		{"leading space", " de", perr.ErrorCodeLanguageNotFound,
			"Language \" de\" not available in source \"snowball\".\n" + noteLanguages("snowball")},
		{"trailing space", "de ", perr.ErrorCodeLanguageNotFound,
			"Language \"de \" not available in source \"snowball\".\n" + noteLanguages("snowball")},
		{"padded name", " German ", perr.ErrorCodeLanguageNotFound,
			"Language \" German \" not available in source \"snowball\".\n" + noteLanguages("snowball")},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := svc.Lookup(context.Background(), NewRequest(c.language, ""))
			testkit.MustCode(t, err, c.code)
			if err.Error() != c.msg {
				t.Fatalf("Error() = %q, want %q", err.Error(), c.msg)
			}
			if e, _ := perr.As(err); e.Field() != "language" {
				t.Fatalf("field = %q", e.Field())
			}
		})
	}

	// an empty value is the default, not a blank name
	res, err := svc.Lookup(context.Background(), NewRequest("", ""))
	if err != nil || res.Language != DefaultLanguage {
		t.Fatalf("empty language = %s, %v", res.Language, err)
	}
}

func TestResolverErrorBodies(t *testing.T) {
	svc, _ := newService(t)

	// no match and no key: the default body
	_, err := svc.Stopwords("klingon", "", true)
	testkit.MustCode(t, err, perr.ErrorCodeLanguageNotFound)
	want := "Language \"klingon\" not available in source \"snowball\".\n" + noteLanguages("snowball")
	if err.Error() != want {
		t.Fatalf("Error() = %q", err.Error())
	}

	// ambiguity keeps the candidates
	_, err = svc.Stopwords("malay", "", true)
	testkit.MustCode(t, err, perr.ErrorCodeAmbiguousLanguage)
	testkit.MustContain(t, err.Error(), "\nMalay\n")

	// an unknown source during the key fallback reads like the registry error
	_, err = svc.Stopwords("grc", "nowhere", true)
	testkit.MustCode(t, err, perr.ErrorCodeSourceNotFound)
	testkit.MustContain(t, err.Error(), "registered sources: ")
	testkit.MustContain(t, err.Error(), "\n"+noteSources)
	if e, _ := perr.As(err); e.Field() != "source" {
		t.Fatalf("field = %q", e.Field())
	}
}

func TestNilRegistryResolverHasNoCatalog(t *testing.T) {
	svc := New(nil, WithSink(Discard))
	_, err := svc.Code("grc", "ancient")
	testkit.MustCode(t, err, perr.ErrorCodeLanguageNotFound)

	_, err = svc.Lookup(context.Background(), NewRequest("klingon", ""))
	testkit.MustCode(t, err, perr.ErrorCodeLanguageNotFound)
}

func TestMultiValuedArgumentsRejected(t *testing.T) {
	// a registry-free service proves the check runs before any dataset access
	svc := New(nil, WithSink(Discard))
	cases := []struct {
		name  string
		req   Request
		field string
	}{
		{"language", Request{Language: []string{"en", "de"}}, "language"},
		{"source", Request{Source: []string{"snowball", "smart"}}, "source"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := svc.Lookup(context.Background(), c.req)
			testkit.MustCode(t, err, perr.ErrorCodeInvalidArgument)
			if e, _ := perr.As(err); e.Field() != c.field {
				t.Fatalf("field = %q", e.Field())
			}
			testkit.MustContain(t, err.Error(), "\n"+noteArity)
		})
	}
}

func TestConcurrentLookups(t *testing.T) {
	svc, _ := newService(t)
	var wg sync.WaitGroup
	errs := make(chan error, 64)
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			specs := []string{"en", "German", "smart", "el", "french"}
			if _, err := svc.Lookup(context.Background(), NewRequest(specs[i%len(specs)], "")); err != nil {
				errs <- err
			}
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatalf("concurrent lookup: %v", err)
	}
}

func TestPackageDefault(t *testing.T) {
	names, err := Sources()
	if err != nil {
		t.Fatal(err)
	}
	if names[0] != DefaultSource {
		t.Fatalf("first source = %s", names[0])
	}
	if _, err := Languages("nope"); !perr.IsCode(err, perr.ErrorCodeSourceNotFound) {
		t.Fatalf("Languages(nope) = %v", err)
	}
	l, err := Stopwords("en", "", true)
	if err != nil || l.Len() == 0 {
		t.Fatalf("Stopwords(en) = %d, %v", l.Len(), err)
	}
}

func TestCodeAndLabel(t *testing.T) {
	svc, _ := newService(t)
	code, err := svc.Code("castilian", "")
	if err != nil || code != "es" {
		t.Fatalf("Code(castilian) = %q, %v", code, err)
	}
	if l, ok := svc.Label("es"); !ok || l != "Spanish; Castilian" {
		t.Fatalf("Label(es) = %q, %v", l, ok)
	}
	if _, ok := svc.Label("nb"); ok {
		t.Fatalf("excluded code has a label")
	}
	_, err = svc.Code("grc", "nowhere")
	testkit.MustCode(t, err, perr.ErrorCodeSourceNotFound)
}
