package stopwords

import (
	"fmt"
	"strings"

	"stopwords/internal/core/normalize"
)

// Defaults used when a request leaves language or source unset
const (
	DefaultLanguage = "en"
	DefaultSource   = "snowball"
)

const (
	smartSource = "smart"
	miscSource  = "misc"
)

// codes that used to live in the default source and moved to misc
var movedToMisc = map[string]struct{}{"el": {}, "ar": {}, "zh": {}}

// rewriteSmart handles the old stopwords("smart") form. It runs only when
// the caller did not pick a source and before any code resolution
func rewriteSmart(language string, sourceSet bool) (lang, source string, n *Notice) {
	if sourceSet || !normalize.Equal(language, smartSource) {
		return language, "", nil
	}
	return DefaultLanguage, smartSource, &Notice{
		Deprecated:  fmt.Sprintf("language=%q", language),
		Replacement: fmt.Sprintf("source=%q", smartSource),
		Message:     fmt.Sprintf(`stopwords(language = %q) is deprecated; use stopwords(source = "smart") instead.`, language),
	}
}

// rewriteMisc handles codes that moved to the misc source. It runs on the
// resolved code and only when the caller did not pick a source
func rewriteMisc(code string, sourceSet bool) (lang, source string, n *Notice) {
	lower := strings.ToLower(code)
	if _, moved := movedToMisc[lower]; sourceSet || !moved {
		return code, "", nil
	}
	return lower, miscSource, &Notice{
		Deprecated:  fmt.Sprintf("language=%q", code),
		Replacement: fmt.Sprintf("language=%q, source=%q", lower, miscSource),
		Message:     fmt.Sprintf(`stopwords(language = %q) without a source is deprecated; use stopwords(language = %q, source = "misc") instead.`, code, lower),
	}
}
