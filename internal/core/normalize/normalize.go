// Package normalize folds language names and specifiers for comparison
// Pipeline order
// 1 UTF-8 repair drop invalid bytes
// 2 Unicode NFKC normalization
// 3 Unicode case folding
//
// Whitespace is kept: " de" is not "de".
// Diacritics are kept: "Bokmål" and "Bokmal" are different names.
package normalize

import (
	"strings"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// pool of fresh transformer chains; a chain is stateful and not safe to share
var chainPool = sync.Pool{
	New: func() any {
		return transform.Chain(
			norm.NFKC,
			cases.Fold(),
		)
	},
}

// Fold returns the comparison form of s following the pipeline above
func Fold(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ToValidUTF8(s, "")

	tr := chainPool.Get().(transform.Transformer)
	out, _, err := transform.String(tr, s)
	tr.Reset()
	chainPool.Put(tr)
	if err != nil {
		// fall back to the simple fold rather than dropping the input
		out = strings.ToLower(s)
	}
	return out
}

// Equal reports whether a and b fold to the same string
func Equal(a, b string) bool { return Fold(a) == Fold(b) }
