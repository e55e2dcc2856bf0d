package stopwords

import (
	"fmt"

	perr "stopwords/internal/platform/errors"
)

// ErrorFunc raises a terminal error; see MakeError
type ErrorFunc func(override ...string) error

// MakeError returns a function producing errors of the form "<body>\n<note>".
// The body is the first override when it is non-empty, otherwise defaultMsg;
// later overrides are ignored. The error wraps nothing, so its text is
// exactly that message
func MakeError(code perr.ErrorCode, defaultMsg, note string) ErrorFunc {
	return func(override ...string) error {
		body := defaultMsg
		if len(override) > 0 && override[0] != "" {
			body = override[0]
		}
		return perr.New(code, body+"\n"+note)
	}
}

func noteLanguages(source string) string {
	return fmt.Sprintf("Run Languages(%q) to list the language codes of this source.", source)
}

const (
	noteSources = "Run Sources() to list the registered sources."
	noteArity   = "Language and source each take a single value."
)
