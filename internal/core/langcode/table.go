// Package langcode maps language names to ISO 639-1 codes
package langcode

import (
	"bufio"
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"strings"
	"sync"

	"stopwords/internal/core/normalize"
)

//go:embed iso639_1.tsv
var iso639 []byte

// Excluded codes are dropped at load; their names repeat "Norwegian" and
// would make the plain name ambiguous
var Excluded = []string{"nn", "nb"}

// Entry is one row of the name table
type Entry struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Table is a read-only name to code table
type Table struct {
	entries []Entry
	folded  []string
	byCode  map[string]int
}

// Parse reads "<code>\t<name>" lines. Blank lines and lines starting with
// '#' are skipped. Codes listed in Excluded are dropped
func Parse(r io.Reader) (*Table, error) {
	t := &Table{byCode: map[string]int{}}
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		code, name, ok := strings.Cut(s, "\t")
		code, name = strings.TrimSpace(code), strings.TrimSpace(name)
		if !ok || code == "" || name == "" {
			return nil, fmt.Errorf("langcode: line %d: want <code>\\t<name>", line)
		}
		if excluded(code) {
			continue
		}
		if _, dup := t.byCode[code]; dup {
			return nil, fmt.Errorf("langcode: line %d: duplicate code %q", line, code)
		}
		t.byCode[code] = len(t.entries)
		t.entries = append(t.entries, Entry{Code: code, Name: name})
		t.folded = append(t.folded, normalize.Fold(name))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("langcode: %w", err)
	}
	if len(t.entries) == 0 {
		return nil, fmt.Errorf("langcode: empty table")
	}
	return t, nil
}

var (
	defOnce  sync.Once
	defTable *Table
)

// Default returns the embedded ISO 639-1 table; it panics if the embedded
// data does not parse
func Default() *Table {
	defOnce.Do(func() {
		t, err := Parse(bytes.NewReader(iso639))
		if err != nil {
			panic(err)
		}
		defTable = t
	})
	return defTable
}

// Len returns the number of entries
func (t *Table) Len() int { return len(t.entries) }

// Entries returns a copy of the table rows in file order
func (t *Table) Entries() []Entry { return append([]Entry(nil), t.entries...) }

// Name returns the full name registered for code
func (t *Table) Name(code string) (string, bool) {
	i, ok := t.byCode[code]
	if !ok {
		return "", false
	}
	return t.entries[i].Name, true
}

// Match returns every entry whose name contains name, compared
// case-insensitively. An empty name matches nothing
func (t *Table) Match(name string) []Entry {
	needle := normalize.Fold(name)
	if needle == "" {
		return nil
	}
	var out []Entry
	for i, f := range t.folded {
		if strings.Contains(f, needle) {
			out = append(out, t.entries[i])
		}
	}
	return out
}

func excluded(code string) bool {
	for _, c := range Excluded {
		if c == code {
			return true
		}
	}
	return false
}
