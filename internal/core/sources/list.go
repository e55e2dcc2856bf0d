package sources

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Group is one named sub-category of a nested stopword list
type Group struct {
	Name  string
	Words []string
}

// List is the value stored per language code. Exactly one shape is used:
// Words for a flat list, Groups for a list nested by sub-category.
// Group order is the order of the source data
type List struct {
	Words  []string
	Groups []Group
}

// Flat builds a flat list
func Flat(words ...string) List { return List{Words: words} }

// Nested builds a list grouped by sub-category
func Nested(groups ...Group) List {
	if groups == nil {
		groups = []Group{}
	}
	return List{Groups: groups}
}

// Nested reports whether the list is grouped by sub-category
func (l List) Nested() bool { return l.Groups != nil }

// Len returns the total number of words across every group
func (l List) Len() int {
	if !l.Nested() {
		return len(l.Words)
	}
	n := 0
	for _, g := range l.Groups {
		n += len(g.Words)
	}
	return n
}

// Flatten returns every word in order, dropping sub-category names
func (l List) Flatten() []string {
	if !l.Nested() {
		return append([]string(nil), l.Words...)
	}
	out := make([]string, 0, l.Len())
	for _, g := range l.Groups {
		out = append(out, g.Words...)
	}
	return out
}

// Simplify returns the flat form of l as a fresh copy
func (l List) Simplify() List {
	return List{Words: l.Flatten()}
}

// Clone returns a deep copy of l; groups and their words share nothing with l
func (l List) Clone() List {
	if !l.Nested() {
		return List{Words: cloneWords(l.Words)}
	}
	groups := make([]Group, len(l.Groups))
	for i, g := range l.Groups {
		groups[i] = Group{Name: g.Name, Words: cloneWords(g.Words)}
	}
	return List{Groups: groups}
}

func cloneWords(words []string) []string {
	if words == nil {
		return nil
	}
	out := make([]string, len(words))
	copy(out, words)
	return out
}

// MarshalJSON renders a flat list as an array and a nested list as an object
// whose keys keep group order
func (l List) MarshalJSON() ([]byte, error) {
	if !l.Nested() {
		return json.Marshal(nonNil(l.Words))
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, g := range l.Groups {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(g.Name)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(nonNil(g.Words))
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON accepts an array of strings or an object of string arrays.
// Object key order is kept, which a map decode would lose
func (l *List) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		return fmt.Errorf("sources: empty list")
	}
	switch b[0] {
	case '[':
		var words []string
		if err := json.Unmarshal(b, &words); err != nil {
			return fmt.Errorf("sources: flat list: %w", err)
		}
		*l = List{Words: nonNil(words)}
		return nil
	case '{':
		dec := json.NewDecoder(bytes.NewReader(b))
		if _, err := dec.Token(); err != nil {
			return fmt.Errorf("sources: nested list: %w", err)
		}
		groups := []Group{}
		for dec.More() {
			tok, err := dec.Token()
			if err != nil {
				return fmt.Errorf("sources: nested list: %w", err)
			}
			name, _ := tok.(string)
			var words []string
			if err := dec.Decode(&words); err != nil {
				return fmt.Errorf("sources: group %q: %w", name, err)
			}
			groups = append(groups, Group{Name: name, Words: nonNil(words)})
		}
		if _, err := dec.Token(); err != nil {
			return fmt.Errorf("sources: nested list: %w", err)
		}
		*l = List{Groups: groups}
		return nil
	default:
		return fmt.Errorf("sources: list must be an array or an object, got %q", b[:1])
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
