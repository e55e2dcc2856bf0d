package sources

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

// Dataset maps language codes to stopword lists for one source.
// A Dataset is read-only once parsed
type Dataset struct {
	name  string
	lists map[string]List
	codes []string // sorted
}

// NewDataset builds a dataset from already decoded lists
func NewDataset(name string, lists map[string]List) *Dataset {
	d := &Dataset{name: name, lists: make(map[string]List, len(lists))}
	for code, l := range lists {
		d.lists[code] = l.Clone()
		d.codes = append(d.codes, code)
	}
	sort.Strings(d.codes)
	return d
}

// Parse decodes a dataset document: an object keyed by language code whose
// values are flat arrays or objects of arrays
func Parse(name string, raw []byte) (*Dataset, error) {
	var lists map[string]List
	dec := json.NewDecoder(bytes.NewReader(raw))
	if err := dec.Decode(&lists); err != nil {
		return nil, fmt.Errorf("sources: parse %s: %w", name, err)
	}
	if len(lists) == 0 {
		return nil, fmt.Errorf("sources: %s has no languages", name)
	}
	for code, l := range lists {
		if code == "" {
			return nil, fmt.Errorf("sources: %s has an empty language code", name)
		}
		if l.Len() == 0 {
			return nil, fmt.Errorf("sources: %s/%s is empty", name, code)
		}
	}
	return NewDataset(name, lists), nil
}

// Name returns the source name
func (d *Dataset) Name() string { return d.name }

// Lookup returns the list for an exact, case-sensitive code
func (d *Dataset) Lookup(code string) (List, bool) {
	l, ok := d.lists[code]
	if !ok {
		return List{}, false
	}
	return l.Clone(), true
}

// Has reports whether code is a key of the dataset
func (d *Dataset) Has(code string) bool {
	_, ok := d.lists[code]
	return ok
}

// Languages returns the codes of the dataset in sorted order
func (d *Dataset) Languages() []string { return append([]string(nil), d.codes...) }
