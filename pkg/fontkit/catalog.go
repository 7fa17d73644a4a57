package fontkit

import "sort"

// Catalog is a point-in-time snapshot of the family names the OS reports
// installed. Immutable after creation and therefore safe for concurrent
// reads.
type Catalog struct {
	names []string
	set   map[string]struct{}
}

// NewCatalog builds a catalog from raw scan output, dropping duplicates and
// sorting for stable display. An empty scan is an error, not a valid
// catalog: no font can be guaranteed loadable without one.
func NewCatalog(names []string) (*Catalog, error) {
	set := make(map[string]struct{}, len(names))
	distinct := make([]string, 0, len(names))
	for _, name := range names {
		if name == "" {
			continue
		}
		if _, seen := set[name]; seen {
			continue
		}
		set[name] = struct{}{}
		distinct = append(distinct, name)
	}

	if len(distinct) == 0 {
		return nil, &ScanError{Reason: "no font families reported"}
	}

	sort.Strings(distinct)
	return &Catalog{names: distinct, set: set}, nil
}

// Names returns the sorted family names. The slice is a copy.
func (c *Catalog) Names() []string {
	result := make([]string, len(c.names))
	copy(result, c.names)
	return result
}

// Contains reports whether a family name is present. Exact match; the
// resolver deliberately performs no substring or fuzzy matching.
func (c *Catalog) Contains(name string) bool {
	_, ok := c.set[name]
	return ok
}

// Len returns the number of distinct families.
func (c *Catalog) Len() int {
	return len(c.names)
}
