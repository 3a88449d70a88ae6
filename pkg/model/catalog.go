package model

// Entry is a single catalog item: a wire code and its display name.
type Entry struct {
	Code string
	Name string
}

// Catalog is a closed set of string codes with display names. Catalogs are
// built once at package init and never mutated, so they are safe for
// concurrent use. Validity of a code is decided solely by exact membership;
// there are no partial matches.
type Catalog struct {
	order []string
	names map[string]string
}

func newCatalog(entries ...Entry) Catalog {
	c := Catalog{
		order: make([]string, 0, len(entries)),
		names: make(map[string]string, len(entries)),
	}
	for _, e := range entries {
		c.order = append(c.order, e.Code)
		c.names[e.Code] = e.Name
	}
	return c
}

// List returns the catalog entries in their declared order.
func (c Catalog) List() []Entry {
	entries := make([]Entry, 0, len(c.order))
	for _, code := range c.order {
		entries = append(entries, Entry{Code: code, Name: c.names[code]})
	}
	return entries
}

// IsSupported reports whether code is a member of the catalog.
func (c Catalog) IsSupported(code string) bool {
	_, ok := c.names[code]
	return ok
}

// Name returns the display name for code, or false if the code is not a member.
func (c Catalog) Name(code string) (string, bool) {
	name, ok := c.names[code]
	return name, ok
}
