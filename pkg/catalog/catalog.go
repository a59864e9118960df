// Package catalog provides the immutable item registry used to resolve
// stack requests.
//
// A Catalog is an ordered sequence of Items built once from an input file
// and read-only afterwards. Lookup is by identifier; when two entries share
// an identifier, the first one wins. Identifier uniqueness is assumed, not
// enforced, so the Catalog deliberately stays a slice with linear lookup
// rather than a map.
package catalog

import "fmt"

// Item is a single catalog entry. Items are owned by the Catalog for the
// lifetime of the process and shared by reference wherever a stack refers
// to one.
type Item struct {
	// ID is the unique small positive identifier used in request files.
	ID int `json:"id" toml:"id"`

	// Name is the non-empty display name.
	Name string `json:"name" toml:"name"`

	// Weight is an optional per-unit capacity weight. Zero means
	// unweighted; the default size policy ignores it.
	Weight int `json:"weight,omitempty" toml:"weight"`
}

// String returns the item formatted as "id name".
func (it Item) String() string {
	return fmt.Sprintf("%d %s", it.ID, it.Name)
}

// Catalog is an ordered, read-only collection of Items.
type Catalog struct {
	items []Item
}

// New creates a Catalog from items, preserving their order.
// The slice is copied so later mutation by the caller cannot leak in.
func New(items []Item) *Catalog {
	c := &Catalog{items: make([]Item, len(items))}
	copy(c.items, items)
	return c
}

// Lookup returns a pointer to the first item with the given identifier.
// The pointer refers into the Catalog's backing storage, so resolved
// stacks share the Catalog's copy instead of duplicating it.
func (c *Catalog) Lookup(id int) (*Item, bool) {
	for i := range c.items {
		if c.items[i].ID == id {
			return &c.items[i], true
		}
	}
	return nil, false
}

// Items returns the catalog entries in declaration order.
// The returned slice must not be modified.
func (c *Catalog) Items() []Item {
	return c.items
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.items)
}

// Weighted reports whether any entry declares a non-zero weight.
// Weighted catalogs can meaningfully use the weighted size policy.
func (c *Catalog) Weighted() bool {
	for i := range c.items {
		if c.items[i].Weight != 0 {
			return true
		}
	}
	return false
}
