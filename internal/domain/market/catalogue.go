package market

import (
	"fmt"
	"sort"
	"strings"
)

// Catalogue is a read-only index over one price snapshot.
// Names are matched case-insensitively; the stored item keeps its original casing.
// The coins pseudo-item is always present unless explicitly ignored.
type Catalogue struct {
	byName   map[string]*Item
	nameByID map[int]string
}

// NewCatalogue indexes the given items, dropping any whose name appears in ignore
func NewCatalogue(items []*Item, ignore []string) (*Catalogue, error) {
	if len(items) == 0 {
		return nil, ErrEmptyCatalogue
	}

	ignored := make(map[string]bool, len(ignore))
	for _, name := range ignore {
		ignored[normalizeName(name)] = true
	}

	c := &Catalogue{
		byName:   make(map[string]*Item, len(items)+1),
		nameByID: make(map[int]string, len(items)+1),
	}

	for _, item := range items {
		if item == nil {
			continue
		}
		key := normalizeName(item.Name())
		if ignored[key] {
			continue
		}
		if _, exists := c.byName[key]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateItem, item.Name())
		}
		c.byName[key] = item
		c.nameByID[item.ID()] = item.Name()
	}

	coinsKey := normalizeName(CoinsName)
	if _, exists := c.byName[coinsKey]; !exists && !ignored[coinsKey] {
		coins := NewCoinsItem()
		c.byName[coinsKey] = coins
		c.nameByID[coins.ID()] = coins.Name()
	}

	if len(c.byName) == 0 {
		return nil, ErrEmptyCatalogue
	}

	return c, nil
}

// LookupItem resolves an item by name
func (c *Catalogue) LookupItem(name string) (*Item, bool) {
	item, ok := c.byName[normalizeName(name)]
	return item, ok
}

// LookupIDForName resolves the API id of an item name
func (c *Catalogue) LookupIDForName(name string) (int, bool) {
	item, ok := c.LookupItem(name)
	if !ok {
		return 0, false
	}
	return item.ID(), true
}

// LookupNameForID resolves the item name of an API id
func (c *Catalogue) LookupNameForID(id int) (string, bool) {
	name, ok := c.nameByID[id]
	return name, ok
}

// Len returns the number of indexed items
func (c *Catalogue) Len() int {
	return len(c.byName)
}

// Names returns all item names in lexicographic order
func (c *Catalogue) Names() []string {
	names := make([]string, 0, len(c.byName))
	for _, item := range c.byName {
		names = append(names, item.Name())
	}
	sort.Strings(names)
	return names
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
