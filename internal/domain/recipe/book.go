package recipe

import (
	"fmt"
	"sort"
)

// TemplateName is the placeholder entry recipe files carry for copy-paste
const TemplateName = "Template"

// Book is the read-only recipe catalogue for one run
type Book struct {
	recipes map[string]*Recipe
}

// NewBook indexes recipes by name, removing the template entry and any ignored names
func NewBook(recipes []*Recipe, ignore []string) (*Book, error) {
	ignored := make(map[string]bool, len(ignore)+1)
	ignored[TemplateName] = true
	for _, name := range ignore {
		ignored[name] = true
	}

	b := &Book{recipes: make(map[string]*Recipe, len(recipes))}
	for _, r := range recipes {
		if r == nil || ignored[r.Name()] {
			continue
		}
		if _, exists := b.recipes[r.Name()]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateRecipe, r.Name())
		}
		b.recipes[r.Name()] = r
	}

	if len(b.recipes) == 0 {
		return nil, ErrEmptyRecipeBook
	}

	return b, nil
}

// AllRecipes returns every recipe keyed by name
func (b *Book) AllRecipes() map[string]*Recipe {
	out := make(map[string]*Recipe, len(b.recipes))
	for name, r := range b.recipes {
		out[name] = r
	}
	return out
}

// GetRecipe returns the named recipe
func (b *Book) GetRecipe(name string) (*Recipe, bool) {
	r, ok := b.recipes[name]
	return r, ok
}

// Sorted returns every recipe ordered by name
func (b *Book) Sorted() []*Recipe {
	out := make([]*Recipe, 0, len(b.recipes))
	for _, r := range b.recipes {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Name() < out[j].Name()
	})
	return out
}

func (b *Book) Len() int {
	return len(b.recipes)
}
