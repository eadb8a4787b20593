package recipe

import "context"

// Lookup is the read side of the recipe catalogue
type Lookup interface {
	AllRecipes() map[string]*Recipe
	GetRecipe(name string) (*Recipe, bool)
}

// Source loads recipe definitions from storage
type Source interface {
	LoadRecipes(ctx context.Context) ([]*Recipe, error)
}
