package recipe

import "errors"

var (
	// ErrInvalidRecipeName is returned when a recipe name is empty
	ErrInvalidRecipeName = errors.New("invalid recipe name")

	// ErrNoOutputs is returned when a recipe produces nothing
	ErrNoOutputs = errors.New("recipe has no outputs")

	// ErrInvalidQuantity is returned when an ingredient quantity is not positive
	ErrInvalidQuantity = errors.New("invalid ingredient quantity")

	// ErrInvalidTime is returned when a known recipe time is not positive
	ErrInvalidTime = errors.New("invalid recipe time")

	// ErrInvalidNumberPerHour is returned when the throughput override is not positive
	ErrInvalidNumberPerHour = errors.New("invalid number per hour")

	// ErrDuplicateRecipe is returned when two recipes share a name
	ErrDuplicateRecipe = errors.New("duplicate recipe")

	// ErrRecipeNotFound is returned when a recipe name is not in the book
	ErrRecipeNotFound = errors.New("recipe not found")

	// ErrEmptyRecipeBook is returned when no recipes remain after filtering
	ErrEmptyRecipeBook = errors.New("recipe book is empty")
)
