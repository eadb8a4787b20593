package recipe

import (
	"fmt"
	"sort"
	"strings"
)

// Ingredient is one named quantity of a recipe's inputs or outputs
type Ingredient struct {
	Name     string
	Quantity float64
}

// Definition carries the raw fields a Recipe is built from
type Definition struct {
	Name          string
	Members       bool
	Inputs        map[string]float64
	PayOnce       map[string]float64
	Outputs       map[string]float64
	Time          Time
	NumberPerHour *float64
}

// Recipe is an immutable production method: what it consumes per execution,
// what it consumes once per batch, what it produces, and how long it takes.
type Recipe struct {
	name          string
	members       bool
	inputs        []Ingredient
	payOnce       []Ingredient
	outputs       []Ingredient
	time          Time
	numberPerHour *float64
}

// NewRecipe validates a definition and builds a Recipe
func NewRecipe(def Definition) (*Recipe, error) {
	name := strings.TrimSpace(def.Name)
	if name == "" {
		return nil, ErrInvalidRecipeName
	}

	if len(def.Outputs) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoOutputs, name)
	}

	inputs, err := toIngredients(name, def.Inputs)
	if err != nil {
		return nil, err
	}
	payOnce, err := toIngredients(name, def.PayOnce)
	if err != nil {
		return nil, err
	}
	outputs, err := toIngredients(name, def.Outputs)
	if err != nil {
		return nil, err
	}

	if ticks, ok := def.Time.Ticks(); ok && ticks <= 0 {
		return nil, fmt.Errorf("%w: %s has %v ticks", ErrInvalidTime, name, ticks)
	}

	var numberPerHour *float64
	if def.NumberPerHour != nil {
		if *def.NumberPerHour <= 0 {
			return nil, fmt.Errorf("%w: %s has %v", ErrInvalidNumberPerHour, name, *def.NumberPerHour)
		}
		n := *def.NumberPerHour
		numberPerHour = &n
	}

	return &Recipe{
		name:          name,
		members:       def.Members,
		inputs:        inputs,
		payOnce:       payOnce,
		outputs:       outputs,
		time:          def.Time,
		numberPerHour: numberPerHour,
	}, nil
}

func (r *Recipe) Name() string { return r.name }

// RequiresMembership reports whether the recipe is members-only
func (r *Recipe) RequiresMembership() bool { return r.members }

// Inputs returns the per-execution ingredients sorted by name
func (r *Recipe) Inputs() []Ingredient { return copyIngredients(r.inputs) }

// PayOnceInputs returns the ingredients bought once per batch, sorted by name
func (r *Recipe) PayOnceInputs() []Ingredient { return copyIngredients(r.payOnce) }

// Outputs returns the per-execution products sorted by name
func (r *Recipe) Outputs() []Ingredient { return copyIngredients(r.outputs) }

func (r *Recipe) Time() Time { return r.time }

// NumberPerHour returns the user's achievable executions per hour, if set
func (r *Recipe) NumberPerHour() (float64, bool) {
	if r.numberPerHour == nil {
		return 0, false
	}
	return *r.numberPerHour, true
}

// ItemNames returns every item the recipe references
func (r *Recipe) ItemNames() []string {
	seen := make(map[string]bool)
	var names []string
	for _, group := range [][]Ingredient{r.inputs, r.payOnce, r.outputs} {
		for _, ing := range group {
			if !seen[ing.Name] {
				seen[ing.Name] = true
				names = append(names, ing.Name)
			}
		}
	}
	sort.Strings(names)
	return names
}

func toIngredients(recipeName string, quantities map[string]float64) ([]Ingredient, error) {
	out := make([]Ingredient, 0, len(quantities))
	for item, qty := range quantities {
		if strings.TrimSpace(item) == "" {
			return nil, fmt.Errorf("%w: %s references an unnamed item", ErrInvalidQuantity, recipeName)
		}
		if qty <= 0 {
			return nil, fmt.Errorf("%w: %s needs %v of %s", ErrInvalidQuantity, recipeName, qty, item)
		}
		out = append(out, Ingredient{Name: item, Quantity: qty})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func copyIngredients(in []Ingredient) []Ingredient {
	out := make([]Ingredient, len(in))
	copy(out, in)
	return out
}
