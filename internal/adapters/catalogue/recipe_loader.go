package catalogue

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dstapl/osrs-gph/internal/application/common"
	"github.com/dstapl/osrs-gph/internal/domain/recipe"
)

// ErrMalformedRecipeFile is returned when the recipe file is not a mapping of recipes
var ErrMalformedRecipeFile = errors.New("malformed recipe file")

// recipeEntry is the YAML shape of one recipe.
// time and ticks are aliases; both absent or null means the duration is unknown.
type recipeEntry struct {
	Name          string             `yaml:"name"`
	Members       bool               `yaml:"members"`
	Inputs        map[string]float64 `yaml:"inputs"`
	PayOnce       map[string]float64 `yaml:"pay_once"`
	Outputs       map[string]float64 `yaml:"outputs"`
	Time          *float64           `yaml:"time"`
	Ticks         *float64           `yaml:"ticks"`
	NumberPerHour *float64           `yaml:"number_per_hour"`
}

func (e recipeEntry) definition(key string) (recipe.Definition, error) {
	name := strings.TrimSpace(e.Name)
	if name == "" {
		name = key
	}
	if name != key {
		return recipe.Definition{}, fmt.Errorf("%w: key %q names recipe %q", ErrMalformedRecipeFile, key, name)
	}

	t := recipe.UnknownTime()
	switch {
	case e.Time != nil && e.Ticks != nil && *e.Time != *e.Ticks:
		return recipe.Definition{}, fmt.Errorf("%w: %s sets both time and ticks", ErrMalformedRecipeFile, name)
	case e.Time != nil:
		t = recipe.KnownTicks(*e.Time)
	case e.Ticks != nil:
		t = recipe.KnownTicks(*e.Ticks)
	}

	return recipe.Definition{
		Name:          name,
		Members:       e.Members,
		Inputs:        e.Inputs,
		PayOnce:       e.PayOnce,
		Outputs:       e.Outputs,
		Time:          t,
		NumberPerHour: e.NumberPerHour,
	}, nil
}

// RecipeFileLoader reads the recipe book from a YAML file.
// The file is either a top-level mapping of name to recipe, or the same
// mapping under a "recipes" key.
type RecipeFileLoader struct {
	path string
}

// NewRecipeFileLoader creates a loader for the given path
func NewRecipeFileLoader(path string) *RecipeFileLoader {
	return &RecipeFileLoader{path: path}
}

// LoadRecipes implements recipe.Source
func (l *RecipeFileLoader) LoadRecipes(ctx context.Context) ([]*recipe.Recipe, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read recipe file: %w", err)
	}

	recipes, err := ParseRecipes(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", l.path, err)
	}

	common.LoggerFromContext(ctx).Debug("loaded recipes", "path", l.path, "count", len(recipes))
	return recipes, nil
}

// ParseRecipes decodes a recipe book document. Recipes are returned in name
// order; the template entry is dropped.
func ParseRecipes(data []byte) ([]*recipe.Recipe, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedRecipeFile, err)
	}
	if len(root.Content) == 0 {
		return nil, recipe.ErrEmptyRecipeBook
	}

	doc := root.Content[0]
	if doc.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: top level must be a mapping", ErrMalformedRecipeFile)
	}
	if inner := mappingValue(doc, "recipes"); inner != nil {
		doc = inner
	}

	var entries map[string]recipeEntry
	if err := doc.Decode(&entries); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedRecipeFile, err)
	}
	if len(entries) == 0 {
		return nil, recipe.ErrEmptyRecipeBook
	}

	keys := make([]string, 0, len(entries))
	for key := range entries {
		// The copy-paste template is never a real recipe
		if key == recipe.TemplateName {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)

	if len(keys) == 0 {
		return nil, recipe.ErrEmptyRecipeBook
	}

	recipes := make([]*recipe.Recipe, 0, len(keys))
	for _, key := range keys {
		def, err := entries[key].definition(key)
		if err != nil {
			return nil, err
		}
		r, err := recipe.NewRecipe(def)
		if err != nil {
			return nil, fmt.Errorf("recipe %q: %w", key, err)
		}
		recipes = append(recipes, r)
	}

	return recipes, nil
}

// mappingValue returns the mapping stored under key, if there is one
func mappingValue(node *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key && node.Content[i+1].Kind == yaml.MappingNode {
			return node.Content[i+1]
		}
	}
	return nil
}
