package catalogue_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dstapl/osrs-gph/internal/adapters/catalogue"
	"github.com/dstapl/osrs-gph/internal/domain/recipe"
)

const recipeBook = `
Template:
  name: Template
  inputs: {}
  outputs: {}
  time: null

Humidify Clay:
  members: true
  inputs:
    Clay: 27
    Astral rune: 1
  outputs:
    Soft clay: 27
  time: 6

Superheat Gold:
  members: true
  inputs:
    Gold ore: 1
    Nature rune: 1
  pay_once:
    Staff of fire: 1
  outputs:
    Gold bar: 1
  ticks: 3
  number_per_hour: 1000

Buy Coal:
  inputs:
    Coins: 150
  outputs:
    Coal: 1
`

func TestParseRecipes(t *testing.T) {
	recipes, err := catalogue.ParseRecipes([]byte(recipeBook))
	require.NoError(t, err)
	require.Len(t, recipes, 3)

	assert.Equal(t, "Buy Coal", recipes[0].Name())
	assert.Equal(t, "Humidify Clay", recipes[1].Name())
	assert.Equal(t, "Superheat Gold", recipes[2].Name())

	coal := recipes[0]
	assert.False(t, coal.RequiresMembership())
	assert.False(t, coal.Time().IsKnown())

	humidify := recipes[1]
	assert.True(t, humidify.RequiresMembership())
	assert.Equal(t, []recipe.Ingredient{
		{Name: "Astral rune", Quantity: 1},
		{Name: "Clay", Quantity: 27},
	}, humidify.Inputs())
	ticks, ok := humidify.Time().Ticks()
	require.True(t, ok)
	assert.Equal(t, 6.0, ticks)

	superheat := recipes[2]
	assert.Equal(t, []recipe.Ingredient{{Name: "Staff of fire", Quantity: 1}}, superheat.PayOnceInputs())
	perHour, ok := superheat.NumberPerHour()
	require.True(t, ok)
	assert.Equal(t, 1000.0, perHour)
	ticks, _ = superheat.Time().Ticks()
	assert.Equal(t, 3.0, ticks)
}

func TestParseRecipes_NestedUnderRecipesKey(t *testing.T) {
	doc := `
recipes:
  Humidify Clay:
    inputs: {Clay: 27, Astral rune: 1}
    outputs: {Soft clay: 27}
    time: 6
`
	recipes, err := catalogue.ParseRecipes([]byte(doc))
	require.NoError(t, err)
	require.Len(t, recipes, 1)
	assert.Equal(t, "Humidify Clay", recipes[0].Name())
}

func TestParseRecipes_Errors(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr error
	}{
		{
			name:    "empty document",
			doc:     "",
			wantErr: recipe.ErrEmptyRecipeBook,
		},
		{
			name:    "only the template",
			doc:     "Template:\n  outputs: {}\n",
			wantErr: recipe.ErrEmptyRecipeBook,
		},
		{
			name:    "top level list",
			doc:     "- Humidify Clay\n",
			wantErr: catalogue.ErrMalformedRecipeFile,
		},
		{
			name:    "name disagrees with key",
			doc:     "A:\n  name: B\n  outputs: {Clay: 1}\n",
			wantErr: catalogue.ErrMalformedRecipeFile,
		},
		{
			name:    "time and ticks disagree",
			doc:     "A:\n  outputs: {Clay: 1}\n  time: 4\n  ticks: 5\n",
			wantErr: catalogue.ErrMalformedRecipeFile,
		},
		{
			name:    "no outputs",
			doc:     "A:\n  inputs: {Clay: 1}\n",
			wantErr: recipe.ErrNoOutputs,
		},
		{
			name:    "negative quantity",
			doc:     "A:\n  outputs: {Clay: -1}\n",
			wantErr: recipe.ErrInvalidQuantity,
		},
		{
			name:    "zero ticks",
			doc:     "A:\n  outputs: {Clay: 1}\n  ticks: 0\n",
			wantErr: recipe.ErrInvalidTime,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := catalogue.ParseRecipes([]byte(tt.doc))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRecipeFileLoader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recipes.yaml")
	require.NoError(t, os.WriteFile(path, []byte(recipeBook), 0o644))

	recipes, err := catalogue.NewRecipeFileLoader(path).LoadRecipes(context.Background())

	require.NoError(t, err)
	assert.Len(t, recipes, 3)
}

func TestRecipeFileLoader_MissingFile(t *testing.T) {
	loader := catalogue.NewRecipeFileLoader(filepath.Join(t.TempDir(), "missing.yaml"))

	_, err := loader.LoadRecipes(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
