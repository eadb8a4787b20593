package helpers

import (
	"testing"
	"time"

	"github.com/dstapl/osrs-gph/internal/domain/market"
	"github.com/dstapl/osrs-gph/internal/domain/recipe"
)

// FixedTime stamps every snapshot built by the helpers
var FixedTime = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

// Price returns a pointer to p, for item constructors
func Price(p int32) *int32 {
	return &p
}

// CreateTestItem builds a priced item with no buy limit
func CreateTestItem(t testing.TB, id int, name string, buy, sell int32) *market.Item {
	t.Helper()
	item, err := market.NewItem(id, name, false, Price(buy), Price(sell), nil)
	if err != nil {
		t.Fatalf("failed to create item %s: %v", name, err)
	}
	return item
}

// CreateLimitedItem builds a priced item with a buy limit
func CreateLimitedItem(t testing.TB, id int, name string, buy, sell, limit int32) *market.Item {
	t.Helper()
	item, err := market.NewItem(id, name, false, Price(buy), Price(sell), Price(limit))
	if err != nil {
		t.Fatalf("failed to create item %s: %v", name, err)
	}
	return item
}

// HumidifyClayItems prices the Humidify Clay recipe at 375 gp profit per cast:
// 27 clay at 150 plus an astral rune at 206 cost 4,256; 27 soft clay at 175
// sell for 4,725 less 94 tax.
func HumidifyClayItems(t testing.TB) []*market.Item {
	t.Helper()
	return []*market.Item{
		CreateTestItem(t, 434, "Clay", 150, 148),
		CreateTestItem(t, 1761, "Soft clay", 178, 175),
		CreateTestItem(t, 9075, "Astral rune", 206, 200),
	}
}

// HumidifyClayCapital lets max_hours mode afford exactly 1,571 casts
const HumidifyClayCapital = 1571 * 4256

// HumidifyClay builds the lunar spell recipe: 6 ticks per cast
func HumidifyClay(t testing.TB) *recipe.Recipe {
	t.Helper()
	return MustRecipe(t, recipe.Definition{
		Name:    "Humidify Clay",
		Members: true,
		Inputs:  map[string]float64{"Clay": 27, "Astral rune": 1},
		Outputs: map[string]float64{"Soft clay": 27},
		Time:    recipe.KnownTicks(6),
	})
}

// MustRecipe builds a recipe or fails the test
func MustRecipe(t testing.TB, def recipe.Definition) *recipe.Recipe {
	t.Helper()
	r, err := recipe.NewRecipe(def)
	if err != nil {
		t.Fatalf("failed to create recipe %s: %v", def.Name, err)
	}
	return r
}

// MustCatalogue indexes items or fails the test
func MustCatalogue(t testing.TB, items ...*market.Item) *market.Catalogue {
	t.Helper()
	c, err := market.NewCatalogue(items, nil)
	if err != nil {
		t.Fatalf("failed to create catalogue: %v", err)
	}
	return c
}

// MustBook indexes recipes or fails the test
func MustBook(t testing.TB, recipes ...*recipe.Recipe) *recipe.Book {
	t.Helper()
	b, err := recipe.NewBook(recipes, nil)
	if err != nil {
		t.Fatalf("failed to create recipe book: %v", err)
	}
	return b
}
