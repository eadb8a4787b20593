package profit_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dstapl/osrs-gph/internal/domain/profit"
)

type rowSpec struct {
	name    string
	members bool
	cost    int64
	profit  int64
	timeSec float64
	number  int64
	payOnce *int64
}

func makeRow(s rowSpec) profit.OverviewRow {
	t := s.timeSec
	return profit.NewOverviewRow(profit.RowParams{
		Name:         s.name,
		Members:      s.members,
		PayOnceTotal: s.payOnce,
		Cost:         s.cost,
		Revenue:      s.cost + s.profit,
		Profit:       s.profit,
		TimeSec:      &t,
		Number:       s.number,
	})
}

func names(rows []profit.OverviewRow) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Name()
	}
	return out
}

func TestClassify_TruthTable(t *testing.T) {
	const capital = 1000

	for _, affordable := range []bool{true, false} {
		for _, profitable := range []bool{true, false} {
			for _, mustProfit := range []bool{true, false} {
				for _, showHidden := range []bool{true, false} {
					name := fmt.Sprintf("affordable=%v profitable=%v must_profit=%v show_hidden=%v",
						affordable, profitable, mustProfit, showHidden)

					t.Run(name, func(t *testing.T) {
						rs := rowSpec{name: "r", cost: 500, profit: 10, timeSec: 1, number: 1}
						if !affordable {
							rs.cost = 5000
						}
						if !profitable {
							rs.profit = 0
						}

						expected := profit.Visible
						if !affordable || (!profitable && mustProfit) {
							expected = profit.Hidden
							if showHidden {
								expected = profit.Annotated
							}
						}

						got := profit.Classify(makeRow(rs), capital, mustProfit, showHidden)
						assert.Equal(t, expected, got, "got %s", got)
					})
				}
			}
		}
	}
}

func TestClassify_PayOnceCountsTowardsAffordability(t *testing.T) {
	staff := int64(600)
	row := makeRow(rowSpec{name: "r", cost: 500, profit: 10, timeSec: 1, number: 1, payOnce: &staff})

	assert.Equal(t, profit.Hidden, profit.Classify(row, 1000, false, false))
	assert.Equal(t, profit.Visible, profit.Classify(row, 1100, false, false))
}

func TestRank_FiltersAndAnnotates(t *testing.T) {
	rows := []profit.OverviewRow{
		makeRow(rowSpec{name: "Affordable", cost: 100, profit: 50, timeSec: 2, number: 10}),
		makeRow(rowSpec{name: "Too dear", cost: 5000, profit: 500, timeSec: 2, number: 1}),
		makeRow(rowSpec{name: "Loss", cost: 100, profit: -5, timeSec: 2, number: 10}),
		makeRow(rowSpec{name: "Members", members: true, cost: 100, profit: 60, timeSec: 2, number: 10}),
		makeRow(rowSpec{name: "Nothing", cost: 100, profit: 60, timeSec: 2, number: 0}),
	}

	t.Run("hidden rows are excluded", func(t *testing.T) {
		ranked, excluded := profit.Rank(rows, 1000, profit.RankOptions{
			MustProfit: true,
			Membership: profit.MembershipBoth,
			SortBy:     profit.SortByName,
		})

		assert.Equal(t, []string{"Affordable", "Members"}, names(ranked))
		reasons := map[string]string{}
		for _, ex := range excluded {
			reasons[ex.Name] = ex.Reason
		}
		assert.Equal(t, map[string]string{
			"Too dear": "visibility",
			"Loss":     "visibility",
			"Nothing":  "not_viable",
		}, reasons)
	})

	t.Run("shown hidden rows carry the marker", func(t *testing.T) {
		ranked, _ := profit.Rank(rows, 1000, profit.RankOptions{
			MustProfit: true,
			ShowHidden: true,
			Membership: profit.MembershipF2P,
			SortBy:     profit.SortByName,
		})

		require.Len(t, ranked, 3)
		assert.Equal(t, "Affordable", ranked[0].Label())
		assert.Equal(t, "Loss #", ranked[1].Label())
		assert.Equal(t, "Too dear"+profit.HiddenMarker, ranked[2].Label())
		assert.True(t, ranked[2].Annotated())
	})

	t.Run("members only", func(t *testing.T) {
		ranked, _ := profit.Rank(rows, 1000, profit.RankOptions{Membership: profit.MembershipP2P, SortBy: profit.SortByName})
		assert.Equal(t, []string{"Members"}, names(ranked))
	})
}

func TestSortRows(t *testing.T) {
	base := []profit.OverviewRow{
		// total gp 500, 20 s, gph 90000
		makeRow(rowSpec{name: "Bravo", cost: 10, profit: 50, timeSec: 2, number: 10}),
		// total gp 1200, 60 s, gph 72000
		makeRow(rowSpec{name: "Alpha", cost: 10, profit: 60, timeSec: 3, number: 20}),
		// total gp 500, 20 s, gph 90000
		makeRow(rowSpec{name: "Charlie", cost: 10, profit: 100, timeSec: 4, number: 5}),
	}

	tests := []struct {
		name     string
		mode     profit.SortMode
		reverse  bool
		expected []string
	}{
		{name: "name", mode: profit.SortByName, expected: []string{"Alpha", "Bravo", "Charlie"}},
		{name: "name reversed", mode: profit.SortByName, reverse: true, expected: []string{"Charlie", "Bravo", "Alpha"}},
		{name: "profit highest first, ties by name", mode: profit.SortByProfit, expected: []string{"Alpha", "Bravo", "Charlie"}},
		{name: "time lowest first", mode: profit.SortByTime, expected: []string{"Bravo", "Charlie", "Alpha"}},
		{name: "time reversed", mode: profit.SortByTime, reverse: true, expected: []string{"Alpha", "Bravo", "Charlie"}},
		{name: "gph highest first", mode: profit.SortByGPH, expected: []string{"Bravo", "Charlie", "Alpha"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := append([]profit.OverviewRow(nil), base...)
			profit.SortRows(rows, tt.mode, profit.Weights{}, tt.reverse)
			assert.Equal(t, tt.expected, names(rows))
		})
	}
}

func TestSortRows_CustomScore(t *testing.T) {
	rows := []profit.OverviewRow{
		makeRow(rowSpec{name: "Slow", cost: 10, profit: 10, timeSec: 3600, number: 2}),
		makeRow(rowSpec{name: "Fast", cost: 10, profit: 10, timeSec: 36, number: 2}),
	}
	// Only gp/hour counts
	weights := profit.Weights{0, 0, 0, 1}

	profit.SortRows(rows, profit.SortByCustom, weights, false)
	assert.Equal(t, []string{"Slow", "Fast"}, names(rows))

	profit.SortRows(rows, profit.SortByCustom, weights, true)
	assert.Equal(t, []string{"Fast", "Slow"}, names(rows))
}

func TestParseSortModeAndMembership(t *testing.T) {
	mode, err := profit.ParseSortMode("GPH")
	require.NoError(t, err)
	assert.Equal(t, profit.SortByGPH, mode)
	assert.Equal(t, "gph", mode.String())

	_, err = profit.ParseSortMode("alphabet")
	assert.ErrorIs(t, err, profit.ErrInvalidConfig)

	m, err := profit.ParseMembership("p2p")
	require.NoError(t, err)
	assert.True(t, m.Allows(true))
	assert.False(t, m.Allows(false))

	_, err = profit.ParseMembership("gold")
	assert.ErrorIs(t, err, profit.ErrInvalidConfig)
}
