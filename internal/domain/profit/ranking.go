package profit

import (
	"cmp"
	"fmt"
	"sort"
	"strings"
)

// Membership selects which recipes the player can perform
type Membership int

const (
	MembershipBoth Membership = iota
	MembershipF2P
	MembershipP2P
)

func (m Membership) String() string {
	switch m {
	case MembershipF2P:
		return "f2p"
	case MembershipP2P:
		return "p2p"
	default:
		return "both"
	}
}

// ParseMembership converts a configuration value into a Membership
func ParseMembership(s string) (Membership, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "both", "":
		return MembershipBoth, nil
	case "f2p":
		return MembershipF2P, nil
	case "p2p":
		return MembershipP2P, nil
	default:
		return MembershipBoth, fmt.Errorf("%w: membership %q", ErrInvalidConfig, s)
	}
}

// Allows reports whether a recipe with the given membership requirement passes the filter
func (m Membership) Allows(requiresMembership bool) bool {
	switch m {
	case MembershipF2P:
		return !requiresMembership
	case MembershipP2P:
		return requiresMembership
	default:
		return true
	}
}

// SortMode selects the ranking order
type SortMode int

const (
	SortByCustom SortMode = iota
	SortByName
	SortByProfit
	SortByTime
	SortByGPH
)

func (s SortMode) String() string {
	switch s {
	case SortByName:
		return "name"
	case SortByProfit:
		return "profit"
	case SortByTime:
		return "time"
	case SortByGPH:
		return "gph"
	default:
		return "custom"
	}
}

// ParseSortMode converts a configuration value into a SortMode
func ParseSortMode(s string) (SortMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "custom", "":
		return SortByCustom, nil
	case "name":
		return SortByName, nil
	case "profit":
		return SortByProfit, nil
	case "time":
		return SortByTime, nil
	case "gph", "gp/h", "gp_per_hour":
		return SortByGPH, nil
	default:
		return SortByCustom, fmt.Errorf("%w: sort mode %q", ErrInvalidConfig, s)
	}
}

// RankOptions are the filter and ordering switches of the ranking
type RankOptions struct {
	MustProfit bool
	ShowHidden bool
	Reverse    bool
	Membership Membership
	SortBy     SortMode
	Weights    Weights
}

// Visibility is the outcome of the affordability/profit bar for one row
type Visibility int

const (
	Visible Visibility = iota
	Hidden
	Annotated
)

func (v Visibility) String() string {
	switch v {
	case Hidden:
		return "hidden"
	case Annotated:
		return "annotated"
	default:
		return "visible"
	}
}

// Classify applies the visibility table to a row.
// A row fails the bar when the capital cannot pay for one execution, or when it
// makes no profit and profit is required. Failing rows are hidden unless
// showHidden is set, in which case they are kept and annotated.
func Classify(row OverviewRow, capital int64, mustProfit, showHidden bool) Visibility {
	cantAfford := capital < row.UpfrontCost()
	noProfit := row.Profit() <= 0

	if cantAfford || (noProfit && mustProfit) {
		if showHidden {
			return Annotated
		}
		return Hidden
	}
	return Visible
}

// Exclusion records why a row did not make it into the ranking
type Exclusion struct {
	Name   string
	Reason string
}

// Rank filters rows by membership and visibility, then sorts them.
// Non-viable rows (number 0) are always dropped. Ties are broken by name
// ascending so the order is deterministic.
func Rank(rows []OverviewRow, capital int64, opts RankOptions) ([]OverviewRow, []Exclusion) {
	kept := make([]OverviewRow, 0, len(rows))
	var excluded []Exclusion

	for _, row := range rows {
		if !row.Viable() {
			excluded = append(excluded, Exclusion{Name: row.Name(), Reason: "not_viable"})
			continue
		}
		if !opts.Membership.Allows(row.RequiresMembership()) {
			excluded = append(excluded, Exclusion{Name: row.Name(), Reason: "membership"})
			continue
		}

		switch Classify(row, capital, opts.MustProfit, opts.ShowHidden) {
		case Hidden:
			excluded = append(excluded, Exclusion{Name: row.Name(), Reason: "visibility"})
			continue
		case Annotated:
			row = row.withAnnotation()
		}

		kept = append(kept, row)
	}

	SortRows(kept, opts.SortBy, opts.Weights, opts.Reverse)
	return kept, excluded
}

// SortRows orders rows in place.
// Natural directions: name A-Z, profit and gp/h highest first, time lowest
// first, custom score ascending. reverse flips the natural direction.
func SortRows(rows []OverviewRow, mode SortMode, weights Weights, reverse bool) {
	primary := comparator(mode, weights)

	sort.SliceStable(rows, func(i, j int) bool {
		c := primary(rows[i], rows[j])
		if reverse {
			c = -c
		}
		if c != 0 {
			return c < 0
		}
		return rows[i].Name() < rows[j].Name()
	})
}

func comparator(mode SortMode, weights Weights) func(a, b OverviewRow) int {
	switch mode {
	case SortByName:
		return func(a, b OverviewRow) int { return strings.Compare(a.Name(), b.Name()) }
	case SortByProfit:
		return func(a, b OverviewRow) int { return cmp.Compare(b.TotalGP(), a.TotalGP()) }
	case SortByTime:
		return func(a, b OverviewRow) int { return cmp.Compare(a.TotalTimeSec(), b.TotalTimeSec()) }
	case SortByGPH:
		return func(a, b OverviewRow) int { return cmp.Compare(b.GPH(), a.GPH()) }
	default:
		return func(a, b OverviewRow) int { return cmp.Compare(weights.Score(a), weights.Score(b)) }
	}
}
