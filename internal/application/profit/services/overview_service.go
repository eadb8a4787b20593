package services

import (
	"context"
	"fmt"
	"runtime"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dstapl/osrs-gph/internal/adapters/metrics"
	"github.com/dstapl/osrs-gph/internal/application/common"
	"github.com/dstapl/osrs-gph/internal/domain/market"
	"github.com/dstapl/osrs-gph/internal/domain/profit"
	"github.com/dstapl/osrs-gph/internal/domain/recipe"
)

// SkippedRecipe is a recipe the overview computer could not evaluate
type SkippedRecipe struct {
	Name   string
	Reason string
	Err    error
}

// OverviewResult is the ranked overview plus what was left out and why
type OverviewResult struct {
	Rows      []profit.OverviewRow
	Evaluated int
	Skipped   []SkippedRecipe
	Excluded  []profit.Exclusion
}

// OverviewService computes and ranks overviews for a whole recipe book.
// Per-recipe overviews are independent, so they are computed on a bounded
// worker pool; ranking runs once all of them are in.
type OverviewService struct {
	workers int
}

// NewOverviewService creates a service using up to workers goroutines (GOMAXPROCS when <= 0)
func NewOverviewService(workers int) *OverviewService {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &OverviewService{workers: workers}
}

type overviewOutcome struct {
	row profit.OverviewRow
	err error
}

// ComputeAllOverviews evaluates every recipe, skips the ones with missing data
// and returns the filtered, sorted rows
func (s *OverviewService) ComputeAllOverviews(
	ctx context.Context,
	recipes recipe.Lookup,
	items market.ItemLookup,
	settings profit.Settings,
) (*OverviewResult, error) {
	logger := common.LoggerFromContext(ctx)
	start := time.Now()

	all := recipes.AllRecipes()
	if len(all) == 0 {
		return nil, recipe.ErrEmptyRecipeBook
	}

	calculator, err := profit.NewOverviewCalculator(items, settings)
	if err != nil {
		return nil, err
	}

	ordered := sortedRecipes(all)
	outcomes := make([]overviewOutcome, len(ordered))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	for i, r := range ordered {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			row, err := calculator.Overview(r)
			outcomes[i] = overviewOutcome{row: row, err: err}
			if err != nil && !profit.IsSkippable(err) {
				return fmt.Errorf("recipe %s: %w", r.Name(), err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := &OverviewResult{}
	rows := make([]profit.OverviewRow, 0, len(ordered))

	for i, outcome := range outcomes {
		name := ordered[i].Name()
		if outcome.err != nil {
			reason := profit.SkipReason(outcome.err)
			logger.Warn("skipping recipe", "recipe", name, "reason", reason, "error", outcome.err)
			metrics.RecordRecipeEvaluated("skipped")
			metrics.RecordRecipeSkipped(reason)
			result.Skipped = append(result.Skipped, SkippedRecipe{Name: name, Reason: reason, Err: outcome.err})
			continue
		}
		metrics.RecordRecipeEvaluated("computed")
		rows = append(rows, outcome.row)
	}
	result.Evaluated = len(rows)

	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: all %d recipes were skipped", profit.ErrNothingToRank, len(ordered))
	}

	ranked, excluded := profit.Rank(rows, settings.Capital, settings.Ranking)
	for _, ex := range excluded {
		logger.Debug("recipe excluded from ranking", "recipe", ex.Name, "reason", ex.Reason)
		metrics.RecordRowExcluded(ex.Reason)
	}
	if len(ranked) == 0 {
		logger.Warn("no recipe passed the ranking filters",
			"evaluated", len(rows),
			"must_profit", settings.Ranking.MustProfit,
			"membership", settings.Ranking.Membership.String(),
		)
	}

	result.Rows = ranked
	result.Excluded = excluded

	metrics.RecordRanking(len(ranked), time.Since(start).Seconds())
	logger.Info("computed overviews",
		"recipes", len(ordered),
		"evaluated", result.Evaluated,
		"skipped", len(result.Skipped),
		"ranked", len(ranked),
		"sort_by", settings.Ranking.SortBy.String(),
	)

	return result, nil
}

// ComputeDetailedBreakdown costs one recipe under the base and margin scenarios
func (s *OverviewService) ComputeDetailedBreakdown(
	ctx context.Context,
	r *recipe.Recipe,
	items market.ItemLookup,
	settings profit.Settings,
) (*profit.DetailedTable, error) {
	calculator, err := profit.NewOverviewCalculator(items, settings)
	if err != nil {
		return nil, err
	}

	table, err := calculator.Breakdown(r)
	if err != nil {
		if profit.IsSkippable(err) {
			common.LoggerFromContext(ctx).Warn("no breakdown for recipe",
				"recipe", r.Name(), "reason", profit.SkipReason(err), "error", err)
		}
		metrics.RecordBreakdown(false)
		return nil, err
	}

	metrics.RecordBreakdown(true)
	return table, nil
}

func sortedRecipes(all map[string]*recipe.Recipe) []*recipe.Recipe {
	book := make([]*recipe.Recipe, 0, len(all))
	for _, r := range all {
		book = append(book, r)
	}
	sort.Slice(book, func(i, j int) bool {
		return book[i].Name() < book[j].Name()
	})
	return book
}
