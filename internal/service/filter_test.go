package service

import (
	"testing"

	"github.com/yshpitzer/portfolio-services/internal/model"
)

func intPtr(n int) *int { return &n }

func stocksWithShares(shares ...int) []model.Stock {
	stocks := make([]model.Stock, len(shares))
	for i, s := range shares {
		stocks[i] = model.Stock{Shares: s}
	}
	return stocks
}

func sharesOf(stocks []model.Stock) []int {
	shares := make([]int, len(stocks))
	for i, s := range stocks {
		shares[i] = s.Shares
	}
	return shares
}

func equalShares(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestFilterByShares(t *testing.T) {
	holdings := stocksWithShares(1, 3, 5, 7, 9, 5)

	t.Run("no bounds returns input unchanged in order", func(t *testing.T) {
		got := FilterByShares(holdings, model.FilterCriteria{})
		if !equalShares(sharesOf(got), []int{1, 3, 5, 7, 9, 5}) {
			t.Errorf("Expected input unchanged, got %v", sharesOf(got))
		}
	})

	t.Run("only greater-than is exclusive", func(t *testing.T) {
		got := FilterByShares(holdings, model.FilterCriteria{GreaterThan: intPtr(5)})
		if !equalShares(sharesOf(got), []int{7, 9}) {
			t.Errorf("Expected [7 9], got %v", sharesOf(got))
		}
	})

	t.Run("only less-than is exclusive", func(t *testing.T) {
		got := FilterByShares(holdings, model.FilterCriteria{LessThan: intPtr(5)})
		if !equalShares(sharesOf(got), []int{1, 3}) {
			t.Errorf("Expected [1 3], got %v", sharesOf(got))
		}
	})

	t.Run("distinct bounds are exclusive on both ends", func(t *testing.T) {
		got := FilterByShares(holdings, model.FilterCriteria{GreaterThan: intPtr(3), LessThan: intPtr(9)})
		if !equalShares(sharesOf(got), []int{5, 7, 5}) {
			t.Errorf("Expected [5 7 5], got %v", sharesOf(got))
		}
	})

	t.Run("equal bounds select exact share counts", func(t *testing.T) {
		got := FilterByShares(holdings, model.FilterCriteria{GreaterThan: intPtr(5), LessThan: intPtr(5)})
		if !equalShares(sharesOf(got), []int{5, 5}) {
			t.Errorf("Expected [5 5], got %v", sharesOf(got))
		}
	})

	t.Run("crossed range yields an empty result", func(t *testing.T) {
		got := FilterByShares(holdings, model.FilterCriteria{GreaterThan: intPtr(9), LessThan: intPtr(3)})
		if len(got) != 0 {
			t.Errorf("Expected empty result, got %v", sharesOf(got))
		}
	})

	t.Run("range filter composes from its single-bound filters", func(t *testing.T) {
		for gt := 0; gt < 10; gt++ {
			for lt := gt + 1; lt <= 10; lt++ {
				combined := FilterByShares(holdings, model.FilterCriteria{GreaterThan: intPtr(gt), LessThan: intPtr(lt)})
				chained := FilterByShares(
					FilterByShares(holdings, model.FilterCriteria{GreaterThan: intPtr(gt)}),
					model.FilterCriteria{LessThan: intPtr(lt)},
				)
				if !equalShares(sharesOf(combined), sharesOf(chained)) {
					t.Errorf("gt=%d lt=%d: combined %v != chained %v", gt, lt, sharesOf(combined), sharesOf(chained))
				}
			}
		}
	})
}
