package service

import "github.com/yshpitzer/portfolio-services/internal/model"

// FilterByShares returns the subset of stocks whose share count satisfies the
// criteria. Pure and order-preserving: the result is a subsequence of the
// input. With no bounds set, the input is returned unchanged.
//
// Both bounds are exclusive, except that equal bounds select holdings with
// exactly that share count. A crossed range (gt > lt) yields an empty result.
func FilterByShares(stocks []model.Stock, criteria model.FilterCriteria) []model.Stock {
	if criteria.GreaterThan == nil && criteria.LessThan == nil {
		return stocks
	}

	match := func(shares int) bool {
		switch {
		case criteria.GreaterThan != nil && criteria.LessThan != nil:
			gt, lt := *criteria.GreaterThan, *criteria.LessThan
			if gt == lt {
				return shares == gt
			}
			return gt < shares && shares < lt
		case criteria.GreaterThan != nil:
			return shares > *criteria.GreaterThan
		default:
			return shares < *criteria.LessThan
		}
	}

	filtered := []model.Stock{}
	for _, stock := range stocks {
		if match(stock.Shares) {
			filtered = append(filtered, stock)
		}
	}
	return filtered
}
