package analyzing

import (
	"sort"

	"github.com/dashly/sales-analytics-api/internal/domain"
	"github.com/dashly/sales-analytics-api/pkg/utils"
)

type productKey struct {
	sku   string
	title string
}

// topProducts groups rows by (sku, title), sums qty and revenue per group
// and returns the first `size` groups by units sold, descending. Each
// entry's revenue share is computed against the revenue of ALL groups, so
// the shares of a truncated ranking never sum above 100%. A zero total
// falls back to a denominator of 1, yielding 0% shares.
func topProducts(rows []domain.SalesRecord, size int) []domain.ProductRankEntry {
	groups := make(map[productKey]*domain.ProductRankEntry)
	order := make([]productKey, 0)

	var totalRevenue float64
	for _, r := range rows {
		key := productKey{sku: r.SKU, title: r.Title}
		entry, ok := groups[key]
		if !ok {
			entry = &domain.ProductRankEntry{SKU: r.SKU, Title: r.Title}
			groups[key] = entry
			order = append(order, key)
		}
		entry.Qty += r.Qty
		entry.Revenue += r.Revenue
		totalRevenue += r.Revenue
	}

	if totalRevenue == 0 {
		totalRevenue = 1
	}

	ranked := make([]domain.ProductRankEntry, 0, len(order))
	for _, key := range order {
		entry := *groups[key]
		entry.RevenuePct = utils.RoundWithTwoDecimalPlace(entry.Revenue / totalRevenue * 100)
		ranked = append(ranked, entry)
	}

	// Stable sort keeps grouping order for equal quantities; tie order is
	// otherwise unspecified.
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Qty > ranked[j].Qty })

	if len(ranked) > size {
		ranked = ranked[:size]
	}

	return ranked
}
