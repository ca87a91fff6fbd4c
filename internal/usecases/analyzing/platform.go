package analyzing

import (
	"github.com/dashly/sales-analytics-api/internal/domain"
	"github.com/dashly/sales-analytics-api/pkg/utils"
)

// platformStats aggregates revenue and units sold per marketplace over the
// window's rows. Each platform's revenue share is computed against the
// window total; with a zero total every share is 0.
func platformStats(rows []domain.SalesRecord) map[string]domain.PlatformStat {
	type agg struct {
		revenue float64
		orders  int
	}

	byPlatform := make(map[string]*agg)
	var totalRevenue float64
	for _, r := range rows {
		a, ok := byPlatform[r.Platform]
		if !ok {
			a = &agg{}
			byPlatform[r.Platform] = a
		}
		a.revenue += r.Revenue
		a.orders += r.Qty
		totalRevenue += r.Revenue
	}

	stats := make(map[string]domain.PlatformStat, len(byPlatform))
	for name, a := range byPlatform {
		pct := 0.0
		if totalRevenue > 0 {
			pct = utils.RoundWithOneDecimalPlace(a.revenue / totalRevenue * 100)
		}
		stats[name] = domain.PlatformStat{
			Revenue:    a.revenue,
			Orders:     a.orders,
			RevenuePct: pct,
		}
	}

	return stats
}
