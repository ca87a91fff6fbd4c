package analyzing

import (
	"github.com/dashly/sales-analytics-api/internal/domain"
	"github.com/dashly/sales-analytics-api/pkg/utils"
)

// calcMetrics aggregates one window's row subset into a snapshot. Orders is
// the sum of quantities (units sold), commission is row-weighted by each
// record's own commission_pct. An empty subset is a validation failure, not
// a zero-valued snapshot.
func calcMetrics(rows []domain.SalesRecord) (domain.MetricsSnapshot, error) {
	if len(rows) == 0 {
		return domain.MetricsSnapshot{}, domain.NewValidationError("Нет данных за запрошенный период")
	}

	var revenue, commission float64
	var orders int
	for _, r := range rows {
		revenue += r.Revenue
		orders += r.Qty
		commission += r.Revenue * r.CommissionPct
	}

	avgCheck := 0.0
	if orders != 0 {
		avgCheck = revenue / float64(orders)
	}

	return domain.MetricsSnapshot{
		Revenue:    revenue,
		Orders:     orders,
		AvgCheck:   avgCheck,
		Commission: commission,
		Profit:     revenue - commission,
	}, nil
}

// applyDeltas fills the snapshot's percentage changes against the previous
// window. With no previous snapshot the deltas stay nil.
func applyDeltas(curr *domain.MetricsSnapshot, prev *domain.MetricsSnapshot) {
	if prev == nil {
		return
	}

	curr.RevenueChangePct = pctChange(curr.Revenue, prev.Revenue)
	curr.OrdersChangePct = pctChange(float64(curr.Orders), float64(prev.Orders))
	curr.AvgCheckChangePct = pctChange(curr.AvgCheck, prev.AvgCheck)
}

// pctChange returns round((curr-prev)/prev*100, 2), or nil when prev is
// zero — never infinity or NaN.
func pctChange(curr, prev float64) *float64 {
	if prev == 0 {
		return nil
	}

	change := utils.RoundWithTwoDecimalPlace((curr - prev) / prev * 100)
	return &change
}
