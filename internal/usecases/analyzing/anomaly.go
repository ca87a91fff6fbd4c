package analyzing

import (
	"math"
	"sort"
	"time"

	"github.com/dashly/sales-analytics-api/internal/domain"
	"github.com/dashly/sales-analytics-api/pkg/utils"
)

// dailyRevenue aggregates revenue per calendar day present in rows, returned
// date-ascending. Days without rows are not synthesized: the series may have
// calendar gaps.
func dailyRevenue(rows []domain.SalesRecord) ([]time.Time, []float64) {
	byDay := make(map[time.Time]float64)
	for _, r := range rows {
		byDay[r.Day()] += r.Revenue
	}

	days := make([]time.Time, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	values := make([]float64, len(days))
	for i, day := range days {
		values[i] = byDay[day]
	}

	return days, values
}

// detectAnomalies flags day-over-day revenue swings whose absolute change
// exceeds threshold (a ratio, e.g. 0.3 for 30%). Comparisons run between
// consecutive *present* days: when the data has date gaps a flagged swing
// may span more than one real day. Days following a zero-revenue day are
// skipped, and fewer than two days yield no events.
func detectAnomalies(rows []domain.SalesRecord, threshold float64) []domain.AnomalyEvent {
	days, values := dailyRevenue(rows)
	if len(days) < 2 {
		return nil
	}

	var events []domain.AnomalyEvent
	for i := 1; i < len(days); i++ {
		prev := values[i-1]
		if prev == 0 {
			continue
		}

		change := (values[i] - prev) / prev * 100
		if math.Abs(change) <= threshold*100 {
			continue
		}

		kind := domain.AnomalySpike
		if change < 0 {
			kind = domain.AnomalyDrop
		}

		events = append(events, domain.AnomalyEvent{
			Date:      days[i].Format(time.DateOnly),
			Kind:      kind,
			ChangePct: utils.RoundWithOneDecimalPlace(change),
			Value:     utils.RoundWithTwoDecimalPlace(values[i]),
		})
	}

	return events
}
