package analyzing

import (
	"fmt"
	"math"
	"sort"

	"github.com/dashly/sales-analytics-api/internal/domain"
	"github.com/dashly/sales-analytics-api/pkg/utils"
)

// tipSignals carries every signal the advisory rules may read.
type tipSignals struct {
	Curr      domain.MetricsSnapshot
	Prev      *domain.MetricsSnapshot
	TopCurr   []domain.ProductRankEntry
	TopPrev   []domain.ProductRankEntry
	Anomalies []domain.AnomalyEvent
	Platforms map[string]domain.PlatformStat
}

// tipRule is one advisory heuristic: a named, independently testable
// predicate/formatter pair. Rules run in fixed priority order and every
// applicable rule fires — there is no early termination.
type tipRule struct {
	name     string
	evaluate func(s tipSignals) []string
}

var tipRules = []tipRule{
	{name: "anomaly-swings", evaluate: anomalyTips},
	{name: "revenue-swing", evaluate: revenueSwingTip},
	{name: "top-concentration", evaluate: concentrationTip},
	{name: "avg-check-regression", evaluate: avgCheckTip},
	{name: "commission-ratio", evaluate: commissionRatioTip},
	{name: "new-leader", evaluate: newLeaderTip},
	{name: "best-platform", evaluate: bestPlatformTip},
}

// generateTips runs the rule list over the signals. The result is never
// empty: when nothing fires a single "stable" advisory is emitted.
func generateTips(s tipSignals) []string {
	var tips []string
	for _, rule := range tipRules {
		tips = append(tips, rule.evaluate(s)...)
	}

	if len(tips) == 0 {
		tips = append(tips, "✅ Показатели стабильны — продолжайте в том же духе.")
	}

	return tips
}

// anomalyTips reports up to the first two anomalous days.
func anomalyTips(s tipSignals) []string {
	var tips []string
	for i, a := range s.Anomalies {
		if i == 2 {
			break
		}

		change := utils.FormatNumber(math.Abs(a.ChangePct))
		if a.Kind == domain.AnomalyDrop {
			tips = append(tips, fmt.Sprintf("⚠️ Резкое падение %s: %s%%", a.Date, change))
		} else {
			tips = append(tips, fmt.Sprintf("🚀 Резкий рост %s: +%s%%", a.Date, change))
		}
	}
	return tips
}

// revenueSwingTip fires on a >10% revenue move versus the previous period.
// Requires both revenues to be nonzero.
func revenueSwingTip(s tipSignals) []string {
	if s.Prev == nil || s.Curr.Revenue == 0 || s.Prev.Revenue == 0 {
		return nil
	}

	change := pctChange(s.Curr.Revenue, s.Prev.Revenue)
	if change == nil {
		return nil
	}

	switch {
	case *change > 10:
		return []string{fmt.Sprintf("🚀 Продажи выросли на %s%% — отличный результат!", utils.FormatNumber(*change))}
	case *change < -10:
		return []string{fmt.Sprintf("⚠️ Продажи снизились на %s%% — проверь рекламу.", utils.FormatNumber(math.Abs(*change)))}
	default:
		return nil
	}
}

// concentrationTip warns when the top product carries over 40% of revenue.
func concentrationTip(s tipSignals) []string {
	if len(s.TopCurr) == 0 || s.TopCurr[0].RevenuePct <= 40 {
		return nil
	}

	leader := s.TopCurr[0]
	return []string{fmt.Sprintf(
		"📦 Топ-товар %s приносит %s%% выручки — увеличь запасы.",
		leader.Title, utils.FormatNumber(leader.RevenuePct),
	)}
}

// avgCheckTip suggests upsells when the average check fell by more than 5%.
func avgCheckTip(s tipSignals) []string {
	if s.Prev == nil || s.Curr.AvgCheck == 0 || s.Prev.AvgCheck == 0 {
		return nil
	}

	change := pctChange(s.Curr.AvgCheck, s.Prev.AvgCheck)
	if change == nil || *change >= -5 {
		return nil
	}

	return []string{fmt.Sprintf(
		"💰 Средний чек снизился на %s%% — добавь сопутствующие товары.",
		utils.FormatNumber(math.Abs(*change)),
	)}
}

// commissionRatioTip reads MetricsSnapshot.CommissionPct, which the metrics
// calculator never populates in the current flow — the rule is effectively
// unreachable. Kept as shipped pending product clarification; do not add a
// computation here to make it fire.
func commissionRatioTip(s tipSignals) []string {
	if s.Curr.CommissionPct <= 15 {
		return nil
	}

	return []string{fmt.Sprintf(
		"💸 Комиссия достигла %s%% — пересмотри категории или условия.",
		utils.FormatNumber(s.Curr.CommissionPct),
	)}
}

// newLeaderTip fires for the first current top product absent from the
// previous period's top list.
func newLeaderTip(s tipSignals) []string {
	prevSKUs := make(map[string]struct{}, len(s.TopPrev))
	for _, p := range s.TopPrev {
		prevSKUs[p.SKU] = struct{}{}
	}

	for _, p := range s.TopCurr {
		if _, ok := prevSKUs[p.SKU]; !ok {
			return []string{fmt.Sprintf("🔥 Новый лидер: %s.", p.Title)}
		}
	}

	return nil
}

// bestPlatformTip names the highest-revenue marketplace when more than one
// is present. Ties break on name for determinism.
func bestPlatformTip(s tipSignals) []string {
	if len(s.Platforms) < 2 {
		return nil
	}

	names := make([]string, 0, len(s.Platforms))
	for name := range s.Platforms {
		names = append(names, name)
	}
	sort.Strings(names)

	best := names[0]
	for _, name := range names[1:] {
		if s.Platforms[name].Revenue > s.Platforms[best].Revenue {
			best = name
		}
	}

	return []string{fmt.Sprintf(
		"🏆 Лучшая платформа: %s (%s%% выручки)",
		best, utils.FormatNumber(s.Platforms[best].RevenuePct),
	)}
}
