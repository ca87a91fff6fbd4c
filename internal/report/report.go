// Package report renders an AnalysisResult as the Markdown summary used as
// the chat-bot photo caption. The transport sends it next to the chart PNG.
package report

import (
	"fmt"
	"strings"

	"github.com/dashly/sales-analytics-api/internal/domain"
	"github.com/dashly/sales-analytics-api/pkg/utils"
)

// FormatText builds the human-readable sales report.
func FormatText(result *domain.AnalysisResult) string {
	var b strings.Builder

	m := result.Metrics
	fmt.Fprintf(&b, "📊 *Отчет по продажам за %s — %s*\n\n", result.Meta.PeriodStart, result.Meta.PeriodEnd)

	fmt.Fprintf(&b, "💰 Выручка: %s ₽%s\n", money(m.Revenue), delta(m.RevenueChangePct))
	fmt.Fprintf(&b, "📦 Продано: %d шт.%s\n", m.Orders, delta(m.OrdersChangePct))
	fmt.Fprintf(&b, "🧾 Средний чек: %s ₽%s\n", money(m.AvgCheck), delta(m.AvgCheckChangePct))
	fmt.Fprintf(&b, "💸 Комиссия: %s ₽\n", money(m.Commission))
	fmt.Fprintf(&b, "✅ Прибыль: %s ₽\n", money(m.Profit))

	if len(result.Top5) > 0 {
		b.WriteString("\n🏆 Топ товары:\n")
		for i, p := range result.Top5 {
			fmt.Fprintf(&b, "%d. %s — %d шт., %s ₽\n", i+1, p.Title, p.Qty, money(p.Revenue))
		}
	}

	if len(result.Tips) > 0 {
		b.WriteString("\n💡 Советы:\n")
		for _, tip := range result.Tips {
			fmt.Fprintf(&b, "• %s\n", tip)
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

func money(v float64) string {
	return utils.FormatNumber(utils.RoundWithTwoDecimalPlace(v))
}

// delta renders a signed percentage suffix, empty when no baseline exists.
func delta(change *float64) string {
	if change == nil {
		return ""
	}
	if *change >= 0 {
		return fmt.Sprintf(" (+%s%%)", utils.FormatNumber(*change))
	}
	return fmt.Sprintf(" (%s%%)", utils.FormatNumber(*change))
}
