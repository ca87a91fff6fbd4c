package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dashly/sales-analytics-api/internal/domain"
)

func TestFormatText_FullReport(t *testing.T) {
	revChange := 50.0
	ordersChange := -25.0

	result := &domain.AnalysisResult{
		Metrics: domain.MetricsSnapshot{
			Revenue:          1500,
			Orders:           15,
			AvgCheck:         100,
			Commission:       225,
			Profit:           1275,
			RevenueChangePct: &revChange,
			OrdersChangePct:  &ordersChange,
		},
		Top5: []domain.ProductRankEntry{
			{SKU: "A", Title: "Кружка", Qty: 10, Revenue: 1000},
			{SKU: "B", Title: "Чай", Qty: 5, Revenue: 500},
		},
		Tips: []string{"🔥 Новый лидер: Чай."},
		Meta: domain.AnalysisMeta{PeriodStart: "2023-12-27", PeriodEnd: "2024-01-02"},
	}

	text := FormatText(result)

	assert.True(t, strings.HasPrefix(text, "📊 *Отчет по продажам за 2023-12-27 — 2024-01-02*"))
	assert.Contains(t, text, "💰 Выручка: 1500 ₽ (+50%)")
	assert.Contains(t, text, "📦 Продано: 15 шт. (-25%)")
	assert.Contains(t, text, "🧾 Средний чек: 100 ₽\n")
	assert.Contains(t, text, "💸 Комиссия: 225 ₽")
	assert.Contains(t, text, "✅ Прибыль: 1275 ₽")
	assert.Contains(t, text, "1. Кружка — 10 шт., 1000 ₽")
	assert.Contains(t, text, "2. Чай — 5 шт., 500 ₽")
	assert.Contains(t, text, "• 🔥 Новый лидер: Чай.")
	assert.False(t, strings.HasSuffix(text, "\n"))
}

func TestFormatText_FractionalAmountsRounded(t *testing.T) {
	result := &domain.AnalysisResult{
		Metrics: domain.MetricsSnapshot{
			Revenue:  1234.567,
			AvgCheck: 33.333333,
		},
		Meta: domain.AnalysisMeta{PeriodStart: "2024-01-01", PeriodEnd: "2024-01-01"},
	}

	text := FormatText(result)
	assert.Contains(t, text, "💰 Выручка: 1234.57 ₽")
	assert.Contains(t, text, "🧾 Средний чек: 33.33 ₽")
}

func TestFormatText_OmitsEmptySections(t *testing.T) {
	result := &domain.AnalysisResult{
		Metrics: domain.MetricsSnapshot{Revenue: 100},
		Meta:    domain.AnalysisMeta{PeriodStart: "2024-01-01", PeriodEnd: "2024-01-01"},
	}

	text := FormatText(result)
	assert.NotContains(t, text, "🏆 Топ товары")
	assert.NotContains(t, text, "💡 Советы")
}
