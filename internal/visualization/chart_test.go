package visualization

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dashly/sales-analytics-api/internal/domain"
)

var pngSignature = []byte{0x89, 'P', 'N', 'G'}

func chartRec(t *testing.T, date string, revenue float64) domain.SalesRecord {
	t.Helper()
	parsed, err := time.Parse(time.DateOnly, date)
	require.NoError(t, err)
	return domain.SalesRecord{Date: parsed, SKU: "A", Title: "A", Qty: 1, Revenue: revenue}
}

func TestDailySeries_ZeroFillsCalendarGaps(t *testing.T) {
	rows := []domain.SalesRecord{
		chartRec(t, "2024-01-01", 100),
		chartRec(t, "2024-01-01", 50),
		chartRec(t, "2024-01-04", 200),
	}

	days, values := dailySeries(rows)
	require.Len(t, days, 4)
	assert.Equal(t, []float64{150, 0, 0, 200}, values)
	assert.Equal(t, days[0].AddDate(0, 0, 3), days[3])
}

func TestDailySeries_Empty(t *testing.T) {
	days, values := dailySeries(nil)
	assert.Nil(t, days)
	assert.Nil(t, values)
}

func TestRenderDashboard(t *testing.T) {
	rows := []domain.SalesRecord{
		chartRec(t, "2024-01-01", 1000),
		chartRec(t, "2024-01-02", 500),
		chartRec(t, "2024-01-03", 800),
	}

	png, err := NewChartRenderer().RenderDashboard(rows, &domain.MetricsSnapshot{Revenue: 2300})
	require.NoError(t, err)
	require.Greater(t, len(png), 4)
	assert.Equal(t, pngSignature, png[:4])
}

func TestRenderDashboard_SingleDay(t *testing.T) {
	rows := []domain.SalesRecord{chartRec(t, "2024-01-01", 1000)}

	png, err := NewChartRenderer().RenderDashboard(rows, &domain.MetricsSnapshot{Revenue: 1000})
	require.NoError(t, err)
	require.Greater(t, len(png), 4)
	assert.Equal(t, pngSignature, png[:4])
}
