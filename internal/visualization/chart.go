package visualization

import (
	"bytes"
	"sort"
	"time"

	"github.com/pkg/errors"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/dashly/sales-analytics-api/internal/domain"
)

// Visualizer renders the dashboard image for one analysis. The returned
// bytes are an opaque PNG: the analytics core forwards them unmodified and
// the transport layer base64-encodes them.
type Visualizer interface {
	RenderDashboard(rows []domain.SalesRecord, metrics *domain.MetricsSnapshot) ([]byte, error)
}

// ChartRenderer draws the current window's daily revenue curve. Unlike the
// anomaly detector, the chart zero-fills calendar gaps so the X axis stays
// an honest timeline.
type ChartRenderer struct{}

func NewChartRenderer() *ChartRenderer {
	return &ChartRenderer{}
}

func (c *ChartRenderer) RenderDashboard(rows []domain.SalesRecord, metrics *domain.MetricsSnapshot) ([]byte, error) {
	days, values := dailySeries(rows)

	// go-chart needs a non-degenerate X range; pad single-day windows with
	// an empty preceding day.
	if len(days) == 1 {
		days = append([]time.Time{days[0].AddDate(0, 0, -1)}, days...)
		values = append([]float64{0}, values...)
	}

	accent := drawing.ColorFromHex("0056b3")

	revenueSeries := chart.TimeSeries{
		Name: "Выручка",
		Style: chart.Style{
			StrokeColor: accent,
			StrokeWidth: 3.0,
			FillColor:   accent.WithAlpha(30),
		},
		XValues: days,
		YValues: values,
	}

	graph := chart.Chart{
		Title:      "Dashly — выручка по дням",
		Width:      1100,
		Height:     500,
		Background: chart.Style{FillColor: drawing.ColorFromHex("f5f7fa")},
		Canvas:     chart.Style{FillColor: drawing.ColorFromHex("ffffff")},
		XAxis: chart.XAxis{
			ValueFormatter: chart.TimeDateValueFormatter,
		},
		Series: []chart.Series{revenueSeries},
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, errors.Wrap(err, "rendering dashboard chart")
	}

	return buf.Bytes(), nil
}

// dailySeries aggregates revenue per day and zero-fills every calendar day
// between the first and last present day.
func dailySeries(rows []domain.SalesRecord) ([]time.Time, []float64) {
	if len(rows) == 0 {
		return nil, nil
	}

	byDay := make(map[time.Time]float64)
	for _, r := range rows {
		byDay[r.Day()] += r.Revenue
	}

	present := make([]time.Time, 0, len(byDay))
	for day := range byDay {
		present = append(present, day)
	}
	sort.Slice(present, func(i, j int) bool { return present[i].Before(present[j]) })

	first, last := present[0], present[len(present)-1]

	var days []time.Time
	var values []float64
	for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
		days = append(days, day)
		values = append(values, byDay[day])
	}

	return days, values
}
