package domain

// MetricsSnapshot aggregates one window's sales figures.
//
// Orders is the sum of row quantities — total units sold, not a distinct
// order count. The naming is kept for compatibility with the consumers of
// this API and must not be reinterpreted downstream.
type MetricsSnapshot struct {
	Revenue    float64 `json:"revenue"`
	Orders     int     `json:"orders"`
	AvgCheck   float64 `json:"avg_check"`
	Commission float64 `json:"commission"`
	Profit     float64 `json:"profit"`

	// CommissionPct is read by the commission-ratio advisory rule but is
	// not populated by the metrics calculator in the current flow. Pending
	// product clarification; do not wire a computation into it silently.
	CommissionPct float64 `json:"commission_pct,omitempty"`

	// Percentage deltas versus the previous window. Nil when no previous
	// snapshot exists or when the previous value is zero.
	RevenueChangePct  *float64 `json:"revenue_change_pct"`
	OrdersChangePct   *float64 `json:"orders_change_pct"`
	AvgCheckChangePct *float64 `json:"avg_check_change_pct"`
}

// AnomalyKind classifies an anomalous day-over-day revenue swing.
const (
	AnomalySpike = "spike"
	AnomalyDrop  = "drop"
)

// AnomalyEvent is one outsized day-over-day revenue swing.
type AnomalyEvent struct {
	Date      string  `json:"date"` // ISO calendar day
	Kind      string  `json:"type"`
	ChangePct float64 `json:"change_pct"` // one decimal, signed
	Value     float64 `json:"value"`      // day revenue, two decimals
}

// ProductRankEntry is one row of the top-products ranking. RevenuePct is the
// group's share of revenue across all product groups in the window, not just
// the ranked ones.
type ProductRankEntry struct {
	SKU        string  `json:"sku"`
	Title      string  `json:"title"`
	Qty        int     `json:"qty"`
	Revenue    float64 `json:"revenue"`
	RevenuePct float64 `json:"revenue_pct"`
}

// PlatformStat aggregates one marketplace's share of the window.
type PlatformStat struct {
	Revenue    float64 `json:"revenue"`
	Orders     int     `json:"orders"`
	RevenuePct float64 `json:"revenue_pct"`
}
