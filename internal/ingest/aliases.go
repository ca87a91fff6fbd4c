package ingest

import "github.com/dashly/sales-analytics-api/internal/domain"

// fieldAlias binds a canonical field to its accepted header spellings, in
// priority order. Matching is exact and case-insensitive (headers are
// lowercased first); the first alias found in the header row wins. No fuzzy
// matching by design: a silently mis-mapped column is worse than a rejected
// file.
type fieldAlias struct {
	canonical string
	aliases   []string
}

// columnAliases is the fixed, ordered alias table of the canonical schema.
// The canonical name itself is always the first alias, which also makes
// normalization of an already-normalized table a no-op.
var columnAliases = []fieldAlias{
	{domain.FieldDate, []string{"date", "order_date", "dt"}},
	{domain.FieldSKU, []string{"sku", "product_sku", "article"}},
	{domain.FieldTitle, []string{"title", "product_name", "name"}},
	{domain.FieldQty, []string{"qty", "quantity", "count", "amount"}},
	{domain.FieldPrice, []string{"price", "unit_price"}},
	{domain.FieldRevenue, []string{"revenue", "total", "sum"}},
	{domain.FieldCommissionPct, []string{"commission_pct", "commission", "commission_rate"}},
	{domain.FieldPlatform, []string{"platform", "marketplace", "source"}},
}

// platformCanon maps known marketplace spellings to their canonical names.
// Values not present here pass through verbatim (trimmed).
var platformCanon = map[string]string{
	"WB":          "Wildberries",
	"wb":          "Wildberries",
	"wildberries": "Wildberries",
	"Wildberries": "Wildberries",
	"Ozon":        "Ozon",
	"ozon":        "Ozon",
	"OZON":        "Ozon",
}
