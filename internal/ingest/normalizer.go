package ingest

import (
	"strconv"
	"strings"

	"github.com/dashly/sales-analytics-api/internal/domain"
	"github.com/dashly/sales-analytics-api/pkg/utils"
)

// Normalizer maps a decoded Table onto the canonical sales schema. The
// transform is pure: it validates, derives missing fields and returns a new
// immutable Dataset without touching the input.
type Normalizer struct {
	defaultCommission float64
}

// NewNormalizer creates a Normalizer. defaultCommission replaces absent or
// non-numeric commission_pct values.
func NewNormalizer(defaultCommission float64) *Normalizer {
	return &Normalizer{defaultCommission: defaultCommission}
}

// Normalize resolves headers through the alias table, validates required
// fields and coerces every row into a SalesRecord.
//
// Date parsing is all-or-nothing: a single unparseable date rejects the
// whole dataset, so a Dataset never admits partial data.
func (n *Normalizer) Normalize(t *Table) (*domain.Dataset, error) {
	columns := resolveColumns(t.Headers)

	dateIdx, hasDate := columns[domain.FieldDate]
	if !hasDate {
		return nil, domain.NewValidationError("Отсутствует обязательный столбец: date")
	}

	skuIdx, hasSKU := columns[domain.FieldSKU]
	titleIdx, hasTitle := columns[domain.FieldTitle]
	if !hasSKU && !hasTitle {
		return nil, domain.NewValidationError("Отсутствует обязательный столбец: sku или title")
	}

	qtyIdx, hasQty := columns[domain.FieldQty]
	if !hasQty {
		return nil, domain.NewValidationError("Отсутствует обязательный столбец: quantity/qty")
	}

	priceIdx, hasPrice := columns[domain.FieldPrice]
	revenueIdx, hasRevenue := columns[domain.FieldRevenue]
	commissionIdx, hasCommission := columns[domain.FieldCommissionPct]
	platformIdx, hasPlatform := columns[domain.FieldPlatform]

	records := make([]domain.SalesRecord, 0, len(t.Rows))
	for _, row := range t.Rows {
		date, err := utils.ParseDate(cell(row, dateIdx))
		if err != nil {
			return nil, domain.NewValidationError("Некоторые данные не удалось проанализировать — проверьте формат данных.")
		}

		qty := coerceInt(cell(row, qtyIdx))

		var price float64
		if hasPrice {
			price = coerceFloat(cell(row, priceIdx))
		}

		var revenue float64
		switch {
		case hasRevenue:
			revenue = coerceFloat(cell(row, revenueIdx))
		case hasPrice:
			revenue = price * float64(qty)
		}

		commission := n.defaultCommission
		if hasCommission {
			if v, ok := parseFloat(cell(row, commissionIdx)); ok {
				commission = v
			}
		}

		platform := domain.PlatformUnknown
		if hasPlatform {
			platform = canonicalPlatform(cell(row, platformIdx))
		}

		var sku string
		if hasSKU {
			sku = strings.TrimSpace(cell(row, skuIdx))
		}

		title := sku
		if hasTitle {
			title = strings.TrimSpace(cell(row, titleIdx))
		}

		records = append(records, domain.SalesRecord{
			Date:          date,
			SKU:           sku,
			Title:         title,
			Qty:           qty,
			Price:         price,
			Revenue:       revenue,
			CommissionPct: commission,
			Platform:      platform,
		})
	}

	return domain.NewDataset(records), nil
}

// resolveColumns walks the priority-ordered alias table against the trimmed,
// lowercased headers. The first matching alias of each canonical field wins.
func resolveColumns(headers []string) map[string]int {
	normalized := make([]string, len(headers))
	for i, h := range headers {
		normalized[i] = strings.ToLower(strings.TrimSpace(h))
	}

	columns := make(map[string]int, len(columnAliases))
	for _, field := range columnAliases {
	aliasLoop:
		for _, alias := range field.aliases {
			for idx, header := range normalized {
				if header == alias {
					columns[field.canonical] = idx
					break aliasLoop
				}
			}
		}
	}

	return columns
}

// canonicalPlatform trims and canonicalizes a marketplace name; unmapped
// values pass through verbatim.
func canonicalPlatform(raw string) string {
	name := strings.TrimSpace(raw)
	if name == "" {
		return domain.PlatformUnknown
	}
	if canon, ok := platformCanon[name]; ok {
		return canon
	}
	return name
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

func parseFloat(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// coerceFloat replaces invalid numeric values with 0.0.
func coerceFloat(s string) float64 {
	v, _ := parseFloat(s)
	return v
}

// coerceInt replaces invalid quantities with 0; fractional values truncate.
func coerceInt(s string) int {
	v, ok := parseFloat(s)
	if !ok {
		return 0
	}
	return int(v)
}
