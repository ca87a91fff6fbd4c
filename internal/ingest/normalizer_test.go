package ingest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dashly/sales-analytics-api/internal/domain"
)

func TestNormalize_RequiredColumns(t *testing.T) {
	n := NewNormalizer(0.15)

	tests := []struct {
		name    string
		headers []string
		wantErr string
	}{
		{
			name:    "missing date",
			headers: []string{"sku", "qty"},
			wantErr: "date",
		},
		{
			name:    "missing sku and title",
			headers: []string{"date", "qty"},
			wantErr: "sku или title",
		},
		{
			name:    "missing qty",
			headers: []string{"date", "sku"},
			wantErr: "quantity/qty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := n.Normalize(&Table{Headers: tt.headers})
			require.Error(t, err)
			assert.True(t, domain.IsValidation(err))
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestNormalize_MinimalRequiredSet(t *testing.T) {
	n := NewNormalizer(0.15)

	ds, err := n.Normalize(&Table{
		Headers: []string{"date", "title", "qty"},
		Rows: [][]string{
			{"2024-01-01", "Кружка", "3"},
		},
	})
	require.NoError(t, err)
	require.Equal(t, 1, ds.Len())

	rec := ds.Records()[0]
	assert.Equal(t, "Кружка", rec.Title)
	assert.Equal(t, 3, rec.Qty)
	assert.Equal(t, 0.0, rec.Revenue)
	assert.Equal(t, 0.15, rec.CommissionPct)
	assert.Equal(t, domain.PlatformUnknown, rec.Platform)
}

func TestNormalize_AliasResolutionFirstMatchWins(t *testing.T) {
	n := NewNormalizer(0.15)

	// "Order_Date" and "dt" both alias date; the higher-priority alias wins.
	ds, err := n.Normalize(&Table{
		Headers: []string{" Order_Date ", "dt", "Article", "Quantity", "Total"},
		Rows: [][]string{
			{"2024-02-10", "1999-01-01", "SKU9", "2", "500"},
		},
	})
	require.NoError(t, err)

	rec := ds.Records()[0]
	assert.Equal(t, time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC), rec.Day())
	assert.Equal(t, "SKU9", rec.SKU)
	assert.Equal(t, 2, rec.Qty)
	assert.Equal(t, 500.0, rec.Revenue)
}

func TestNormalize_RevenueDerivedFromPrice(t *testing.T) {
	n := NewNormalizer(0.15)

	ds, err := n.Normalize(&Table{
		Headers: []string{"date", "sku", "qty", "price"},
		Rows: [][]string{
			{"2024-01-01", "A", "4", "99.5"},
			{"2024-01-01", "B", "bad", "10"},
		},
	})
	require.NoError(t, err)

	records := ds.Records()
	assert.Equal(t, 398.0, records[0].Revenue)
	// invalid qty coerces to 0 and so does the derived revenue
	assert.Equal(t, 0, records[1].Qty)
	assert.Equal(t, 0.0, records[1].Revenue)
}

func TestNormalize_CommissionDefaultAndPlatformCanon(t *testing.T) {
	n := NewNormalizer(0.15)

	ds, err := n.Normalize(&Table{
		Headers: []string{"date", "sku", "qty", "commission_pct", "marketplace"},
		Rows: [][]string{
			{"2024-01-01", "A", "1", "0.05", "wb"},
			{"2024-01-01", "B", "1", "oops", "OZON"},
			{"2024-01-01", "C", "1", "", " Yandex Market "},
		},
	})
	require.NoError(t, err)

	records := ds.Records()
	assert.Equal(t, 0.05, records[0].CommissionPct)
	assert.Equal(t, "Wildberries", records[0].Platform)
	assert.Equal(t, 0.15, records[1].CommissionPct)
	assert.Equal(t, "Ozon", records[1].Platform)
	assert.Equal(t, 0.15, records[2].CommissionPct)
	// unmapped platforms pass through trimmed
	assert.Equal(t, "Yandex Market", records[2].Platform)
}

func TestNormalize_TitleFallsBackToSKU(t *testing.T) {
	n := NewNormalizer(0.15)

	ds, err := n.Normalize(&Table{
		Headers: []string{"date", "sku", "qty"},
		Rows:    [][]string{{"2024-01-01", "SKU42", "1"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "SKU42", ds.Records()[0].Title)
}

func TestNormalize_BadDateRejectsWholeDataset(t *testing.T) {
	n := NewNormalizer(0.15)

	_, err := n.Normalize(&Table{
		Headers: []string{"date", "sku", "qty"},
		Rows: [][]string{
			{"2024-01-01", "A", "1"},
			{"not-a-date", "B", "1"},
		},
	})
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
}

func TestNormalize_AlreadyNormalizedIsNoOp(t *testing.T) {
	n := NewNormalizer(0.15)

	table := &Table{
		Headers: []string{"date", "sku", "title", "qty", "price", "revenue", "commission_pct", "platform"},
		Rows: [][]string{
			{"2024-01-01", "A", "Чай", "2", "50", "100", "0.1", "Wildberries"},
			{"2024-01-02", "B", "Кофе", "1", "80", "80", "0.2", "Ozon"},
		},
	}

	first, err := n.Normalize(table)
	require.NoError(t, err)

	second, err := n.Normalize(table)
	require.NoError(t, err)

	assert.Equal(t, first.Records(), second.Records())
}

func TestDatasetImmutability(t *testing.T) {
	records := []domain.SalesRecord{
		{Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), SKU: "A", Qty: 1},
	}
	ds := domain.NewDataset(records)

	records[0].SKU = "mutated"
	assert.Equal(t, "A", ds.Records()[0].SKU)

	out := ds.Records()
	out[0].SKU = "mutated-again"
	assert.Equal(t, "A", ds.Records()[0].SKU)
}
