package domain

import (
	"time"
)

// Canonical field names every input column is mapped to.
const (
	FieldDate          = "date"
	FieldSKU           = "sku"
	FieldTitle         = "title"
	FieldQty           = "qty"
	FieldPrice         = "price"
	FieldRevenue       = "revenue"
	FieldCommissionPct = "commission_pct"
	FieldPlatform      = "platform"
)

// PlatformUnknown is assigned to rows without a marketplace column.
const PlatformUnknown = "Unknown"

// SalesRecord is a single normalized sales row. Qty and Revenue carry no
// positivity invariant: refunds and corrections may appear as negatives.
type SalesRecord struct {
	Date          time.Time `json:"date"`
	SKU           string    `json:"sku"`
	Title         string    `json:"title"`
	Qty           int       `json:"qty"`
	Price         float64   `json:"price"`
	Revenue       float64   `json:"revenue"`
	CommissionPct float64   `json:"commission_pct"`
	Platform      string    `json:"platform"`
}

// Day returns the record date truncated to calendar-day granularity.
func (r SalesRecord) Day() time.Time {
	return time.Date(r.Date.Year(), r.Date.Month(), r.Date.Day(), 0, 0, 0, 0, time.UTC)
}

// Dataset is the ordered, immutable result of one normalization pass.
// Every record is guaranteed to carry a successfully parsed date; rows with
// unparseable dates fail normalization entirely, so a Dataset never holds
// partially admitted data.
type Dataset struct {
	records []SalesRecord
}

// NewDataset builds a Dataset owning a private copy of records.
func NewDataset(records []SalesRecord) *Dataset {
	owned := make([]SalesRecord, len(records))
	copy(owned, records)
	return &Dataset{records: owned}
}

// Len returns the number of records.
func (d *Dataset) Len() int {
	return len(d.records)
}

// Records returns a copy of the record slice, preserving immutability.
func (d *Dataset) Records() []SalesRecord {
	out := make([]SalesRecord, len(d.records))
	copy(out, d.records)
	return out
}

// MinDate returns the earliest record day. Second result is false when the
// dataset is empty.
func (d *Dataset) MinDate() (time.Time, bool) {
	if len(d.records) == 0 {
		return time.Time{}, false
	}

	min := d.records[0].Day()
	for _, r := range d.records[1:] {
		if day := r.Day(); day.Before(min) {
			min = day
		}
	}
	return min, true
}

// MaxDate returns the latest record day — the anchor date for relative
// period keywords. Second result is false when the dataset is empty.
func (d *Dataset) MaxDate() (time.Time, bool) {
	if len(d.records) == 0 {
		return time.Time{}, false
	}

	max := d.records[0].Day()
	for _, r := range d.records[1:] {
		if day := r.Day(); day.After(max) {
			max = day
		}
	}
	return max, true
}

// Select returns the records whose day falls inside the window, inclusive
// on both ends. Time-of-day is ignored.
func (d *Dataset) Select(w PeriodWindow) []SalesRecord {
	var out []SalesRecord
	for _, r := range d.records {
		if w.Contains(r.Day()) {
			out = append(out, r)
		}
	}
	return out
}
