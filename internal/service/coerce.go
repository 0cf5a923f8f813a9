package service

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Number is a loosely typed numeric field: the API accepts JSON numbers and
// numeric strings interchangeably, and malformed input degrades to zero
// instead of failing the request. This coercion policy is deliberate and
// centralized here; handlers and services must not re-parse numerics.
type Number string

func (n *Number) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*n = ""
		return nil
	}
	*n = Number(strings.Trim(s, `"`))
	return nil
}

// Decimal parses the raw value, degrading missing or malformed input to zero.
func (n Number) Decimal() decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(string(n)))
	if err != nil {
		return decimal.Zero
	}
	return d
}

// ResolveAmount derives a line item's monetary amount. A parseable non-zero
// amount wins; otherwise the amount falls back to quantity*rate with missing
// operands treated as zero. Note the caller-visible quirk: an explicit amount
// of 0 is indistinguishable from "not supplied" and is overridden by
// quantity*rate.
func ResolveAmount(amount, quantity, rate Number) decimal.Decimal {
	if amt := amount.Decimal(); !amt.IsZero() {
		return amt
	}
	return quantity.Decimal().Mul(rate.Decimal())
}

// SumAmounts totals the resolved amounts of the given line items. An empty or
// nil set totals to zero. Never fails.
func SumAmounts(items []LineItemPayload) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(ResolveAmount(it.Amount, it.Quantity, it.Rate))
	}
	return total
}

// dateLayouts are the calendar representations accepted for invoice_date and
// item_date. Stored values are normalized to the date portion only.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"01/02/2006",
	"2006/01/02",
	"Jan 2, 2006",
	"January 2, 2006",
}

// parseDate normalizes a calendar date string to a date-only time. Absent or
// unparseable input yields nil, which is stored as NULL.
func parseDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
			return &d
		}
	}
	return nil
}

// formatDate renders a stored date as YYYY-MM-DD for responses.
func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("2006-01-02")
	return &s
}
