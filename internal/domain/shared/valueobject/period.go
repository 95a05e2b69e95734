package valueobject

import (
	"fmt"
	"time"

	"github.com/ilidanrock/ecohome-sub001/internal/domain/shared"
)

// BillingPeriod identifies one invoicing cycle: a (month, year) pair.
// Its date interval is [Start, End) where End is the first instant of the
// following month.
type BillingPeriod struct {
	month int
	year  int
}

// NewBillingPeriod creates a validated billing period
func NewBillingPeriod(month, year int) (BillingPeriod, error) {
	if month < 1 || month > 12 {
		return BillingPeriod{}, shared.NewDomainError("INVALID_PERIOD", fmt.Sprintf("Month must be between 1 and 12, got %d", month))
	}
	if year <= 0 {
		return BillingPeriod{}, shared.NewDomainError("INVALID_PERIOD", fmt.Sprintf("Year must be positive, got %d", year))
	}
	return BillingPeriod{month: month, year: year}, nil
}

// Month returns the period month (1-12)
func (p BillingPeriod) Month() int {
	return p.month
}

// Year returns the period year
func (p BillingPeriod) Year() int {
	return p.year
}

// Start returns the first instant of the period (UTC)
func (p BillingPeriod) Start() time.Time {
	return time.Date(p.year, time.Month(p.month), 1, 0, 0, 0, 0, time.UTC)
}

// End returns the first instant of the following month (UTC).
// The period interval is half-open: [Start, End).
func (p BillingPeriod) End() time.Time {
	return p.Start().AddDate(0, 1, 0)
}

// Contains reports whether t falls inside the period interval
func (p BillingPeriod) Contains(t time.Time) bool {
	return !t.Before(p.Start()) && t.Before(p.End())
}

// Overlaps reports whether the date range [start, end] intersects the period.
// A nil end means the range is open ended (an ongoing tenancy). The end bound
// is inclusive: a range ending exactly on the period start still overlaps.
// Queries that select rentals by period must apply the same rule.
func (p BillingPeriod) Overlaps(start time.Time, end *time.Time) bool {
	if !start.Before(p.End()) {
		return false
	}
	if end != nil && end.Before(p.Start()) {
		return false
	}
	return true
}

// String returns the period formatted as YYYY-MM
func (p BillingPeriod) String() string {
	return fmt.Sprintf("%04d-%02d", p.year, p.month)
}
