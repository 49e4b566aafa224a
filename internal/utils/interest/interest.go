package interest

import (
	"time"

	"github.com/shopspring/decimal"
)

var two = decimal.NewFromInt(2)
var hundred = decimal.NewFromInt(100)

// MonthlyInterest returns one month of interest on the loan at ratePercent
// per month.
func MonthlyInterest(loanAmount, ratePercent decimal.Decimal) decimal.Decimal {
	return loanAmount.Mul(ratePercent).Div(hundred)
}

// AccruedInterest returns the total interest due on a pledge from pledgeDate
// through asOf.
//
// The first month is covered by the first-month interest collected upfront,
// which may differ from the scheme's monthly amount. Every further complete
// month adds one full month of interest. The trailing partial month counts
// the days elapsed inclusive of both endpoints: 15 days or fewer charge a
// half month, 16 or more a full month.
//
// Month boundaries keep the pledge date's day-of-month, clamped to the last
// day of shorter months, and are always derived from the pledge date itself
// so clamping never compounds across months.
func AccruedInterest(pledgeDate, asOf time.Time, loanAmount, ratePercent, firstMonthInterest decimal.Decimal) decimal.Decimal {
	due := firstMonthInterest
	if asOf.Before(pledgeDate) {
		return due
	}

	monthly := MonthlyInterest(loanAmount, ratePercent)

	// Count complete months: the largest k with boundary(k) on or before asOf.
	completed := 0
	for !monthBoundary(pledgeDate, completed+1).After(asOf) {
		completed++
	}

	// Months 2..completed are fully elapsed (month 1 is the upfront one).
	if completed >= 2 {
		due = due.Add(monthly.Mul(decimal.NewFromInt(int64(completed - 1))))
	}

	// Trailing partial month, if the first month has already run out.
	if completed >= 1 {
		start := monthBoundary(pledgeDate, completed)
		days := daysBetween(start, asOf) + 1
		if days <= 15 {
			due = due.Add(monthly.Div(two))
		} else {
			due = due.Add(monthly)
		}
	}

	return due
}

// Outstanding returns the interest still owed after subtracting what has
// already been received, floored at zero.
func Outstanding(pledgeDate, asOf time.Time, loanAmount, ratePercent, firstMonthInterest, interestReceived decimal.Decimal) decimal.Decimal {
	due := AccruedInterest(pledgeDate, asOf, loanAmount, ratePercent, firstMonthInterest)
	out := due.Sub(interestReceived)
	if out.IsNegative() {
		return decimal.Zero
	}
	return out
}

// monthBoundary returns pledgeDate shifted forward by the given number of
// months, clamping the day when the target month is shorter.
func monthBoundary(pledgeDate time.Time, months int) time.Time {
	y, m, d := pledgeDate.Date()
	first := time.Date(y, m+time.Month(months), 1, 0, 0, 0, 0, pledgeDate.Location())
	if last := first.AddDate(0, 1, -1).Day(); d > last {
		d = last
	}
	return time.Date(first.Year(), first.Month(), d, 0, 0, 0, 0, pledgeDate.Location())
}

func daysBetween(from, to time.Time) int {
	f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(t.Sub(f).Hours() / 24)
}
