package interest_test

import (
	"testing"
	"time"

	"github.com/pawnsoft/pawnledger/internal/utils/interest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAccruedInterest(t *testing.T) {
	loan := decimal.NewFromInt(100000)
	rate := decimal.NewFromInt(2) // 2000/month, 1000/half
	fmi := decimal.NewFromInt(2000)

	tests := []struct {
		name       string
		pledgeDate time.Time
		asOf       time.Time
		want       int64
	}{
		{
			name:       "within first month only upfront interest",
			pledgeDate: date(2025, time.January, 15),
			asOf:       date(2025, time.January, 20),
			want:       2000,
		},
		{
			name:       "day before first boundary",
			pledgeDate: date(2025, time.January, 15),
			asOf:       date(2025, time.February, 14),
			want:       2000,
		},
		{
			name:       "on first boundary counts a half month",
			pledgeDate: date(2025, time.January, 15),
			asOf:       date(2025, time.February, 15),
			want:       3000,
		},
		{
			name:       "fifteen days into second month stays half",
			pledgeDate: date(2025, time.January, 15),
			asOf:       date(2025, time.March, 1),
			want:       3000,
		},
		{
			name:       "sixteen days into second month charges full",
			pledgeDate: date(2025, time.January, 15),
			asOf:       date(2025, time.March, 2),
			want:       4000,
		},
		{
			name:       "on second boundary one full plus new half",
			pledgeDate: date(2025, time.January, 15),
			asOf:       date(2025, time.March, 15),
			want:       5000,
		},
		{
			name:       "clamped boundary for end of month pledge",
			pledgeDate: date(2025, time.January, 31),
			asOf:       date(2025, time.February, 28), // boundary clamps to Feb 28
			want:       3000,
		},
		{
			name:       "clamping does not drift into later months",
			pledgeDate: date(2025, time.January, 31),
			asOf:       date(2025, time.March, 31), // second boundary is Mar 31, not Mar 28
			want:       5000,
		},
		{
			name:       "six months of full accrual",
			pledgeDate: date(2025, time.January, 15),
			asOf:       date(2025, time.July, 14),
			want:       12000, // upfront + 5 full months
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := interest.AccruedInterest(tt.pledgeDate, tt.asOf, loan, rate, fmi)
			assert.True(t, got.Equal(decimal.NewFromInt(tt.want)),
				"want %d got %s", tt.want, got)
		})
	}
}

func TestAccruedInterest_CustomUpfrontAmount(t *testing.T) {
	loan := decimal.NewFromInt(100000)
	rate := decimal.NewFromInt(2)
	fmi := decimal.NewFromInt(500) // negotiated below the scheme rate

	got := interest.AccruedInterest(date(2025, time.January, 15), date(2025, time.February, 15), loan, rate, fmi)
	assert.True(t, got.Equal(decimal.NewFromInt(1500)), "got %s", got)
}

func TestOutstanding(t *testing.T) {
	loan := decimal.NewFromInt(100000)
	rate := decimal.NewFromInt(2)
	fmi := decimal.NewFromInt(2000)
	pledgeDate := date(2025, time.January, 15)
	asOf := date(2025, time.March, 15) // accrued 5000

	tests := []struct {
		name     string
		received int64
		want     int64
	}{
		{name: "nothing received", received: 0, want: 5000},
		{name: "partially received", received: 3000, want: 2000},
		{name: "fully received", received: 5000, want: 0},
		{name: "overpaid floors at zero", received: 7000, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := interest.Outstanding(pledgeDate, asOf, loan, rate, fmi, decimal.NewFromInt(tt.received))
			assert.True(t, got.Equal(decimal.NewFromInt(tt.want)), "got %s", got)
		})
	}
}
