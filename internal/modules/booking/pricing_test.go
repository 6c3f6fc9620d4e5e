package booking

import (
	"testing"

	"venuebook/internal/pkg/money"

	"github.com/stretchr/testify/assert"
)

func TestPriceQuote_DocumentedExample(t *testing.T) {
	// 2000/hour for 3 hours: 6000 + 18% tax (1080) + flat 300 fee = 7380
	q := PriceQuote(money.FromUnits(2000), 3)

	assert.Equal(t, money.FromUnits(6000), q.Amount)
	assert.Equal(t, money.FromUnits(1080), q.Tax)
	assert.Equal(t, money.FromUnits(300), q.ServiceFee)
	assert.Equal(t, money.FromUnits(7380), q.Total)
}

func TestPriceQuote_SingleHour(t *testing.T) {
	q := PriceQuote(money.FromUnits(3500), 1)

	assert.Equal(t, money.FromUnits(3500), q.Amount)
	assert.Equal(t, money.FromUnits(630), q.Tax)
	assert.Equal(t, q.Amount.Add(q.Tax).Add(q.ServiceFee), q.Total)
}

func TestPriceQuote_LargeDuration(t *testing.T) {
	q := PriceQuote(money.FromUnits(2000), 1000)

	assert.Equal(t, money.FromUnits(2_000_000), q.Amount)
	assert.Equal(t, money.FromUnits(360_000), q.Tax)
	assert.Equal(t, q.Amount.Add(q.Tax).Add(q.ServiceFee), q.Total)
}

func TestPriceQuote_TotalIdentity(t *testing.T) {
	// total == amount + tax + service_fee for a spread of rates/durations,
	// including rates that make the 18% tax land on a half minor unit.
	rates := []int64{1, 25, 777, 2000, 3500, 99999}
	hours := []int{1, 2, 3, 7, 24, 500}

	for _, r := range rates {
		for _, h := range hours {
			q := PriceQuote(money.FromUnits(r), h)
			assert.Equal(t, q.Amount.Add(q.Tax).Add(q.ServiceFee), q.Total,
				"rate=%d hours=%d", r, h)
		}
	}
}

func TestPriceQuote_TaxRounding(t *testing.T) {
	// 0.25 base -> tax 0.045 exactly -> half-even to 0.04
	q := PriceQuote(money.Money(25), 1)
	assert.Equal(t, money.Money(4), q.Tax)
}
