package booking

import "venuebook/internal/pkg/money"

// Tax is charged as a fixed fraction of the base amount; the service fee is
// flat per booking regardless of hall or duration.
const (
	taxRateNum = 18
	taxRateDen = 100

	serviceFeeUnits = 300
)

// Quote is the monetary breakdown of a reservation. Total is the exact sum
// of the three parts; nothing is ever recomputed after creation.
type Quote struct {
	Amount     money.Money
	Tax        money.Money
	ServiceFee money.Money
	Total      money.Money
}

// PriceQuote derives the breakdown from the hall's hourly rate and the
// requested whole-hour duration. Amount and the service fee are exact; the
// tax is rounded half-even to the minor unit.
func PriceQuote(pricePerHour money.Money, durationHours int) Quote {
	amount := pricePerHour.MulInt(int64(durationHours))
	tax := amount.MulRat(taxRateNum, taxRateDen)
	fee := money.FromUnits(serviceFeeUnits)

	return Quote{
		Amount:     amount,
		Tax:        tax,
		ServiceFee: fee,
		Total:      amount.Add(tax).Add(fee),
	}
}
