package fare

import "github.com/Domenick1991/skybooking/internal/domain"

// TaxesAndFees is the fixed tax component applied to every fare.
const TaxesAndFees int64 = 50

// Breakdown decomposes a flight's total price into base fare and fixed
// taxes. The subtraction is exact: a flight priced below the fixed taxes
// yields a negative base fare, which the fare model accepts rather than
// clamping to zero.
func Breakdown(f domain.Flight) domain.FareBreakdown {
	return domain.FareBreakdown{
		BaseFare:     f.Price - TaxesAndFees,
		TaxesAndFees: TaxesAndFees,
		Total:        f.Price,
	}
}
