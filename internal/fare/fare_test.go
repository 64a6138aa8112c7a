package fare

import (
	"testing"

	"github.com/Domenick1991/skybooking/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestBreakdown(t *testing.T) {
	b := Breakdown(domain.Flight{ID: "b1", Price: 250})

	assert.Equal(t, int64(200), b.BaseFare)
	assert.Equal(t, int64(50), b.TaxesAndFees)
	assert.Equal(t, int64(250), b.Total)
}

func TestBreakdown_Invariant(t *testing.T) {
	for _, price := range []int64{1, 49, 50, 51, 300, 600, 1000, 99999} {
		b := Breakdown(domain.Flight{Price: price})
		assert.Equal(t, b.Total, b.BaseFare+b.TaxesAndFees)
		assert.Equal(t, price, b.Total)
	}
}

// A price below the fixed taxes produces a negative base fare. The fare
// model keeps the exact subtraction instead of flooring at zero.
func TestBreakdown_PriceBelowTaxes(t *testing.T) {
	b := Breakdown(domain.Flight{Price: 30})

	assert.Equal(t, int64(-20), b.BaseFare)
	assert.Equal(t, int64(30), b.Total)
}
