package fx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvert(t *testing.T) {
	assert.Equal(t, int64(3000), Convert(3000, "EUR"))
	assert.Equal(t, int64(9040), Convert(10000, "USD"))
	assert.Equal(t, int64(1172), Convert(1000, "GBP"))
	// Rounds to the nearest minor unit.
	assert.Equal(t, int64(90), Convert(100, "USD"))
	// Unlisted currencies convert at par.
	assert.Equal(t, int64(5000), Convert(5000, "JPY"))
}

func TestRate(t *testing.T) {
	assert.Equal(t, "0.904", Rate("USD").String())
	assert.Equal(t, "1", Rate("XXX").String())
	assert.InDelta(t, 0.235, RateFloat("PLN"), 1e-9)
}
