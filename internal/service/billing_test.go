package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestStarsToUSD(t *testing.T) {
	assert.True(t, StarsToUSD(0).IsZero())
	assert.True(t, StarsToUSD(1000).Equal(decimal.NewFromInt(13)), "1000 stars = $13 at the fixed rate")
	assert.True(t, StarsToUSD(50).GreaterThan(decimal.Zero))
}
