package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	assert.Equal(t, 0.0, RoundWithTwoDecimalPlace(0))
	assert.Equal(t, 33.33, RoundWithTwoDecimalPlace(33.333333))
	assert.Equal(t, 66.67, RoundWithTwoDecimalPlace(66.666666))
	assert.Equal(t, -66.67, RoundWithTwoDecimalPlace(-66.666666))
	assert.Equal(t, 100.0, RoundWithTwoDecimalPlace(100))
}

func TestRoundWithOneDecimalPlace(t *testing.T) {
	assert.Equal(t, 0.0, RoundWithOneDecimalPlace(0))
	assert.Equal(t, 35.0, RoundWithOneDecimalPlace(35.04))
	assert.Equal(t, 35.1, RoundWithOneDecimalPlace(35.06))
	assert.Equal(t, -40.0, RoundWithOneDecimalPlace(-40.04))
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "40", FormatNumber(40))
	assert.Equal(t, "35.5", FormatNumber(35.5))
	assert.Equal(t, "12.34", FormatNumber(12.34))
	assert.Equal(t, "-25", FormatNumber(-25))
	assert.Equal(t, "0", FormatNumber(0))
}
