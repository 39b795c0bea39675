package greenops

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "0", FormatNumber(0))
	assert.Equal(t, "999", FormatNumber(999))
	assert.Equal(t, "18,248", FormatNumber(18248))
	assert.Equal(t, "-1,000", FormatNumber(-1000))
}

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		in        float64
		precision int
		want      string
	}{
		{1234.567, 2, "1,234.57"},
		{0.722, 3, "0.722"},
		{1000000, 0, "1,000,000"},
		{12.5, -1, "12"},
		{-0.4, 0, "-0"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatFloat(tt.in, tt.precision))
	}
}

func TestFormatLarge(t *testing.T) {
	assert.Equal(t, "1,235", FormatLarge(1234.6))
	assert.Equal(t, "~1.5 million", FormatLarge(1_500_000))
	assert.Equal(t, "~2.0 billion", FormatLarge(2_000_000_000))
}
