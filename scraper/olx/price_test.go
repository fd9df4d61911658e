package olx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePrice(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{
			name:     "rupee symbol with thousands separator",
			raw:      "₹ 12,500",
			expected: "12500",
		},
		{
			name:     "empty input",
			raw:      "",
			expected: "",
		},
		{
			name:     "no digits",
			raw:      "no digits",
			expected: "",
		},
		{
			name:     "plain digits",
			raw:      "899",
			expected: "899",
		},
		{
			name:     "digit runs split by markup artifacts",
			raw:      "₹ 1,2 x 500",
			expected: "12500",
		},
		{
			name:     "surrounding whitespace",
			raw:      "  ₹2,000  ",
			expected: "2000",
		},
		{
			name:     "currency symbol only",
			raw:      "₹",
			expected: "",
		},
		{
			name:     "price embedded in text",
			raw:      "Price: ₹ 750 only",
			expected: "750",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizePrice(tt.raw))
		})
	}
}
