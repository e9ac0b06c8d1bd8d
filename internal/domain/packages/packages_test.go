package packages

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestByCodeKnownPackages(t *testing.T) {
	tests := []struct {
		code   string
		amount int64
		name   string
	}{
		{Starter, 8900, "Starter Ad Package - 5 Custom Ad Cards"},
		{Professional, 19700, "Professional Ad Package - 15 Custom Ad Cards"},
		{Enterprise, 49700, "Enterprise Ad Package - 50 Custom Ad Cards + Landing Page"},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			pkg, ok := ByCode(tt.code)
			assert.True(t, ok)
			assert.Equal(t, tt.code, pkg.Code)
			assert.Equal(t, tt.amount, pkg.Amount)
			assert.Equal(t, tt.name, pkg.DisplayName)
		})
	}
}

func TestByCodeUnknownPackages(t *testing.T) {
	for _, code := range []string{"", "gold", "STARTER", "starter ", "premium"} {
		_, ok := ByCode(code)
		assert.False(t, ok, "code %q should not resolve", code)
	}
}
