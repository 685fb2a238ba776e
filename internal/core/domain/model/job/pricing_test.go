package job_test

import (
	"testing"

	"dispatch/internal/core/domain/model/job"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPricing(t *testing.T) {
	tests := []struct {
		name       string
		priceCents int64
		wantFee    int64
		wantPayout int64
	}{
		{"scenario price 10000", 10000, 1000, 9000},
		{"zero price", 0, 0, 0},
		{"rounds half up", 5, 1, 4},       // 0.5 -> 1
		{"rounds down below half", 4, 0, 4}, // 0.4 -> 0
		{"odd price", 999, 100, 899},        // 99.9 -> 100
		{"single cent", 1, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := job.NewPricing(tt.priceCents)

			require.NoError(t, err)
			assert.Equal(t, tt.priceCents, p.PriceCents())
			assert.Equal(t, tt.wantFee, p.PlatformFeeCents())
			assert.Equal(t, tt.wantPayout, p.PayoutCents())
		})
	}

	t.Run("fee plus payout equals price for a range of prices", func(t *testing.T) {
		for price := int64(0); price <= 2000; price++ {
			p, err := job.NewPricing(price)
			require.NoError(t, err)
			assert.Equal(t, price, p.PlatformFeeCents()+p.PayoutCents())
		}
	})

	t.Run("negative price is rejected", func(t *testing.T) {
		_, err := job.NewPricing(-1)
		require.Error(t, err)
	})
}

func TestRestorePricing(t *testing.T) {
	t.Run("valid breakdown", func(t *testing.T) {
		p, err := job.RestorePricing(10000, 1000, 9000)

		require.NoError(t, err)
		require.NoError(t, p.Validate())
	})

	t.Run("broken invariant is rejected", func(t *testing.T) {
		_, err := job.RestorePricing(10000, 1000, 8999)
		require.Error(t, err)
	})

	t.Run("negative amounts are rejected", func(t *testing.T) {
		_, err := job.RestorePricing(100, -10, 110)
		require.Error(t, err)
	})
}

func TestPricing_Validate(t *testing.T) {
	var zero job.Pricing
	require.Error(t, zero.Validate())

	p, _ := job.NewPricing(100)
	require.NoError(t, p.Validate())
}
