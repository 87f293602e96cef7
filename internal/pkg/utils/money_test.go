package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitGross(t *testing.T) {
	t.Run("Even Split", func(t *testing.T) {
		platformFee, professionalAmount := SplitGross(100000)
		assert.Equal(t, int64(10000), platformFee)
		assert.Equal(t, int64(90000), professionalAmount)
	})

	t.Run("Remainder Stays With Professional", func(t *testing.T) {
		platformFee, professionalAmount := SplitGross(99)
		assert.Equal(t, int64(9), platformFee)
		assert.Equal(t, int64(90), professionalAmount)
	})

	t.Run("Shares Always Reconstruct Gross", func(t *testing.T) {
		for _, gross := range []int64{0, 1, 7, 99, 101, 49999, 123457, 999999999} {
			platformFee, professionalAmount := SplitGross(gross)
			assert.Equal(t, gross, platformFee+professionalAmount, "gross %d must split without losing a unit", gross)
		}
	})
}
