package utils

import "telecare-service/internal/pkg/constvars"

// SplitGross divides a settled gross amount (minor currency units) into the
// platform fee and the professional payout. The two parts always reconstruct
// the gross exactly: the payout absorbs any truncation remainder.
func SplitGross(gross int64) (platformFee, professionalAmount int64) {
	platformFee = gross * constvars.PlatformFeePercent / 100
	professionalAmount = gross - platformFee
	return platformFee, professionalAmount
}
