package order

import "math"

// Loyalty policy: at most 10% of the pre-discount total can be paid
// with bonus points, and 2% of the post-discount total is earned back.
// Points are integral, so both sides truncate toward zero.
const (
	redeemCapRate = 0.10
	earnRate      = 0.02
)

// RedeemBonusPoints returns how many points are spent and the total
// that remains to pay. A buyer can never spend more than their balance
// nor more than the cap.
func RedeemBonusPoints(totalAmount float64, balance int, useBonusPoints bool) (used int, finalAmount float64) {
	if !useBonusPoints || balance <= 0 {
		return 0, totalAmount
	}

	maxBonus := int(math.Floor(totalAmount * redeemCapRate))
	used = balance
	if maxBonus < used {
		used = maxBonus
	}

	return used, totalAmount - float64(used)
}

// EarnedBonusPoints is computed on the amount actually paid,
// after the discount.
func EarnedBonusPoints(finalAmount float64) int {
	return int(math.Floor(finalAmount * earnRate))
}

// OrderTotal is the pre-discount sum of the frozen line prices.
func OrderTotal(items []CheckoutItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}
