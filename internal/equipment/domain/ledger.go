package domain

// The availability ledger: quantity_available always equals quantity_total
// minus the summed quantity of open checkouts. These helpers keep that
// arithmetic in one place; the repository applies it inside a transaction.

// ClampAvailable bounds an available count to [0, total]
func ClampAvailable(available, total int) int {
	if available < 0 {
		return 0
	}
	if available > total {
		return total
	}
	return available
}

// ApplyDelta produces the new available count after returning (positive
// delta) or removing (negative delta) stock, clamped to [0, total]
func ApplyDelta(available, total, delta int) int {
	return ClampAvailable(available+delta, total)
}

// RederiveAvailable recomputes the available count after the total is edited.
// The checked-out count is preserved rather than the available count, so
// shrinking the total below what is currently out forces available to zero.
func RederiveAvailable(oldTotal, oldAvailable, newTotal int) int {
	checkedOut := oldTotal - oldAvailable
	return ClampAvailable(newTotal-checkedOut, newTotal)
}
