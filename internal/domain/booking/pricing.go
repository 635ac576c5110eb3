package booking

// ComputeTotal is the single pricing rule of the ledger:
//
//	total = bookingAmount + Σ(priceAtTime × quantity) + (extraHours enabled ? amount : 0)
//
// Pure; the result is stored on the booking row at write time and never
// recomputed on read. Extra-hours duration deliberately does not factor in
// (flat fee regardless of duration).
func ComputeTotal(bookingAmount int64, drinks []DrinkLine, extraHours ExtraHours) int64 {
	total := bookingAmount
	for _, d := range drinks {
		total += d.Subtotal()
	}
	if extraHours.Enabled {
		total += extraHours.Amount
	}
	return total
}
