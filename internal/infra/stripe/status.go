package stripe

import "adcards-backend/internal/domain/orders"

// OrderStatusForPayment maps a checkout session's payment_status onto the
// order lifecycle: paid→completed, unpaid→cancelled, anything else (e.g.
// no_payment_required) leaves the order pending.
func OrderStatusForPayment(paymentStatus string) string {
	switch paymentStatus {
	case "paid":
		return orders.StatusCompleted
	case "unpaid":
		return orders.StatusCancelled
	default:
		return orders.StatusPending
	}
}

// Verified reports whether a payment status counts as a confirmed payment.
func Verified(paymentStatus string) bool {
	return paymentStatus == "paid"
}
