package wire

import (
	"cinema-seating/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wirePayment(r chi.Router, paymentHandler *adaptor.PaymentResultHandler) {
	// GET /api/payment-result - gateway return URL, query string carries vnp_* fields
	r.Get("/api/payment-result", paymentHandler.GetPaymentResult)
}
