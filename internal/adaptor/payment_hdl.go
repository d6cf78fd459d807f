package adaptor

import (
	"net/http"

	"cinema-seating/internal/usecase"
	"cinema-seating/pkg/utils"

	"go.uber.org/zap"
)

type PaymentResultHandler struct {
	service usecase.PaymentResultService
	log     *zap.Logger
}

func NewPaymentResultHandler(service usecase.PaymentResultService, log *zap.Logger) *PaymentResultHandler {
	return &PaymentResultHandler{
		service: service,
		log:     log.With(zap.String("handler", "payment_result")),
	}
}

// GetPaymentResult handles GET /api/payment-result, the gateway's return URL.
func (h *PaymentResultHandler) GetPaymentResult(w http.ResponseWriter, r *http.Request) {
	result := h.service.Parse(r.URL.Query())
	utils.ResponseSuccess(w, "success", result)
}
