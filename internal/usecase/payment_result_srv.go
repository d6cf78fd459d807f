package usecase

import (
	"net/url"
	"strconv"
	"time"

	"cinema-seating/internal/dto/response"
	"cinema-seating/pkg/utils"

	"go.uber.org/zap"
)

const (
	notAvailable         = "N/A"
	gatewaySuccessStatus = "00"
	gatewayDateLayout    = "20060102150405"
	displayDateLayout    = "02/01/2006 15:04:05"
)

// PaymentResultService turns the payment gateway's return parameters into a
// display record. It performs no verification against the gateway.
type PaymentResultService interface {
	Parse(values url.Values) *response.PaymentResultResponse
}

type paymentResultService struct {
	log *zap.Logger
}

func NewPaymentResultService(log *zap.Logger) PaymentResultService {
	return &paymentResultService{
		log: log.With(zap.String("service", "payment_result")),
	}
}

func (s *paymentResultService) Parse(values url.Values) *response.PaymentResultResponse {
	result := &response.PaymentResultResponse{
		AmountDisplay:     notAvailable,
		BankCode:          orNA(values.Get("vnp_BankCode")),
		BankTranNo:        orNA(values.Get("vnp_BankTranNo")),
		CardType:          orNA(values.Get("vnp_CardType")),
		OrderInfo:         orNA(values.Get("vnp_OrderInfo")),
		PayDate:           formatPayDate(values.Get("vnp_PayDate")),
		ResponseCode:      orNA(values.Get("vnp_ResponseCode")),
		TmnCode:           orNA(values.Get("vnp_TmnCode")),
		TransactionNo:     orNA(values.Get("vnp_TransactionNo")),
		TransactionStatus: notAvailable,
		TxnRef:            orNA(values.Get("vnp_TxnRef")),
	}

	// the gateway sends amounts multiplied by 100
	if raw := values.Get("vnp_Amount"); raw != "" {
		if amount, err := strconv.ParseInt(raw, 10, 64); err == nil {
			result.Amount = amount / 100
			result.AmountDisplay = utils.FormatVND(result.Amount)
		} else {
			s.log.Warn("Unreadable payment amount", zap.String("vnp_Amount", raw))
		}
	}

	if status := values.Get("vnp_TransactionStatus"); status != "" {
		result.Success = status == gatewaySuccessStatus
		if result.Success {
			result.TransactionStatus = "success"
		} else {
			result.TransactionStatus = "failed"
		}
	}

	s.log.Info("Payment result parsed",
		zap.String("txn_ref", result.TxnRef),
		zap.Bool("success", result.Success),
		zap.Int64("amount", result.Amount),
	)

	return result
}

func orNA(v string) string {
	if v == "" {
		return notAvailable
	}
	return v
}

func formatPayDate(raw string) string {
	if raw == "" {
		return notAvailable
	}
	t, err := time.Parse(gatewayDateLayout, raw)
	if err != nil {
		return raw
	}
	return t.Format(displayDateLayout)
}
