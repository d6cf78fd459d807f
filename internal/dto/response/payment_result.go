package response

type PaymentResultResponse struct {
	Success           bool   `json:"success"`
	Amount            int64  `json:"amount"`
	AmountDisplay     string `json:"amount_display"`
	BankCode          string `json:"bank_code"`
	BankTranNo        string `json:"bank_tran_no"`
	CardType          string `json:"card_type"`
	OrderInfo         string `json:"order_info"`
	PayDate           string `json:"pay_date"`
	ResponseCode      string `json:"response_code"`
	TmnCode           string `json:"tmn_code"`
	TransactionNo     string `json:"transaction_no"`
	TransactionStatus string `json:"transaction_status"`
	TxnRef            string `json:"txn_ref"`
}
