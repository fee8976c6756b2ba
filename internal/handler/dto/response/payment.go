package response

type InitializePaymentResponse struct {
	PaymentLink    string `json:"paymentLink"`
	TransactionRef string `json:"transactionRef"`
	NumberOfDays   int    `json:"numberOfDays"`
	TotalAmount    int64  `json:"totalAmount"`
	Currency       string `json:"currency"`
}
