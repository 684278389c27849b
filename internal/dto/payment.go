package dto

type SimulatePaymentRequestDTO struct {
	EventID    string `json:"eventId" example:"c0a80121-7ac0-4e1c-9f42-0c5a3f6b2d11"`
	Login      string `json:"login,omitempty" example:"alice"`
	CardNumber string `json:"cardNumber" example:"4242424242424242"`
	Expiry     string `json:"expiry" example:"12/27"`
	CVC        string `json:"cvc" example:"123"`
	Amount     int64  `json:"amount" example:"100000"`
	Currency   string `json:"currency,omitempty" example:"RUB"`
}

type SimulatePaymentResponseDTO struct {
	PaymentID     string `json:"paymentId"`
	Status        string `json:"status" example:"SUCCESS"`
	MaskedCard    string `json:"maskedCard" example:"**** **** **** 4242"`
	CardType      string `json:"cardType" example:"Visa"`
	ProviderTxnID string `json:"providerTxnId"`
}
