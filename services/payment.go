package services

import (
	"fmt"
	"net/url"
)

// PaymentRequest is a scannable payment intent for the current cart total.
// The system only generates it; nothing verifies that a payment happened.
type PaymentRequest struct {
	PayeeID  string `json:"payeeId"`
	Amount   int64  `json:"amount"`
	UPIURL   string `json:"upiUrl"`
	QRImgURL string `json:"qrImgUrl"`
}

// BuildPaymentRequest assembles the UPI deep link and a QR image URL
// rendering it.
func BuildPaymentRequest(payeeID, payeeName string, amount int64) PaymentRequest {
	upi := fmt.Sprintf("upi://pay?pa=%s&pn=%s&am=%d&cu=INR",
		url.QueryEscape(payeeID), url.QueryEscape(payeeName), amount)
	qr := fmt.Sprintf("https://api.qrserver.com/v1/create-qr-code/?size=200x200&data=%s",
		url.QueryEscape(upi))
	return PaymentRequest{
		PayeeID:  payeeID,
		Amount:   amount,
		UPIURL:   upi,
		QRImgURL: qr,
	}
}
