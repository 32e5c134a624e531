package helper

import (
	"crypto/subtle"
	"strconv"
)

const (
	payHereLiveCheckout    = "https://www.payhere.lk/pay/checkout"
	payHereSandboxCheckout = "https://sandbox.payhere.lk/pay/checkout"
)

// PayHere notification status codes.
const (
	PayHereSuccess     = "2"
	PayHerePending     = "0"
	PayHereCancelled   = "-1"
	PayHereFailed      = "-2"
	PayHereChargedBack = "-3"
)

type PayHereConfig struct {
	MerchantID     string
	MerchantSecret string
	Currency       string
	ReturnURL      string
	CancelURL      string
	NotifyURL      string
	Sandbox        bool
}

func PayHereConfigFromEnv() PayHereConfig {
	return PayHereConfig{
		MerchantID:     GetenvStr("PAYHERE_MERCHANT_ID", ""),
		MerchantSecret: GetenvStr("PAYHERE_MERCHANT_SECRET", ""),
		Currency:       GetenvStr("PAYHERE_CURRENCY", "LKR"),
		ReturnURL:      GetenvStr("PAYHERE_RETURN_URL", "http://localhost:3000/payment/success"),
		CancelURL:      GetenvStr("PAYHERE_CANCEL_URL", "http://localhost:3000/payment/cancel"),
		NotifyURL:      GetenvStr("PAYHERE_NOTIFY_URL", "http://localhost:8070/api/payments/payhere/notify"),
		Sandbox:        GetenvBool("PAYHERE_SANDBOX", true),
	}
}

func (c PayHereConfig) CheckoutURL() string {
	if c.Sandbox {
		return payHereSandboxCheckout
	}
	return payHereLiveCheckout
}

// FormatAmount renders an amount the way PayHere hashes it: two decimals, no grouping.
func FormatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', 2, 64)
}

// PayHereHash is the checkout checksum:
// UPPER(MD5(merchant_id + order_id + amount + currency + UPPER(MD5(merchant_secret)))).
func PayHereHash(merchantID string, orderID string, amount float64, currency string, merchantSecret string) string {
	return UpperMD5(merchantID + orderID + FormatAmount(amount) + currency + UpperMD5(merchantSecret))
}

// PayHereNotifySignature is the md5sig PayHere posts to the notify url.
func PayHereNotifySignature(merchantID string, orderID string, payhereAmount string, payhereCurrency string, statusCode string, merchantSecret string) string {
	return UpperMD5(merchantID + orderID + payhereAmount + payhereCurrency + statusCode + UpperMD5(merchantSecret))
}

// VerifyPayHereNotification compares md5sig in constant time. It never accepts a notification
// while the merchant id or secret is unset.
func VerifyPayHereNotification(cfg PayHereConfig, orderID string, payhereAmount string, payhereCurrency string, statusCode string, md5sig string) bool {
	if cfg.MerchantID == "" || cfg.MerchantSecret == "" {
		return false
	}
	expected := PayHereNotifySignature(cfg.MerchantID, orderID, payhereAmount, payhereCurrency, statusCode, cfg.MerchantSecret)
	return subtle.ConstantTimeCompare([]byte(expected), []byte(md5sig)) == 1
}
