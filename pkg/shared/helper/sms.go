package helper

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// SMSClient sends text messages through an HTTP GET gateway. The gateway url carries the account
// parameters; "to" and "message" are appended per message.
type SMSClient struct {
	gatewayURL string
	httpClient *http.Client
}

func NewSMSClient(gatewayURL string) *SMSClient {
	return &SMSClient{gatewayURL: gatewayURL, httpClient: &http.Client{Timeout: 10 * time.Second}}
}

// NewSMSClientFromEnv returns nil when SMS_GATEWAY_URL is not configured.
func NewSMSClientFromEnv() *SMSClient {
	gateway := GetenvStr("SMS_GATEWAY_URL", "")
	if gateway == "" {
		return nil
	}
	return NewSMSClient(gateway)
}

// Send returns the gateway message id.
func (s *SMSClient) Send(ctx context.Context, mobileNo string, msg string) (string, error) {
	sep := "?"
	if strings.Contains(s.gatewayURL, "?") {
		sep = "&"
	}
	smsURL := fmt.Sprintf("%s%sto=%s&message=%s", s.gatewayURL, sep, url.QueryEscape(mobileNo), url.QueryEscape(msg))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, smsURL, nil)
	if err != nil {
		return "", err
	}
	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode >= 300 {
		return "", fmt.Errorf("sms gateway answered %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	smsId := strings.TrimSpace(string(body))
	Logger.Info().Str("sms_id", smsId).Str("to", MaskPhone(mobileNo)).Msg("sms sent")
	return smsId, nil
}

// MaskPhone keeps only the last three digits of a number for logging.
func MaskPhone(mobileNo string) string {
	digits := 0
	out := []rune(mobileNo)
	for i := len(out) - 1; i >= 0; i-- {
		if out[i] < '0' || out[i] > '9' {
			continue
		}
		digits++
		if digits > 3 {
			out[i] = '*'
		}
	}
	return string(out)
}

// MaskEmail keeps the first letter of the mailbox and the domain.
func MaskEmail(email string) string {
	at := strings.LastIndex(email, "@")
	if at <= 0 {
		return "***"
	}
	return email[:1] + "***" + email[at:]
}
