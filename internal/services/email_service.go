package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
)

// EmailService delivers OTP codes through the Resend REST API.
type EmailService struct {
	apiKey string
	from   string
	client *http.Client
}

func NewEmailService(apiKey, from string) *EmailService {
	return &EmailService{apiKey: apiKey, from: from, client: http.DefaultClient}
}

func (s *EmailService) SendOTP(ctx context.Context, to, code string) error {
	payload := map[string]any{
		"from":    s.from,
		"to":      []string{to},
		"subject": "Your OTP for BeFit",
		"text":    "Your OTP is: " + code,
		"html":    buildOTPEmail(code),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, "https://api.resend.com/emails", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("resend http error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("resend api error %d: %s", resp.StatusCode, string(respBody))
	}

	return nil
}

func buildOTPEmail(code string) string {
	return `<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family:Arial,sans-serif;background:#f4f4f4;padding:20px;">
  <div style="max-width:480px;margin:0 auto;background:#fff;border-radius:8px;padding:32px;">
    <h2 style="color:#333;">Your OTP for BeFit</h2>
    <p>Use the following 6-digit code to sign in:</p>
    <div style="text-align:center;margin:24px 0;">
      <span style="font-size:36px;font-weight:bold;letter-spacing:8px;color:#2e7d32;">` + code + `</span>
    </div>
    <p>If you did not request this code, you can ignore this email.</p>
    <hr style="border:none;border-top:1px solid #eee;margin:24px 0;">
    <p style="color:#999;font-size:12px;">The BeFit Team</p>
  </div>
</body>
</html>`
}

// LogSender stands in for the email service when RESEND_API_KEY is not
// configured. It prints the code to the server log instead of sending it.
type LogSender struct{}

func NewLogSender() *LogSender {
	return &LogSender{}
}

func (s *LogSender) SendOTP(_ context.Context, to, code string) error {
	log.Printf("email delivery disabled; OTP for %s is %s", to, code)
	return nil
}
