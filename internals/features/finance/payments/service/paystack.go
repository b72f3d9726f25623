// file: internals/features/finance/payments/service/paystack.go
package service

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	programModel "academyku_backend/internals/features/academy/programs/model"
)

/* =========================================================
   Paystack Client
   Thin wrapper atas REST API transaction initialize/verify.
   Tidak ada retry — satu attempt per call (hasil langsung dipercaya).
========================================================= */

var ErrPaystackNotConfigured = errors.New("paystack secret key is not configured")

// GatewayError: penolakan eksplisit dari Paystack (status=false).
// Message diteruskan verbatim ke client; beda dengan error transport.
type GatewayError struct {
	Message string
}

func (e *GatewayError) Error() string { return "paystack: " + e.Message }

type PaystackClient struct {
	SecretKey string
	BaseURL   string
	HTTP      *http.Client
}

func NewPaystackClient(secretKey, baseURL string) *PaystackClient {
	if baseURL == "" {
		baseURL = "https://api.paystack.co"
	}
	return &PaystackClient{
		SecretKey: secretKey,
		BaseURL:   baseURL,
		HTTP:      &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *PaystackClient) IsConfigured() bool {
	return c != nil && c.SecretKey != ""
}

// envelope standar response Paystack
type paystackEnvelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type InitializeRequest struct {
	Email       string         `json:"email"`
	AmountKobo  int64          `json:"amount"` // kobo (unit minor)
	Reference   string         `json:"reference"`
	CallbackURL string         `json:"callback_url,omitempty"`
	Currency    string         `json:"currency,omitempty"`
	Metadata    map[string]any `json:"metadata,omitempty"`
}

type InitializeData struct {
	AuthorizationURL string `json:"authorization_url"`
	AccessCode       string `json:"access_code"`
	Reference        string `json:"reference"`
}

type VerifyMetadata struct {
	RegistrationID string `json:"registration_id"`
}

type VerifyData struct {
	Status     string         `json:"status"` // success / failed / abandoned / ...
	Reference  string         `json:"reference"`
	AmountKobo int64          `json:"amount"`
	Currency   string         `json:"currency"`
	PaidAt     string         `json:"paid_at"`
	Metadata   VerifyMetadata `json:"metadata"`
}

func (d *VerifyData) IsSuccessful() bool { return d.Status == "success" }

// PaidAtTime parse timestamp gateway (RFC3339); nil kalau kosong/invalid.
func (d *VerifyData) PaidAtTime() *time.Time {
	if d.PaidAt == "" {
		return nil
	}
	if t, err := time.Parse(time.RFC3339, d.PaidAt); err == nil {
		return &t
	}
	return nil
}

// InitializeTransaction buka transaksi di Paystack, balikin hosted checkout URL.
func (c *PaystackClient) InitializeTransaction(ctx context.Context, req InitializeRequest) (InitializeData, error) {
	var out InitializeData
	if !c.IsConfigured() {
		return out, ErrPaystackNotConfigured
	}

	body, err := json.Marshal(req)
	if err != nil {
		return out, err
	}

	data, err := c.call(ctx, http.MethodPost, "/transaction/initialize", bytes.NewReader(body))
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return out, fmt.Errorf("decode initialize data: %w", err)
	}
	return out, nil
}

// VerifyTransaction tanya status transaksi by reference.
func (c *PaystackClient) VerifyTransaction(ctx context.Context, reference string) (VerifyData, error) {
	var out VerifyData
	if !c.IsConfigured() {
		return out, ErrPaystackNotConfigured
	}

	data, err := c.call(ctx, http.MethodGet, "/transaction/verify/"+reference, nil)
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return out, fmt.Errorf("decode verify data: %w", err)
	}
	return out, nil
}

func (c *PaystackClient) call(ctx context.Context, method, path string, body io.Reader) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.SecretKey)
	req.Header.Set("Content-Type", "application/json")

	res, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}

	var env paystackEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("paystack: unexpected response (HTTP %d)", res.StatusCode)
	}
	if !env.Status {
		// pesan upstream diteruskan apa adanya
		return nil, &GatewayError{Message: env.Message}
	}
	return env.Data, nil
}

/* =========================================================
   Signature webhook
   Paystack menandatangani raw body dengan HMAC-SHA512(secret key),
   hex di header x-paystack-signature. Wajib dicek sebelum percaya payload.
========================================================= */

func VerifyWebhookSignature(secret string, body []byte, signature string) bool {
	if secret == "" || signature == "" {
		return false
	}
	mac := hmac.New(sha512.New, []byte(secret))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

/* =========================================================
   Amount & reference helpers
========================================================= */

// AmountDueKobo: total fee program (naira) → kobo.
// tuition_fee=100000 + registration_fee=5000 → 10_500_000 kobo.
func AmountDueKobo(p *programModel.ProgramModel) int64 {
	return int64(p.TotalFee()) * 100
}

// KoboToMajor konversi balik ke unit mayor untuk response client.
func KoboToMajor(kobo int64) float64 {
	return float64(kobo) / 100
}

// NewPaymentReference: ENR-{registration_id}-{unix timestamp}.
// Cukup unik per attempt; kolom reference tetap unique di DB.
func NewPaymentReference(registrationID uuid.UUID, now time.Time) string {
	return fmt.Sprintf("ENR-%s-%d", registrationID, now.Unix())
}
