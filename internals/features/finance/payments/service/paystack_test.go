package service

import (
	"context"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	programModel "academyku_backend/internals/features/academy/programs/model"
)

func signBody(secret string, body []byte) string {
	mac := hmac.New(sha512.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifyWebhookSignature(t *testing.T) {
	secret := "sk_test_secret"
	body := []byte(`{"event":"charge.success","data":{"reference":"ENR-x-1"}}`)

	tests := []struct {
		name      string
		secret    string
		signature string
		want      bool
	}{
		{"valid signature", secret, signBody(secret, body), true},
		{"wrong secret", secret, signBody("sk_other", body), false},
		{"tampered signature", secret, signBody(secret, body)[:64] + strings.Repeat("0", 64), false},
		{"empty signature", secret, "", false},
		{"empty secret", "", signBody(secret, body), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := VerifyWebhookSignature(tt.secret, body, tt.signature); got != tt.want {
				t.Errorf("VerifyWebhookSignature() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVerifyWebhookSignatureBodySensitive(t *testing.T) {
	secret := "sk_test_secret"
	body := []byte(`{"event":"charge.success"}`)
	sig := signBody(secret, body)

	tampered := []byte(`{"event":"charge.failed"}`)
	if VerifyWebhookSignature(secret, tampered, sig) {
		t.Error("signature must not validate against a different body")
	}
}

func TestAmountDueKobo(t *testing.T) {
	fee := 5000
	tests := []struct {
		name    string
		program programModel.ProgramModel
		want    int64
	}{
		{
			name:    "tuition plus registration fee",
			program: programModel.ProgramModel{ProgramTuitionFee: 100000, ProgramRegistrationFee: &fee},
			want:    10_500_000,
		},
		{
			name:    "tuition only",
			program: programModel.ProgramModel{ProgramTuitionFee: 250000},
			want:    25_000_000,
		},
		{
			name:    "free program",
			program: programModel.ProgramModel{ProgramTuitionFee: 0},
			want:    0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AmountDueKobo(&tt.program); got != tt.want {
				t.Errorf("AmountDueKobo() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestNewPaymentReference(t *testing.T) {
	id := uuid.MustParse("11111111-2222-3333-4444-555555555555")
	now := time.Unix(1_700_000_000, 0)

	got := NewPaymentReference(id, now)
	want := "ENR-11111111-2222-3333-4444-555555555555-1700000000"
	if got != want {
		t.Errorf("NewPaymentReference() = %q, want %q", got, want)
	}
}

func TestInitializeTransaction(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/transaction/initialize" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer sk_test_abc" {
			t.Errorf("unexpected Authorization header %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"status": true,
			"message": "Authorization URL created",
			"data": {
				"authorization_url": "https://checkout.paystack.com/abc123",
				"access_code": "abc123",
				"reference": "ENR-x-1"
			}
		}`))
	}))
	defer srv.Close()

	client := NewPaystackClient("sk_test_abc", srv.URL)
	data, err := client.InitializeTransaction(context.Background(), InitializeRequest{
		Email:      "siswa@example.com",
		AmountKobo: 10_500_000,
		Reference:  "ENR-x-1",
	})
	if err != nil {
		t.Fatalf("InitializeTransaction() error = %v", err)
	}
	if data.AuthorizationURL != "https://checkout.paystack.com/abc123" {
		t.Errorf("unexpected authorization_url %q", data.AuthorizationURL)
	}
	if data.Reference != "ENR-x-1" {
		t.Errorf("unexpected reference %q", data.Reference)
	}
}

func TestInitializeTransactionUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"status": false, "message": "Invalid amount"}`))
	}))
	defer srv.Close()

	client := NewPaystackClient("sk_test_abc", srv.URL)
	_, err := client.InitializeTransaction(context.Background(), InitializeRequest{})
	if err == nil {
		t.Fatal("expected error from upstream status=false")
	}
	if !strings.Contains(err.Error(), "Invalid amount") {
		t.Errorf("error should carry upstream message, got %v", err)
	}
	var gwErr *GatewayError
	if !errors.As(err, &gwErr) {
		t.Fatalf("upstream rejection should be *GatewayError, got %T", err)
	}
	if gwErr.Message != "Invalid amount" {
		t.Errorf("Message = %q, want upstream message verbatim", gwErr.Message)
	}
}

func TestVerifyTransaction(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/transaction/verify/ENR-x-1" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"status": true,
			"message": "Verification successful",
			"data": {
				"status": "success",
				"reference": "ENR-x-1",
				"amount": 10500000,
				"currency": "NGN",
				"paid_at": "2026-08-30T10:00:00Z",
				"metadata": {"registration_id": "11111111-2222-3333-4444-555555555555"}
			}
		}`))
	}))
	defer srv.Close()

	client := NewPaystackClient("sk_test_abc", srv.URL)
	data, err := client.VerifyTransaction(context.Background(), "ENR-x-1")
	if err != nil {
		t.Fatalf("VerifyTransaction() error = %v", err)
	}
	if !data.IsSuccessful() {
		t.Error("expected successful status")
	}
	if data.AmountKobo != 10_500_000 {
		t.Errorf("unexpected amount %d", data.AmountKobo)
	}
	if data.Metadata.RegistrationID != "11111111-2222-3333-4444-555555555555" {
		t.Errorf("unexpected metadata registration_id %q", data.Metadata.RegistrationID)
	}
	if data.PaidAtTime() == nil {
		t.Error("expected parsed paid_at")
	}
}

func TestClientNotConfigured(t *testing.T) {
	client := NewPaystackClient("", "")
	if client.IsConfigured() {
		t.Error("client without secret key must not report configured")
	}
	if _, err := client.VerifyTransaction(context.Background(), "ref"); err == nil {
		t.Error("expected ErrPaystackNotConfigured")
	}
}
