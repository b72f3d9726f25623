package controller

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"academyku_backend/internals/configs"
)

// DB sengaja nil: handler webhook harus menolak/ack sebelum menyentuh
// database, jadi request di bawah ini tidak boleh panic.
func newWebhookApp(t *testing.T) *fiber.App {
	t.Helper()
	app := fiber.New()
	ctrl := &PaymentController{DB: nil, Paystack: nil}
	app.Post("/api/public/payments/webhook", ctrl.PaystackWebhook)
	return app
}

func signWebhook(secret string, body []byte) string {
	mac := hmac.New(sha512.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func TestPaystackWebhookRejectsInvalidSignature(t *testing.T) {
	prev := configs.PaystackSecretKey
	configs.PaystackSecretKey = "sk_test_secret"
	defer func() { configs.PaystackSecretKey = prev }()

	app := newWebhookApp(t)
	body := []byte(`{"event":"charge.success","data":{"reference":"ENR-x-1"}}`)

	req := httptest.NewRequest("POST", "/api/public/payments/webhook", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-paystack-signature", "deadbeef")

	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	if res.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("status = %d, want %d", res.StatusCode, fiber.StatusUnauthorized)
	}
}

func TestPaystackWebhookRejectsMissingSignature(t *testing.T) {
	prev := configs.PaystackSecretKey
	configs.PaystackSecretKey = "sk_test_secret"
	defer func() { configs.PaystackSecretKey = prev }()

	app := newWebhookApp(t)
	body := []byte(`{"event":"charge.success","data":{"reference":"ENR-x-1"}}`)

	req := httptest.NewRequest("POST", "/api/public/payments/webhook", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	if res.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("status = %d, want %d", res.StatusCode, fiber.StatusUnauthorized)
	}
}

func TestPaystackWebhookAcksNonChargeSuccess(t *testing.T) {
	prev := configs.PaystackSecretKey
	configs.PaystackSecretKey = "sk_test_secret"
	defer func() { configs.PaystackSecretKey = prev }()

	app := newWebhookApp(t)
	body := []byte(`{"event":"transfer.success","data":{"reference":"TRF-x-1"}}`)

	req := httptest.NewRequest("POST", "/api/public/payments/webhook", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-paystack-signature", signWebhook("sk_test_secret", body))

	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	if res.StatusCode != fiber.StatusOK {
		t.Errorf("status = %d, want %d", res.StatusCode, fiber.StatusOK)
	}
	out, _ := io.ReadAll(res.Body)
	if string(out) != "OK" {
		t.Errorf("body = %q, want %q", string(out), "OK")
	}
}

func TestPaystackWebhookRejectsMalformedBody(t *testing.T) {
	prev := configs.PaystackSecretKey
	configs.PaystackSecretKey = "sk_test_secret"
	defer func() { configs.PaystackSecretKey = prev }()

	app := newWebhookApp(t)
	body := []byte(`{not-json`)

	req := httptest.NewRequest("POST", "/api/public/payments/webhook", bytes.NewReader(body))
	req.Header.Set("x-paystack-signature", signWebhook("sk_test_secret", body))

	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	if res.StatusCode != fiber.StatusBadRequest {
		t.Errorf("status = %d, want %d", res.StatusCode, fiber.StatusBadRequest)
	}
}
