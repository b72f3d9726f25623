package service

import (
	"testing"

	regModel "academyku_backend/internals/features/academy/registrations/model"
)

func TestResolvePaymentStatus(t *testing.T) {
	tests := []struct {
		name      string
		paidKobo  int64
		totalKobo int64
		want      string
	}{
		{"nothing paid", 0, 10_500_000, regModel.PaymentStatusPending},
		{"half paid", 5_250_000, 10_500_000, regModel.PaymentStatusPartial},
		{"exactly paid", 10_500_000, 10_500_000, regModel.PaymentStatusPaid},
		{"overpaid", 11_000_000, 10_500_000, regModel.PaymentStatusPaid},
		{"one kobo short", 10_499_999, 10_500_000, regModel.PaymentStatusPartial},
		{"free program anything paid", 100, 0, regModel.PaymentStatusPaid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolvePaymentStatus(tt.paidKobo, tt.totalKobo); got != tt.want {
				t.Errorf("ResolvePaymentStatus(%d, %d) = %q, want %q",
					tt.paidKobo, tt.totalKobo, got, tt.want)
			}
		})
	}
}

func TestNextRegistrationStatus(t *testing.T) {
	tests := []struct {
		name          string
		current       string
		paymentStatus string
		want          string
	}{
		// cicilan pertama sukses sudah cukup untuk approve
		{"submitted approved on partial", regModel.RegistrationStatusSubmitted, regModel.PaymentStatusPartial, regModel.RegistrationStatusApproved},
		{"submitted approved on paid", regModel.RegistrationStatusSubmitted, regModel.PaymentStatusPaid, regModel.RegistrationStatusApproved},
		{"submitted stays on pending", regModel.RegistrationStatusSubmitted, regModel.PaymentStatusPending, regModel.RegistrationStatusSubmitted},
		{"enrolled untouched", regModel.RegistrationStatusEnrolled, regModel.PaymentStatusPaid, regModel.RegistrationStatusEnrolled},
		{"rejected untouched", regModel.RegistrationStatusRejected, regModel.PaymentStatusPaid, regModel.RegistrationStatusRejected},
		{"approved stays approved", regModel.RegistrationStatusApproved, regModel.PaymentStatusPartial, regModel.RegistrationStatusApproved},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NextRegistrationStatus(tt.current, tt.paymentStatus); got != tt.want {
				t.Errorf("NextRegistrationStatus(%q, %q) = %q, want %q",
					tt.current, tt.paymentStatus, got, tt.want)
			}
		})
	}
}

func TestApplyMonotonic(t *testing.T) {
	tests := []struct {
		name     string
		current  string
		proposed string
		want     string
	}{
		{"pending to partial", regModel.PaymentStatusPending, regModel.PaymentStatusPartial, regModel.PaymentStatusPartial},
		{"partial to paid", regModel.PaymentStatusPartial, regModel.PaymentStatusPaid, regModel.PaymentStatusPaid},
		{"paid stays paid on partial", regModel.PaymentStatusPaid, regModel.PaymentStatusPartial, regModel.PaymentStatusPaid},
		{"paid stays paid on pending", regModel.PaymentStatusPaid, regModel.PaymentStatusPending, regModel.PaymentStatusPaid},
		{"partial not reset to pending", regModel.PaymentStatusPartial, regModel.PaymentStatusPending, regModel.PaymentStatusPartial},
		{"office_pending not reset to pending", regModel.PaymentStatusOfficePending, regModel.PaymentStatusPending, regModel.PaymentStatusOfficePending},
		{"office_pending to paid", regModel.PaymentStatusOfficePending, regModel.PaymentStatusPaid, regModel.PaymentStatusPaid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ApplyMonotonic(tt.current, tt.proposed); got != tt.want {
				t.Errorf("ApplyMonotonic(%q, %q) = %q, want %q",
					tt.current, tt.proposed, got, tt.want)
			}
		})
	}
}
