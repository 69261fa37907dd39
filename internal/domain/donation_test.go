package domain

import (
	"errors"
	"testing"
	"time"
)

func TestValidateDonationDefaults(t *testing.T) {
	in := DonationInput{
		CampaignID: strPtr("65a1f0c2e4b0a1b2c3d4e5f6"),
		Amount:     floatPtr(50),
	}
	got, err := ValidateDonation(in)
	if err != nil {
		t.Fatalf("ValidateDonation returned error: %v", err)
	}
	if got.PaymentStatus != DefaultPaymentStatus {
		t.Fatalf("PaymentStatus = %q, want %q", got.PaymentStatus, DefaultPaymentStatus)
	}
	if got.DonatedAt != nil {
		t.Fatalf("DonatedAt should stay nil when omitted, got %v", got.DonatedAt)
	}
	if got.CampaignID != "65a1f0c2e4b0a1b2c3d4e5f6" || got.Amount != 50 {
		t.Fatalf("unexpected fields: %#v", got)
	}
}

func TestValidateDonationKeepsSuppliedFields(t *testing.T) {
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	in := DonationInput{
		CampaignID:    strPtr("65a1f0c2e4b0a1b2c3d4e5f6"),
		DonorName:     strPtr("Rui"),
		Amount:        floatPtr(1),
		Message:       strPtr("good luck"),
		PaymentStatus: strPtr("pending"),
		DonatedAt:     &at,
	}
	got, err := ValidateDonation(in)
	if err != nil {
		t.Fatalf("ValidateDonation returned error: %v", err)
	}
	if got.PaymentStatus != "pending" {
		t.Fatalf("PaymentStatus = %q", got.PaymentStatus)
	}
	if got.DonatedAt == nil || !got.DonatedAt.Equal(at) {
		t.Fatalf("DonatedAt mismatch: %v", got.DonatedAt)
	}
}

func TestValidateDonationRejections(t *testing.T) {
	tests := []struct {
		name  string
		in    DonationInput
		field string
		rule  string
	}{
		{"missing campaign", DonationInput{Amount: floatPtr(10)}, "campaign_id", "required"},
		{"malformed campaign", DonationInput{CampaignID: strPtr("not-an-id"), Amount: floatPtr(10)}, "campaign_id", "objectid"},
		{"empty campaign", DonationInput{CampaignID: strPtr(""), Amount: floatPtr(10)}, "campaign_id", "objectid"},
		{"missing amount", DonationInput{CampaignID: strPtr("65a1f0c2e4b0a1b2c3d4e5f6")}, "amount", "required"},
		{"amount below one", DonationInput{CampaignID: strPtr("65a1f0c2e4b0a1b2c3d4e5f6"), Amount: floatPtr(0)}, "amount", "gte"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ValidateDonation(tc.in)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected *ValidationError, got %v", err)
			}
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput")
			}
			if verr.Fields[0].Field != tc.field || verr.Fields[0].Rule != tc.rule {
				t.Fatalf("got %s/%s, want %s/%s", verr.Fields[0].Field, verr.Fields[0].Rule, tc.field, tc.rule)
			}
		})
	}
}

func TestParseID(t *testing.T) {
	for _, bad := range []string{"", "not-an-id", "65a1f0c2e4b0a1b2c3d4e5f", "zza1f0c2e4b0a1b2c3d4e5f6", "65a1f0c2e4b0a1b2c3d4e5f6aa"} {
		if _, err := ParseID(bad); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("ParseID(%q) error = %v, want ErrInvalidInput", bad, err)
		}
	}
	oid, err := ParseID("65a1f0c2e4b0a1b2c3d4e5f6")
	if err != nil {
		t.Fatalf("ParseID returned error: %v", err)
	}
	if oid.Hex() != "65a1f0c2e4b0a1b2c3d4e5f6" {
		t.Fatalf("Hex() = %q", oid.Hex())
	}
}
