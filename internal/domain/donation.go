package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DonationCollection is the document collection donations live in.
const DonationCollection = "donation"

// DefaultPaymentStatus is stored when the client sends none. There is no
// payment lifecycle behind it.
const DefaultPaymentStatus = "succeeded"

// DonationInput is the client payload for creating a donation.
type DonationInput struct {
	CampaignID    *string    `json:"campaign_id" validate:"required,objectid"`
	DonorName     *string    `json:"donor_name"`
	Amount        *float64   `json:"amount" validate:"required,gte=1"`
	Message       *string    `json:"message"`
	PaymentStatus *string    `json:"payment_status"`
	DonatedAt     *time.Time `json:"donated_at"`
}

// DonationFields is the persisted body of a donation. CampaignID keeps the
// string form of the campaign identifier.
type DonationFields struct {
	CampaignID    string     `json:"campaign_id" bson:"campaign_id"`
	DonorName     *string    `json:"donor_name" bson:"donor_name"`
	Amount        float64    `json:"amount" bson:"amount"`
	Message       *string    `json:"message" bson:"message"`
	PaymentStatus string     `json:"payment_status" bson:"payment_status"`
	DonatedAt     *time.Time `json:"donated_at" bson:"donated_at"`
}

// Donation is a stored donation document.
type Donation struct {
	ID             primitive.ObjectID `json:"_id" bson:"_id"`
	DonationFields `bson:",inline"`
}

// ValidateDonation checks in and returns the fields to persist. DonatedAt
// stays nil when omitted.
func ValidateDonation(in DonationInput) (DonationFields, error) {
	if err := validateStruct(in); err != nil {
		return DonationFields{}, err
	}
	out := DonationFields{
		CampaignID:    *in.CampaignID,
		DonorName:     in.DonorName,
		Amount:        *in.Amount,
		Message:       in.Message,
		PaymentStatus: DefaultPaymentStatus,
		DonatedAt:     in.DonatedAt,
	}
	if in.PaymentStatus != nil {
		out.PaymentStatus = *in.PaymentStatus
	}
	return out, nil
}
