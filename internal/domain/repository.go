package domain

import "context"

// CampaignRepository defines persistence for campaigns.
type CampaignRepository interface {
	// Create stores fields and returns the document as re-read from the store.
	Create(ctx context.Context, fields CampaignFields) (*Campaign, error)
	GetByID(ctx context.Context, id string) (*Campaign, error)
	// List returns every campaign, or at most TrendingLimit trending ones.
	List(ctx context.Context, trendingOnly bool) ([]Campaign, error)
	// AddRaised atomically increments the raised total.
	AddRaised(ctx context.Context, id string, amount float64) error
}

// DonationRepository defines persistence for donations.
type DonationRepository interface {
	Create(ctx context.Context, fields DonationFields) (*Donation, error)
	// List returns donations, filtered by campaign when campaignID is set.
	List(ctx context.Context, campaignID string) ([]Donation, error)
}
