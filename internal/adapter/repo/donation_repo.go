package repo

import (
	"context"

	"fundrise/internal/docstore"
	"fundrise/internal/domain"
)

// DonationRepositoryDoc implements DonationRepository on a document store.
type DonationRepositoryDoc struct {
	store docstore.Store
}

// NewDonationRepository creates a new donation repo.
func NewDonationRepository(store docstore.Store) *DonationRepositoryDoc {
	return &DonationRepositoryDoc{store: store}
}

// Create inserts a new donation record and reads it back.
func (r *DonationRepositoryDoc) Create(ctx context.Context, fields domain.DonationFields) (*domain.Donation, error) {
	id, err := r.store.Insert(ctx, domain.DonationCollection, fields)
	if err != nil {
		return nil, err
	}
	return docstore.FindOne[domain.Donation](ctx, r.store, domain.DonationCollection, docstore.ByID(id))
}

// List matches campaignID against the stored string reference.
func (r *DonationRepositoryDoc) List(ctx context.Context, campaignID string) ([]domain.Donation, error) {
	filter := docstore.Filter{}
	if campaignID != "" {
		if _, err := domain.ParseID(campaignID); err != nil {
			return nil, err
		}
		filter["campaign_id"] = campaignID
	}
	var items []domain.Donation
	if err := r.store.Find(ctx, domain.DonationCollection, filter, 0, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []domain.Donation{}
	}
	return items, nil
}
