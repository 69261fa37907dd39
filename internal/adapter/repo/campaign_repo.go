package repo

import (
	"context"
	"errors"

	"fundrise/internal/docstore"
	"fundrise/internal/domain"
)

// CampaignRepositoryDoc implements CampaignRepository on a document store.
type CampaignRepositoryDoc struct {
	store docstore.Store
}

// NewCampaignRepository creates a new campaign repo.
func NewCampaignRepository(store docstore.Store) *CampaignRepositoryDoc {
	return &CampaignRepositoryDoc{store: store}
}

// Create inserts the campaign and reads it back so store-side values show.
func (r *CampaignRepositoryDoc) Create(ctx context.Context, fields domain.CampaignFields) (*domain.Campaign, error) {
	id, err := r.store.Insert(ctx, domain.CampaignCollection, fields)
	if err != nil {
		return nil, err
	}
	return docstore.FindOne[domain.Campaign](ctx, r.store, domain.CampaignCollection, docstore.ByID(id))
}

// GetByID returns ErrInvalidInput for a malformed id and ErrNotFound when no
// campaign matches.
func (r *CampaignRepositoryDoc) GetByID(ctx context.Context, id string) (*domain.Campaign, error) {
	if _, err := domain.ParseID(id); err != nil {
		return nil, err
	}
	campaign, err := docstore.FindOne[domain.Campaign](ctx, r.store, domain.CampaignCollection, docstore.ByID(id))
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.NotFound("Campaign not found")
	}
	return campaign, err
}

func (r *CampaignRepositoryDoc) List(ctx context.Context, trendingOnly bool) ([]domain.Campaign, error) {
	filter := docstore.Filter{}
	var limit int64
	if trendingOnly {
		filter["is_trending"] = true
		limit = domain.TrendingLimit
	}
	var items []domain.Campaign
	if err := r.store.Find(ctx, domain.CampaignCollection, filter, limit, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []domain.Campaign{}
	}
	return items, nil
}

func (r *CampaignRepositoryDoc) AddRaised(ctx context.Context, id string, amount float64) error {
	return r.store.Increment(ctx, domain.CampaignCollection, id, domain.RaisedField, amount)
}
