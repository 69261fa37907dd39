package handlers

import (
	"net/http"

	"fundrise/internal/domain"
)

// DonationsCreate stores a donation and then bumps the campaign's raised
// total. The two writes are not transactional: if the increment fails the
// donation stays stored and the error is returned to the client.
func (a *App) DonationsCreate(w http.ResponseWriter, r *http.Request) {
	var in domain.DonationInput
	if err := decodeJSON(w, r, &in); err != nil {
		a.fail(w, r, err)
		return
	}
	fields, err := domain.ValidateDonation(in)
	if err != nil {
		a.fail(w, r, err)
		return
	}

	ctx := r.Context()
	if _, err := a.Campaigns.GetByID(ctx, fields.CampaignID); err != nil {
		a.fail(w, r, err)
		return
	}

	created, err := a.Donations.Create(ctx, fields)
	if err != nil {
		a.fail(w, r, err)
		return
	}

	if err := a.Campaigns.AddRaised(ctx, fields.CampaignID, fields.Amount); err != nil {
		a.Log.Warn().Err(err).
			Str("donation_id", created.ID.Hex()).
			Str("campaign_id", fields.CampaignID).
			Float64("amount", fields.Amount).
			Msg("donation stored without campaign increment")
		a.fail(w, r, err)
		return
	}

	a.Log.Info().
		Str("donation_id", created.ID.Hex()).
		Str("campaign_id", fields.CampaignID).
		Float64("amount", fields.Amount).
		Msg("donation created")
	a.json(w, http.StatusCreated, created)
}

func (a *App) DonationsList(w http.ResponseWriter, r *http.Request) {
	items, err := a.Donations.List(r.Context(), r.URL.Query().Get("campaign_id"))
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.json(w, http.StatusOK, items)
}
