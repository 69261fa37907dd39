package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"fundrise/internal/domain"
)

func (a *App) CampaignsCreate(w http.ResponseWriter, r *http.Request) {
	var in domain.CampaignInput
	if err := decodeJSON(w, r, &in); err != nil {
		a.fail(w, r, err)
		return
	}
	fields, err := domain.ValidateCampaign(in)
	if err != nil {
		a.fail(w, r, err)
		return
	}

	created, err := a.Campaigns.Create(r.Context(), fields)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.Log.Info().Str("campaign_id", created.ID.Hex()).Str("category", created.Category).Msg("campaign created")
	a.json(w, http.StatusCreated, created)
}

func (a *App) CampaignsList(w http.ResponseWriter, r *http.Request) {
	trending := false
	if raw := r.URL.Query().Get("trending"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			a.fail(w, r, domain.Invalid("Invalid trending flag"))
			return
		}
		trending = v
	}

	items, err := a.Campaigns.List(r.Context(), trending)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.json(w, http.StatusOK, items)
}

func (a *App) CampaignsGet(w http.ResponseWriter, r *http.Request) {
	campaign, err := a.Campaigns.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.json(w, http.StatusOK, campaign)
}
