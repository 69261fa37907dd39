package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/rs/zerolog"

	"fundrise/internal/adapter/repo"
	"fundrise/internal/docstore"
	"fundrise/internal/domain"
	"fundrise/internal/middleware"
)

const maxBodyBytes = 1 << 20

// App holds the dependencies shared by every handler.
type App struct {
	Store     docstore.Store
	Campaigns domain.CampaignRepository
	Donations domain.DonationRepository
	Log       zerolog.Logger
}

func NewApp(store docstore.Store, logger zerolog.Logger) *App {
	return &App{
		Store:     store,
		Campaigns: repo.NewCampaignRepository(store),
		Donations: repo.NewDonationRepository(store),
		Log:       logger,
	}
}

type errorResponse struct {
	Detail string              `json:"detail"`
	Code   string              `json:"code"`
	Errors []domain.FieldError `json:"errors,omitempty"`
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, status int, code, msg string) {
	a.json(w, status, errorResponse{Detail: msg, Code: code})
}

// fail maps err onto an HTTP error response by kind.
func (a *App) fail(w http.ResponseWriter, r *http.Request, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		a.json(w, http.StatusBadRequest, errorResponse{Detail: verr.Error(), Code: "invalid_input", Errors: verr.Fields})
	case errors.Is(err, domain.ErrInvalidInput):
		a.error(w, http.StatusBadRequest, "invalid_input", err.Error())
	case errors.Is(err, domain.ErrNotFound):
		a.error(w, http.StatusNotFound, "not_found", err.Error())
	default:
		a.Log.Error().Err(err).
			Str("request_id", middleware.RequestIDFromContext(r.Context())).
			Str("path", r.URL.Path).
			Msg("request failed")
		if errors.Is(err, domain.ErrStoreUnavailable) {
			a.error(w, http.StatusInternalServerError, "store_unavailable", "store unavailable")
			return
		}
		a.error(w, http.StatusInternalServerError, "internal", "internal server error")
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return domain.Invalid("request body is required")
		}
		return domain.Invalid("invalid JSON body")
	}
	return nil
}
