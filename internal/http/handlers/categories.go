package handlers

import (
	"net/http"

	"fundrise/internal/domain"
)

func (a *App) Categories(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, domain.Categories())
}
