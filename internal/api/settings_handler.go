package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	app_errors "study-buddy/backend/internal/errors"
	"study-buddy/backend/internal/interfaces"
	"study-buddy/backend/internal/service"
)

// SettingsHandler handles runtime settings and the action catalog.
type SettingsHandler struct {
	settings interfaces.SettingsService
	catalog  interfaces.CatalogService
}

func NewSettingsHandler(settings interfaces.SettingsService, catalog interfaces.CatalogService) *SettingsHandler {
	return &SettingsHandler{settings: settings, catalog: catalog}
}

// GetSettings godoc
// @Summary      Get settings
// @Tags         Settings
// @Produce      json
// @Success      200  {object}  service.Settings
// @Failure      500  {object}  ErrorResponse
// @Router       /v1/settings [get]
func (h *SettingsHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settings.Get(r.Context())
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, settings)
}

// UpdateSettings godoc
// @Summary      Update settings
// @Tags         Settings
// @Accept       json
// @Produce      json
// @Param        settings  body      service.Settings  true  "New settings"
// @Success      200       {object}  StatusResponse
// @Failure      400       {object}  ErrorResponse
// @Router       /v1/settings [post]
func (h *SettingsHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req service.Settings
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, fmt.Errorf("%w: invalid request body", app_errors.ErrValidation))
		return
	}
	if err := validateRequest(&req); err != nil {
		respondWithError(w, err)
		return
	}
	if err := h.settings.Save(r.Context(), &req); err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
}

// GetCatalog godoc
// @Summary      List actions and languages
// @Description  Returns every action the router accepts and every response language.
// @Tags         Settings
// @Produce      json
// @Success      200  {object}  service.Catalog
// @Router       /v1/catalog [get]
func (h *SettingsHandler) GetCatalog(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.catalog.Get())
}
