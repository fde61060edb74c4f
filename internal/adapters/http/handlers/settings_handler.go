package handlers

import (
	"sacco-ledger/internal/adapters/persistence/models"
	"sacco-ledger/internal/core/domain"
	"sacco-ledger/internal/core/services"
	"sacco-ledger/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

// SettingsHandler handles organization settings endpoints
type SettingsHandler struct {
	settingsService *services.SettingsService
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settingsService *services.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// UpdateSettingsRequest represents settings update request body
type UpdateSettingsRequest struct {
	OrgName            string `json:"org_name"`
	Currency           string `json:"currency"`
	PrimaryColor       string `json:"primary_color"`
	DefaultSavingsRate string `json:"default_savings_rate"`
	DefaultCompounding string `json:"default_compounding"`
}

// Get handles settings retrieval
// @Summary Get settings
// @Description Get the organization settings
// @Tags Settings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /settings [get]
func (h *SettingsHandler) Get(c *fiber.Ctx) error {
	settings, err := h.settingsService.Get(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to retrieve settings")
	}

	return response.Success(c, "Settings retrieved successfully", settings)
}

// Update handles settings update
// @Summary Update settings
// @Description Update the organization settings (admin only)
// @Tags Settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body UpdateSettingsRequest true "Settings data"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /settings [put]
func (h *SettingsHandler) Update(c *fiber.Ctx) error {
	var req UpdateSettingsRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	rate, err := decimal.NewFromString(req.DefaultSavingsRate)
	if err != nil {
		return response.BadRequest(c, "Default savings rate must be a decimal number")
	}

	input := &services.UpdateSettingsInput{
		OrgName:            req.OrgName,
		Currency:           req.Currency,
		PrimaryColor:       req.PrimaryColor,
		DefaultSavingsRate: rate,
		DefaultCompounding: models.Compounding(req.DefaultCompounding),
	}

	settings, err := h.settingsService.Update(c.Context(), input)
	if err != nil {
		switch {
		case domain.IsValidation(err):
			return response.BadRequest(c, err.Error())
		default:
			return response.InternalServerError(c, "Failed to update settings")
		}
	}

	return response.Success(c, "Settings updated successfully", settings)
}
