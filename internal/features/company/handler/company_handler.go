package handler

import (
	"errors"
	"net/http"

	"roadways-api/internal/core/logger"
	"roadways-api/internal/features/company/domain"
	"roadways-api/internal/features/company/ports"
	"roadways-api/internal/features/company/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// CompanyHandler handles HTTP requests for the company profile.
type CompanyHandler struct {
	company ports.CompanyService
}

// NewCompanyHandler creates a new CompanyHandler.
func NewCompanyHandler(company ports.CompanyService) *CompanyHandler {
	return &CompanyHandler{
		company: company,
	}
}

// GetDetails handles GET /company.
// @Summary Get company details
// @Description Returns the business identity shown across the public site.
// @Tags Company
// @Produce json
// @Success 200 {object} domain.CompanyDetails
// @Failure 500 {object} map[string]string
// @Router /company [get]
func (h *CompanyHandler) GetDetails(c *fiber.Ctx) error {
	details, err := h.company.GetDetails(c.Context())
	if err != nil {
		logger.Get().Error("Failed to load company details", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}
	return c.Status(http.StatusOK).JSON(details)
}

// UpdateDetails handles PUT /admin/company.
// @Summary Update company details
// @Tags Company
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param details body domain.CompanyDetails true "Company details"
// @Success 200 {object} domain.CompanyDetails
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /admin/company [put]
func (h *CompanyHandler) UpdateDetails(c *fiber.Ctx) error {
	var details domain.CompanyDetails
	if err := c.BodyParser(&details); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := h.company.UpdateDetails(c.Context(), details); err != nil {
		if errors.Is(err, service.ErrMissingName) {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{
				"error": "Company name is required",
			})
		}
		logger.Get().Error("Failed to update company details", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}
	return c.Status(http.StatusOK).JSON(details)
}

// GetAssets handles GET /assets.
// @Summary Get site imagery
// @Tags Company
// @Produce json
// @Success 200 {object} domain.SiteAssets
// @Failure 500 {object} map[string]string
// @Router /assets [get]
func (h *CompanyHandler) GetAssets(c *fiber.Ctx) error {
	assets, err := h.company.GetAssets(c.Context())
	if err != nil {
		logger.Get().Error("Failed to load site assets", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}
	return c.Status(http.StatusOK).JSON(assets)
}

// UpdateAssets handles PUT /admin/assets.
// @Summary Update site imagery
// @Tags Company
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param assets body domain.SiteAssets true "Site assets"
// @Success 200 {object} domain.SiteAssets
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /admin/assets [put]
func (h *CompanyHandler) UpdateAssets(c *fiber.Ctx) error {
	var assets domain.SiteAssets
	if err := c.BodyParser(&assets); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := h.company.UpdateAssets(c.Context(), assets); err != nil {
		logger.Get().Error("Failed to update site assets", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}
	return c.Status(http.StatusOK).JSON(assets)
}
