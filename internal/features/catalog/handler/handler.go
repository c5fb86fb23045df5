package handler

import (
	"errors"
	"net/http"

	"roadways-api/internal/core/logger"
	"roadways-api/internal/features/catalog/domain"
	"roadways-api/internal/features/catalog/ports"
	"roadways-api/internal/features/catalog/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// CatalogHandler handles HTTP requests for the service catalog.
type CatalogHandler struct {
	catalog ports.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(catalog ports.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		catalog: catalog,
	}
}

// List handles GET /services.
// @Summary List service offerings
// @Description Returns the logistics services shown on the public site.
// @Tags Catalog
// @Produce json
// @Success 200 {array} domain.Offering
// @Failure 500 {object} map[string]string
// @Router /services [get]
func (h *CatalogHandler) List(c *fiber.Ctx) error {
	offerings, err := h.catalog.List(c.Context())
	if err != nil {
		logger.Get().Error("Failed to list offerings", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}
	return c.Status(http.StatusOK).JSON(offerings)
}

// Create handles POST /admin/services.
// @Summary Create a service offering
// @Tags Catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param offering body domain.Offering true "Offering details"
// @Success 201 {object} domain.Offering
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /admin/services [post]
func (h *CatalogHandler) Create(c *fiber.Ctx) error {
	var offering domain.Offering
	if err := c.BodyParser(&offering); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	created, err := h.catalog.Create(c.Context(), offering)
	if err != nil {
		return h.writeError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(created)
}

// Update handles PUT /admin/services/:id.
// @Summary Edit a service offering
// @Tags Catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Offering ID"
// @Param offering body domain.Offering true "Offering details"
// @Success 200 {object} domain.Offering
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/services/{id} [put]
func (h *CatalogHandler) Update(c *fiber.Ctx) error {
	var offering domain.Offering
	if err := c.BodyParser(&offering); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	updated, err := h.catalog.Update(c.Context(), c.Params("id"), offering)
	if err != nil {
		return h.writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(updated)
}

// Delete handles DELETE /admin/services/:id.
// @Summary Delete a service offering
// @Tags Catalog
// @Produce json
// @Security BearerAuth
// @Param id path string true "Offering ID"
// @Param confirm query bool true "Explicit confirmation"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/services/{id} [delete]
func (h *CatalogHandler) Delete(c *fiber.Ctx) error {
	err := h.catalog.Delete(c.Context(), c.Params("id"), c.QueryBool("confirm"))
	if err != nil {
		if errors.Is(err, service.ErrDeleteNotConfirmed) {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{
				"error": "Deletion requires confirm=true",
			})
		}
		return h.writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "Offering deleted",
	})
}

func (h *CatalogHandler) writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrOfferingNotFound):
		return c.Status(http.StatusNotFound).JSON(fiber.Map{
			"error": "Offering not found",
		})
	case errors.Is(err, domain.ErrMissingTitle):
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "Title is required",
		})
	default:
		logger.Get().Error("Catalog operation failed", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}
}
