package handler

import (
	"errors"
	"net/http"

	"roadways-api/internal/core/logger"
	"roadways-api/internal/features/inquiries/domain"
	"roadways-api/internal/features/inquiries/ports"
	"roadways-api/internal/features/inquiries/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// InquiryHandler handles HTTP requests for inquiries.
type InquiryHandler struct {
	inquiries ports.InquiryService
}

// NewInquiryHandler creates a new InquiryHandler.
func NewInquiryHandler(inquiries ports.InquiryService) *InquiryHandler {
	return &InquiryHandler{
		inquiries: inquiries,
	}
}

// SubmitInquiryRequest represents the request body for the contact form.
type SubmitInquiryRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Service string `json:"service"`
	Notes   string `json:"notes"`
}

// StatusRequest represents the request body for a triage update.
type StatusRequest struct {
	Status string `json:"status"`
}

// Submit handles POST /inquiries.
// @Summary Submit an inquiry
// @Description Records a price/booking request from the public contact form.
// @Tags Inquiries
// @Accept json
// @Produce json
// @Param inquiry body SubmitInquiryRequest true "Inquiry details"
// @Success 201 {object} domain.Inquiry
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /inquiries [post]
func (h *InquiryHandler) Submit(c *fiber.Ctx) error {
	var req SubmitInquiryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	inquiry, err := h.inquiries.Submit(c.Context(), req.Name, req.Phone, req.Service, req.Notes)
	if err != nil {
		if errors.Is(err, domain.ErrMissingContact) {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{
				"error": "Name and phone are required",
			})
		}
		logger.Get().Error("Failed to submit inquiry", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}
	return c.Status(http.StatusCreated).JSON(inquiry)
}

// List handles GET /admin/inquiries.
// @Summary List inquiries
// @Tags Inquiries
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.Inquiry
// @Failure 500 {object} map[string]string
// @Router /admin/inquiries [get]
func (h *InquiryHandler) List(c *fiber.Ctx) error {
	inquiries, err := h.inquiries.List(c.Context())
	if err != nil {
		logger.Get().Error("Failed to list inquiries", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	if inquiries == nil {
		inquiries = []domain.Inquiry{}
	}
	return c.Status(http.StatusOK).JSON(inquiries)
}

// SetStatus handles PUT /admin/inquiries/:id/status.
// @Summary Update inquiry triage state
// @Tags Inquiries
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Inquiry ID"
// @Param status body StatusRequest true "Triage state (new, viewed, resolved)"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/inquiries/{id}/status [put]
func (h *InquiryHandler) SetStatus(c *fiber.Ctx) error {
	var req StatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := h.inquiries.SetStatus(c.Context(), c.Params("id"), req.Status); err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInquiryStatus):
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid status. Must be new, viewed or resolved",
			})
		case errors.Is(err, service.ErrInquiryNotFound):
			return c.Status(http.StatusNotFound).JSON(fiber.Map{
				"error": "Inquiry not found",
			})
		default:
			logger.Get().Error("Failed to update inquiry", zap.Error(err))
			return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
				"error": "Internal server error",
			})
		}
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "Inquiry updated",
	})
}

// Delete handles DELETE /admin/inquiries/:id.
// @Summary Delete an inquiry
// @Tags Inquiries
// @Produce json
// @Security BearerAuth
// @Param id path string true "Inquiry ID"
// @Param confirm query bool true "Explicit confirmation"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/inquiries/{id} [delete]
func (h *InquiryHandler) Delete(c *fiber.Ctx) error {
	err := h.inquiries.Delete(c.Context(), c.Params("id"), c.QueryBool("confirm"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrDeleteNotConfirmed):
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{
				"error": "Deletion requires confirm=true",
			})
		case errors.Is(err, service.ErrInquiryNotFound):
			return c.Status(http.StatusNotFound).JSON(fiber.Map{
				"error": "Inquiry not found",
			})
		default:
			logger.Get().Error("Failed to delete inquiry", zap.Error(err))
			return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
				"error": "Internal server error",
			})
		}
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "Inquiry deleted",
	})
}
