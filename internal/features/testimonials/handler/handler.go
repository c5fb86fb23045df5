package handler

import (
	"errors"
	"net/http"

	"roadways-api/internal/core/logger"
	"roadways-api/internal/features/testimonials/domain"
	"roadways-api/internal/features/testimonials/ports"
	"roadways-api/internal/features/testimonials/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// TestimonialHandler handles HTTP requests for testimonials.
type TestimonialHandler struct {
	testimonials ports.TestimonialService
}

// NewTestimonialHandler creates a new TestimonialHandler.
func NewTestimonialHandler(testimonials ports.TestimonialService) *TestimonialHandler {
	return &TestimonialHandler{
		testimonials: testimonials,
	}
}

// SubmitTestimonialRequest represents the request body for a new testimonial.
type SubmitTestimonialRequest struct {
	Name    string `json:"name"`
	Company string `json:"company"`
	Role    string `json:"role"`
	Quote   string `json:"quote"`
	Rating  int    `json:"rating"`
}

// ApprovalRequest represents the request body for changing visibility.
type ApprovalRequest struct {
	Approved bool `json:"approved"`
}

// ListApproved handles GET /testimonials.
// @Summary List approved testimonials
// @Description Returns the testimonials shown on the public site.
// @Tags Testimonials
// @Produce json
// @Success 200 {array} domain.Testimonial
// @Failure 500 {object} map[string]string
// @Router /testimonials [get]
func (h *TestimonialHandler) ListApproved(c *fiber.Ctx) error {
	testimonials, err := h.testimonials.ListApproved(c.Context())
	if err != nil {
		logger.Get().Error("Failed to list testimonials", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}
	return c.Status(http.StatusOK).JSON(testimonials)
}

// ListAll handles GET /admin/testimonials.
// @Summary List all testimonials
// @Tags Testimonials
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.Testimonial
// @Failure 500 {object} map[string]string
// @Router /admin/testimonials [get]
func (h *TestimonialHandler) ListAll(c *fiber.Ctx) error {
	testimonials, err := h.testimonials.ListAll(c.Context())
	if err != nil {
		logger.Get().Error("Failed to list testimonials", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	if testimonials == nil {
		testimonials = []domain.Testimonial{}
	}
	return c.Status(http.StatusOK).JSON(testimonials)
}

// Submit handles POST /testimonials.
// @Summary Submit a testimonial
// @Description Records a visitor testimonial, hidden until the operator approves it.
// @Tags Testimonials
// @Accept json
// @Produce json
// @Param testimonial body SubmitTestimonialRequest true "Testimonial details"
// @Success 201 {object} domain.Testimonial
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /testimonials [post]
func (h *TestimonialHandler) Submit(c *fiber.Ctx) error {
	var req SubmitTestimonialRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	testimonial, err := h.testimonials.Submit(c.Context(), req.Name, req.Company, req.Role, req.Quote, req.Rating)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidRating) || errors.Is(err, domain.ErrMissingQuote) {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		logger.Get().Error("Failed to submit testimonial", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}
	return c.Status(http.StatusCreated).JSON(testimonial)
}

// SetApproval handles PUT /admin/testimonials/:id/approval.
// @Summary Approve or hide a testimonial
// @Tags Testimonials
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Testimonial ID"
// @Param approval body ApprovalRequest true "Visibility"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/testimonials/{id}/approval [put]
func (h *TestimonialHandler) SetApproval(c *fiber.Ctx) error {
	var req ApprovalRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := h.testimonials.SetApproval(c.Context(), c.Params("id"), req.Approved); err != nil {
		if errors.Is(err, service.ErrTestimonialNotFound) {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{
				"error": "Testimonial not found",
			})
		}
		logger.Get().Error("Failed to update testimonial approval", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "Testimonial updated",
	})
}

// Delete handles DELETE /admin/testimonials/:id.
// @Summary Delete a testimonial
// @Tags Testimonials
// @Produce json
// @Security BearerAuth
// @Param id path string true "Testimonial ID"
// @Param confirm query bool true "Explicit confirmation"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/testimonials/{id} [delete]
func (h *TestimonialHandler) Delete(c *fiber.Ctx) error {
	err := h.testimonials.Delete(c.Context(), c.Params("id"), c.QueryBool("confirm"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrDeleteNotConfirmed):
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{
				"error": "Deletion requires confirm=true",
			})
		case errors.Is(err, service.ErrTestimonialNotFound):
			return c.Status(http.StatusNotFound).JSON(fiber.Map{
				"error": "Testimonial not found",
			})
		default:
			logger.Get().Error("Failed to delete testimonial", zap.Error(err))
			return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
				"error": "Internal server error",
			})
		}
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "Testimonial deleted",
	})
}
