package handler

import (
	"errors"
	"net/http"

	"roadways-api/internal/core/logger"
	"roadways-api/internal/features/shipments/domain"
	"roadways-api/internal/features/shipments/ports"
	"roadways-api/internal/features/shipments/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AdminHandler handles operator CRUD over the shipment collection.
type AdminHandler struct {
	shipments ports.Service
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(shipments ports.Service) *AdminHandler {
	return &AdminHandler{
		shipments: shipments,
	}
}

// ShipmentRequest represents the request body for creating or editing a shipment.
type ShipmentRequest struct {
	TrackingNumber    *string `json:"trackingNumber"`
	Sender            *string `json:"sender"`
	Receiver          *string `json:"receiver"`
	Origin            *string `json:"origin"`
	Destination       *string `json:"destination"`
	CurrentLocation   *string `json:"currentLocation"`
	Status            *string `json:"status"`
	EstimatedDelivery *string `json:"estimatedDelivery"`
	Description       *string `json:"description"`
}

// List handles GET /admin/shipments.
// @Summary List all shipments
// @Description Returns the full shipment collection for the admin console.
// @Tags Shipments
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.Shipment
// @Failure 500 {object} map[string]string
// @Router /admin/shipments [get]
func (h *AdminHandler) List(c *fiber.Ctx) error {
	shipments, err := h.shipments.List(c.Context())
	if err != nil {
		logger.Get().Error("Failed to list shipments", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	if shipments == nil {
		shipments = []domain.Shipment{}
	}
	return c.Status(http.StatusOK).JSON(shipments)
}

// NextTrackingNumber handles GET /admin/shipments/next-tracking-number.
// @Summary Preview the next tracking number
// @Description Computes the next available tracking number from the live collection. Advisory only; uniqueness is enforced again at save time.
// @Tags Shipments
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /admin/shipments/next-tracking-number [get]
func (h *AdminHandler) NextTrackingNumber(c *fiber.Ctx) error {
	number, err := h.shipments.NextTrackingNumber(c.Context())
	if err != nil {
		logger.Get().Error("Failed to compute next tracking number", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"trackingNumber": number,
	})
}

// Get handles GET /admin/shipments/:id.
// @Summary Get a shipment
// @Tags Shipments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Shipment ID"
// @Success 200 {object} domain.Shipment
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /admin/shipments/{id} [get]
func (h *AdminHandler) Get(c *fiber.Ctx) error {
	shipment, err := h.shipments.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return h.writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(shipment)
}

// Create handles POST /admin/shipments.
// @Summary Create a shipment
// @Description Creates a shipment. An empty trackingNumber is auto-generated; a pre-filled one is validated for uniqueness. Status defaults to dispatched.
// @Tags Shipments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param shipment body ShipmentRequest true "Shipment details"
// @Success 201 {object} domain.Shipment
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /admin/shipments [post]
func (h *AdminHandler) Create(c *fiber.Ctx) error {
	var req ShipmentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	in := ports.CreateInput{
		TrackingNumber:    deref(req.TrackingNumber),
		Sender:            deref(req.Sender),
		Receiver:          deref(req.Receiver),
		Origin:            deref(req.Origin),
		Destination:       deref(req.Destination),
		CurrentLocation:   deref(req.CurrentLocation),
		Status:            deref(req.Status),
		EstimatedDelivery: deref(req.EstimatedDelivery),
		Description:       deref(req.Description),
	}

	shipment, err := h.shipments.Create(c.Context(), in)
	if err != nil {
		return h.writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(shipment)
}

// Update handles PUT /admin/shipments/:id.
// @Summary Edit a shipment
// @Description Applies a partial edit. Every edit refreshes lastUpdate. An edited tracking number is re-validated for uniqueness.
// @Tags Shipments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Shipment ID"
// @Param shipment body ShipmentRequest true "Fields to change"
// @Success 200 {object} domain.Shipment
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /admin/shipments/{id} [put]
func (h *AdminHandler) Update(c *fiber.Ctx) error {
	var req ShipmentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	in := ports.UpdateInput{
		TrackingNumber:    req.TrackingNumber,
		Sender:            req.Sender,
		Receiver:          req.Receiver,
		Origin:            req.Origin,
		Destination:       req.Destination,
		CurrentLocation:   req.CurrentLocation,
		Status:            req.Status,
		EstimatedDelivery: req.EstimatedDelivery,
		Description:       req.Description,
	}

	shipment, err := h.shipments.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return h.writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(shipment)
}

// Delete handles DELETE /admin/shipments/:id.
// @Summary Delete a shipment
// @Description Permanently removes a shipment. Requires confirm=true; deletion is immediate and unrecoverable.
// @Tags Shipments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Shipment ID"
// @Param confirm query bool true "Explicit confirmation"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /admin/shipments/{id} [delete]
func (h *AdminHandler) Delete(c *fiber.Ctx) error {
	confirmed := c.QueryBool("confirm")

	err := h.shipments.Delete(c.Context(), c.Params("id"), confirmed)
	if err != nil {
		if errors.Is(err, service.ErrDeleteNotConfirmed) {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{
				"error": "Deletion requires confirm=true",
			})
		}
		return h.writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "Shipment deleted",
	})
}

// writeError maps service errors onto HTTP statuses shared by the CRUD handlers.
func (h *AdminHandler) writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrShipmentNotFound):
		return c.Status(http.StatusNotFound).JSON(fiber.Map{
			"error": "Shipment not found",
		})
	case errors.Is(err, service.ErrDuplicateTrackingNumber):
		return c.Status(http.StatusConflict).JSON(fiber.Map{
			"error": "Tracking number already in use",
		})
	case errors.Is(err, domain.ErrInvalidStatus):
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid status. Must be dispatched, in-transit, near-destination or delivered",
		})
	default:
		logger.Get().Error("Shipment operation failed", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
