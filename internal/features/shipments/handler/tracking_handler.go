package handler

import (
	"errors"

	"roadways-api/internal/features/shipments/domain"
	"roadways-api/internal/features/shipments/ports"
	"roadways-api/internal/features/shipments/service"

	"github.com/gofiber/fiber/v2"
)

// lastUpdateDisplayLayout renders timestamps the way the tracking page shows
// them. Storage keeps ISO-8601; formatting happens only here.
const lastUpdateDisplayLayout = "Jan 2, 2006, 3:04 PM"

// TrackingHandler handles the public tracking lookup.
type TrackingHandler struct {
	shipments ports.Service
}

// NewTrackingHandler creates a new TrackingHandler.
func NewTrackingHandler(shipments ports.Service) *TrackingHandler {
	return &TrackingHandler{
		shipments: shipments,
	}
}

// ErrorResponse represents an error response with Ray ID.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for tracing.
	RayID string `json:"ray_id,omitempty"`
}

// TrackResponse is the customer-facing view of a consignment. The internal
// shipment id is never exposed here.
type TrackResponse struct {
	TrackingNumber    string                `json:"trackingNumber"`
	Sender            string                `json:"sender"`
	Receiver          string                `json:"receiver"`
	Origin            string                `json:"origin"`
	Destination       string                `json:"destination"`
	CurrentLocation   string                `json:"currentLocation"`
	Status            domain.Status         `json:"status"`
	LastUpdate        string                `json:"lastUpdate"`
	LastUpdateDisplay string                `json:"lastUpdateDisplay"`
	EstimatedDelivery string                `json:"estimatedDelivery"`
	Description       string                `json:"description"`
	Steps             []domain.ProgressStep `json:"steps"`
}

// Track godoc
// @Summary Track a consignment
// @Description Resolves a customer-supplied tracking number (case-insensitive) and projects its status onto the 4-step progress display.
// @Tags tracking
// @Produce json
// @Param number path string true "Tracking Number (e.g. DR-2025-001)"
// @Success 200 {object} TrackResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /track/{number} [get]
func (h *TrackingHandler) Track(c *fiber.Ctx) error {
	number := c.Params("number")
	if number == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Message: "tracking number is required",
			RayID:   c.Locals("requestid").(string),
		})
	}

	result, err := h.shipments.Track(c.Context(), number)
	if err != nil {
		// A lookup miss is an expected outcome, never interchangeable
		// with a persistence failure.
		if errors.Is(err, service.ErrShipmentNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
				Message: "Consignment not found. Please verify your Tracking ID.",
				RayID:   c.Locals("requestid").(string),
			})
		}

		return c.Status(fiber.StatusServiceUnavailable).JSON(ErrorResponse{
			Message: "Service temporarily unavailable. Please try again shortly.",
			RayID:   c.Locals("requestid").(string),
		})
	}

	s := result.Shipment
	return c.JSON(TrackResponse{
		TrackingNumber:    s.TrackingNumber,
		Sender:            s.Sender,
		Receiver:          s.Receiver,
		Origin:            s.Origin,
		Destination:       s.Destination,
		CurrentLocation:   s.CurrentLocation,
		Status:            s.Status,
		LastUpdate:        s.LastUpdate.UTC().Format("2006-01-02T15:04:05Z07:00"),
		LastUpdateDisplay: s.LastUpdate.Format(lastUpdateDisplayLayout),
		EstimatedDelivery: s.EstimatedDelivery,
		Description:       s.Description,
		Steps:             result.Steps,
	})
}
