package handler

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"roadways-api/internal/features/shipments/domain"
	"roadways-api/internal/features/shipments/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAdminApp(repo *stubRepo) *fiber.App {
	h := NewAdminHandler(service.NewShipmentService(repo))

	app := fiber.New()
	app.Get("/admin/shipments", h.List)
	app.Get("/admin/shipments/next-tracking-number", h.NextTrackingNumber)
	app.Post("/admin/shipments", h.Create)
	app.Put("/admin/shipments/:id", h.Update)
	app.Delete("/admin/shipments/:id", h.Delete)
	return app
}

func TestAdminHandler_CreateAndList(t *testing.T) {
	repo := &stubRepo{}
	app := newAdminApp(repo)

	body := `{"sender":"Delhi Hardware Mart","receiver":"Jaipur Traders","origin":"Faridabad, HR","destination":"Jaipur, RJ"}`
	req := httptest.NewRequest("POST", "/admin/shipments", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var created domain.Shipment
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	assert.NotEmpty(t, created.ID)
	assert.Regexp(t, `^DR-\d{4}-\d{3,}$`, created.TrackingNumber)
	assert.Equal(t, domain.StatusDispatched, created.Status)

	resp, err = app.Test(httptest.NewRequest("GET", "/admin/shipments", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var listed []domain.Shipment
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&listed))
	require.Len(t, listed, 1)
	assert.Equal(t, created.ID, listed[0].ID)
}

func TestAdminHandler_Create_DuplicateConflict(t *testing.T) {
	repo := &stubRepo{shipments: []domain.Shipment{
		{ID: "a1", TrackingNumber: "DR-2025-010", Status: domain.StatusDispatched},
	}}
	app := newAdminApp(repo)

	body := `{"trackingNumber":"dr-2025-010"}`
	req := httptest.NewRequest("POST", "/admin/shipments", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestAdminHandler_Create_InvalidStatus(t *testing.T) {
	repo := &stubRepo{}
	app := newAdminApp(repo)

	body := `{"status":"lost"}`
	req := httptest.NewRequest("POST", "/admin/shipments", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestAdminHandler_NextTrackingNumber(t *testing.T) {
	repo := &stubRepo{shipments: []domain.Shipment{
		{ID: "a1", TrackingNumber: "DR-2025-007"},
	}}
	app := newAdminApp(repo)

	resp, err := app.Test(httptest.NewRequest("GET", "/admin/shipments/next-tracking-number", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Equal(t, "DR-2025-008", result["trackingNumber"])
}

func TestAdminHandler_Update(t *testing.T) {
	repo := &stubRepo{shipments: []domain.Shipment{
		{ID: "a1", TrackingNumber: "DR-2025-001", Status: domain.StatusDispatched},
	}}
	app := newAdminApp(repo)

	body := `{"status":"in-transit","currentLocation":"Jaipur Terminal"}`
	req := httptest.NewRequest("PUT", "/admin/shipments/a1", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var updated domain.Shipment
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&updated))
	assert.Equal(t, domain.StatusInTransit, updated.Status)
	assert.Equal(t, "Jaipur Terminal", updated.CurrentLocation)
	assert.Equal(t, "DR-2025-001", updated.TrackingNumber)
}

func TestAdminHandler_Update_NotFound(t *testing.T) {
	repo := &stubRepo{}
	app := newAdminApp(repo)

	req := httptest.NewRequest("PUT", "/admin/shipments/ghost", strings.NewReader(`{"sender":"X"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestAdminHandler_Delete_RequiresConfirm(t *testing.T) {
	repo := &stubRepo{shipments: []domain.Shipment{
		{ID: "a1", TrackingNumber: "DR-2025-001"},
	}}
	app := newAdminApp(repo)

	resp, err := app.Test(httptest.NewRequest("DELETE", "/admin/shipments/a1", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	require.Len(t, repo.shipments, 1)

	resp, err = app.Test(httptest.NewRequest("DELETE", "/admin/shipments/a1?confirm=true", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Empty(t, repo.shipments)
}
