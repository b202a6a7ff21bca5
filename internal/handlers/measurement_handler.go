package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/ryoufit/ryoufit-backend/internal/dto"
	"github.com/ryoufit/ryoufit-backend/internal/middleware"
	"github.com/ryoufit/ryoufit-backend/internal/services"
)

type MeasurementHandler struct {
	measurementService *services.MeasurementService
}

func NewMeasurementHandler(measurementService *services.MeasurementService) *MeasurementHandler {
	return &MeasurementHandler{measurementService: measurementService}
}

// ListMeasurements handles GET /measurements - full collection, newest first.
func (h *MeasurementHandler) ListMeasurements(c *fiber.Ctx) error {
	ms, err := h.measurementService.List()
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(ms)
}

// CreateMeasurement handles POST /measurements - responds 201, or 409 when
// the user already has a visit on that date.
func (h *MeasurementHandler) CreateMeasurement(c *fiber.Ctx) error {
	var req dto.CreateMeasurementRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	if req.UserID == "" || req.MeasurementDate == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "userId and measurementDate are required",
		})
	}
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid userId",
		})
	}

	m, err := h.measurementService.Create(userID, req)
	if err != nil {
		return serviceError(c, err)
	}
	slog.Info("measurement created",
		"id", m.ID, "userId", m.UserID, "date", m.MeasurementDate,
		"operator", middleware.OperatorID(c))
	return c.Status(fiber.StatusCreated).JSON(m)
}

// GetMeasurement handles GET /measurements/:id.
func (h *MeasurementHandler) GetMeasurement(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid measurement ID",
		})
	}

	m, err := h.measurementService.GetByID(id)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(m)
}

// UpdateMeasurement handles PUT /measurements/:id - partial patch. The
// results table sends only {"bi": n} from the inline editor.
func (h *MeasurementHandler) UpdateMeasurement(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid measurement ID",
		})
	}

	var req dto.UpdateMeasurementRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	if blankPatch(req.MeasurementDate) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "measurementDate cannot be blank",
		})
	}

	m, err := h.measurementService.Update(id, req)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(m)
}

// DeleteMeasurement handles DELETE /measurements/:id - always 204 on success.
func (h *MeasurementHandler) DeleteMeasurement(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid measurement ID",
		})
	}

	if err := h.measurementService.Delete(id); err != nil {
		return serviceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListUserMeasurements handles GET /users/:id/measurements. Default mode is
// the full history, newest first; ?latest=true&limit=N returns only the N
// most recent visits re-sorted oldest first for display.
func (h *MeasurementHandler) ListUserMeasurements(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid user ID",
		})
	}

	if c.Query("latest") == "true" {
		limit := c.QueryInt("limit", services.DefaultLatestLimit)
		ms, err := h.measurementService.LatestByUser(userID, limit)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(ms)
	}

	ms, err := h.measurementService.ListByUser(userID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(ms)
}

// UserChart handles GET /users/:id/chart - per-visit points of the five
// tracked metrics across the latest visits, oldest first.
func (h *MeasurementHandler) UserChart(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid user ID",
		})
	}

	limit := c.QueryInt("limit", services.DefaultLatestLimit)
	points, err := h.measurementService.ChartPoints(userID, limit)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(dto.ChartResponse{
		UserID: userID.String(),
		Points: points,
	})
}
