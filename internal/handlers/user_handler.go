package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/ryoufit/ryoufit-backend/internal/dto"
	"github.com/ryoufit/ryoufit-backend/internal/middleware"
	"github.com/ryoufit/ryoufit-backend/internal/services"
)

type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// ListUsers handles GET /users - all users ordered by family name.
func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.userService.List()
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(users)
}

// CreateUser handles POST /users - responds 201 with the created record.
func (h *UserHandler) CreateUser(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	if req.LastName == "" || req.FirstName == "" || req.Gender == "" || req.BirthDate == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "lastName, firstName, gender and birthDate are required",
		})
	}

	user, err := h.userService.Create(req)
	if err != nil {
		return serviceError(c, err)
	}
	slog.Info("user created", "id", user.ID, "operator", middleware.OperatorID(c))
	return c.Status(fiber.StatusCreated).JSON(user)
}

// GetUser handles GET /users/:id - fetch or 404, never 200 with a null body.
func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid user ID",
		})
	}

	user, err := h.userService.GetByID(id)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(user)
}

// UpdateUser handles PUT /users/:id - partial patch, absent fields untouched.
func (h *UserHandler) UpdateUser(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid user ID",
		})
	}

	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	// A patch may omit any field, but a field it does carry must not blank a
	// mandatory column.
	if blankPatch(req.LastName) || blankPatch(req.FirstName) || blankPatch(req.Gender) || blankPatch(req.BirthDate) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "lastName, firstName, gender and birthDate cannot be blank",
		})
	}

	user, err := h.userService.Update(id, req)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(user)
}

// DeleteUser handles DELETE /users/:id - always 204 on success. The user's
// measurements stay behind; there is no cascade.
func (h *UserHandler) DeleteUser(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid user ID",
		})
	}

	if err := h.userService.Delete(id); err != nil {
		return serviceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// blankPatch reports whether a patch field is present but empty.
func blankPatch(s *string) bool {
	return s != nil && *s == ""
}

// serviceError maps service sentinels onto the status taxonomy and lets
// everything else surface as a logged 500. Store failures are never rewritten
// into synthetic success responses.
func serviceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "User not found",
		})
	case errors.Is(err, services.ErrMeasurementNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "Measurement not found",
		})
	case errors.Is(err, services.ErrDuplicateDate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Error: true, Message: "A measurement already exists for this user and date",
		})
	}

	slog.Error("store operation failed", "method", c.Method(), "path", c.Path(), "error", err.Error())
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Error: true, Message: "Internal server error",
	})
}
