package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v3"
	"github.com/prospectra/lead-console/app/dto"
	businessflow "github.com/prospectra/lead-console/business_flow"
)

// UserHandlerInterface defines the contract for console user handlers
type UserHandlerInterface interface {
	List(c fiber.Ctx) error
	Create(c fiber.Ctx) error
	Update(c fiber.Ctx) error
	Delete(c fiber.Ctx) error
}

// UserHandler handles console user administration requests
type UserHandler struct {
	baseHandler
	userFlow businessflow.UserFlow
}

// NewUserHandler creates a new user handler
func NewUserHandler(userFlow businessflow.UserFlow) *UserHandler {
	return &UserHandler{
		baseHandler: newBaseHandler(),
		userFlow:    userFlow,
	}
}

// List handles console user listing
// @Summary List Users
// @Tags Users
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.ListUsersResponse} "Users"
// @Router /api/v1/users [get]
func (h *UserHandler) List(c fiber.Ctx) error {
	result, err := h.userFlow.List(h.createRequestContext(c, "/api/v1/users"))
	if err != nil {
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to list users", "USER_LIST_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Users retrieved", result)
}

// Create handles console user provisioning
// @Summary Create User
// @Tags Users
// @Accept json
// @Produce json
// @Param request body dto.CreateUserRequest true "User fields"
// @Success 201 {object} dto.APIResponse{data=dto.UserInfo} "User created"
// @Failure 400 {object} dto.APIResponse "Validation error"
// @Failure 409 {object} dto.APIResponse "Email already registered"
// @Router /api/v1/users [post]
func (h *UserHandler) Create(c fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.Bind().JSON(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_REQUEST", err.Error())
	}

	if ok, err := h.validateStruct(c, &req); !ok {
		return err
	}

	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))

	result, err := h.userFlow.Create(h.createRequestContext(c, "/api/v1/users"), &req, metadata)
	if err != nil {
		if businessflow.IsEmailAlreadyExists(err) {
			return h.ErrorResponse(c, fiber.StatusConflict, "Email already registered", "USER_EMAIL_EXISTS", nil)
		}
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Failed to create user", "USER_CREATE_FAILED", err.Error())
	}

	return h.SuccessResponse(c, fiber.StatusCreated, "User created", result)
}

// Update handles console user patches, including deactivation
// @Summary Update User
// @Tags Users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param request body dto.UpdateUserRequest true "Fields to patch"
// @Success 200 {object} dto.APIResponse{data=dto.UserInfo} "User updated"
// @Failure 404 {object} dto.APIResponse "User not found"
// @Router /api/v1/users/{id} [patch]
func (h *UserHandler) Update(c fiber.Ctx) error {
	userID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid user ID", "INVALID_USER_ID", nil)
	}

	var req dto.UpdateUserRequest
	if err := c.Bind().JSON(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_REQUEST", err.Error())
	}
	req.UserID = uint(userID)

	if ok, err := h.validateStruct(c, &req); !ok {
		return err
	}

	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))

	result, err := h.userFlow.Update(h.createRequestContext(c, "/api/v1/users/:id"), &req, metadata)
	if err != nil {
		if businessflow.IsUserNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "User not found", "USER_NOT_FOUND", nil)
		}
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Failed to update user", "USER_UPDATE_FAILED", err.Error())
	}

	return h.SuccessResponse(c, fiber.StatusOK, "User updated", result)
}

// Delete handles console user removal
// @Summary Delete User
// @Tags Users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} dto.APIResponse "User deleted"
// @Failure 404 {object} dto.APIResponse "User not found"
// @Router /api/v1/users/{id} [delete]
func (h *UserHandler) Delete(c fiber.Ctx) error {
	userID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid user ID", "INVALID_USER_ID", nil)
	}

	if err := h.userFlow.Delete(h.createRequestContext(c, "/api/v1/users/:id"), uint(userID)); err != nil {
		if businessflow.IsUserNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "User not found", "USER_NOT_FOUND", nil)
		}
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete user", "USER_DELETE_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "User deleted", nil)
}
