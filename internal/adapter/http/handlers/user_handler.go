package handlers

import (
	"errors"
	"net/http"

	request "payment_gateway/internal/adapter/http/dto/request"
	response "payment_gateway/internal/adapter/http/dto/response"
	"payment_gateway/internal/usecase"
	"payment_gateway/pkg"

	"github.com/gin-gonic/gin"
)

// UserHandler handles signup and user lookup.

type UserHandler struct {
	usecase usecase.IUserUseCase
}

func NewUserHandler(uc usecase.IUserUseCase) *UserHandler {
	return &UserHandler{usecase: uc}
}

// CreateUser registers a user. Signup is idempotent on email: a known email
// returns the existing user.
func (h *UserHandler) CreateUser(c *gin.Context) {
	var payload request.CreateUserRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	user, err := h.usecase.Register(c.Request.Context(), payload.Username, payload.Email)
	if err != nil {
		appErr := mapUserError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromUser(user))
}

func (h *UserHandler) GetUser(c *gin.Context) {
	userID := c.Param("user_id")

	user, err := h.usecase.GetByID(c.Request.Context(), userID)
	if err != nil {
		appErr := mapUserError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromUser(user))
}

func mapUserError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidUsername), errors.Is(err, usecase.ErrInvalidEmail), errors.Is(err, usecase.ErrInvalidUserID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUserNotFound):
		return pkg.NewDomainErrorSimple("USER_NOT_FOUND", "User not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
