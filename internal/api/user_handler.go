package api

import (
	"alcyxob/fitvideo/internal/domain"
	"alcyxob/fitvideo/internal/service"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// UserHandler serves registration and approval.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// --- DTOs ---

// RegisterUserRequest defines the expected JSON for signing up.
type RegisterUserRequest struct {
	UserName string `json:"userName" binding:"required"`
	Password string `json:"password" binding:"required"`
	Age      *float64 `json:"age"`
	Height   *float64 `json:"height"`
	Weight   *float64 `json:"weight"`
	Gender   string   `json:"gender"`
}

// UserResponse is the public view of a user. The password is never included.
// Missing or null measurements render as null.
type UserResponse struct {
	UserName     string   `json:"userName"`
	Age          *float64 `json:"age"`
	Height       *float64 `json:"height"`
	Weight       *float64 `json:"weight"`
	Gender       string   `json:"gender"`
	IsAdmin      string   `json:"isAdmin"`
	IsRegistered string   `json:"isRegistered"`
}

// MapUserToResponse converts a domain.User to UserResponse DTO.
func MapUserToResponse(user *domain.User) UserResponse {
	if user == nil {
		return UserResponse{}
	}
	return UserResponse{
		UserName:     user.UserName,
		Age:          user.Age,
		Height:       user.Height,
		Weight:       user.Weight,
		Gender:       user.Gender,
		IsAdmin:      user.IsAdmin,
		IsRegistered: user.IsRegistered,
	}
}

// MapUsersToResponse converts a slice of domain.User; the result is never nil.
func MapUsersToResponse(users []domain.User) []UserResponse {
	responses := make([]UserResponse, len(users))
	for i := range users {
		responses[i] = MapUserToResponse(&users[i])
	}
	return responses
}

// --- Handler Methods ---

// Register godoc
// @Summary Sign up
// @Description Creates a user awaiting approval together with an empty workout session.
// @Tags Users
// @Accept json
// @Produce json
// @Param user body RegisterUserRequest true "New user"
// @Success 201 {object} UserResponse
// @Failure 400 {object} gin.H "Invalid input"
// @Failure 409 {object} gin.H "User name taken"
// @Router /users [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	user := &domain.User{
		UserName: req.UserName,
		Password: req.Password,
		Age:      req.Age,
		Height:   req.Height,
		Weight:   req.Weight,
		Gender:   req.Gender,
	}
	if err := h.userService.RegisterUser(c.Request.Context(), user); err != nil {
		switch {
		case errors.Is(err, service.ErrUserAlreadyExists):
			abortWithError(c, http.StatusConflict, err.Error())
		case errors.Is(err, service.ErrValidationFailed):
			abortWithError(c, http.StatusBadRequest, err.Error())
		default:
			_ = c.Error(err)
			abortWithError(c, http.StatusInternalServerError, "Failed to register user.")
		}
		return
	}

	c.JSON(http.StatusCreated, MapUserToResponse(user))
}

// GetPending lists users awaiting approval.
func (h *UserHandler) GetPending(c *gin.Context) {
	pending, err := h.userService.PendingUsers(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve pending users.")
		return
	}
	if pending == nil {
		pending = []domain.PendingUser{}
	}
	c.JSON(http.StatusOK, gin.H{"users": pending})
}

func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.userService.GetUser(c.Request.Context(), c.Param("username"))
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
			return
		}
		_ = c.Error(err)
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve user.")
		return
	}
	c.JSON(http.StatusOK, MapUserToResponse(user))
}

// Approve marks a pending user as registered.
func (h *UserHandler) Approve(c *gin.Context) {
	if err := h.userService.ApproveUser(c.Request.Context(), c.Param("username")); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
			return
		}
		_ = c.Error(err)
		abortWithError(c, http.StatusInternalServerError, "Failed to approve user.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User approved"})
}
