package api

import (
	"alcyxob/fitvideo/internal/service"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// ManageUsersHandler serves the admin user management endpoint. A single
// route dispatches on the HTTP method.
type ManageUsersHandler struct {
	userService service.UserService
}

// NewManageUsersHandler creates a new ManageUsersHandler.
func NewManageUsersHandler(userService service.UserService) *ManageUsersHandler {
	return &ManageUsersHandler{userService: userService}
}

// UpdateDetailsRequest carries the raw measurement fields. Values may be
// numbers or numeric strings; they are coerced to integers before storage.
type UpdateDetailsRequest struct {
	Age    interface{} `json:"age"`
	Height interface{} `json:"height"`
	Weight interface{} `json:"weight"`
}

// ManageUsers godoc
// @Summary Manage users
// @Description GET lists users, PATCH updates body measurements, DELETE removes a user and all related data.
// @Tags Users
// @Accept json
// @Produce json
// @Param username query string false "User name (PATCH, DELETE)"
// @Success 200 {object} gin.H
// @Failure 404 {object} gin.H "User or session not found (DELETE)"
// @Failure 405 {object} gin.H "Method not allowed"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /manageUsers [get]
// @Router /manageUsers [patch]
// @Router /manageUsers [delete]
func (h *ManageUsersHandler) ManageUsers(c *gin.Context) {
	setCORSHeaders(c, ManageUsersAllowedMethods)

	switch c.Request.Method {
	case http.MethodOptions:
		c.Status(http.StatusOK)
	case http.MethodGet:
		h.listUsers(c)
	case http.MethodPatch:
		h.updateDetails(c)
	case http.MethodDelete:
		h.deleteUser(c)
	default:
		abortWithError(c, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

func (h *ManageUsersHandler) listUsers(c *gin.Context) {
	users, err := h.userService.ListUsers(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("Listing users failed")
		_ = c.Error(err)
		abortWithError(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": MapUsersToResponse(users)})
}

func (h *ManageUsersHandler) updateDetails(c *gin.Context) {
	userName := c.Query("username")
	if userName == "" {
		abortWithError(c, http.StatusBadRequest, "username query parameter is required")
		return
	}

	var req UpdateDetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	details := service.CoerceDetails(req.Age, req.Height, req.Weight)
	if err := h.userService.UpdateDetails(c.Request.Context(), userName, details); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			abortWithError(c, http.StatusNotFound, "User not found")
			return
		}
		log.Error().Err(err).Str("user", userName).Msg("Updating user details failed")
		_ = c.Error(err)
		abortWithError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Changed User Details Successfully"})
}

func (h *ManageUsersHandler) deleteUser(c *gin.Context) {
	userName := c.Query("username")
	if userName == "" {
		abortWithMessage(c, http.StatusBadRequest, "username query parameter is required")
		return
	}

	err := h.userService.DeleteUser(c.Request.Context(), userName)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"message": "Delete user completely successful"})
	case errors.Is(err, service.ErrSessionNotFound):
		abortWithMessage(c, http.StatusNotFound, "Delete User session failed")
	case errors.Is(err, service.ErrUserNotFound):
		abortWithMessage(c, http.StatusNotFound, "Delete User failed")
	default:
		_ = c.Error(err)
		abortWithMessage(c, http.StatusInternalServerError, err.Error())
	}
}
