package api

import (
	"alcyxob/fitvideo/internal/domain"
	"alcyxob/fitvideo/internal/service"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// SessionHandler exposes a user's workout session.
type SessionHandler struct {
	sessionService service.SessionService
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(sessionService service.SessionService) *SessionHandler {
	return &SessionHandler{sessionService: sessionService}
}

type SetVideosRequest struct {
	Videos []string `json:"videos"`
}

// SetCheckRequest uses pointers so that false and 0 pass the required check.
type SetCheckRequest struct {
	Value *bool `json:"value" binding:"required"`
	Index *int  `json:"index" binding:"required"`
}

type SetFinishedRequest struct {
	Finished *bool `json:"finished" binding:"required"`
}

// respondSession writes the post-update session or maps the service error.
func respondSession(c *gin.Context, session *domain.UserSession, err error) {
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSessionNotFound):
			abortWithError(c, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrInvalidCheckIndex):
			abortWithError(c, http.StatusBadRequest, err.Error())
		default:
			_ = c.Error(err)
			abortWithError(c, http.StatusInternalServerError, "Failed to process session.")
		}
		return
	}
	c.JSON(http.StatusOK, session)
}

func (h *SessionHandler) GetSession(c *gin.Context) {
	session, err := h.sessionService.GetSession(c.Request.Context(), c.Param("username"))
	respondSession(c, session, err)
}

// SetVideos replaces the queued videos.
func (h *SessionHandler) SetVideos(c *gin.Context) {
	var req SetVideosRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	if req.Videos == nil {
		req.Videos = []string{}
	}
	session, err := h.sessionService.SetVideos(c.Request.Context(), c.Param("username"), req.Videos)
	respondSession(c, session, err)
}

// SetCheck godoc
// @Summary Check off a video
// @Description Sets checks[index]. Indices past the end extend the list with false.
// @Tags Sessions
// @Accept json
// @Produce json
// @Param username path string true "User name"
// @Param check body SetCheckRequest true "Index and value"
// @Success 200 {object} domain.UserSession
// @Failure 400 {object} gin.H "Invalid input"
// @Failure 404 {object} gin.H "Session not found"
// @Router /sessions/{username}/checks [patch]
func (h *SessionHandler) SetCheck(c *gin.Context) {
	var req SetCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	session, err := h.sessionService.SetCheck(c.Request.Context(), c.Param("username"), *req.Value, *req.Index)
	respondSession(c, session, err)
}

func (h *SessionHandler) ResetChecks(c *gin.Context) {
	session, err := h.sessionService.ResetChecks(c.Request.Context(), c.Param("username"))
	respondSession(c, session, err)
}

func (h *SessionHandler) SetFinished(c *gin.Context) {
	var req SetFinishedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	session, err := h.sessionService.SetFinished(c.Request.Context(), c.Param("username"), *req.Finished)
	respondSession(c, session, err)
}

func (h *SessionHandler) Complete(c *gin.Context) {
	session, err := h.sessionService.CompleteSession(c.Request.Context(), c.Param("username"))
	respondSession(c, session, err)
}

func (h *SessionHandler) Open(c *gin.Context) {
	session, err := h.sessionService.OpenSession(c.Request.Context(), c.Param("username"))
	respondSession(c, session, err)
}
