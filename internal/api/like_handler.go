package api

import (
	"alcyxob/fitvideo/internal/service"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type LikeHandler struct {
	likeService service.LikeService
}

// NewLikeHandler creates a new LikeHandler.
func NewLikeHandler(likeService service.LikeService) *LikeHandler {
	return &LikeHandler{likeService: likeService}
}

type LikeRequest struct {
	URL string `json:"url" binding:"required"`
}

func likeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrVideoNotFound), errors.Is(err, service.ErrNotLiked):
		abortWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrAlreadyLiked):
		abortWithError(c, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrValidationFailed):
		abortWithError(c, http.StatusBadRequest, err.Error())
	default:
		_ = c.Error(err)
		abortWithError(c, http.StatusInternalServerError, "Failed to update like.")
	}
}

func (h *LikeHandler) LikedVideos(c *gin.Context) {
	urls, err := h.likeService.LikedVideos(c.Request.Context(), c.Param("username"))
	if err != nil {
		_ = c.Error(err)
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve liked videos.")
		return
	}
	if urls == nil {
		urls = []string{}
	}
	c.JSON(http.StatusOK, gin.H{"urls": urls})
}

// Like records a like and returns the video with its new like count.
func (h *LikeHandler) Like(c *gin.Context) {
	var req LikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	video, err := h.likeService.Like(c.Request.Context(), c.Param("username"), req.URL)
	if err != nil {
		likeError(c, err)
		return
	}
	c.JSON(http.StatusOK, video)
}

func (h *LikeHandler) Unlike(c *gin.Context) {
	video, err := h.likeService.Unlike(c.Request.Context(), c.Param("username"), c.Query("url"))
	if err != nil {
		likeError(c, err)
		return
	}
	c.JSON(http.StatusOK, video)
}
