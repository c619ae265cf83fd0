package api

import (
	"alcyxob/fitvideo/internal/domain"
	"alcyxob/fitvideo/internal/service"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// VideoHandler serves the video catalog.
type VideoHandler struct {
	videoService service.VideoService
}

// NewVideoHandler creates a new VideoHandler.
func NewVideoHandler(videoService service.VideoService) *VideoHandler {
	return &VideoHandler{videoService: videoService}
}

// CreateVideoRequest defines the expected JSON for adding a catalog entry.
type CreateVideoRequest struct {
	URL        string `json:"url" binding:"required"`
	Difficulty string `json:"difficulty" binding:"required"` // Beginner, Intermediate or Advanced
	BodyPart   string `json:"bodyPart" binding:"required"`
	Title      string `json:"title"`
}

func videoError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrVideoNotFound):
		abortWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrVideoExists):
		abortWithError(c, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrInvalidDifficulty),
		errors.Is(err, service.ErrInvalidSort),
		errors.Is(err, service.ErrValidationFailed):
		abortWithError(c, http.StatusBadRequest, err.Error())
	default:
		_ = c.Error(err)
		abortWithError(c, http.StatusInternalServerError, fallback)
	}
}

func nonNilVideos(videos []domain.Video) []domain.Video {
	if videos == nil {
		return []domain.Video{}
	}
	return videos
}

// ListVideos godoc
// @Summary List videos of a body part
// @Description Optional sort by title, likes or difficulty. asc=true means A-Z, fewest likes first or Beginner first.
// @Tags Videos
// @Produce json
// @Param bodyPart query string true "Body part"
// @Param sort query string false "title | likes | difficulty"
// @Param asc query bool false "Ascending (default true)"
// @Success 200 {array} domain.Video
// @Failure 400 {object} gin.H "Invalid query"
// @Router /videos [get]
func (h *VideoHandler) ListVideos(c *gin.Context) {
	bodyPart := c.Query("bodyPart")
	if bodyPart == "" {
		abortWithError(c, http.StatusBadRequest, "bodyPart query parameter is required")
		return
	}
	ascending, err := strconv.ParseBool(c.DefaultQuery("asc", "true"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "asc must be true or false")
		return
	}

	videos, err := h.videoService.ListVideos(c.Request.Context(), bodyPart, domain.VideoSort(c.Query("sort")), ascending)
	if err != nil {
		videoError(c, err, "Failed to retrieve videos.")
		return
	}
	c.JSON(http.StatusOK, nonNilVideos(videos))
}

func (h *VideoHandler) CreateVideo(c *gin.Context) {
	var req CreateVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	video, err := h.videoService.AddVideo(c.Request.Context(), req.URL, req.Difficulty, req.BodyPart, req.Title)
	if err != nil {
		videoError(c, err, "Failed to create video.")
		return
	}
	c.JSON(http.StatusCreated, video)
}

// DeleteVideo removes the video named by the url query parameter.
func (h *VideoHandler) DeleteVideo(c *gin.Context) {
	url := c.Query("url")
	if url == "" {
		abortWithError(c, http.StatusBadRequest, "url query parameter is required")
		return
	}
	video, err := h.videoService.RemoveVideo(c.Request.Context(), url)
	if err != nil {
		videoError(c, err, "Failed to delete video.")
		return
	}
	c.JSON(http.StatusOK, video)
}

func (h *VideoHandler) LookupVideo(c *gin.Context) {
	video, err := h.videoService.GetVideo(c.Request.Context(), c.Query("url"))
	if err != nil {
		videoError(c, err, "Failed to retrieve video.")
		return
	}
	c.JSON(http.StatusOK, video)
}

// UniqueVideos returns at most one random url per difficulty tier.
func (h *VideoHandler) UniqueVideos(c *gin.Context) {
	urls, err := h.videoService.UniqueVideos(c.Request.Context())
	if err != nil {
		videoError(c, err, "Failed to retrieve videos.")
		return
	}
	if urls == nil {
		urls = []string{}
	}
	c.JSON(http.StatusOK, gin.H{"urls": urls})
}
