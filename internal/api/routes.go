package api

import (
	"alcyxob/fitvideo/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Services bundles the dependencies of every handler.
type Services struct {
	Users    service.UserService
	Sessions service.SessionService
	Videos   service.VideoService
	Likes    service.LikeService
	Quotes   service.QuoteService
}

// NewRouter builds a gin engine with recovery, request ids, request logging
// and CORS installed, and all routes registered.
func NewRouter(services Services) *gin.Engine {
	router := gin.New()
	router.Use(
		gin.Recovery(),
		RequestIDMiddleware(),
		LoggerMiddleware(),
		CORSMiddleware(),
	)
	SetupRoutes(router, services)
	return router
}

func SetupRoutes(router *gin.Engine, services Services) {
	manageUsersHandler := NewManageUsersHandler(services.Users)
	userHandler := NewUserHandler(services.Users)
	sessionHandler := NewSessionHandler(services.Sessions)
	videoHandler := NewVideoHandler(services.Videos)
	likeHandler := NewLikeHandler(services.Likes)
	quoteHandler := NewQuoteHandler(services.Quotes)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	api := router.Group("/api")
	{
		// Dispatches on method itself, including OPTIONS and 405.
		api.Any("/manageUsers", manageUsersHandler.ManageUsers)

		userGroup := api.Group("/users")
		{
			userGroup.POST("", userHandler.Register)
			userGroup.GET("/pending", userHandler.GetPending)
			userGroup.GET("/:username", userHandler.GetUser)
			userGroup.PATCH("/:username/approve", userHandler.Approve)
		}

		sessionGroup := api.Group("/sessions/:username")
		{
			sessionGroup.GET("", sessionHandler.GetSession)
			sessionGroup.PUT("/videos", sessionHandler.SetVideos)
			sessionGroup.PATCH("/checks", sessionHandler.SetCheck)
			sessionGroup.DELETE("/checks", sessionHandler.ResetChecks)
			sessionGroup.PATCH("/finished", sessionHandler.SetFinished)
			sessionGroup.POST("/complete", sessionHandler.Complete)
			sessionGroup.POST("/opened", sessionHandler.Open)
		}

		videoGroup := api.Group("/videos")
		{
			videoGroup.GET("", videoHandler.ListVideos)
			videoGroup.POST("", videoHandler.CreateVideo)
			videoGroup.DELETE("", videoHandler.DeleteVideo)
			videoGroup.GET("/unique", videoHandler.UniqueVideos)
			videoGroup.GET("/lookup", videoHandler.LookupVideo)
		}

		likeGroup := api.Group("/likes/:username")
		{
			likeGroup.GET("", likeHandler.LikedVideos)
			likeGroup.POST("", likeHandler.Like)
			likeGroup.DELETE("", likeHandler.Unlike)
		}

		api.GET("/quote", quoteHandler.RandomQuote)
	}
}
