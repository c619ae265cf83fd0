package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	// RequestIDHeader carries the request correlation id in both directions.
	RequestIDHeader = "X-Request-ID"

	// ContextRequestIDKey is the gin context key holding the request id.
	ContextRequestIDKey = "requestID"
)

// Method lists announced in Access-Control-Allow-Methods.
const (
	DefaultAllowedMethods     = "GET, POST, PUT, PATCH, DELETE, OPTIONS"
	ManageUsersAllowedMethods = "GET, PATCH, DELETE, OPTIONS"
)

const corsAllowedHeaders = "Content-Type, Authorization"

func setCORSHeaders(c *gin.Context, methods string) {
	header := c.Writer.Header()
	header.Set("Access-Control-Allow-Origin", "*")
	header.Set("Access-Control-Allow-Methods", methods)
	header.Set("Access-Control-Allow-Headers", corsAllowedHeaders)
}

// CORSMiddleware sets permissive CORS headers on every response. A preflight
// request for a path without an explicit OPTIONS route is answered with 200.
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		setCORSHeaders(c, DefaultAllowedMethods)
		if c.Request.Method == http.MethodOptions && c.FullPath() == "" {
			c.AbortWithStatus(http.StatusOK)
			return
		}
		c.Next()
	}
}

// RequestIDMiddleware reuses the incoming X-Request-ID or generates one.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(ContextRequestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)
		c.Next()
	}
}

// LoggerMiddleware writes one structured line per request. Server errors are
// logged at error level, client errors at warn.
func LoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		var event *zerolog.Event
		switch {
		case status >= http.StatusInternalServerError:
			event = log.Error()
		case status >= http.StatusBadRequest:
			event = log.Warn()
		default:
			event = log.Info()
		}

		if len(c.Errors) > 0 {
			event = event.Str("errors", c.Errors.String())
		}
		event.
			Str("request_id", c.GetString(ContextRequestIDKey)).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("client_ip", c.ClientIP()).
			Msg("API")
	}
}

// Helper to return JSON error response and abort request
func abortWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"error": message})
}

// abortWithMessage is the {"message": ...} variant used by the user management endpoint.
func abortWithMessage(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"message": message})
}
