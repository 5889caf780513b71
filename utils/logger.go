package utils

import (
	"net/http"
	"time"

	"ormcheatsheet/pkg/logger"

	"github.com/gin-gonic/gin"
)

// LoggerMiddleware logs each request at a level chosen by its status class.
func LoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		elapsed := time.Since(start)
		status := c.Writer.Status()

		switch {
		case status >= 500:
			logger.Errorf("HTTP %s %s - Status: %d, Duration: %v, IP: %s",
				c.Request.Method, c.Request.URL.Path, status, elapsed, c.ClientIP())
		case status >= 400:
			logger.Warnf("HTTP %s %s - Status: %d, Duration: %v, IP: %s",
				c.Request.Method, c.Request.URL.Path, status, elapsed, c.ClientIP())
		default:
			logger.Infof("HTTP %s %s - Status: %d, Duration: %v, IP: %s",
				c.Request.Method, c.Request.URL.Path, status, elapsed, c.ClientIP())
		}
	}
}

// JSONResponse sends a JSON response with the specified HTTP status code.
func JSONResponse(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// ErrorResponse logs and sends a standardized error response with HTTP 400 status.
func ErrorResponse(c *gin.Context, err error) {
	logger.Warnf("API Error: %v", err)
	c.JSON(http.StatusBadRequest, gin.H{
		"error": err.Error(),
	})
}

// NotFoundResponse sends a standardized error response with HTTP 404 status.
func NotFoundResponse(c *gin.Context, err error) {
	logger.Warnf("API Not Found: %v", err)
	c.JSON(http.StatusNotFound, gin.H{
		"error": err.Error(),
	})
}

// InternalErrorResponse logs and sends a standardized error response with HTTP 500 status.
func InternalErrorResponse(c *gin.Context, err error) {
	logger.Errorf("API Internal Error: %v", err)
	c.JSON(http.StatusInternalServerError, gin.H{
		"error": err.Error(),
	})
}
