package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Every API response is an envelope: {"success": bool} plus one of data,
// error or message.

func SuccessResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    data,
	})
}

// CreatedResponse answers 201 with the new resource and an optional note
// for the client.
func CreatedResponse(c *gin.Context, data interface{}, message string) {
	body := gin.H{
		"success": true,
		"data":    data,
	}
	if message != "" {
		body["message"] = message
	}
	c.JSON(http.StatusCreated, body)
}

func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error":   message,
	})
}

func MessageResponse(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": message,
	})
}
