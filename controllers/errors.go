package controllers

import (
	"errors"
	"net/http"

	"sufra/client"

	"github.com/gin-gonic/gin"
)

// upstreamError translates a client error into the user facing
// notification: 404 means the range simply has no data, 400 means the
// request itself was bad, anything else gets the generic message.
func upstreamError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, client.ErrNoData):
		c.JSON(http.StatusNotFound, gin.H{
			"status":     false,
			"message":    "لا توجد بيانات في الفترة المحددة",
			"error_code": http.StatusNotFound,
		})
	case errors.Is(err, client.ErrBadRequest):
		c.JSON(http.StatusBadRequest, gin.H{
			"status":     false,
			"message":    "طلب غير صالح",
			"error_code": http.StatusBadRequest,
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":     false,
			"message":    "حدث خطأ، حاول مرة أخرى",
			"error_code": http.StatusInternalServerError,
		})
	}
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"status":     false,
		"message":    message,
		"error_code": http.StatusBadRequest,
	})
}

func unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, gin.H{
		"status":  false,
		"message": "unauthorized request",
	})
}
