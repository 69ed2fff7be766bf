package handler

import (
	"errors"
	"net/http"
	"strconv"

	"rently/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// respondError maps domain errors onto the API's status conventions:
// unknown records are 404, rejected input is 400, everything else is a
// 500 carrying the underlying message.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, service.ErrInvalidAmount),
		errors.Is(err, service.ErrInvalidStatus),
		errors.Is(err, service.ErrIllegalTransition),
		errors.Is(err, service.ErrEmptyOrder):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func paramUint(c *gin.Context, name string) uint {
	v, _ := strconv.ParseUint(c.Param(name), 10, 64)
	return uint(v)
}
