package resp

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/zeeshan-maqsoood/POS-BACKEND-sub000/pkg/apperr"
)

// Envelope is the uniform response body for every endpoint.
type Envelope struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func OK(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, Envelope{Status: "success", Message: message, Data: data})
}

func Created(c *gin.Context, message string, data any) {
	c.JSON(http.StatusCreated, Envelope{Status: "success", Message: message, Data: data})
}

func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Envelope{Status: "error", Message: message})
}

func Unauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, Envelope{Status: "error", Message: message})
}

func Forbidden(c *gin.Context, message string) {
	c.JSON(http.StatusForbidden, Envelope{Status: "error", Message: message})
}

func NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, Envelope{Status: "error", Message: message})
}

// Error maps a service error onto the envelope with the matching status code.
func Error(c *gin.Context, err error) {
	switch {
	case apperr.IsValidation(err):
		c.JSON(http.StatusBadRequest, Envelope{Status: "error", Message: err.Error()})
	case apperr.IsForbidden(err):
		c.JSON(http.StatusForbidden, Envelope{Status: "error", Message: err.Error()})
	case apperr.IsNotFound(err), errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, Envelope{Status: "error", Message: err.Error()})
	case apperr.IsConflict(err):
		c.JSON(http.StatusConflict, Envelope{Status: "error", Message: err.Error()})
	case apperr.IsInsufficientInventory(err):
		var inv *apperr.InsufficientInventoryError
		errors.As(err, &inv)
		c.JSON(http.StatusConflict, Envelope{
			Status:  "error",
			Message: err.Error(),
			Data:    gin.H{"shortfalls": inv.Shortfalls},
		})
	default:
		c.JSON(http.StatusInternalServerError, Envelope{Status: "error", Message: err.Error()})
	}
}
