package responses

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// ValidationErrorResponse carries one message per offending field.
type ValidationErrorResponse struct {
	Detail map[string]string `json:"detail"`
}

// SendError sends a standardized error response and aborts the request.
func SendError(c *gin.Context, statusCode int, detail string) {
	c.AbortWithStatusJSON(statusCode, ErrorResponse{Detail: detail})
}

// SendValidationError rejects a request whose payload failed schema validation,
// before anything touches the database.
func SendValidationError(c *gin.Context, fields map[string]string) {
	c.AbortWithStatusJSON(http.StatusUnprocessableEntity, ValidationErrorResponse{Detail: fields})
}

// Conflict sends a 409 Conflict error response.
func Conflict(c *gin.Context, detail string) {
	SendError(c, http.StatusConflict, detail)
}

// NotFound sends a 404 Not Found error response.
func NotFound(c *gin.Context, detail string) {
	SendError(c, http.StatusNotFound, detail)
}

// InternalServerError sends a 500 Internal Server Error response.
func InternalServerError(c *gin.Context, detail string) {
	if detail == "" {
		detail = "Ocorreu um erro inesperado no servidor"
	}
	SendError(c, http.StatusInternalServerError, detail)
}
