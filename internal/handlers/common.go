package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the uniform failure body. Success is always false; the
// field is kept explicit so clients can branch on one flag for every
// endpoint.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error" example:"question not found"`
}

func failResponse(message string) ErrorResponse {
	return ErrorResponse{Success: false, Error: message}
}

// storeError answers a store failure. The underlying error is logged but
// never sent to the client.
func storeError(c *gin.Context, err error) {
	log.Printf("%s %s: store error: %v", c.Request.Method, c.Request.URL.Path, err)
	c.JSON(http.StatusInternalServerError, failResponse("database error"))
}

func invalidBody(c *gin.Context) {
	c.JSON(http.StatusBadRequest, failResponse("invalid request body"))
}
