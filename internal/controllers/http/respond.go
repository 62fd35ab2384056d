package http

import (
	"errors"
	"log"
	"net/http"

	"paddlemarket/internal/domain"

	"github.com/gin-gonic/gin"
)

// Every response uses the {status, message, data} envelope.

func respondOK(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, gin.H{"status": http.StatusOK, "message": message, "data": data})
}

func respondCreated(c *gin.Context, message string, data any) {
	c.JSON(http.StatusCreated, gin.H{"status": http.StatusCreated, "message": message, "data": data})
}

func respondNoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"status": http.StatusBadRequest, "message": message})
}

// respondError maps the domain error taxonomy onto HTTP status codes.
// Anything outside the taxonomy becomes a 500 with a generic message; the
// original error is logged, never exposed.
func respondError(c *gin.Context, err error, fallback string) {
	var (
		notFound   *domain.NotFoundError
		conflict   *domain.ConflictError
		validation *domain.ValidationError
	)
	switch {
	case errors.As(err, &validation):
		respondBadRequest(c, validation.Message)
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, gin.H{"status": http.StatusNotFound, "message": notFound.Error()})
	case errors.As(err, &conflict):
		c.JSON(http.StatusConflict, gin.H{"status": http.StatusConflict, "message": conflict.Message})
	default:
		log.Printf("%s: %v", fallback, err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": http.StatusInternalServerError, "message": fallback})
	}
}
