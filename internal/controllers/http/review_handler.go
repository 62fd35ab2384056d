package http

import (
	"strings"

	"paddlemarket/internal/services"

	"github.com/gin-gonic/gin"
)

type CreateReviewRequest struct {
	Name      string  `json:"name"`
	Text      string  `json:"text"`
	Rating    int     `json:"rating"`
	ProductID uint64  `json:"productId"`
	UserID    *uint64 `json:"userId"`
}

type UpdateReviewRequest struct {
	Text   *string `json:"text"`
	Rating *int    `json:"rating"`
}

func (h *Handler) GetReviews(c *gin.Context) {
	reviews, err := h.reviews.GetReviews(c.Request.Context())
	if err != nil {
		respondError(c, err, "failed to find reviews")
		return
	}
	respondOK(c, "reviews found successfully", reviews)
}

func (h *Handler) GetReview(c *gin.Context) {
	id, ok := parseID(c, "id", "review")
	if !ok {
		return
	}
	review, err := h.reviews.GetReview(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "failed to find review")
		return
	}
	respondOK(c, "review found successfully", review)
}

func (h *Handler) GetProductReviews(c *gin.Context) {
	id, ok := parseID(c, "id", "product")
	if !ok {
		return
	}
	reviews, err := h.reviews.GetReviewsByProduct(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "failed to find product reviews")
		return
	}
	respondOK(c, "product reviews found successfully", reviews)
}

func (h *Handler) CreateReview(c *gin.Context) {
	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Text = strings.TrimSpace(req.Text)
	if req.Name == "" || req.Text == "" {
		respondBadRequest(c, "review name and text are required")
		return
	}
	if req.ProductID == 0 {
		respondBadRequest(c, "productId is required")
		return
	}

	review, err := h.reviews.CreateReview(c.Request.Context(), services.CreateReviewInput{
		Name:      req.Name,
		Text:      req.Text,
		Rating:    req.Rating,
		ProductID: req.ProductID,
		UserID:    req.UserID,
	})
	if err != nil {
		respondError(c, err, "failed to create review")
		return
	}
	respondCreated(c, "review created successfully", review)
}

func (h *Handler) UpdateReview(c *gin.Context) {
	id, ok := parseID(c, "id", "review")
	if !ok {
		return
	}
	var req UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	review, err := h.reviews.UpdateReview(c.Request.Context(), id, req.Text, req.Rating)
	if err != nil {
		respondError(c, err, "failed to update review")
		return
	}
	respondOK(c, "review updated successfully", review)
}

func (h *Handler) DeleteReview(c *gin.Context) {
	id, ok := parseID(c, "id", "review")
	if !ok {
		return
	}
	if err := h.reviews.DeleteReview(c.Request.Context(), id); err != nil {
		respondError(c, err, "failed to delete review")
		return
	}
	respondNoContent(c)
}
