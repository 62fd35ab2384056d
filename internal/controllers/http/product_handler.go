package http

import (
	"strings"

	"paddlemarket/internal/domain"
	"paddlemarket/internal/services"

	"github.com/gin-gonic/gin"
)

type CreateProductRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	Category    string  `json:"category"`
	TypeID      *uint64 `json:"typeId"`
	SellerID    *uint64 `json:"sellerId"`
	SellerName  string  `json:"sellerName"`
}

func (r *CreateProductRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	r.Category = strings.ToLower(strings.TrimSpace(r.Category))
	if r.Name == "" {
		return domain.Invalidf("product name is required")
	}
	if r.Price <= 0 {
		return domain.Invalidf("price must be a number greater than 0")
	}
	if r.Stock < 0 {
		return domain.Invalidf("stock must be a non-negative number")
	}
	if !domain.ValidProductCategory(domain.ProductCategory(r.Category)) {
		return domain.Invalidf("invalid category, must be one of: kayak, boat, sup, accessory")
	}
	return nil
}

type UpdateProductRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Image       *string  `json:"image"`
	Price       *float64 `json:"price"`
	Stock       *int     `json:"stock"`
	Approved    *bool    `json:"approved"`
	Category    *string  `json:"category"`
	TypeID      *uint64  `json:"typeId"`
}

func (r *UpdateProductRequest) Validate() error {
	if r.Name != nil && strings.TrimSpace(*r.Name) == "" {
		return domain.Invalidf("product name cannot be empty")
	}
	if r.Price != nil && *r.Price <= 0 {
		return domain.Invalidf("price must be a number greater than 0")
	}
	if r.Stock != nil && *r.Stock < 0 {
		return domain.Invalidf("stock must be a non-negative number")
	}
	if r.Category != nil && !domain.ValidProductCategory(domain.ProductCategory(strings.ToLower(*r.Category))) {
		return domain.Invalidf("invalid category, must be one of: kayak, boat, sup, accessory")
	}
	return nil
}

func (h *Handler) GetProducts(c *gin.Context) {
	products, err := h.products.GetProducts(c.Request.Context())
	if err != nil {
		respondError(c, err, "failed to find products")
		return
	}
	respondOK(c, "products found successfully", products)
}

func (h *Handler) GetProduct(c *gin.Context) {
	id, ok := parseID(c, "id", "product")
	if !ok {
		return
	}
	product, err := h.products.GetProduct(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "failed to find product")
		return
	}
	respondOK(c, "product found successfully", product)
}

func (h *Handler) CreateProduct(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		respondError(c, err, "failed to create product")
		return
	}

	product, err := h.products.CreateProduct(c.Request.Context(), services.CreateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Image:       req.Image,
		Price:       req.Price,
		Stock:       req.Stock,
		Category:    domain.ProductCategory(req.Category),
		TypeID:      req.TypeID,
		SellerID:    req.SellerID,
		SellerName:  strings.TrimSpace(req.SellerName),
	})
	if err != nil {
		respondError(c, err, "failed to create product")
		return
	}
	respondCreated(c, "product created successfully", product)
}

func (h *Handler) UpdateProduct(c *gin.Context) {
	id, ok := parseID(c, "id", "product")
	if !ok {
		return
	}
	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		respondError(c, err, "failed to update product")
		return
	}

	in := services.UpdateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Image:       req.Image,
		Price:       req.Price,
		Stock:       req.Stock,
		Approved:    req.Approved,
		TypeID:      req.TypeID,
	}
	if req.Category != nil {
		category := domain.ProductCategory(strings.ToLower(*req.Category))
		in.Category = &category
	}

	product, err := h.products.UpdateProduct(c.Request.Context(), id, in)
	if err != nil {
		respondError(c, err, "failed to update product")
		return
	}
	respondOK(c, "product updated successfully", product)
}

func (h *Handler) DeleteProduct(c *gin.Context) {
	id, ok := parseID(c, "id", "product")
	if !ok {
		return
	}
	if err := h.products.DeleteProduct(c.Request.Context(), id); err != nil {
		respondError(c, err, "failed to delete product")
		return
	}
	respondNoContent(c)
}
