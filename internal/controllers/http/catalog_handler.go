package http

import (
	"strings"

	"paddlemarket/internal/domain"

	"github.com/gin-gonic/gin"
)

type TypeRequest struct {
	Name    string `json:"name"`
	MainUse string `json:"mainUse"`
}

type UpdateTypeRequest struct {
	Name    *string `json:"name"`
	MainUse *string `json:"mainUse"`
}

func (h *Handler) getTypes(kind domain.TypeKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		types, err := h.catalog.GetTypes(c.Request.Context(), kind)
		if err != nil {
			respondError(c, err, "failed to find types")
			return
		}
		respondOK(c, "types found successfully", types)
	}
}

func (h *Handler) getType(kind domain.TypeKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id", "type")
		if !ok {
			return
		}
		t, err := h.catalog.GetType(c.Request.Context(), kind, id)
		if err != nil {
			respondError(c, err, "failed to find type")
			return
		}
		respondOK(c, "type found successfully", t)
	}
}

func (h *Handler) getProductsByType(kind domain.TypeKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id", "type")
		if !ok {
			return
		}
		products, err := h.products.GetProductsByType(c.Request.Context(), kind, id)
		if err != nil {
			respondError(c, err, "failed to find products by type")
			return
		}
		respondOK(c, "products found successfully", products)
	}
}

func (h *Handler) createType(kind domain.TypeKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req TypeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBadRequest(c, "invalid request body")
			return
		}
		req.Name = strings.TrimSpace(req.Name)
		if req.Name == "" {
			respondBadRequest(c, "type name is required")
			return
		}

		t, err := h.catalog.CreateType(c.Request.Context(), kind, req.Name, strings.TrimSpace(req.MainUse))
		if err != nil {
			respondError(c, err, "failed to create type")
			return
		}
		respondCreated(c, "type created successfully", t)
	}
}

func (h *Handler) updateType(kind domain.TypeKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id", "type")
		if !ok {
			return
		}
		var req UpdateTypeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBadRequest(c, "invalid request body")
			return
		}
		if req.Name != nil {
			trimmed := strings.TrimSpace(*req.Name)
			if trimmed == "" {
				respondBadRequest(c, "type name cannot be empty")
				return
			}
			req.Name = &trimmed
		}

		t, err := h.catalog.UpdateType(c.Request.Context(), kind, id, req.Name, req.MainUse)
		if err != nil {
			respondError(c, err, "failed to update type")
			return
		}
		respondOK(c, "type updated successfully", t)
	}
}

func (h *Handler) deleteType(kind domain.TypeKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id", "type")
		if !ok {
			return
		}
		if err := h.catalog.DeleteType(c.Request.Context(), kind, id); err != nil {
			respondError(c, err, "failed to delete type")
			return
		}
		respondNoContent(c)
	}
}
