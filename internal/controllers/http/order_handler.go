package http

import (
	"paddlemarket/internal/domain"

	"github.com/gin-gonic/gin"
)

func (h *Handler) GetOrders(c *gin.Context) {
	orders, err := h.orders.GetOrders(c.Request.Context())
	if err != nil {
		respondError(c, err, "failed to find orders")
		return
	}
	respondOK(c, "orders found successfully", orders)
}

func (h *Handler) GetOrder(c *gin.Context) {
	id, ok := parseID(c, "id", "order")
	if !ok {
		return
	}
	order, err := h.orders.GetOrder(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "failed to find order")
		return
	}
	respondOK(c, "order found successfully", order)
}

func (h *Handler) GetOrdersByUser(c *gin.Context) {
	userID, ok := parseID(c, "userId", "user")
	if !ok {
		return
	}
	orders, err := h.orders.GetOrdersByUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "failed to find user orders")
		return
	}
	respondOK(c, "user orders found successfully", orders)
}

func (h *Handler) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}
	req.Sanitize()
	if err := req.Validate(); err != nil {
		respondError(c, err, "failed to create order")
		return
	}

	order, err := h.orders.PlaceOrder(c.Request.Context(), req.ToInput())
	if err != nil {
		respondError(c, err, "failed to create order")
		return
	}
	respondCreated(c, "order created successfully", order)
}

func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	id, ok := parseID(c, "id", "order")
	if !ok {
		return
	}
	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}
	req.Sanitize()
	if err := req.Validate(); err != nil {
		respondError(c, err, "failed to update order status")
		return
	}

	order, err := h.orders.UpdateStatus(c.Request.Context(), id, domain.OrderStatus(req.Status))
	if err != nil {
		respondError(c, err, "failed to update order status")
		return
	}
	respondOK(c, "order status updated successfully", order)
}

func (h *Handler) DeleteOrder(c *gin.Context) {
	id, ok := parseID(c, "id", "order")
	if !ok {
		return
	}
	if err := h.orders.DeleteOrder(c.Request.Context(), id); err != nil {
		respondError(c, err, "failed to delete order")
		return
	}
	respondNoContent(c)
}
