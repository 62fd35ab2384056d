package http

import (
	"strconv"

	"paddlemarket/internal/domain"
	"paddlemarket/internal/services"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	orders    *services.OrderService
	products  *services.ProductService
	catalog   *services.CatalogService
	users     *services.UserService
	locations *services.LocationService
	reviews   *services.ReviewService
}

func NewHandler(
	orders *services.OrderService,
	products *services.ProductService,
	catalog *services.CatalogService,
	users *services.UserService,
	locations *services.LocationService,
	reviews *services.ReviewService,
) *Handler {
	return &Handler{
		orders:    orders,
		products:  products,
		catalog:   catalog,
		users:     users,
		locations: locations,
		reviews:   reviews,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/orders", h.GetOrders)
	r.GET("/orders/:id", h.GetOrder)
	r.GET("/orders/user/:userId", h.GetOrdersByUser)
	r.POST("/orders", h.CreateOrder)
	r.PATCH("/orders/:id/status", h.UpdateOrderStatus)
	r.DELETE("/orders/:id", h.DeleteOrder)

	r.GET("/products", h.GetProducts)
	r.GET("/products/:id", h.GetProduct)
	r.GET("/products/:id/reviews", h.GetProductReviews)
	r.POST("/products", h.CreateProduct)
	r.PUT("/products/:id", h.UpdateProduct)
	r.DELETE("/products/:id", h.DeleteProduct)

	// One route group per type kind; they share the handlers.
	for path, kind := range map[string]domain.TypeKind{
		"/article-types": domain.KindArticle,
		"/kayak-types":   domain.KindKayak,
		"/boat-types":    domain.KindBoat,
		"/sup-types":     domain.KindSUP,
	} {
		g := r.Group(path)
		g.GET("", h.getTypes(kind))
		g.GET("/:id", h.getType(kind))
		g.GET("/:id/products", h.getProductsByType(kind))
		g.POST("", h.createType(kind))
		g.PUT("/:id", h.updateType(kind))
		g.DELETE("/:id", h.deleteType(kind))
	}

	r.GET("/users", h.GetUsers)
	r.GET("/users/:id", h.GetUser)
	r.POST("/users", h.CreateUser)
	r.PUT("/users/:id", h.UpdateUser)
	r.DELETE("/users/:id", h.DeleteUser)

	r.GET("/provinces", h.GetProvinces)
	r.GET("/provinces/:id", h.GetProvince)
	r.POST("/provinces", h.CreateProvince)
	r.PUT("/provinces/:id", h.UpdateProvince)
	r.DELETE("/provinces/:id", h.DeleteProvince)

	r.GET("/localities", h.GetLocalities)
	r.GET("/localities/:id", h.GetLocality)
	r.GET("/localities/:id/pickup-points", h.GetPickupPointsByLocality)
	r.POST("/localities", h.CreateLocality)
	r.PUT("/localities/:id", h.UpdateLocality)
	r.DELETE("/localities/:id", h.DeleteLocality)

	r.GET("/pickup-points", h.GetPickupPoints)
	r.GET("/pickup-points/active", h.GetActivePickupPoints)
	r.GET("/pickup-points/:id", h.GetPickupPoint)
	r.POST("/pickup-points", h.CreatePickupPoint)
	r.PUT("/pickup-points/:id", h.UpdatePickupPoint)
	r.DELETE("/pickup-points/:id", h.DeletePickupPoint)

	r.GET("/reviews", h.GetReviews)
	r.GET("/reviews/:id", h.GetReview)
	r.POST("/reviews", h.CreateReview)
	r.PUT("/reviews/:id", h.UpdateReview)
	r.DELETE("/reviews/:id", h.DeleteReview)
}

// parseID rejects zero and non-numeric path ids before they reach a service.
func parseID(c *gin.Context, param, entity string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 64)
	if err != nil || id == 0 {
		respondBadRequest(c, "invalid "+entity+" id")
		return 0, false
	}
	return id, true
}
