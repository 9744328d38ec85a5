package http

import (
	"errors"
	"log/slog"
	"net/http"

	"order-fulfillment/internal/auth"
	"order-fulfillment/internal/domain"
	"order-fulfillment/internal/services"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service  *services.OrderService
	verifier *auth.Verifier
}

func NewHandler(s *services.OrderService, v *auth.Verifier) *Handler {
	return &Handler{service: s, verifier: v}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	g := r.Group("/orders", auth.Middleware(h.verifier))
	g.POST("", h.CreateOrder)
	g.GET("", h.ListOwnOrders)
	g.GET("/admin/all", h.ListAllOrders)
	g.GET("/:id", h.GetOrder)
	g.PUT("/:id/pay", h.PayOrder)
	g.PUT("/:id/status", h.UpdateOrderStatus)
}

func (h *Handler) CreateOrder(c *gin.Context) {
	p, ok := auth.PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "authentication required"})
		return
	}

	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	items := make([]services.LineItemRequest, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, services.LineItemRequest{ProductID: it.Product, Quantity: it.Qty})
	}
	addr := domain.Address{
		Street:  req.ShippingAddress.Street,
		City:    req.ShippingAddress.City,
		State:   req.ShippingAddress.State,
		Zip:     req.ShippingAddress.Zip,
		Country: req.ShippingAddress.Country,
	}

	order, err := h.service.Create(c.Request.Context(), p, items, addr, req.PaymentMethod)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "order": order})
}

func (h *Handler) ListOwnOrders(c *gin.Context) {
	p, ok := auth.PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "authentication required"})
		return
	}

	orders, err := h.service.GetOwn(c.Request.Context(), p)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "orders": orders})
}

func (h *Handler) GetOrder(c *gin.Context) {
	p, ok := auth.PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "authentication required"})
		return
	}

	order, err := h.service.GetByID(c.Request.Context(), p, c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "order": order})
}

func (h *Handler) PayOrder(c *gin.Context) {
	p, ok := auth.PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "authentication required"})
		return
	}

	order, err := h.service.Pay(c.Request.Context(), p, c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "order": order})
}

func (h *Handler) ListAllOrders(c *gin.Context) {
	p, ok := auth.PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "authentication required"})
		return
	}

	orders, err := h.service.ListAll(c.Request.Context(), p)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "orders": orders})
}

func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	p, ok := auth.PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "authentication required"})
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	order, err := h.service.UpdateStatus(c.Request.Context(), p, c.Param("id"), domain.OrderStatus(req.Status))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "order": order})
}

// writeError maps the error taxonomy onto HTTP statuses. Anything outside
// the taxonomy is a server fault: logged in full, returned opaque.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrEmptyOrder),
		errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrProductNotFound),
		errors.Is(err, domain.ErrInsufficientStock):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	case errors.Is(err, domain.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"message": err.Error()})
	case errors.Is(err, domain.ErrStockConflict),
		errors.Is(err, domain.ErrIllegalTransition):
		c.JSON(http.StatusConflict, gin.H{"message": err.Error()})
	default:
		slog.Error("request failed", "path", c.FullPath(), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
	}
}
