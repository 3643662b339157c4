package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tarak510605/restaurant-ordering-system/middleware"
	"github.com/tarak510605/restaurant-ordering-system/models"
	"github.com/tarak510605/restaurant-ordering-system/services"
)

type OrderHandler struct {
	Orders *services.OrderService
}

func NewOrderHandler(orders *services.OrderService) *OrderHandler {
	return &OrderHandler{Orders: orders}
}

// PlaceOrder creates a new order for the caller
func (h *OrderHandler) PlaceOrder(c *gin.Context) {
	identity := middleware.GetIdentity(c)

	var req services.PlaceOrderInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.Orders.PlaceOrder(identity, req)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusCreated, gin.H{"message": "Order placed successfully", "order": order})
}

// ListOrders returns the caller's orders (all orders for Admin), with
// an optional ?status= filter
func (h *OrderHandler) ListOrders(c *gin.Context) {
	identity := middleware.GetIdentity(c)

	orders, err := h.Orders.ListOrders(identity, models.OrderStatus(c.Query("status")))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

// GetOrder returns one order's full detail
func (h *OrderHandler) GetOrder(c *gin.Context) {
	identity := middleware.GetIdentity(c)
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
		return
	}

	order, svcErr := h.Orders.GetOrder(identity, id)
	if svcErr != nil {
		fail(c, svcErr)
		return
	}
	ok(c, http.StatusOK, gin.H{"order": order})
}

type CheckoutRequest struct {
	// Zero means "charge my default payment method".
	PaymentMethodID uint `json:"payment_method_id"`
}

// Checkout pays for an order with the given payment method
func (h *OrderHandler) Checkout(c *gin.Context) {
	identity := middleware.GetIdentity(c)
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
		return
	}

	// Body is optional: no body (or no payment_method_id) charges the
	// caller's default method.
	var req CheckoutRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	order, svcErr := h.Orders.Checkout(identity, id, req.PaymentMethodID)
	if svcErr != nil {
		fail(c, svcErr)
		return
	}
	ok(c, http.StatusOK, gin.H{"message": "Order confirmed", "order": order})
}

// CancelOrder cancels an order (owner, or any order for Admin)
func (h *OrderHandler) CancelOrder(c *gin.Context) {
	identity := middleware.GetIdentity(c)
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
		return
	}

	order, svcErr := h.Orders.CancelOrder(identity, id)
	if svcErr != nil {
		fail(c, svcErr)
		return
	}
	ok(c, http.StatusOK, gin.H{"message": "Order cancelled successfully", "order": order})
}
