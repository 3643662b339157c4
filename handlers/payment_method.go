package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tarak510605/restaurant-ordering-system/middleware"
	"github.com/tarak510605/restaurant-ordering-system/services"
)

type PaymentMethodHandler struct {
	Payments *services.PaymentMethodService
}

func NewPaymentMethodHandler(payments *services.PaymentMethodService) *PaymentMethodHandler {
	return &PaymentMethodHandler{Payments: payments}
}

// ListPaymentMethods returns the caller's active methods, default first
func (h *PaymentMethodHandler) ListPaymentMethods(c *gin.Context) {
	identity := middleware.GetIdentity(c)

	methods, err := h.Payments.ListPaymentMethods(identity)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"count": len(methods), "payment_methods": methods})
}

// AddPaymentMethod registers a new method for the caller
func (h *PaymentMethodHandler) AddPaymentMethod(c *gin.Context) {
	identity := middleware.GetIdentity(c)

	var req services.PaymentMethodInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pm, err := h.Payments.AddPaymentMethod(identity, req)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusCreated, gin.H{"message": "Payment method added", "payment_method": pm})
}

// UpdatePaymentMethod patches a method (requires updatePaymentMethod
// permission)
func (h *PaymentMethodHandler) UpdatePaymentMethod(c *gin.Context) {
	identity := middleware.GetIdentity(c)
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payment method id"})
		return
	}

	var req services.PaymentMethodPatch
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pm, svcErr := h.Payments.UpdatePaymentMethod(identity, id, req)
	if svcErr != nil {
		fail(c, svcErr)
		return
	}
	ok(c, http.StatusOK, gin.H{"message": "Payment method updated", "payment_method": pm})
}

// DeletePaymentMethod soft-deletes a method (owner or Admin)
func (h *PaymentMethodHandler) DeletePaymentMethod(c *gin.Context) {
	identity := middleware.GetIdentity(c)
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payment method id"})
		return
	}

	if svcErr := h.Payments.DeletePaymentMethod(identity, id); svcErr != nil {
		fail(c, svcErr)
		return
	}
	ok(c, http.StatusOK, gin.H{"message": "Payment method deleted successfully"})
}
