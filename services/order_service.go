package services

import (
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/tarak510605/restaurant-ordering-system/access"
	"github.com/tarak510605/restaurant-ordering-system/errs"
	"github.com/tarak510605/restaurant-ordering-system/models"
	"github.com/tarak510605/restaurant-ordering-system/repository"
	"github.com/tarak510605/restaurant-ordering-system/statemachine"
)

// Pricing constants. Fees are in minor currency units.
const (
	TaxRate     = 0.05
	DeliveryFee = 50.0
	DeliveryETA = 45 * time.Minute
)

type OrderService struct {
	Orders      *repository.OrderRepository
	Restaurants *repository.RestaurantRepository
	Payments    *repository.PaymentMethodRepository
}

func NewOrderService(
	orders *repository.OrderRepository,
	restaurants *repository.RestaurantRepository,
	payments *repository.PaymentMethodRepository,
) *OrderService {
	return &OrderService{Orders: orders, Restaurants: restaurants, Payments: payments}
}

// LineRequest is one requested order line. Quantity below 1 is coerced
// to 1 rather than rejected.
type LineRequest struct {
	MenuItemID uint `json:"menu_item_id" binding:"required"`
	Quantity   int  `json:"quantity"`
}

// PlaceOrderInput carries everything needed to create an order.
type PlaceOrderInput struct {
	RestaurantID        uint          `json:"restaurant_id" binding:"required"`
	Items               []LineRequest `json:"items" binding:"required"`
	DeliveryAddress     string        `json:"delivery_address" binding:"required"`
	SpecialInstructions string        `json:"special_instructions"`
}

// PlaceOrder creates a new Pending order for the identity. Checks run
// in order auth, input, existence, country, line validity; nothing is
// written before the last check passes.
func (s *OrderService) PlaceOrder(identity models.Identity, in PlaceOrderInput) (*models.Order, error) {
	if err := access.RequirePermission(identity, access.ActionCreateOrder); err != nil {
		return nil, err
	}

	if len(in.Items) == 0 {
		return nil, errs.InvalidArgument("order must have at least one item")
	}
	if strings.TrimSpace(in.DeliveryAddress) == "" {
		return nil, errs.InvalidArgument("delivery address is required")
	}

	restaurant, err := s.Restaurants.FindByID(in.RestaurantID)
	if err != nil {
		return nil, errs.Internal("failed to load restaurant", err)
	}
	if restaurant == nil {
		return nil, errs.NotFound("restaurant")
	}
	if err := access.RequireCountryAccess(identity, restaurant.CountryID); err != nil {
		return nil, err
	}

	var (
		items    []models.OrderItem
		subtotal float64
	)
	for _, line := range in.Items {
		menuItem, err := s.Restaurants.FindMenuItem(line.MenuItemID)
		if err != nil {
			return nil, errs.Internal("failed to load menu item", err)
		}
		if menuItem == nil {
			return nil, errs.NotFound("menu item")
		}
		if menuItem.RestaurantID != in.RestaurantID {
			return nil, errs.InvalidArgumentf("menu item '%s' does not belong to this restaurant", menuItem.Name)
		}
		if !menuItem.IsAvailable {
			return nil, errs.InvalidState("menu item '" + menuItem.Name + "' is not available")
		}

		quantity := line.Quantity
		if quantity < 1 {
			quantity = 1
		}
		lineSubtotal := menuItem.Price * float64(quantity)
		subtotal += lineSubtotal

		items = append(items, models.OrderItem{
			MenuItemID: menuItem.ID,
			Name:       menuItem.Name,
			Price:      menuItem.Price,
			Quantity:   quantity,
			Subtotal:   lineSubtotal,
		})
	}

	tax := subtotal * TaxRate
	order := &models.Order{
		OrderNumber:         newOrderNumber(),
		UserID:              identity.UserID,
		RestaurantID:        in.RestaurantID,
		Items:               items,
		Subtotal:            subtotal,
		Tax:                 tax,
		DeliveryFee:         DeliveryFee,
		Total:               subtotal + tax + DeliveryFee,
		Status:              models.StatusPending,
		PaymentStatus:       models.PaymentPending,
		DeliveryAddress:     in.DeliveryAddress,
		SpecialInstructions: in.SpecialInstructions,
	}
	if err := s.Orders.Create(order); err != nil {
		return nil, errs.Internal("failed to place order", err)
	}
	return order, nil
}

// Checkout pays for an order with one of the owner's payment methods;
// paymentMethodID zero selects the owner's default. Only the order's
// owner may check out; there is no Admin override here, unlike
// CancelOrder.
func (s *OrderService) Checkout(identity models.Identity, orderID, paymentMethodID uint) (*models.Order, error) {
	if err := access.RequirePermission(identity, access.ActionCheckout); err != nil {
		return nil, err
	}

	order, err := s.Orders.FindByID(orderID)
	if err != nil {
		return nil, errs.Internal("failed to load order", err)
	}
	if order == nil {
		return nil, errs.NotFound("order")
	}
	if order.UserID != identity.UserID {
		return nil, errs.ForbiddenOwnership("you can only checkout your own orders")
	}
	if err := s.requireOrderCountryAccess(identity, order); err != nil {
		return nil, err
	}

	if order.Status == models.StatusCancelled {
		return nil, errs.InvalidState("cannot checkout a cancelled order")
	}
	if order.PaymentStatus == models.PaymentPaid {
		return nil, errs.InvalidState("order is already paid")
	}

	paymentMethod, err := s.resolvePaymentMethod(order, paymentMethodID)
	if err != nil {
		return nil, err
	}

	eta := time.Now().Add(DeliveryETA)
	affected, err := s.Orders.TransitionGuarded(order.ID, order.Status, order.PaymentStatus, map[string]any{
		"payment_method_id":       paymentMethod.ID,
		"payment_status":          models.PaymentPaid,
		"status":                  models.StatusConfirmed,
		"estimated_delivery_time": eta,
	})
	if err != nil {
		return nil, errs.Internal("failed to checkout order", err)
	}
	if affected == 0 {
		// A concurrent transition won: re-reading would show Paid or
		// Cancelled, both of which reject a second checkout.
		return nil, errs.InvalidState("order is already paid")
	}
	return s.reload(order.ID)
}

// CancelOrder cancels an order. The owner may cancel their own orders;
// Admin may cancel anyone's. Paid orders are marked Refunded.
func (s *OrderService) CancelOrder(identity models.Identity, orderID uint) (*models.Order, error) {
	if err := access.RequirePermission(identity, access.ActionCancelOrder); err != nil {
		return nil, err
	}

	order, err := s.Orders.FindByID(orderID)
	if err != nil {
		return nil, errs.Internal("failed to load order", err)
	}
	if order == nil {
		return nil, errs.NotFound("order")
	}
	if !identity.IsAdmin() && order.UserID != identity.UserID {
		return nil, errs.ForbiddenOwnership("you can only cancel your own orders")
	}
	if err := s.requireOrderCountryAccess(identity, order); err != nil {
		return nil, err
	}

	if order.Status == models.StatusCancelled {
		return nil, errs.InvalidState("order is already cancelled")
	}
	if !statemachine.CanCancel(order.Status) {
		return nil, errs.InvalidState("cannot cancel a " + strings.ToLower(string(order.Status)) + " order")
	}

	updates := map[string]any{"status": models.StatusCancelled}
	if order.PaymentStatus == models.PaymentPaid {
		// Status annotation only; no refund call leaves this core.
		updates["payment_status"] = models.PaymentRefunded
	}
	affected, err := s.Orders.TransitionGuarded(order.ID, order.Status, order.PaymentStatus, updates)
	if err != nil {
		return nil, errs.Internal("failed to cancel order", err)
	}
	if affected == 0 {
		return nil, errs.InvalidState("order can no longer be cancelled")
	}
	return s.reload(order.ID)
}

// ListOrders returns the orders visible to the identity: everything for
// Admin, otherwise the identity's own orders further restricted to
// restaurants in their home country. The country filter is applied even
// though ownership normally implies it, so a later country change on
// the user cannot leak foreign orders. An empty status means no status
// filter.
func (s *OrderService) ListOrders(identity models.Identity, status models.OrderStatus) ([]models.Order, error) {
	if err := access.RequirePermission(identity, access.ActionViewRestaurants); err != nil {
		return nil, err
	}
	filter := repository.OrderListFilter{Status: status}
	if !identity.IsAdmin() {
		filter.UserID = identity.UserID
	}
	orders, err := s.Orders.List(filter)
	if err != nil {
		return nil, errs.Internal("failed to list orders", err)
	}
	if identity.IsAdmin() {
		return orders, nil
	}
	visible := make([]models.Order, 0, len(orders))
	for _, o := range orders {
		if o.Restaurant.CountryID == identity.CountryID {
			visible = append(visible, o)
		}
	}
	return visible, nil
}

// GetOrder returns one order the identity may see: its owner, or Admin.
func (s *OrderService) GetOrder(identity models.Identity, orderID uint) (*models.Order, error) {
	order, err := s.Orders.FindByID(orderID)
	if err != nil {
		return nil, errs.Internal("failed to load order", err)
	}
	if order == nil {
		return nil, errs.NotFound("order")
	}
	if !identity.IsAdmin() && order.UserID != identity.UserID {
		return nil, errs.ForbiddenOwnership("this order does not belong to you")
	}
	if err := s.requireOrderCountryAccess(identity, order); err != nil {
		return nil, err
	}
	return order, nil
}

// resolvePaymentMethod picks the method to charge: the explicitly
// requested one (which must exist and belong to the order's owner), or
// the owner's default when none was specified.
func (s *OrderService) resolvePaymentMethod(order *models.Order, paymentMethodID uint) (*models.PaymentMethod, error) {
	if paymentMethodID == 0 {
		methods, err := s.Payments.ListActiveByUser(order.UserID)
		if err != nil {
			return nil, errs.Internal("failed to list payment methods", err)
		}
		pm := SelectDefaultForCheckout(methods)
		if pm == nil {
			return nil, errs.InvalidArgument("no payment method on file; add a payment method first")
		}
		return pm, nil
	}

	pm, err := s.Payments.FindByID(paymentMethodID)
	if err != nil {
		return nil, errs.Internal("failed to load payment method", err)
	}
	if pm == nil {
		return nil, errs.NotFound("payment method")
	}
	if pm.UserID != order.UserID {
		return nil, errs.ForbiddenOwnership("payment method must belong to the order owner")
	}
	return pm, nil
}

// requireOrderCountryAccess re-validates country scoping against the
// order's restaurant.
func (s *OrderService) requireOrderCountryAccess(identity models.Identity, order *models.Order) error {
	restaurant, err := s.Restaurants.FindByID(order.RestaurantID)
	if err != nil {
		return errs.Internal("failed to load restaurant", err)
	}
	if restaurant == nil {
		// Orders are never deleted, restaurants may be; nothing to scope on.
		return nil
	}
	return access.RequireCountryAccess(identity, restaurant.CountryID)
}

func (s *OrderService) reload(orderID uint) (*models.Order, error) {
	order, err := s.Orders.FindByID(orderID)
	if err != nil {
		return nil, errs.Internal("failed to reload order", err)
	}
	return order, nil
}

const base36Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// newOrderNumber generates ORD-<base36 timestamp>-<4 random base36
// chars>, uppercased. Uniqueness is probabilistic; the column's unique
// index backstops the negligible collision chance.
func newOrderNumber() string {
	ts := strings.ToUpper(strconv.FormatInt(time.Now().UnixMilli(), 36))
	suffix := make([]byte, 4)
	for i := range suffix {
		suffix[i] = base36Alphabet[rand.Intn(len(base36Alphabet))]
	}
	return "ORD-" + ts + "-" + string(suffix)
}
