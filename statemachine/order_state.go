package statemachine

import (
	"github.com/tarak510605/restaurant-ordering-system/models"
)

// Transition defines a valid order state change
type Transition struct {
	From models.OrderStatus
	To   models.OrderStatus
}

// validTransitions is the authoritative state machine definition. The
// happy path is forward-only; Cancelled is reachable from every
// non-terminal state.
var validTransitions = []Transition{
	{From: models.StatusPending, To: models.StatusConfirmed},
	{From: models.StatusConfirmed, To: models.StatusPreparing},
	{From: models.StatusPreparing, To: models.StatusReady},
	{From: models.StatusReady, To: models.StatusDelivered},
	{From: models.StatusPending, To: models.StatusCancelled},
	{From: models.StatusConfirmed, To: models.StatusCancelled},
	{From: models.StatusPreparing, To: models.StatusCancelled},
	{From: models.StatusReady, To: models.StatusCancelled},
}

// paymentTransitions covers the payment side of the lifecycle. Failed
// is produced by external payment capture, not by any operation here,
// but the table keeps the enum closed.
var paymentTransitions = []struct {
	From models.PaymentStatus
	To   models.PaymentStatus
}{
	{From: models.PaymentPending, To: models.PaymentPaid},
	{From: models.PaymentPending, To: models.PaymentFailed},
	{From: models.PaymentPaid, To: models.PaymentRefunded},
}

type transitionKey struct {
	From models.OrderStatus
	To   models.OrderStatus
}

// Build a lookup map for O(1) validation
var transitionMap = func() map[transitionKey]bool {
	m := make(map[transitionKey]bool)
	for _, t := range validTransitions {
		m[transitionKey{t.From, t.To}] = true
	}
	return m
}()

// CanTransition reports whether an order may move from one status to
// another.
func CanTransition(from, to models.OrderStatus) bool {
	return transitionMap[transitionKey{From: from, To: to}]
}

// CanTransitionPayment reports whether a payment status change is valid.
func CanTransitionPayment(from, to models.PaymentStatus) bool {
	for _, t := range paymentTransitions {
		if t.From == from && t.To == to {
			return true
		}
	}
	return false
}

// ValidTransitionsFrom returns all valid next states from a given state
func ValidTransitionsFrom(status models.OrderStatus) []models.OrderStatus {
	var nexts []models.OrderStatus
	seen := map[models.OrderStatus]bool{}
	for _, t := range validTransitions {
		if t.From == status && !seen[t.To] {
			nexts = append(nexts, t.To)
			seen[t.To] = true
		}
	}
	return nexts
}

// IsTerminal reports whether no further transitions leave the status.
func IsTerminal(status models.OrderStatus) bool {
	return len(ValidTransitionsFrom(status)) == 0
}

// CanCancel reports whether an order in the given status may still be
// cancelled. Delivered and Cancelled orders cannot.
func CanCancel(status models.OrderStatus) bool {
	return CanTransition(status, models.StatusCancelled)
}

// GetAllTransitions returns the full state machine for documentation
func GetAllTransitions() []Transition {
	return validTransitions
}
