package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tarak510605/restaurant-ordering-system/statemachine"
)

// GetStateMachineInfo returns the full order state machine for
// informational purposes (docs, Postman collections).
func GetStateMachineInfo(c *gin.Context) {
	var info []gin.H
	for _, t := range statemachine.GetAllTransitions() {
		info = append(info, gin.H{"from": t.From, "to": t.To})
	}
	c.JSON(http.StatusOK, gin.H{
		"state_machine":   info,
		"terminal_states": []string{"Delivered", "Cancelled"},
		"description":     "Order Lifecycle State Machine",
	})
}
