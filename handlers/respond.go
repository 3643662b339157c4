package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/tarak510605/restaurant-ordering-system/errs"
)

// fail maps a service error onto its HTTP status and a uniform error
// body.
func fail(c *gin.Context, err error) {
	c.JSON(errs.HTTPStatus(err), gin.H{"success": false, "error": err.Error()})
}

// ok writes a success envelope.
func ok(c *gin.Context, status int, data gin.H) {
	body := gin.H{"success": true}
	for k, v := range data {
		body[k] = v
	}
	c.JSON(status, body)
}
