package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sureshift/backend/internal/server/http/dto"
)

// StatusHandler manages admin-gated status transitions.
type StatusHandler struct {
	facade StatusFacade
}

// NewStatusHandler constructs StatusHandler.
func NewStatusHandler(facade StatusFacade) *StatusHandler {
	return &StatusHandler{facade: facade}
}

// Update handles POST /status: insert-or-overwrite of the current status
// for an order id. Reached only through the auth middleware.
func (h *StatusHandler) Update(c *gin.Context) {
	var req dto.StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	if err := h.facade.SetStatus(c.Request.Context(), req.OrderID, req.Status); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	c.Status(http.StatusOK)
}
