package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/sureshift/backend/internal/domain/errors"
	"github.com/sureshift/backend/internal/domain/model"
	"github.com/sureshift/backend/internal/server/http/dto"
	"github.com/sureshift/backend/internal/usecase"
)

// OrderHandler manages pickup intake and order read views.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Create handles POST /user: validates the intake payload, persists the
// order, and responds once the row is committed. Notification delivery
// happens in the background and never affects the response.
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	order, err := h.facade.SubmitOrder(c.Request.Context(), usecase.OrderInput{
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		PickupDate:    req.PickupDate,
		PickupTime:    req.PickupTime,
		PickupAddress: req.PickupAddress,
		DropAddress:   req.DropAddress,
		Purpose:       req.Purpose,
	})
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	c.JSON(http.StatusCreated, dto.OrderCreatedResponse{OrderID: order.OrderID})
}

// GetByID handles GET /users/:id.
func (h *OrderHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	order, err := h.facade.OrderByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusBadRequest)
		return
	}

	c.JSON(http.StatusOK, toOrderRecordResponse(order))
}

// List handles GET /users.
func (h *OrderHandler) List(c *gin.Context) {
	views, err := h.facade.Orders(c.Request.Context())
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	if len(views) == 0 {
		c.Status(http.StatusNotFound)
		return
	}

	response := make([]dto.OrderViewResponse, 0, len(views))
	for _, v := range views {
		response = append(response, toOrderViewResponse(v))
	}

	c.JSON(http.StatusOK, response)
}

// Lookup handles POST /completeInfo: the joined record for one order id,
// returned as a sequence of zero or one element.
func (h *OrderHandler) Lookup(c *gin.Context) {
	var req dto.OrderLookupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	view, err := h.facade.OrderView(c.Request.Context(), req.OrderID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusBadRequest)
		return
	}

	c.JSON(http.StatusOK, []dto.OrderViewResponse{toOrderViewResponse(*view)})
}

const dateLayout = "2006-01-02"

func toOrderRecordResponse(order *model.Order) dto.OrderRecordResponse {
	return dto.OrderRecordResponse{
		ID:            order.ID,
		OrderID:       order.OrderID,
		Name:          order.Name,
		Email:         order.Email,
		Phone:         order.Phone,
		PickupDate:    order.PickupDate.Format(dateLayout),
		PickupTime:    order.PickupTime,
		PickupAddress: order.PickupAddress,
		DropAddress:   order.DropAddress,
		Purpose:       order.Purpose,
		EntryDate:     order.EntryDate.Format(dateLayout),
	}
}

func toOrderViewResponse(view model.OrderStatusView) dto.OrderViewResponse {
	resp := dto.OrderViewResponse{
		OrderID: view.OrderID,
		Status:  view.Status,
	}
	if view.Order != nil {
		o := view.Order
		pickupDate := o.PickupDate.Format(dateLayout)
		entryDate := o.EntryDate.Format(dateLayout)
		resp.EntryDate = &entryDate
		resp.Name = &o.Name
		resp.Email = &o.Email
		resp.Phone = &o.Phone
		resp.PickupDate = &pickupDate
		resp.PickupTime = &o.PickupTime
		resp.PickupAddress = &o.PickupAddress
		resp.DropAddress = &o.DropAddress
		resp.Purpose = &o.Purpose
	}
	return resp
}
