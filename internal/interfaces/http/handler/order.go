package handler

import (
	"errors"

	orderingapp "github.com/foodcourt/backend/internal/application/ordering"
	"github.com/foodcourt/backend/internal/domain/shared"
	"github.com/foodcourt/backend/internal/infrastructure/auth"
	"github.com/foodcourt/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// OrderHandler handles order endpoints
type OrderHandler struct {
	BaseHandler
	orderService *orderingapp.OrderService
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(orderService *orderingapp.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// Place godoc
// @Summary      Place an order
// @Description  Place an order for the authenticated team. Validation,
// @Description  stock decrement and order persistence run in a single
// @Description  transaction, so a rejected order leaves no trace.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        request body orderingapp.PlaceOrderRequest true "Order"
// @Success      201 {object} dto.Response{data=orderingapp.OrderResponse}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /orders [post]
func (h *OrderHandler) Place(c *gin.Context) {
	teamID, ok := subjectUUID(c)
	if !ok {
		h.Unauthorized(c, "authentication required")
		return
	}

	var req orderingapp.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	order, err := h.orderService.PlaceOrder(c.Request.Context(), teamID, req)
	if err != nil {
		var domainErr *shared.DomainError
		if errors.As(err, &domainErr) {
			middleware.RecordOrderPlacement("rejected")
		} else {
			middleware.RecordOrderPlacement("error")
		}
		h.HandleError(c, err)
		return
	}

	middleware.RecordOrderPlacement("placed")
	h.Created(c, order)
}

// List godoc
// @Summary      List all orders
// @Tags         orders
// @Produce      json
// @Success      200 {object} dto.Response{data=[]orderingapp.OrderResponse}
// @Security     BearerAuth
// @Router       /orders [get]
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.orderService.ListOrders(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, orders)
}

// Get godoc
// @Summary      Get an order
// @Tags         orders
// @Produce      json
// @Param        id path int true "Order ID"
// @Success      200 {object} dto.Response{data=orderingapp.OrderResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /orders/{id} [get]
func (h *OrderHandler) Get(c *gin.Context) {
	orderID, ok := h.parseOrderIDParam(c)
	if !ok {
		return
	}

	order, err := h.orderService.GetOrder(c.Request.Context(), orderID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	if !h.mayAccessOrder(c, order) {
		return
	}
	h.Success(c, order)
}

// Cancel godoc
// @Summary      Cancel an order
// @Description  Cancel a pending or confirmed order and restore its stock.
// @Description  Teams may only cancel their own orders; admins may cancel
// @Description  any order.
// @Tags         orders
// @Param        id path int true "Order ID"
// @Success      200 {object} dto.Response{data=orderingapp.OrderResponse}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /orders/{id}/cancel [post]
func (h *OrderHandler) Cancel(c *gin.Context) {
	orderID, ok := h.parseOrderIDParam(c)
	if !ok {
		return
	}

	order, err := h.orderService.GetOrder(c.Request.Context(), orderID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	if !h.mayAccessOrder(c, order) {
		return
	}

	cancelled, err := h.orderService.CancelOrder(c.Request.Context(), orderID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, cancelled)
}

// UpdateStatus godoc
// @Summary      Update an order's status
// @Description  Move an order through its lifecycle. Cancelling via this
// @Description  endpoint restores stock just like the cancel endpoint.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        id path int true "Order ID"
// @Param        request body orderingapp.UpdateOrderStatusRequest true "Status"
// @Success      200 {object} dto.Response{data=orderingapp.OrderResponse}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /orders/{id}/status [patch]
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	orderID, ok := h.parseOrderIDParam(c)
	if !ok {
		return
	}

	var req orderingapp.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	order, err := h.orderService.UpdateOrderStatus(c.Request.Context(), orderID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, order)
}

// UpdatePayment godoc
// @Summary      Update an order's payment flag
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        id path int true "Order ID"
// @Param        request body orderingapp.UpdatePaymentStatusRequest true "Payment status"
// @Success      200 {object} dto.Response{data=orderingapp.OrderResponse}
// @Security     BearerAuth
// @Router       /orders/{id}/payment [patch]
func (h *OrderHandler) UpdatePayment(c *gin.Context) {
	orderID, ok := h.parseOrderIDParam(c)
	if !ok {
		return
	}

	var req orderingapp.UpdatePaymentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	order, err := h.orderService.UpdatePaymentStatus(c.Request.Context(), orderID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, order)
}

// ListByTeam godoc
// @Summary      A team's orders
// @Tags         orders
// @Produce      json
// @Param        teamId path string true "Team ID"
// @Success      200 {object} dto.Response{data=[]orderingapp.OrderResponse}
// @Router       /orders/team/{teamId} [get]
func (h *OrderHandler) ListByTeam(c *gin.Context) {
	teamID, ok := h.parseUUIDParam(c, "teamId")
	if !ok {
		return
	}

	orders, err := h.orderService.ListTeamOrders(c.Request.Context(), teamID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, orders)
}

// mayAccessOrder authorizes per-order access. Admins see every order,
// teams only their own. Writes the 403 response itself when denied.
func (h *OrderHandler) mayAccessOrder(c *gin.Context, order *orderingapp.OrderResponse) bool {
	claims := middleware.GetJWTClaims(c)
	if claims == nil {
		h.Unauthorized(c, "authentication required")
		return false
	}
	if claims.Role == auth.RoleAdmin {
		return true
	}

	teamID, ok := subjectUUID(c)
	if !ok {
		h.Unauthorized(c, "authentication required")
		return false
	}
	if order.TeamID != teamID {
		h.Forbidden(c, "order belongs to another team")
		return false
	}
	return true
}
