package handler

import (
	eventapp "github.com/foodcourt/backend/internal/application/event"
	inventoryapp "github.com/foodcourt/backend/internal/application/inventory"
	orderingapp "github.com/foodcourt/backend/internal/application/ordering"
	registrationapp "github.com/foodcourt/backend/internal/application/registration"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// EventHandler handles event endpoints, including the per-event food
// allocation and team/order listings
type EventHandler struct {
	BaseHandler
	eventService      *eventapp.EventService
	allocationService *inventoryapp.AllocationService
	teamService       *registrationapp.TeamService
	orderService      *orderingapp.OrderService
}

// NewEventHandler creates a new EventHandler
func NewEventHandler(
	eventService *eventapp.EventService,
	allocationService *inventoryapp.AllocationService,
	teamService *registrationapp.TeamService,
	orderService *orderingapp.OrderService,
) *EventHandler {
	return &EventHandler{
		eventService:      eventService,
		allocationService: allocationService,
		teamService:       teamService,
		orderService:      orderService,
	}
}

// List godoc
// @Summary      List events
// @Description  List all events with order, team and allocation counts
// @Tags         events
// @Produce      json
// @Success      200 {object} dto.Response{data=[]eventapp.EventListItemResponse}
// @Router       /events [get]
func (h *EventHandler) List(c *gin.Context) {
	events, err := h.eventService.ListEvents(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, events)
}

// Get godoc
// @Summary      Get an event
// @Tags         events
// @Produce      json
// @Param        id path string true "Event ID"
// @Success      200 {object} dto.Response{data=eventapp.EventResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /events/{id} [get]
func (h *EventHandler) Get(c *gin.Context) {
	id, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	event, err := h.eventService.GetEvent(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, event)
}

// Create godoc
// @Summary      Create an event
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        request body eventapp.CreateEventRequest true "Event"
// @Success      201 {object} dto.Response{data=eventapp.EventResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /events [post]
func (h *EventHandler) Create(c *gin.Context) {
	var req eventapp.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	event, err := h.eventService.CreateEvent(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, event)
}

// Update godoc
// @Summary      Update an event
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        id path string true "Event ID"
// @Param        request body eventapp.UpdateEventRequest true "Event"
// @Success      200 {object} dto.Response{data=eventapp.EventResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /events/{id} [put]
func (h *EventHandler) Update(c *gin.Context) {
	id, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req eventapp.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	event, err := h.eventService.UpdateEvent(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, event)
}

// Delete godoc
// @Summary      Delete an event
// @Description  Delete an event. Events referenced by orders cannot be deleted.
// @Tags         events
// @Param        id path string true "Event ID"
// @Success      204
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /events/{id} [delete]
func (h *EventHandler) Delete(c *gin.Context) {
	id, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.eventService.DeleteEvent(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// ListTeams godoc
// @Summary      List an event's teams
// @Tags         events
// @Produce      json
// @Param        id path string true "Event ID"
// @Success      200 {object} dto.Response{data=[]registrationapp.TeamResponse}
// @Router       /events/{id}/teams [get]
func (h *EventHandler) ListTeams(c *gin.Context) {
	id, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	teams, err := h.teamService.ListEventTeams(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, teams)
}

// ListOrders godoc
// @Summary      List an event's orders
// @Tags         events
// @Produce      json
// @Param        id path string true "Event ID"
// @Success      200 {object} dto.Response{data=[]orderingapp.OrderResponse}
// @Security     BearerAuth
// @Router       /orders/event/{id} [get]
func (h *EventHandler) ListOrders(c *gin.Context) {
	id, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	orders, err := h.orderService.ListEventOrders(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, orders)
}

// ListFood godoc
// @Summary      List an event's allocated food items
// @Description  List every food item allocated to the event with its per-team cap
// @Tags         events
// @Produce      json
// @Param        id path string true "Event ID"
// @Success      200 {object} dto.Response{data=[]inventoryapp.EventFoodItemResponse}
// @Router       /events/{id}/food [get]
func (h *EventHandler) ListFood(c *gin.Context) {
	id, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	items, err := h.allocationService.ListEventFoodItems(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, items)
}

// ListAvailableFood godoc
// @Summary      List an event's orderable food items
// @Description  List the allocated food items that are active and in stock,
// @Description  the set a team can actually order from.
// @Tags         events
// @Produce      json
// @Param        id path string true "Event ID"
// @Success      200 {object} dto.Response{data=[]inventoryapp.EventFoodItemResponse}
// @Router       /events/{id}/food/available [get]
func (h *EventHandler) ListAvailableFood(c *gin.Context) {
	id, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	items, err := h.allocationService.ListAvailableFoodItems(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, items)
}

// allocateBody is the allocation request without the event ID, which
// comes from the path
type allocateBody struct {
	FoodItemID      string `json:"food_item_id" binding:"required,uuid"`
	MaxOrderPerTeam *int   `json:"max_order_per_team" binding:"omitempty,min=0"`
}

// AllocateFood godoc
// @Summary      Allocate a food item to an event
// @Description  Expose a food item to an event, optionally capping the
// @Description  cumulative quantity one team may order. A food item can be
// @Description  allocated to an event at most once.
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        id path string true "Event ID"
// @Param        request body allocateBody true "Allocation"
// @Success      201 {object} dto.Response{data=inventoryapp.AllocationResponse}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /events/{id}/food [post]
func (h *EventHandler) AllocateFood(c *gin.Context) {
	eventID, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var body allocateBody
	if err := c.ShouldBindJSON(&body); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	foodItemID, err := uuid.Parse(body.FoodItemID)
	if err != nil {
		h.BadRequest(c, "Invalid food_item_id")
		return
	}

	allocation, err := h.allocationService.Allocate(c.Request.Context(), inventoryapp.AllocateRequest{
		EventID:         eventID,
		FoodItemID:      foodItemID,
		MaxOrderPerTeam: body.MaxOrderPerTeam,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, allocation)
}

// UpdateAllocationCap godoc
// @Summary      Change an allocation's per-team cap
// @Description  Set or clear the per-team order cap of an allocation. A null
// @Description  cap removes the limit.
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        itemId path string true "Allocation ID"
// @Param        request body inventoryapp.UpdateCapRequest true "New cap"
// @Success      200 {object} dto.Response{data=inventoryapp.AllocationResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /events/food-allocations/{itemId} [put]
func (h *EventHandler) UpdateAllocationCap(c *gin.Context) {
	allocationID, ok := h.parseUUIDParam(c, "itemId")
	if !ok {
		return
	}

	var req inventoryapp.UpdateCapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	allocation, err := h.allocationService.UpdateCap(c.Request.Context(), allocationID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, allocation)
}

// DeallocateFood godoc
// @Summary      Remove a food allocation from an event
// @Description  Withdraw a food item from an event. Existing orders keep
// @Description  their lines; the item just stops being orderable.
// @Tags         events
// @Param        itemId path string true "Allocation ID"
// @Success      204
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /events/food-allocations/{itemId} [delete]
func (h *EventHandler) DeallocateFood(c *gin.Context) {
	allocationID, ok := h.parseUUIDParam(c, "itemId")
	if !ok {
		return
	}

	if err := h.allocationService.Deallocate(c.Request.Context(), allocationID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
