package handler

import (
	catalogapp "github.com/foodcourt/backend/internal/application/catalog"
	"github.com/gin-gonic/gin"
)

// FoodHandler handles catalog endpoints
type FoodHandler struct {
	BaseHandler
	foodService *catalogapp.FoodService
}

// NewFoodHandler creates a new FoodHandler
func NewFoodHandler(foodService *catalogapp.FoodService) *FoodHandler {
	return &FoodHandler{foodService: foodService}
}

// List godoc
// @Summary      List food items
// @Description  All food items in the catalog, active and inactive
// @Tags         food
// @Produce      json
// @Success      200 {object} dto.Response{data=[]catalogapp.FoodItemResponse}
// @Router       /food [get]
func (h *FoodHandler) List(c *gin.Context) {
	items, err := h.foodService.ListFoodItems(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, items)
}

// Get godoc
// @Summary      Get a food item
// @Tags         food
// @Produce      json
// @Param        id path string true "Food item ID"
// @Success      200 {object} dto.Response{data=catalogapp.FoodItemResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /food/{id} [get]
func (h *FoodHandler) Get(c *gin.Context) {
	id, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	item, err := h.foodService.GetFoodItem(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, item)
}

// Create godoc
// @Summary      Create a food item
// @Tags         food
// @Accept       json
// @Produce      json
// @Param        request body catalogapp.CreateFoodItemRequest true "Food item"
// @Success      201 {object} dto.Response{data=catalogapp.FoodItemResponse}
// @Security     BearerAuth
// @Router       /food [post]
func (h *FoodHandler) Create(c *gin.Context) {
	var req catalogapp.CreateFoodItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	item, err := h.foodService.CreateFoodItem(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, item)
}

// Update godoc
// @Summary      Update a food item
// @Tags         food
// @Accept       json
// @Produce      json
// @Param        id path string true "Food item ID"
// @Param        request body catalogapp.UpdateFoodItemRequest true "Food item"
// @Success      200 {object} dto.Response{data=catalogapp.FoodItemResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /food/{id} [put]
func (h *FoodHandler) Update(c *gin.Context) {
	id, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req catalogapp.UpdateFoodItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	item, err := h.foodService.UpdateFoodItem(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, item)
}

// UpdateStock godoc
// @Summary      Set a food item's stock level
// @Description  Overwrite the available quantity. Concurrent order placement
// @Description  still decrements atomically against the new value.
// @Tags         food
// @Accept       json
// @Produce      json
// @Param        id path string true "Food item ID"
// @Param        request body catalogapp.UpdateStockRequest true "Stock"
// @Success      200 {object} dto.Response{data=catalogapp.FoodItemResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /food/{id}/stock [patch]
func (h *FoodHandler) UpdateStock(c *gin.Context) {
	id, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req catalogapp.UpdateStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	item, err := h.foodService.UpdateStock(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, item)
}

// Delete godoc
// @Summary      Delete a food item
// @Description  Items referenced by existing orders are deactivated instead
// @Description  of deleted, so order history keeps resolving.
// @Tags         food
// @Param        id path string true "Food item ID"
// @Success      200 {object} dto.Response{data=handler.deleteFoodResult}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /food/{id} [delete]
func (h *FoodHandler) Delete(c *gin.Context) {
	id, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	deleted, err := h.foodService.DeleteFoodItem(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, deleteFoodResult{Deleted: deleted, Deactivated: !deleted})
}

// deleteFoodResult reports whether the item was removed or merely deactivated
type deleteFoodResult struct {
	Deleted     bool `json:"deleted"`
	Deactivated bool `json:"deactivated"`
}
