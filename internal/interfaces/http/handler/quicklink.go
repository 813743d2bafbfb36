package handler

import (
	portalapp "github.com/foodcourt/backend/internal/application/portal"
	"github.com/gin-gonic/gin"
)

// QuickLinkHandler handles portal quick link endpoints
type QuickLinkHandler struct {
	BaseHandler
	linkService *portalapp.QuickLinkService
}

// NewQuickLinkHandler creates a new QuickLinkHandler
func NewQuickLinkHandler(linkService *portalapp.QuickLinkService) *QuickLinkHandler {
	return &QuickLinkHandler{linkService: linkService}
}

// ListActive godoc
// @Summary      Active quick links
// @Description  The links shown on the team portal
// @Tags         quicklinks
// @Produce      json
// @Success      200 {object} dto.Response{data=[]portalapp.QuickLinkResponse}
// @Router       /quicklinks [get]
func (h *QuickLinkHandler) ListActive(c *gin.Context) {
	links, err := h.linkService.ListActiveQuickLinks(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, links)
}

// ListAll godoc
// @Summary      All quick links
// @Tags         quicklinks
// @Produce      json
// @Success      200 {object} dto.Response{data=[]portalapp.QuickLinkResponse}
// @Security     BearerAuth
// @Router       /quicklinks/all [get]
func (h *QuickLinkHandler) ListAll(c *gin.Context) {
	links, err := h.linkService.ListQuickLinks(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, links)
}

// Create godoc
// @Summary      Create a quick link
// @Tags         quicklinks
// @Accept       json
// @Produce      json
// @Param        request body portalapp.CreateQuickLinkRequest true "Quick link"
// @Success      201 {object} dto.Response{data=portalapp.QuickLinkResponse}
// @Security     BearerAuth
// @Router       /quicklinks [post]
func (h *QuickLinkHandler) Create(c *gin.Context) {
	var req portalapp.CreateQuickLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	link, err := h.linkService.CreateQuickLink(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, link)
}

// Update godoc
// @Summary      Update a quick link
// @Tags         quicklinks
// @Accept       json
// @Produce      json
// @Param        id path string true "Quick link ID"
// @Param        request body portalapp.UpdateQuickLinkRequest true "Quick link"
// @Success      200 {object} dto.Response{data=portalapp.QuickLinkResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /quicklinks/{id} [put]
func (h *QuickLinkHandler) Update(c *gin.Context) {
	id, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req portalapp.UpdateQuickLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	link, err := h.linkService.UpdateQuickLink(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, link)
}

type setActiveBody struct {
	Active *bool `json:"active" binding:"required"`
}

// SetActive godoc
// @Summary      Toggle a quick link
// @Tags         quicklinks
// @Accept       json
// @Produce      json
// @Param        id path string true "Quick link ID"
// @Param        request body setActiveBody true "Active flag"
// @Success      200 {object} dto.Response{data=portalapp.QuickLinkResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /quicklinks/{id}/active [patch]
func (h *QuickLinkHandler) SetActive(c *gin.Context) {
	id, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var body setActiveBody
	if err := c.ShouldBindJSON(&body); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	link, err := h.linkService.SetQuickLinkActive(c.Request.Context(), id, *body.Active)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, link)
}

// Delete godoc
// @Summary      Delete a quick link
// @Tags         quicklinks
// @Param        id path string true "Quick link ID"
// @Success      204
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /quicklinks/{id} [delete]
func (h *QuickLinkHandler) Delete(c *gin.Context) {
	id, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.linkService.DeleteQuickLink(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
