package handler

import (
	orderingapp "github.com/foodcourt/backend/internal/application/ordering"
	registrationapp "github.com/foodcourt/backend/internal/application/registration"
	"github.com/gin-gonic/gin"
)

// TeamHandler handles team and credential endpoints
type TeamHandler struct {
	BaseHandler
	teamService       *registrationapp.TeamService
	credentialService *registrationapp.CredentialService
	orderService      *orderingapp.OrderService
}

// NewTeamHandler creates a new TeamHandler
func NewTeamHandler(
	teamService *registrationapp.TeamService,
	credentialService *registrationapp.CredentialService,
	orderService *orderingapp.OrderService,
) *TeamHandler {
	return &TeamHandler{
		teamService:       teamService,
		credentialService: credentialService,
		orderService:      orderService,
	}
}

// List godoc
// @Summary      List teams
// @Tags         teams
// @Produce      json
// @Success      200 {object} dto.Response{data=[]registrationapp.TeamResponse}
// @Router       /teams [get]
func (h *TeamHandler) List(c *gin.Context) {
	teams, err := h.teamService.ListTeams(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, teams)
}

// Get godoc
// @Summary      Get a team
// @Tags         teams
// @Produce      json
// @Param        id path string true "Team ID"
// @Success      200 {object} dto.Response{data=registrationapp.TeamResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /teams/{id} [get]
func (h *TeamHandler) Get(c *gin.Context) {
	id, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	team, err := h.teamService.GetTeam(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, team)
}

// Stats godoc
// @Summary      Team statistics
// @Description  Aggregate team counts for the admin dashboard
// @Tags         teams
// @Produce      json
// @Success      200 {object} dto.Response{data=registrationapp.TeamStatsResponse}
// @Router       /teams/stats [get]
func (h *TeamHandler) Stats(c *gin.Context) {
	stats, err := h.teamService.Stats(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, stats)
}

// Create godoc
// @Summary      Create a team
// @Description  Create a single team. Usernames are unique across all teams.
// @Tags         teams
// @Accept       json
// @Produce      json
// @Param        request body registrationapp.TeamInput true "Team"
// @Success      201 {object} dto.Response{data=registrationapp.TeamResponse}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /teams [post]
func (h *TeamHandler) Create(c *gin.Context) {
	var input registrationapp.TeamInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	teams, err := h.teamService.CreateTeams(c.Request.Context(), registrationapp.CreateTeamsRequest{
		Teams: []registrationapp.TeamInput{input},
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, teams[0])
}

// CreateBulk godoc
// @Summary      Create teams in bulk
// @Description  Create several teams at once. The whole batch is rejected
// @Description  when any username is duplicated, in the request or in the
// @Description  database.
// @Tags         teams
// @Accept       json
// @Produce      json
// @Param        request body registrationapp.CreateTeamsRequest true "Teams"
// @Success      201 {object} dto.Response{data=[]registrationapp.TeamResponse}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /teams/bulk [post]
func (h *TeamHandler) CreateBulk(c *gin.Context) {
	var req registrationapp.CreateTeamsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	teams, err := h.teamService.CreateTeams(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, teams)
}

// Update godoc
// @Summary      Update a team
// @Description  Rename a team and optionally reset its password
// @Tags         teams
// @Accept       json
// @Produce      json
// @Param        id path string true "Team ID"
// @Param        request body registrationapp.UpdateTeamRequest true "Team"
// @Success      200 {object} dto.Response{data=registrationapp.TeamResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /teams/{id} [put]
func (h *TeamHandler) Update(c *gin.Context) {
	id, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req registrationapp.UpdateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	team, err := h.teamService.UpdateTeam(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, team)
}

// AssignEvent godoc
// @Summary      Assign a team to an event
// @Tags         teams
// @Accept       json
// @Produce      json
// @Param        id path string true "Team ID"
// @Param        request body registrationapp.AssignEventRequest true "Event assignment"
// @Success      200 {object} dto.Response{data=registrationapp.TeamResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /teams/{id}/event [post]
func (h *TeamHandler) AssignEvent(c *gin.Context) {
	id, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req registrationapp.AssignEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	team, err := h.teamService.AssignToEvent(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, team)
}

// Remove godoc
// @Summary      Remove a team from its event
// @Description  Disassociate the team from its event. The team record and
// @Description  its order history survive.
// @Tags         teams
// @Param        id path string true "Team ID"
// @Success      200 {object} dto.Response{data=registrationapp.TeamResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /teams/{id} [delete]
func (h *TeamHandler) Remove(c *gin.Context) {
	id, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	team, err := h.teamService.RemoveFromEvent(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, team)
}

// ListOrders godoc
// @Summary      A team's order history
// @Tags         teams
// @Produce      json
// @Param        id path string true "Team ID"
// @Success      200 {object} dto.Response{data=[]orderingapp.OrderResponse}
// @Security     BearerAuth
// @Router       /teams/{id}/orders [get]
func (h *TeamHandler) ListOrders(c *gin.Context) {
	id, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	orders, err := h.orderService.ListTeamOrders(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, orders)
}

// ListCredentials godoc
// @Summary      List a team's credential notes
// @Tags         teams
// @Produce      json
// @Param        id path string true "Team ID"
// @Success      200 {object} dto.Response{data=[]registrationapp.CredentialResponse}
// @Security     BearerAuth
// @Router       /teams/{id}/credentials [get]
func (h *TeamHandler) ListCredentials(c *gin.Context) {
	id, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	credentials, err := h.credentialService.ListTeamCredentials(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, credentials)
}

// credentialBody is the credential request without the team ID, which
// comes from the path
type credentialBody struct {
	Email    *string `json:"email" binding:"omitempty,email"`
	Password *string `json:"password"`
}

// CreateCredential godoc
// @Summary      Attach a credential note to a team
// @Tags         teams
// @Accept       json
// @Produce      json
// @Param        id path string true "Team ID"
// @Param        request body credentialBody true "Credential note"
// @Success      201 {object} dto.Response{data=registrationapp.CredentialResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /teams/{id}/credentials [post]
func (h *TeamHandler) CreateCredential(c *gin.Context) {
	id, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var body credentialBody
	if err := c.ShouldBindJSON(&body); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	credential, err := h.credentialService.CreateCredential(c.Request.Context(), registrationapp.CreateCredentialRequest{
		TeamID:   id,
		Email:    body.Email,
		Password: body.Password,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, credential)
}

// UpdateCredential godoc
// @Summary      Update a credential note
// @Tags         teams
// @Accept       json
// @Produce      json
// @Param        id path string true "Credential ID"
// @Param        request body registrationapp.UpdateCredentialRequest true "Credential note"
// @Success      200 {object} dto.Response{data=registrationapp.CredentialResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /credentials/{id} [put]
func (h *TeamHandler) UpdateCredential(c *gin.Context) {
	id, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req registrationapp.UpdateCredentialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	credential, err := h.credentialService.UpdateCredential(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, credential)
}

// DeleteCredential godoc
// @Summary      Delete a credential note
// @Tags         teams
// @Param        id path string true "Credential ID"
// @Success      204
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /credentials/{id} [delete]
func (h *TeamHandler) DeleteCredential(c *gin.Context) {
	id, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.credentialService.DeleteCredential(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
