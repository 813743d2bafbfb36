package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	registrationapp "github.com/foodcourt/backend/internal/application/registration"
	"github.com/foodcourt/backend/internal/domain/event"
	"github.com/foodcourt/backend/internal/domain/registration"
	"github.com/foodcourt/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockTeamRepository implements registration.TeamRepository for testing
type MockTeamRepository struct {
	mock.Mock
}

func (m *MockTeamRepository) FindByID(ctx context.Context, id uuid.UUID) (*registration.Team, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*registration.Team), args.Error(1)
}

func (m *MockTeamRepository) FindByUsername(ctx context.Context, username string) (*registration.Team, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*registration.Team), args.Error(1)
}

func (m *MockTeamRepository) FindAll(ctx context.Context) ([]registration.Team, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]registration.Team), args.Error(1)
}

func (m *MockTeamRepository) FindByEvent(ctx context.Context, eventID uuid.UUID) ([]registration.Team, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]registration.Team), args.Error(1)
}

func (m *MockTeamRepository) ExistingUsernames(ctx context.Context, usernames []string) ([]string, error) {
	args := m.Called(ctx, usernames)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockTeamRepository) Save(ctx context.Context, team *registration.Team) error {
	args := m.Called(ctx, team)
	return args.Error(0)
}

func (m *MockTeamRepository) SaveAll(ctx context.Context, teams []registration.Team) error {
	args := m.Called(ctx, teams)
	return args.Error(0)
}

func (m *MockTeamRepository) Update(ctx context.Context, team *registration.Team) error {
	args := m.Called(ctx, team)
	return args.Error(0)
}

func (m *MockTeamRepository) Stats(ctx context.Context) (registration.TeamStats, error) {
	args := m.Called(ctx)
	return args.Get(0).(registration.TeamStats), args.Error(1)
}

// MockEventRepository implements event.Repository for testing
type MockEventRepository struct {
	mock.Mock
}

func (m *MockEventRepository) FindByID(ctx context.Context, id uuid.UUID) (*event.Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*event.Event), args.Error(1)
}

func (m *MockEventRepository) FindAll(ctx context.Context) ([]event.Event, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]event.Event), args.Error(1)
}

func (m *MockEventRepository) CountsByEvent(ctx context.Context, eventIDs []uuid.UUID) (map[uuid.UUID]event.EventCounts, error) {
	args := m.Called(ctx, eventIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[uuid.UUID]event.EventCounts), args.Error(1)
}

func (m *MockEventRepository) Save(ctx context.Context, evt *event.Event) error {
	args := m.Called(ctx, evt)
	return args.Error(0)
}

func (m *MockEventRepository) Update(ctx context.Context, evt *event.Event) error {
	args := m.Called(ctx, evt)
	return args.Error(0)
}

func (m *MockEventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockCredentialRepository implements registration.CredentialRepository for testing
type MockCredentialRepository struct {
	mock.Mock
}

func (m *MockCredentialRepository) FindByID(ctx context.Context, id uuid.UUID) (*registration.TeamCredential, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*registration.TeamCredential), args.Error(1)
}

func (m *MockCredentialRepository) FindByTeam(ctx context.Context, teamID uuid.UUID) ([]registration.TeamCredential, error) {
	args := m.Called(ctx, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]registration.TeamCredential), args.Error(1)
}

func (m *MockCredentialRepository) Save(ctx context.Context, credential *registration.TeamCredential) error {
	args := m.Called(ctx, credential)
	return args.Error(0)
}

func (m *MockCredentialRepository) Update(ctx context.Context, credential *registration.TeamCredential) error {
	args := m.Called(ctx, credential)
	return args.Error(0)
}

func (m *MockCredentialRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func setupTeamHandler(teamRepo *MockTeamRepository, eventRepo *MockEventRepository, credentialRepo *MockCredentialRepository) *TeamHandler {
	teamService := registrationapp.NewTeamService(teamRepo, eventRepo)
	credentialService := registrationapp.NewCredentialService(credentialRepo, teamRepo)
	return NewTeamHandler(teamService, credentialService, nil)
}

func testEvent(t *testing.T) *event.Event {
	t.Helper()
	evt, err := event.NewEvent("Lunch", "", time.Now().Add(-time.Hour), time.Now().Add(time.Hour))
	require.NoError(t, err)
	return evt
}

func testTeam(t *testing.T) *registration.Team {
	t.Helper()
	team, err := registration.NewTeam("Gophers", "gophers", "hash", nil)
	require.NoError(t, err)
	return team
}

func TestTeamHandler_Create_Success(t *testing.T) {
	teamRepo := new(MockTeamRepository)
	eventRepo := new(MockEventRepository)
	handler := setupTeamHandler(teamRepo, eventRepo, new(MockCredentialRepository))

	teamRepo.On("ExistingUsernames", mock.Anything, []string{"gophers"}).Return([]string{}, nil)
	teamRepo.On("SaveAll", mock.Anything, mock.AnythingOfType("[]registration.Team")).Return(nil)

	router := authedRouter(adminClaims())
	router.POST("/teams", handler.Create)

	body, _ := json.Marshal(registrationapp.TeamInput{
		Name:     "Gophers",
		Username: "gophers",
		Password: "hunter2",
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/teams", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	teamRepo.AssertExpectations(t)
}

func TestTeamHandler_CreateBulk_TakenUsername(t *testing.T) {
	teamRepo := new(MockTeamRepository)
	eventRepo := new(MockEventRepository)
	handler := setupTeamHandler(teamRepo, eventRepo, new(MockCredentialRepository))

	teamRepo.On("ExistingUsernames", mock.Anything, []string{"gophers", "rustaceans"}).
		Return([]string{"gophers"}, nil)

	router := authedRouter(adminClaims())
	router.POST("/teams/bulk", handler.CreateBulk)

	body, _ := json.Marshal(registrationapp.CreateTeamsRequest{
		Teams: []registrationapp.TeamInput{
			{Name: "Gophers", Username: "gophers", Password: "hunter2"},
			{Name: "Rustaceans", Username: "rustaceans", Password: "hunter2"},
		},
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/teams/bulk", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	teamRepo.AssertNotCalled(t, "SaveAll", mock.Anything, mock.Anything)
}

func TestTeamHandler_Get_NotFound(t *testing.T) {
	teamRepo := new(MockTeamRepository)
	eventRepo := new(MockEventRepository)
	handler := setupTeamHandler(teamRepo, eventRepo, new(MockCredentialRepository))

	id := uuid.New()
	teamRepo.On("FindByID", mock.Anything, id).Return(nil, shared.ErrNotFound)

	router := authedRouter(adminClaims())
	router.GET("/teams/:id", handler.Get)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/teams/"+id.String(), nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTeamHandler_AssignEvent(t *testing.T) {
	teamRepo := new(MockTeamRepository)
	eventRepo := new(MockEventRepository)
	handler := setupTeamHandler(teamRepo, eventRepo, new(MockCredentialRepository))

	team := testTeam(t)
	evt := testEvent(t)
	teamRepo.On("FindByID", mock.Anything, team.ID).Return(team, nil)
	eventRepo.On("FindByID", mock.Anything, evt.ID).Return(evt, nil)
	teamRepo.On("Update", mock.Anything, team).Return(nil)

	router := authedRouter(adminClaims())
	router.POST("/teams/:id/event", handler.AssignEvent)

	body, _ := json.Marshal(registrationapp.AssignEventRequest{EventID: evt.ID})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/teams/"+team.ID.String()+"/event", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, team.EventID)
	assert.Equal(t, evt.ID, *team.EventID)
}

func TestTeamHandler_Remove(t *testing.T) {
	teamRepo := new(MockTeamRepository)
	eventRepo := new(MockEventRepository)
	handler := setupTeamHandler(teamRepo, eventRepo, new(MockCredentialRepository))

	evt := testEvent(t)
	team, err := registration.NewTeam("Gophers", "gophers", "hash", &evt.ID)
	require.NoError(t, err)

	teamRepo.On("FindByID", mock.Anything, team.ID).Return(team, nil)
	teamRepo.On("Update", mock.Anything, team).Return(nil)

	router := authedRouter(adminClaims())
	router.DELETE("/teams/:id", handler.Remove)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/teams/"+team.ID.String(), nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, team.EventID)
}

func TestTeamHandler_Stats(t *testing.T) {
	teamRepo := new(MockTeamRepository)
	eventRepo := new(MockEventRepository)
	handler := setupTeamHandler(teamRepo, eventRepo, new(MockCredentialRepository))

	teamRepo.On("Stats", mock.Anything).Return(registration.TeamStats{TotalTeams: 12, TeamsWithOrders: 7}, nil)

	router := authedRouter(adminClaims())
	router.GET("/teams/stats", handler.Stats)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/teams/stats", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, float64(12), data["total_teams"])
	assert.Equal(t, float64(7), data["teams_with_orders"])
}

func TestTeamHandler_CreateCredential(t *testing.T) {
	teamRepo := new(MockTeamRepository)
	eventRepo := new(MockEventRepository)
	credentialRepo := new(MockCredentialRepository)
	handler := setupTeamHandler(teamRepo, eventRepo, credentialRepo)

	team := testTeam(t)
	teamRepo.On("FindByID", mock.Anything, team.ID).Return(team, nil)
	credentialRepo.On("Save", mock.Anything, mock.AnythingOfType("*registration.TeamCredential")).Return(nil)

	router := authedRouter(adminClaims())
	router.POST("/teams/:id/credentials", handler.CreateCredential)

	email := "team@example.com"
	body, _ := json.Marshal(credentialBody{Email: &email})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/teams/"+team.ID.String()+"/credentials", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	credentialRepo.AssertExpectations(t)
}

func TestTeamHandler_DeleteCredential_NotFound(t *testing.T) {
	teamRepo := new(MockTeamRepository)
	eventRepo := new(MockEventRepository)
	credentialRepo := new(MockCredentialRepository)
	handler := setupTeamHandler(teamRepo, eventRepo, credentialRepo)

	id := uuid.New()
	credentialRepo.On("FindByID", mock.Anything, id).Return(nil, shared.ErrNotFound)

	router := authedRouter(adminClaims())
	router.DELETE("/credentials/:id", handler.DeleteCredential)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/credentials/"+id.String(), nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
