package registration

import (
	"context"
	"testing"
	"time"

	"github.com/foodcourt/backend/internal/domain/event"
	"github.com/foodcourt/backend/internal/domain/registration"
	"github.com/foodcourt/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// MockTeamRepository is a mock implementation of registration.TeamRepository
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

// MockEventRepository is a mock implementation of event.Repository
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

func TestTeamService_CreateTeams(t *testing.T) {
	ctx := context.Background()

	t.Run("creates teams with hashed passwords", func(t *testing.T) {
		teamRepo := new(MockTeamRepository)
		teamRepo.On("ExistingUsernames", mock.Anything, []string{"alpha", "beta"}).
			Return([]string{}, nil)

		var saved []registration.Team
		teamRepo.On("SaveAll", mock.Anything, mock.AnythingOfType("[]registration.Team")).
			Run(func(args mock.Arguments) {
				saved = args.Get(1).([]registration.Team)
			}).Return(nil)

		service := NewTeamService(teamRepo, new(MockEventRepository))

		responses, err := service.CreateTeams(ctx, CreateTeamsRequest{Teams: []TeamInput{
			{Name: "Team Alpha", Username: "alpha", Password: "secret1"},
			{Name: "Team Beta", Username: "beta", Password: "secret2"},
		}})

		require.NoError(t, err)
		require.Len(t, responses, 2)
		require.Len(t, saved, 2)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(saved[0].PasswordHash), []byte("secret1")))
		assert.NotEqual(t, "secret1", saved[0].PasswordHash)
	})

	t.Run("rejects usernames already taken", func(t *testing.T) {
		teamRepo := new(MockTeamRepository)
		teamRepo.On("ExistingUsernames", mock.Anything, []string{"alpha"}).
			Return([]string{"alpha"}, nil)
		service := NewTeamService(teamRepo, new(MockEventRepository))

		_, err := service.CreateTeams(ctx, CreateTeamsRequest{Teams: []TeamInput{
			{Name: "Team Alpha", Username: "alpha", Password: "secret"},
		}})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "DUPLICATE_USERNAME", domainErr.Code)
		teamRepo.AssertNotCalled(t, "SaveAll", mock.Anything, mock.Anything)
	})

	t.Run("rejects duplicate usernames within the request", func(t *testing.T) {
		teamRepo := new(MockTeamRepository)
		service := NewTeamService(teamRepo, new(MockEventRepository))

		_, err := service.CreateTeams(ctx, CreateTeamsRequest{Teams: []TeamInput{
			{Name: "One", Username: "alpha", Password: "secret"},
			{Name: "Two", Username: "alpha", Password: "secret"},
		}})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "DUPLICATE_USERNAME", domainErr.Code)
	})

	t.Run("rejects unknown event", func(t *testing.T) {
		eventID := uuid.New()
		teamRepo := new(MockTeamRepository)
		teamRepo.On("ExistingUsernames", mock.Anything, []string{"alpha"}).Return([]string{}, nil)
		eventRepo := new(MockEventRepository)
		eventRepo.On("FindByID", mock.Anything, eventID).Return(nil, shared.ErrNotFound)
		service := NewTeamService(teamRepo, eventRepo)

		_, err := service.CreateTeams(ctx, CreateTeamsRequest{Teams: []TeamInput{
			{Name: "Team Alpha", Username: "alpha", Password: "secret", EventID: &eventID},
		}})

		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestTeamService_AssignToEvent(t *testing.T) {
	ctx := context.Background()

	team, err := registration.NewTeam("Gophers", "gophers", "hash", nil)
	require.NoError(t, err)
	evt, err := event.NewEvent("Lunch", "", time.Now(), time.Now().Add(time.Hour))
	require.NoError(t, err)

	teamRepo := new(MockTeamRepository)
	teamRepo.On("FindByID", mock.Anything, team.ID).Return(team, nil)
	teamRepo.On("Update", mock.Anything, team).Return(nil)
	eventRepo := new(MockEventRepository)
	eventRepo.On("FindByID", mock.Anything, evt.ID).Return(evt, nil)

	service := NewTeamService(teamRepo, eventRepo)

	resp, err := service.AssignToEvent(ctx, team.ID, AssignEventRequest{EventID: evt.ID})

	require.NoError(t, err)
	require.NotNil(t, resp.EventID)
	assert.Equal(t, evt.ID, *resp.EventID)
}

func TestTeamService_RemoveFromEvent(t *testing.T) {
	ctx := context.Background()

	eventID := uuid.New()
	team, err := registration.NewTeam("Gophers", "gophers", "hash", &eventID)
	require.NoError(t, err)

	teamRepo := new(MockTeamRepository)
	teamRepo.On("FindByID", mock.Anything, team.ID).Return(team, nil)
	teamRepo.On("Update", mock.Anything, team).Return(nil)

	service := NewTeamService(teamRepo, new(MockEventRepository))

	resp, err := service.RemoveFromEvent(ctx, team.ID)

	require.NoError(t, err)
	assert.Nil(t, resp.EventID)
}
