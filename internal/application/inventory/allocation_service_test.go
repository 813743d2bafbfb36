package inventory

import (
	"context"
	"testing"
	"time"

	"github.com/foodcourt/backend/internal/domain/catalog"
	"github.com/foodcourt/backend/internal/domain/event"
	"github.com/foodcourt/backend/internal/domain/inventory"
	"github.com/foodcourt/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockInventoryRepository is a mock implementation of inventory.Repository
type MockInventoryRepository struct {
	mock.Mock
}

func (m *MockInventoryRepository) FindByEvent(ctx context.Context, eventID uuid.UUID) (*inventory.Inventory, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.Inventory), args.Error(1)
}

func (m *MockInventoryRepository) FindItemByID(ctx context.Context, itemID uuid.UUID) (*inventory.InventoryItem, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.InventoryItem), args.Error(1)
}

func (m *MockInventoryRepository) SaveInventory(ctx context.Context, inv *inventory.Inventory) error {
	args := m.Called(ctx, inv)
	return args.Error(0)
}

func (m *MockInventoryRepository) SaveItem(ctx context.Context, item *inventory.InventoryItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockInventoryRepository) UpdateItem(ctx context.Context, item *inventory.InventoryItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockInventoryRepository) DeleteItem(ctx context.Context, itemID uuid.UUID) error {
	args := m.Called(ctx, itemID)
	return args.Error(0)
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

// MockFoodRepository is a mock implementation of catalog.Repository
type MockFoodRepository struct {
	mock.Mock
}

func (m *MockFoodRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.FoodItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.FoodItem), args.Error(1)
}

func (m *MockFoodRepository) FindAll(ctx context.Context) ([]catalog.FoodItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.FoodItem), args.Error(1)
}

func (m *MockFoodRepository) FindActive(ctx context.Context) ([]catalog.FoodItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.FoodItem), args.Error(1)
}

func (m *MockFoodRepository) Save(ctx context.Context, item *catalog.FoodItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockFoodRepository) Update(ctx context.Context, item *catalog.FoodItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockFoodRepository) UpdateStock(ctx context.Context, id uuid.UUID, availableQty int) error {
	args := m.Called(ctx, id, availableQty)
	return args.Error(0)
}

func (m *MockFoodRepository) AdjustStock(ctx context.Context, id uuid.UUID, delta int) (bool, error) {
	args := m.Called(ctx, id, delta)
	return args.Bool(0), args.Error(1)
}

func (m *MockFoodRepository) HasOrderReferences(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockFoodRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type allocationFixture struct {
	service  *AllocationService
	invRepo  *MockInventoryRepository
	evtRepo  *MockEventRepository
	foodRepo *MockFoodRepository

	event *event.Event
	food  *catalog.FoodItem
}

func newAllocationFixture(t *testing.T) *allocationFixture {
	t.Helper()

	evt, err := event.NewEvent("Lunch", "", time.Now(), time.Now().Add(time.Hour))
	require.NoError(t, err)
	food, err := catalog.NewFoodItem("Pizza", "", decimal.NewFromInt(12), "", 10, nil)
	require.NoError(t, err)

	f := &allocationFixture{
		invRepo:  new(MockInventoryRepository),
		evtRepo:  new(MockEventRepository),
		foodRepo: new(MockFoodRepository),
		event:    evt,
		food:     food,
	}
	f.service = NewAllocationService(f.invRepo, f.evtRepo, f.foodRepo)

	f.evtRepo.On("FindByID", mock.Anything, evt.ID).Return(evt, nil).Maybe()
	f.foodRepo.On("FindByID", mock.Anything, food.ID).Return(food, nil).Maybe()
	return f
}

func TestAllocationService_Allocate(t *testing.T) {
	ctx := context.Background()

	t.Run("creates inventory lazily on first allocation", func(t *testing.T) {
		f := newAllocationFixture(t)
		f.invRepo.On("FindByEvent", mock.Anything, f.event.ID).Return(nil, shared.ErrNotFound)
		f.invRepo.On("SaveInventory", mock.Anything, mock.AnythingOfType("*inventory.Inventory")).Return(nil)
		f.invRepo.On("SaveItem", mock.Anything, mock.AnythingOfType("*inventory.InventoryItem")).Return(nil)

		cap := 3
		resp, err := f.service.Allocate(ctx, AllocateRequest{
			EventID:         f.event.ID,
			FoodItemID:      f.food.ID,
			MaxOrderPerTeam: &cap,
		})

		require.NoError(t, err)
		assert.Equal(t, f.food.ID, resp.FoodItemID)
		require.NotNil(t, resp.MaxOrderPerTeam)
		assert.Equal(t, 3, *resp.MaxOrderPerTeam)
		f.invRepo.AssertCalled(t, "SaveInventory", mock.Anything, mock.Anything)
	})

	t.Run("reuses existing inventory", func(t *testing.T) {
		f := newAllocationFixture(t)
		inv, err := inventory.NewInventory(f.event.ID)
		require.NoError(t, err)
		f.invRepo.On("FindByEvent", mock.Anything, f.event.ID).Return(inv, nil)
		f.invRepo.On("SaveItem", mock.Anything, mock.AnythingOfType("*inventory.InventoryItem")).Return(nil)

		_, err = f.service.Allocate(ctx, AllocateRequest{EventID: f.event.ID, FoodItemID: f.food.ID})

		require.NoError(t, err)
		f.invRepo.AssertNotCalled(t, "SaveInventory", mock.Anything, mock.Anything)
	})

	t.Run("rejects duplicate allocation", func(t *testing.T) {
		f := newAllocationFixture(t)
		inv, err := inventory.NewInventory(f.event.ID)
		require.NoError(t, err)
		existing, err := inventory.NewInventoryItem(inv.ID, f.food.ID, nil)
		require.NoError(t, err)
		inv.Items = append(inv.Items, *existing)
		f.invRepo.On("FindByEvent", mock.Anything, f.event.ID).Return(inv, nil)

		_, err = f.service.Allocate(ctx, AllocateRequest{EventID: f.event.ID, FoodItemID: f.food.ID})

		assert.ErrorIs(t, err, ErrAlreadyAllocated)
		f.invRepo.AssertNotCalled(t, "SaveItem", mock.Anything, mock.Anything)
	})

	t.Run("maps the unique constraint to already allocated", func(t *testing.T) {
		f := newAllocationFixture(t)
		inv, err := inventory.NewInventory(f.event.ID)
		require.NoError(t, err)
		f.invRepo.On("FindByEvent", mock.Anything, f.event.ID).Return(inv, nil)
		f.invRepo.On("SaveItem", mock.Anything, mock.Anything).Return(shared.ErrAlreadyExists)

		_, err = f.service.Allocate(ctx, AllocateRequest{EventID: f.event.ID, FoodItemID: f.food.ID})

		assert.ErrorIs(t, err, ErrAlreadyAllocated)
	})
}

func TestAllocationService_ListAvailableFoodItems(t *testing.T) {
	ctx := context.Background()
	f := newAllocationFixture(t)

	soldOut, err := catalog.NewFoodItem("Soup", "", decimal.NewFromInt(4), "", 0, nil)
	require.NoError(t, err)
	inactive, err := catalog.NewFoodItem("Cake", "", decimal.NewFromInt(6), "", 5, nil)
	require.NoError(t, err)
	inactive.Deactivate()

	inv, err := inventory.NewInventory(f.event.ID)
	require.NoError(t, err)
	for _, food := range []*catalog.FoodItem{f.food, soldOut, inactive} {
		alloc, err := inventory.NewInventoryItem(inv.ID, food.ID, nil)
		require.NoError(t, err)
		inv.Items = append(inv.Items, *alloc)
	}

	f.invRepo.On("FindByEvent", mock.Anything, f.event.ID).Return(inv, nil)
	f.foodRepo.On("FindByID", mock.Anything, soldOut.ID).Return(soldOut, nil)
	f.foodRepo.On("FindByID", mock.Anything, inactive.ID).Return(inactive, nil)

	items, err := f.service.ListAvailableFoodItems(ctx, f.event.ID)

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Pizza", items[0].Name)
}

func TestAllocationService_ListEventFoodItems_NoInventory(t *testing.T) {
	ctx := context.Background()
	f := newAllocationFixture(t)
	f.invRepo.On("FindByEvent", mock.Anything, f.event.ID).Return(nil, shared.ErrNotFound)

	items, err := f.service.ListEventFoodItems(ctx, f.event.ID)

	require.NoError(t, err)
	assert.Empty(t, items)
}
