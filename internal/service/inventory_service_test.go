package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"estore/internal/errors"
	"estore/internal/model"
)

func TestInventoryService_Get(t *testing.T) {
	itemID := uuid.New()

	tests := []struct {
		name          string
		idParam       string
		setupMock     func(m *MockItemRepository)
		expectedError error
		expectNil     bool
	}{
		{
			name:    "found",
			idParam: itemID.String(),
			setupMock: func(m *MockItemRepository) {
				m.On("FindByID", mock.Anything, itemID).Return(&model.StoreItem{
					ID:       itemID,
					Name:     "Widget",
					Model:    "X1",
					Quantity: "10",
				}, nil)
			},
		},
		{
			name:    "missing item is an empty success, not an error",
			idParam: itemID.String(),
			setupMock: func(m *MockItemRepository) {
				m.On("FindByID", mock.Anything, itemID).Return(nil, gorm.ErrRecordNotFound)
			},
			expectNil: true,
		},
		{
			name:          "malformed id",
			idParam:       "xyz",
			setupMock:     func(m *MockItemRepository) {},
			expectedError: errors.ErrInvalidID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockItemRepository)
			tt.setupMock(mockRepo)

			svc := NewInventoryService(mockRepo, nil)
			item, err := svc.Get(context.Background(), tt.idParam)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else if tt.expectNil {
				assert.NoError(t, err)
				assert.Nil(t, item)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, item)
				assert.Equal(t, "Widget", item.Name)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestInventoryService_CreateThenGetRoundTrip(t *testing.T) {
	itemID := uuid.New()
	mockRepo := new(MockItemRepository)
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.StoreItem")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*model.StoreItem).ID = itemID
		}).Return(nil)
	mockRepo.On("FindByID", mock.Anything, itemID).Return(&model.StoreItem{
		ID:       itemID,
		Name:     "Widget",
		Model:    "X1",
		Quantity: "10",
	}, nil)

	svc := NewInventoryService(mockRepo, nil)

	id, err := svc.Create(context.Background(), &model.StoreItem{Name: "Widget", Model: "X1", Quantity: "10"})
	assert.NoError(t, err)
	assert.Equal(t, itemID, id)

	item, err := svc.Get(context.Background(), id.String())
	assert.NoError(t, err)
	assert.Equal(t, "Widget", item.Name)
	assert.Equal(t, "X1", item.Model)
	assert.Equal(t, "10", item.Quantity)
	mockRepo.AssertExpectations(t)
}

func TestInventoryService_Update(t *testing.T) {
	itemID := uuid.New()

	tests := []struct {
		name             string
		idParam          string
		fields           map[string]interface{}
		setupMock        func(m *MockItemRepository)
		expectedError    error
		expectedModified bool
	}{
		{
			name:    "partial update modifies",
			idParam: itemID.String(),
			fields:  map[string]interface{}{"name": "Gadget"},
			setupMock: func(m *MockItemRepository) {
				m.On("FindByID", mock.Anything, itemID).Return(&model.StoreItem{ID: itemID}, nil)
				m.On("UpdateFields", mock.Anything, itemID, map[string]interface{}{"name": "Gadget"}).Return(true, nil)
			},
			expectedModified: true,
		},
		{
			name:    "no recognized fields changes nothing",
			idParam: itemID.String(),
			fields:  map[string]interface{}{},
			setupMock: func(m *MockItemRepository) {
				m.On("FindByID", mock.Anything, itemID).Return(&model.StoreItem{ID: itemID}, nil)
			},
		},
		{
			name:    "missing item",
			idParam: itemID.String(),
			fields:  map[string]interface{}{"name": "Gadget"},
			setupMock: func(m *MockItemRepository) {
				m.On("FindByID", mock.Anything, itemID).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: errors.ErrItemNotFound,
		},
		{
			name:          "malformed id",
			idParam:       "42",
			fields:        map[string]interface{}{"name": "Gadget"},
			setupMock:     func(m *MockItemRepository) {},
			expectedError: errors.ErrInvalidID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockItemRepository)
			tt.setupMock(mockRepo)

			svc := NewInventoryService(mockRepo, nil)
			modified, err := svc.Update(context.Background(), tt.idParam, tt.fields)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedModified, modified)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestInventoryService_Delete(t *testing.T) {
	itemID := uuid.New()

	t.Run("deleting a missing id reports false, not an error", func(t *testing.T) {
		mockRepo := new(MockItemRepository)
		mockRepo.On("Delete", mock.Anything, itemID).Return(false, nil)

		svc := NewInventoryService(mockRepo, nil)
		deleted, err := svc.Delete(context.Background(), itemID.String())

		assert.NoError(t, err)
		assert.False(t, deleted)
		mockRepo.AssertExpectations(t)
	})

	t.Run("deletion occurred", func(t *testing.T) {
		mockRepo := new(MockItemRepository)
		mockRepo.On("Delete", mock.Anything, itemID).Return(true, nil)

		svc := NewInventoryService(mockRepo, nil)
		deleted, err := svc.Delete(context.Background(), itemID.String())

		assert.NoError(t, err)
		assert.True(t, deleted)
	})

	t.Run("malformed id", func(t *testing.T) {
		svc := NewInventoryService(new(MockItemRepository), nil)
		_, err := svc.Delete(context.Background(), "oops")
		assert.ErrorIs(t, err, errors.ErrInvalidID)
	})
}

func TestInventoryService_List_Unavailable(t *testing.T) {
	mockRepo := new(MockItemRepository)
	mockRepo.On("List", mock.Anything).Return(nil, errors.ErrStoreUnavailable)

	svc := NewInventoryService(mockRepo, nil)
	_, err := svc.List(context.Background())

	assert.ErrorIs(t, err, errors.ErrStoreUnavailable)
}
