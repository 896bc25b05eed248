package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"estore/internal/errors"
	"estore/internal/model"
)

// ItemRepository defines inventory persistence operations. Implementations
// constructed with a nil DB report ErrStoreUnavailable from every method,
// modelling the not-yet-connected store state.
type ItemRepository interface {
	List(ctx context.Context) ([]model.StoreItem, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.StoreItem, error)
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*model.StoreItem, error)
	Create(ctx context.Context, item *model.StoreItem) error
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (bool, error)
	UpdateQuantity(ctx context.Context, id uuid.UUID, quantity string) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type itemRepository struct {
	db *gorm.DB
}

// NewItemRepository creates a new item repository.
func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepository{db: db}
}

// List returns all items, unfiltered.
func (r *itemRepository) List(ctx context.Context) ([]model.StoreItem, error) {
	if r.db == nil {
		return nil, errors.ErrStoreUnavailable
	}
	var items []model.StoreItem
	if err := r.db.WithContext(ctx).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// FindByID finds an item by ID. Returns gorm.ErrRecordNotFound when absent.
func (r *itemRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.StoreItem, error) {
	if r.db == nil {
		return nil, errors.ErrStoreUnavailable
	}
	var item model.StoreItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// FindByIDForUpdate finds an item by ID with a row-level lock. Only meaningful
// inside a transaction.
func (r *itemRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*model.StoreItem, error) {
	if r.db == nil {
		return nil, errors.ErrStoreUnavailable
	}
	var item model.StoreItem
	if err := r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// Create inserts a new item.
func (r *itemRepository) Create(ctx context.Context, item *model.StoreItem) error {
	if r.db == nil {
		return errors.ErrStoreUnavailable
	}
	return r.db.WithContext(ctx).Create(item).Error
}

// UpdateFields applies a partial field merge and reports whether any row
// changed. Existence must be checked by the caller.
func (r *itemRepository) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (bool, error) {
	if r.db == nil {
		return false, errors.ErrStoreUnavailable
	}
	res := r.db.WithContext(ctx).Model(&model.StoreItem{}).
		Where("id = ?", id).
		Updates(fields)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// UpdateQuantity writes the string-encoded quantity back to the item.
func (r *itemRepository) UpdateQuantity(ctx context.Context, id uuid.UUID, quantity string) error {
	if r.db == nil {
		return errors.ErrStoreUnavailable
	}
	return r.db.WithContext(ctx).Model(&model.StoreItem{}).
		Where("id = ?", id).
		Update("quantity", quantity).Error
}

// Delete removes an item and reports whether a row was deleted. Deleting a
// missing id is not an error.
func (r *itemRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	if r.db == nil {
		return false, errors.ErrStoreUnavailable
	}
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.StoreItem{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
