package repository

import (
	"context"

	"gorm.io/gorm"

	"estore/internal/errors"
	"estore/internal/model"
)

// IssueRepository defines ledger persistence operations. The ledger is
// append-only: records are created and listed, never updated or deleted.
type IssueRepository interface {
	Create(ctx context.Context, issue *model.Issue) error
	List(ctx context.Context) ([]model.Issue, error)
}

type issueRepository struct {
	db *gorm.DB
}

// NewIssueRepository creates a new issue repository.
func NewIssueRepository(db *gorm.DB) IssueRepository {
	return &issueRepository{db: db}
}

// Create appends a ledger record.
func (r *issueRepository) Create(ctx context.Context, issue *model.Issue) error {
	if r.db == nil {
		return errors.ErrStoreUnavailable
	}
	return r.db.WithContext(ctx).Create(issue).Error
}

// List returns all ledger records, unfiltered.
func (r *issueRepository) List(ctx context.Context) ([]model.Issue, error) {
	if r.db == nil {
		return nil, errors.ErrStoreUnavailable
	}
	var issues []model.Issue
	if err := r.db.WithContext(ctx).Find(&issues).Error; err != nil {
		return nil, err
	}
	return issues, nil
}
