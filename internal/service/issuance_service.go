package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"estore/internal/cache"
	"estore/internal/errors"
	"estore/internal/model"
	"estore/internal/repository"
)

// IssuanceService records stock allocations to departments. The quantity
// decrement and the ledger insert are a single transaction: an issue is never
// committed if it would drive the item's quantity negative, and a recorded
// issue always has its matching decrement.
type IssuanceService interface {
	Issue(ctx context.Context, department, itemIDParam, itemName, itemModel, quantity string) (int, error)
	ListIssues(ctx context.Context) ([]model.Issue, error)
}

type issuanceService struct {
	tx        repository.TxManager
	issueRepo repository.IssueRepository
	cache     *cache.Client
}

// NewIssuanceService creates a new issuance service.
func NewIssuanceService(tx repository.TxManager, issueRepo repository.IssueRepository, cache *cache.Client) IssuanceService {
	return &issuanceService{
		tx:        tx,
		issueRepo: issueRepo,
		cache:     cache,
	}
}

// Issue validates the request, then decrements the item's quantity and
// appends the ledger record inside one transaction. All validation happens
// before any write. Returns the item's new quantity.
func (s *issuanceService) Issue(ctx context.Context, department, itemIDParam, itemName, itemModel, quantity string) (int, error) {
	requested, err := parseQuantity(quantity)
	if err != nil {
		return 0, err
	}

	// An identifier that cannot be parsed cannot reference any item.
	id, err := uuid.Parse(itemIDParam)
	if err != nil {
		return 0, errors.ErrItemNotFound
	}

	var newQty int
	err = s.tx.WithTransaction(ctx, func(ctx context.Context, items repository.ItemRepository, issues repository.IssueRepository) error {
		item, err := items.FindByIDForUpdate(ctx, id)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return errors.ErrItemNotFound
			}
			return fmt.Errorf("find item: %w", err)
		}

		// Stored quantity may legitimately be zero.
		current, err := strconv.Atoi(strings.TrimSpace(item.Quantity))
		if err != nil || current < 0 {
			return fmt.Errorf("stored quantity %q for item %s is not a valid integer", item.Quantity, id)
		}

		if current < requested {
			return errors.ErrInsufficientQuantity
		}

		newQty = current - requested
		if err := items.UpdateQuantity(ctx, id, strconv.Itoa(newQty)); err != nil {
			return fmt.Errorf("update quantity: %w", err)
		}

		issue := &model.Issue{
			Department:     department,
			ItemID:         id,
			ItemName:       itemName,
			ItemModel:      itemModel,
			IssuedQuantity: requested,
			Status:         model.IssueStatusIssued,
		}
		if err := issues.Create(ctx, issue); err != nil {
			return fmt.Errorf("create issue: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.cache.InvalidateItem(ctx, id.String())
	return newQty, nil
}

// ListIssues returns all ledger records.
func (s *issuanceService) ListIssues(ctx context.Context) ([]model.Issue, error) {
	return s.issueRepo.List(ctx)
}

// parseQuantity interprets a quantity value the way the API has always
// accepted it: an integer, possibly string-encoded. Zero, negative, and
// non-numeric values are rejected.
func parseQuantity(v string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || n <= 0 {
		return 0, errors.ErrInvalidQuantity
	}
	return n, nil
}
