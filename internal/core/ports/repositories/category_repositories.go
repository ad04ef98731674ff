package repositories

import (
	"context"

	"github.com/trackmint/finance_tracker_app/internal/core/domain"
)

// CategoryRepositoryFacade provides access to transaction categories.
type CategoryRepositoryFacade interface {
	SaveCategory(ctx context.Context, category domain.Category) error
	FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error)
	ListCategories(ctx context.Context, userID string) ([]domain.Category, error)
}
