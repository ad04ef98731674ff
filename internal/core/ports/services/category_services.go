package services

import (
	"context"

	"github.com/trackmint/finance_tracker_app/internal/core/domain"
	"github.com/trackmint/finance_tracker_app/internal/dto"
)

// CategorySvcFacade manages transaction categories.
type CategorySvcFacade interface {
	CreateCategory(ctx context.Context, userID string, req dto.CreateCategoryRequest) (*domain.Category, error)
	GetCategoryByID(ctx context.Context, userID string, categoryID string) (*domain.Category, error)
	ListCategories(ctx context.Context, userID string) ([]domain.Category, error)
}
