package store

import (
	"context"
	"fmt"

	"github.com/cofrinho/backend/internal/models"
	"github.com/google/uuid"
)

// UnknownCategoryName is the display label used when a transaction
// references a category that no longer exists.
const UnknownCategoryName = "Categoria Desconhecida"

// AddCategory validates the category, assigns it a fresh ID and appends it
// to the collection.
func (s *Store) AddCategory(ctx context.Context, category *models.Category) error {
	err := category.Validate()
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	category.Init(s.Now())
	s.categories = append(s.categories, *category)
	return s.persist(ctx, keyCategories, s.categories)
}

// UpdateCategory replaces the category with the same ID.
func (s *Store) UpdateCategory(ctx context.Context, category models.Category) error {
	err := category.Validate()
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.categories {
		if s.categories[i].ID == category.ID {
			category.CreatedAt = s.categories[i].CreatedAt
			category.Touch(s.Now())
			s.categories[i] = category
			return s.persist(ctx, keyCategories, s.categories)
		}
	}

	return fmt.Errorf("%w category matching your query", models.ErrResourceNotFound)
}

// DeleteCategory removes the category with the given ID. Default categories
// cannot be deleted. Transactions referencing the category are left alone.
func (s *Store) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.categories {
		if s.categories[i].ID != id {
			continue
		}

		if s.categories[i].IsDefault {
			return models.ErrCategoryIsDefault
		}

		s.categories = append(s.categories[:i], s.categories[i+1:]...)
		return s.persist(ctx, keyCategories, s.categories)
	}

	return fmt.Errorf("%w category matching your query", models.ErrResourceNotFound)
}

// CategoryName returns the display name for a category ID, degrading to a
// fallback label when the category does not exist.
func (s *Store) CategoryName(id uuid.UUID) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.categories {
		if c.ID == id {
			return c.Name
		}
	}

	return UnknownCategoryName
}
