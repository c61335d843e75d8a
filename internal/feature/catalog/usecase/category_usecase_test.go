package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loomspace_backend/internal/feature/catalog/domain/entity"
)

func TestCategoryUsecase_CreateCategory(t *testing.T) {
	t.Run("slug derived from name", func(t *testing.T) {
		var stored *entity.Category
		categories := &mockCategoryRepository{
			CreateFunc: func(c *entity.Category) error {
				stored = c
				return nil
			},
		}

		c, err := NewCategoryUsecase(categories).CreateCategory(context.Background(), "Test Category 123")

		require.NoError(t, err)
		assert.Same(t, stored, c)
		assert.Equal(t, "test-category-123", c.Slug)
	})

	t.Run("duplicate name", func(t *testing.T) {
		categories := &mockCategoryRepository{
			CreateFunc: func(c *entity.Category) error { return ErrCategoryExists },
		}

		_, err := NewCategoryUsecase(categories).CreateCategory(context.Background(), "Men")

		assert.ErrorIs(t, err, ErrCategoryExists)
	})

	t.Run("blank name", func(t *testing.T) {
		_, err := NewCategoryUsecase(&mockCategoryRepository{}).CreateCategory(context.Background(), " ")

		assert.ErrorIs(t, err, ErrNameRequired)
	})
}

func TestCategoryUsecase_UpdateCategory(t *testing.T) {
	t.Run("rename renews slug", func(t *testing.T) {
		var excluded string
		categories := &mockCategoryRepository{
			FindByIDFunc: knownCategory,
			SlugExistsFunc: func(slug, excludeID string) (bool, error) {
				excluded = excludeID
				return false, nil
			},
		}

		c, err := NewCategoryUsecase(categories).UpdateCategory(context.Background(), "cat-1", "Updated Category 456")

		require.NoError(t, err)
		assert.Equal(t, "Updated Category 456", c.Name)
		assert.Equal(t, "updated-category-456", c.Slug)
		assert.Equal(t, "cat-1", excluded)
	})

	t.Run("same name is a no-op", func(t *testing.T) {
		categories := &mockCategoryRepository{
			FindByIDFunc: knownCategory,
			UpdateFunc: func(c *entity.Category) error {
				t.Error("Update should not be called")
				return nil
			},
		}

		c, err := NewCategoryUsecase(categories).UpdateCategory(context.Background(), "cat-1", "Men")

		require.NoError(t, err)
		assert.Equal(t, "men", c.Slug)
	})

	t.Run("unknown id", func(t *testing.T) {
		categories := &mockCategoryRepository{FindByIDFunc: knownCategory}

		_, err := NewCategoryUsecase(categories).UpdateCategory(context.Background(), "nope", "X")

		assert.ErrorIs(t, err, ErrCategoryNotFound)
	})
}

func TestCategoryUsecase_DeleteCategory(t *testing.T) {
	categories := &mockCategoryRepository{
		DeleteFunc: func(id string) error { return ErrCategoryInUse },
	}

	err := NewCategoryUsecase(categories).DeleteCategory(context.Background(), "cat-1")

	assert.ErrorIs(t, err, ErrCategoryInUse)
}

func TestCategoryUsecase_ListCategories(t *testing.T) {
	categories := &mockCategoryRepository{
		ListFunc: func() ([]entity.Category, error) { return []entity.Category{{Name: "Men"}, {Name: "Women"}}, nil },
	}

	list, err := NewCategoryUsecase(categories).ListCategories(context.Background())

	require.NoError(t, err)
	assert.Len(t, list, 2)
}
