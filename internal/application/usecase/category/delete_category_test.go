// Package category contains category-related use cases.
package category

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/MuriloKuehne/personal-finance-dashboard/internal/application/adapter"
	"github.com/MuriloKuehne/personal-finance-dashboard/internal/domain/entity"
	domainerror "github.com/MuriloKuehne/personal-finance-dashboard/internal/domain/error"
)

type fakeCategoryRepo struct {
	byID    map[uuid.UUID]*entity.Category
	deleted []uuid.UUID
}

func newFakeCategoryRepo(categories ...*entity.Category) *fakeCategoryRepo {
	repo := &fakeCategoryRepo{byID: make(map[uuid.UUID]*entity.Category)}
	for _, category := range categories {
		repo.byID[category.ID] = category
	}
	return repo
}

func (f *fakeCategoryRepo) Create(_ context.Context, category *entity.Category) error {
	f.byID[category.ID] = category
	return nil
}

func (f *fakeCategoryRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Category, error) {
	category, ok := f.byID[id]
	if !ok {
		return nil, domainerror.ErrCategoryNotFound
	}
	return category, nil
}

func (f *fakeCategoryRepo) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.Category, error) {
	var categories []*entity.Category
	for _, category := range f.byID {
		if category.UserID == userID {
			categories = append(categories, category)
		}
	}
	return categories, nil
}

func (f *fakeCategoryRepo) FindByUserAndType(_ context.Context, userID uuid.UUID, categoryType entity.CategoryType) ([]*entity.Category, error) {
	var categories []*entity.Category
	for _, category := range f.byID {
		if category.UserID == userID && category.Type == categoryType {
			categories = append(categories, category)
		}
	}
	return categories, nil
}

func (f *fakeCategoryRepo) Update(_ context.Context, category *entity.Category) error {
	f.byID[category.ID] = category
	return nil
}

func (f *fakeCategoryRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.byID, id)
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeReferenceChecker struct {
	adapter.TransactionRepository
	inUse map[uuid.UUID]bool
}

func (f *fakeReferenceChecker) ExistsByCategory(_ context.Context, categoryID, _ uuid.UUID) (bool, error) {
	return f.inUse[categoryID], nil
}

func assertCategoryErrorCode(t *testing.T, err error, want domainerror.CategoryErrorCode) {
	t.Helper()
	var catErr *domainerror.CategoryError
	if !errors.As(err, &catErr) {
		t.Fatalf("expected *CategoryError, got %v (%T)", err, err)
	}
	if catErr.Code != want {
		t.Errorf("code = %s, want %s", catErr.Code, want)
	}
}

func TestDeleteCategoryUseCase_Execute(t *testing.T) {
	userID := uuid.New()

	t.Run("deletes an unreferenced category", func(t *testing.T) {
		category := entity.NewCategory(userID, "Groceries", "#10B981", entity.CategoryTypeExpense)
		categoryRepo := newFakeCategoryRepo(category)
		uc := NewDeleteCategoryUseCase(categoryRepo, &fakeReferenceChecker{inUse: map[uuid.UUID]bool{}})

		if err := uc.Execute(context.Background(), DeleteCategoryInput{CategoryID: category.ID, UserID: userID}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(categoryRepo.deleted) != 1 {
			t.Errorf("deleted %d categories, want 1", len(categoryRepo.deleted))
		}
	})

	t.Run("refuses to delete a referenced category", func(t *testing.T) {
		category := entity.NewCategory(userID, "Groceries", "#10B981", entity.CategoryTypeExpense)
		categoryRepo := newFakeCategoryRepo(category)
		uc := NewDeleteCategoryUseCase(categoryRepo, &fakeReferenceChecker{inUse: map[uuid.UUID]bool{category.ID: true}})

		err := uc.Execute(context.Background(), DeleteCategoryInput{CategoryID: category.ID, UserID: userID})
		assertCategoryErrorCode(t, err, domainerror.ErrCodeCategoryInUse)
		if !errors.Is(err, domainerror.ErrCategoryInUse) {
			t.Error("expected error to wrap ErrCategoryInUse")
		}
		if len(categoryRepo.deleted) != 0 {
			t.Error("category must survive a refused delete")
		}
	})

	t.Run("reports not found for a missing id", func(t *testing.T) {
		uc := NewDeleteCategoryUseCase(newFakeCategoryRepo(), &fakeReferenceChecker{inUse: map[uuid.UUID]bool{}})

		err := uc.Execute(context.Background(), DeleteCategoryInput{CategoryID: uuid.New(), UserID: userID})
		assertCategoryErrorCode(t, err, domainerror.ErrCodeCategoryNotFound)
	})

	t.Run("reports not found for another user's category", func(t *testing.T) {
		category := entity.NewCategory(uuid.New(), "Groceries", "#10B981", entity.CategoryTypeExpense)
		categoryRepo := newFakeCategoryRepo(category)
		uc := NewDeleteCategoryUseCase(categoryRepo, &fakeReferenceChecker{inUse: map[uuid.UUID]bool{}})

		err := uc.Execute(context.Background(), DeleteCategoryInput{CategoryID: category.ID, UserID: userID})
		assertCategoryErrorCode(t, err, domainerror.ErrCodeCategoryNotFound)
	})
}

func TestCreateCategoryUseCase_Execute(t *testing.T) {
	userID := uuid.New()

	t.Run("defaults the color when omitted", func(t *testing.T) {
		uc := NewCreateCategoryUseCase(newFakeCategoryRepo())

		output, err := uc.Execute(context.Background(), CreateCategoryInput{
			UserID: userID,
			Name:   "Groceries",
			Type:   entity.CategoryTypeExpense,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Category.Color != entity.DefaultCategoryColor {
			t.Errorf("color = %s, want %s", output.Category.Color, entity.DefaultCategoryColor)
		}
	})

	t.Run("rejects a malformed color", func(t *testing.T) {
		uc := NewCreateCategoryUseCase(newFakeCategoryRepo())

		_, err := uc.Execute(context.Background(), CreateCategoryInput{
			UserID: userID,
			Name:   "Groceries",
			Color:  "green",
			Type:   entity.CategoryTypeExpense,
		})
		assertCategoryErrorCode(t, err, domainerror.ErrCodeInvalidColorFormat)
	})

	t.Run("rejects an invalid type", func(t *testing.T) {
		uc := NewCreateCategoryUseCase(newFakeCategoryRepo())

		_, err := uc.Execute(context.Background(), CreateCategoryInput{
			UserID: userID,
			Name:   "Groceries",
			Type:   "savings",
		})
		assertCategoryErrorCode(t, err, domainerror.ErrCodeInvalidCategoryType)
	})

	t.Run("rejects an empty name", func(t *testing.T) {
		uc := NewCreateCategoryUseCase(newFakeCategoryRepo())

		_, err := uc.Execute(context.Background(), CreateCategoryInput{
			UserID: userID,
			Type:   entity.CategoryTypeExpense,
		})
		assertCategoryErrorCode(t, err, domainerror.ErrCodeMissingCategoryFields)
	})
}
