package settings

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/MuriloKuehne/personal-finance-dashboard/internal/domain/entity"
	domainerror "github.com/MuriloKuehne/personal-finance-dashboard/internal/domain/error"
)

type fakeUserRepo struct {
	byID    map[uuid.UUID]*entity.User
	updated []*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	repo := &fakeUserRepo{byID: make(map[uuid.UUID]*entity.User)}
	for _, user := range users {
		repo.byID[user.ID] = user
	}
	return repo
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	f.byID[user.ID] = user
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, ok := f.byID[id]
	if !ok {
		return nil, domainerror.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, user := range f.byID {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, domainerror.ErrUserNotFound
}

func (f *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	f.byID[user.ID] = user
	f.updated = append(f.updated, user)
	return nil
}

func (f *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := f.FindByEmail(ctx, email)
	return err == nil, nil
}

func assertSettingsErrorCode(t *testing.T, err error, want domainerror.SettingsErrorCode) {
	t.Helper()
	var settingsErr *domainerror.SettingsError
	if !errors.As(err, &settingsErr) {
		t.Fatalf("expected *SettingsError, got %T (%v)", err, err)
	}
	if settingsErr.Code != want {
		t.Errorf("code = %s, want %s", settingsErr.Code, want)
	}
}

func strPtr(value string) *string {
	return &value
}

func TestGetProfileUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the user's profile", func(t *testing.T) {
		user := entity.NewUser("ana@example.com", "Ana", "hash")
		useCase := NewGetProfileUseCase(newFakeUserRepo(user))

		output, err := useCase.Execute(ctx, GetProfileInput{UserID: user.ID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.User.Email != "ana@example.com" || output.User.Name != "Ana" {
			t.Errorf("profile = %+v", output.User)
		}
		if output.User.FirstDayOfWeek != entity.FirstDayOfWeekSunday {
			t.Errorf("first day of week = %s, want sunday default", output.User.FirstDayOfWeek)
		}
	})

	t.Run("unknown user propagates not found", func(t *testing.T) {
		useCase := NewGetProfileUseCase(newFakeUserRepo())

		_, err := useCase.Execute(ctx, GetProfileInput{UserID: uuid.New()})
		if !errors.Is(err, domainerror.ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})
}

func TestUpdateProfileUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("updates name and week start preference", func(t *testing.T) {
		user := entity.NewUser("ana@example.com", "Ana", "hash")
		repo := newFakeUserRepo(user)
		useCase := NewUpdateProfileUseCase(repo)

		output, err := useCase.Execute(ctx, UpdateProfileInput{
			UserID:         user.ID,
			Name:           strPtr("Ana Souza"),
			FirstDayOfWeek: strPtr("monday"),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.User.Name != "Ana Souza" {
			t.Errorf("name = %s, want Ana Souza", output.User.Name)
		}
		if output.User.FirstDayOfWeek != entity.FirstDayOfWeekMonday {
			t.Errorf("first day of week = %s, want monday", output.User.FirstDayOfWeek)
		}
		if len(repo.updated) != 1 {
			t.Errorf("update persisted %d times, want 1", len(repo.updated))
		}
	})

	t.Run("nil fields leave the profile unchanged", func(t *testing.T) {
		user := entity.NewUser("ana@example.com", "Ana", "hash")
		useCase := NewUpdateProfileUseCase(newFakeUserRepo(user))

		output, err := useCase.Execute(ctx, UpdateProfileInput{UserID: user.ID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.User.Name != "Ana" || output.User.FirstDayOfWeek != entity.FirstDayOfWeekSunday {
			t.Errorf("profile changed without input: %+v", output.User)
		}
	})

	t.Run("rejects an unknown week start value", func(t *testing.T) {
		user := entity.NewUser("ana@example.com", "Ana", "hash")
		repo := newFakeUserRepo(user)
		useCase := NewUpdateProfileUseCase(repo)

		_, err := useCase.Execute(ctx, UpdateProfileInput{
			UserID:         user.ID,
			FirstDayOfWeek: strPtr("friday"),
		})
		assertSettingsErrorCode(t, err, domainerror.ErrCodeInvalidFirstDayOfWeek)
		if len(repo.updated) != 0 {
			t.Error("rejected update must not persist")
		}
	})

	t.Run("rejects an empty name", func(t *testing.T) {
		user := entity.NewUser("ana@example.com", "Ana", "hash")
		useCase := NewUpdateProfileUseCase(newFakeUserRepo(user))

		_, err := useCase.Execute(ctx, UpdateProfileInput{
			UserID: user.ID,
			Name:   strPtr(""),
		})
		assertSettingsErrorCode(t, err, domainerror.ErrCodeMissingProfileFields)
	})

	t.Run("rejects an overlong name", func(t *testing.T) {
		user := entity.NewUser("ana@example.com", "Ana", "hash")
		useCase := NewUpdateProfileUseCase(newFakeUserRepo(user))

		_, err := useCase.Execute(ctx, UpdateProfileInput{
			UserID: user.ID,
			Name:   strPtr(strings.Repeat("a", MaxProfileNameLength+1)),
		})
		assertSettingsErrorCode(t, err, domainerror.ErrCodeProfileNameTooLong)
	})

	t.Run("unknown user propagates not found", func(t *testing.T) {
		useCase := NewUpdateProfileUseCase(newFakeUserRepo())

		_, err := useCase.Execute(ctx, UpdateProfileInput{
			UserID: uuid.New(),
			Name:   strPtr("Ana"),
		})
		if !errors.Is(err, domainerror.ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})
}
