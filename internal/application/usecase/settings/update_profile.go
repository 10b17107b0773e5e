// Package settings contains user profile and preference use cases.
package settings

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MuriloKuehne/personal-finance-dashboard/internal/application/adapter"
	"github.com/MuriloKuehne/personal-finance-dashboard/internal/domain/entity"
	domainerror "github.com/MuriloKuehne/personal-finance-dashboard/internal/domain/error"
)

// MaxProfileNameLength is the maximum length of a user's display name.
const MaxProfileNameLength = 100

// UpdateProfileInput represents the input for profile update.
// Nil pointer fields are left unchanged. The email is fixed at registration
// and cannot be updated here.
type UpdateProfileInput struct {
	UserID         uuid.UUID
	Name           *string
	FirstDayOfWeek *string
}

// UpdateProfileOutput represents the output of profile update.
type UpdateProfileOutput struct {
	User *entity.User
}

// UpdateProfileUseCase handles profile update logic.
type UpdateProfileUseCase struct {
	userRepo adapter.UserRepository
}

// NewUpdateProfileUseCase creates a new UpdateProfileUseCase instance.
func NewUpdateProfileUseCase(userRepo adapter.UserRepository) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{
		userRepo: userRepo,
	}
}

// Execute performs the profile update.
func (uc *UpdateProfileUseCase) Execute(ctx context.Context, input UpdateProfileInput) (*UpdateProfileOutput, error) {
	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, domainerror.NewSettingsError(
				domainerror.ErrCodeMissingProfileFields,
				"name is required",
				nil,
			)
		}
		if len(*input.Name) > MaxProfileNameLength {
			return nil, domainerror.NewSettingsError(
				domainerror.ErrCodeProfileNameTooLong,
				fmt.Sprintf("name must not exceed %d characters", MaxProfileNameLength),
				domainerror.ErrProfileNameTooLong,
			)
		}
		user.Name = *input.Name
	}

	if input.FirstDayOfWeek != nil {
		firstDay := entity.FirstDayOfWeek(*input.FirstDayOfWeek)
		if firstDay != entity.FirstDayOfWeekSunday && firstDay != entity.FirstDayOfWeekMonday {
			return nil, domainerror.NewSettingsError(
				domainerror.ErrCodeInvalidFirstDayOfWeek,
				"first day of week must be sunday or monday",
				domainerror.ErrInvalidFirstDayOfWeek,
			)
		}
		user.FirstDayOfWeek = firstDay
	}

	user.UpdatedAt = time.Now().UTC()

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return &UpdateProfileOutput{
		User: user,
	}, nil
}
