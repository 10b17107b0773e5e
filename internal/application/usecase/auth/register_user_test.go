package auth

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"

	"github.com/MuriloKuehne/personal-finance-dashboard/internal/application/adapter"
	"github.com/MuriloKuehne/personal-finance-dashboard/internal/domain/entity"
	domainerror "github.com/MuriloKuehne/personal-finance-dashboard/internal/domain/error"
)

type fakeUserRepo struct {
	byEmail map[string]*entity.User
	created []*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]*entity.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	f.created = append(f.created, user)
	f.byEmail[user.Email] = user
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	for _, user := range f.byEmail {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, domainerror.ErrUserNotFound
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	user, ok := f.byEmail[email]
	if !ok {
		return nil, domainerror.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	f.byEmail[user.Email] = user
	return nil
}

func (f *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, ok := f.byEmail[email]
	return ok, nil
}

// fakePasswordService hashes by prefixing, which keeps assertions readable.
type fakePasswordService struct{}

func (fakePasswordService) HashPassword(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakePasswordService) VerifyPassword(hashedPassword, password string) error {
	if hashedPassword != "hashed:"+password {
		return errors.New("password mismatch")
	}
	return nil
}

func (fakePasswordService) ValidatePasswordStrength(password string) error {
	if len(password) < 8 {
		return errors.New("too short")
	}
	return nil
}

// fakeTokenService issues sequence-numbered tokens and tracks invalidations.
type fakeTokenService struct {
	issued      int
	invalidated map[string]bool
	claims      map[string]*adapter.TokenClaims
}

func newFakeTokenService() *fakeTokenService {
	return &fakeTokenService{
		invalidated: make(map[string]bool),
		claims:      make(map[string]*adapter.TokenClaims),
	}
}

func (f *fakeTokenService) GenerateTokenPair(ctx context.Context, userID uuid.UUID, email string) (*adapter.TokenPair, error) {
	f.issued++
	refresh := fmt.Sprintf("refresh-%d", f.issued)
	f.claims[refresh] = &adapter.TokenClaims{UserID: userID, Email: email}
	return &adapter.TokenPair{
		AccessToken:  fmt.Sprintf("access-%d", f.issued),
		RefreshToken: refresh,
	}, nil
}

func (f *fakeTokenService) ValidateAccessToken(ctx context.Context, token string) (*adapter.TokenClaims, error) {
	return nil, errors.New("not used in these tests")
}

func (f *fakeTokenService) ValidateRefreshToken(ctx context.Context, token string) (*adapter.TokenClaims, error) {
	claims, ok := f.claims[token]
	if !ok {
		return nil, errors.New("unknown token")
	}
	return claims, nil
}

func (f *fakeTokenService) InvalidateRefreshToken(ctx context.Context, token string) error {
	f.invalidated[token] = true
	return nil
}

func (f *fakeTokenService) IsRefreshTokenValid(ctx context.Context, token string) (bool, error) {
	_, known := f.claims[token]
	return known && !f.invalidated[token], nil
}

func assertAuthErrorCode(t *testing.T, err error, want domainerror.AuthErrorCode) {
	t.Helper()
	var authErr *domainerror.AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("expected AuthError, got %v", err)
	}
	if authErr.Code != want {
		t.Fatalf("expected code %s, got %s", want, authErr.Code)
	}
}

func TestRegisterUserUseCase_Execute(t *testing.T) {
	t.Run("registers a new user and issues tokens", func(t *testing.T) {
		repo := newFakeUserRepo()
		uc := NewRegisterUserUseCase(repo, fakePasswordService{}, newFakeTokenService())

		output, err := uc.Execute(context.Background(), RegisterUserInput{
			Email:    "ana@example.com",
			Name:     "Ana",
			Password: "Str0ngPassw0rd",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.AccessToken == "" || output.RefreshToken == "" {
			t.Fatal("expected a token pair")
		}
		if len(repo.created) != 1 {
			t.Fatalf("expected 1 created user, got %d", len(repo.created))
		}
		if repo.created[0].PasswordHash != "hashed:Str0ngPassw0rd" {
			t.Fatalf("password was not hashed: %q", repo.created[0].PasswordHash)
		}
	})

	t.Run("rejects a malformed email", func(t *testing.T) {
		uc := NewRegisterUserUseCase(newFakeUserRepo(), fakePasswordService{}, newFakeTokenService())

		_, err := uc.Execute(context.Background(), RegisterUserInput{
			Email:    "not-an-email",
			Name:     "Ana",
			Password: "Str0ngPassw0rd",
		})
		assertAuthErrorCode(t, err, domainerror.ErrCodeInvalidEmail)
	})

	t.Run("rejects a weak password", func(t *testing.T) {
		uc := NewRegisterUserUseCase(newFakeUserRepo(), fakePasswordService{}, newFakeTokenService())

		_, err := uc.Execute(context.Background(), RegisterUserInput{
			Email:    "ana@example.com",
			Name:     "Ana",
			Password: "short",
		})
		assertAuthErrorCode(t, err, domainerror.ErrCodeWeakPassword)
	})

	t.Run("rejects a duplicate email", func(t *testing.T) {
		repo := newFakeUserRepo()
		repo.byEmail["taken@example.com"] = entity.NewUser("taken@example.com", "First", "hashed:x")
		uc := NewRegisterUserUseCase(repo, fakePasswordService{}, newFakeTokenService())

		_, err := uc.Execute(context.Background(), RegisterUserInput{
			Email:    "taken@example.com",
			Name:     "Second",
			Password: "Str0ngPassw0rd",
		})
		assertAuthErrorCode(t, err, domainerror.ErrCodeEmailExists)
	})
}

func TestLoginUserUseCase_Execute(t *testing.T) {
	newRepoWithUser := func(email, password string) *fakeUserRepo {
		repo := newFakeUserRepo()
		repo.byEmail[email] = entity.NewUser(email, "Test User", "hashed:"+password)
		return repo
	}

	t.Run("logs in with valid credentials", func(t *testing.T) {
		repo := newRepoWithUser("ana@example.com", "Str0ngPassw0rd")
		uc := NewLoginUserUseCase(repo, fakePasswordService{}, newFakeTokenService())

		output, err := uc.Execute(context.Background(), LoginUserInput{
			Email:    "ana@example.com",
			Password: "Str0ngPassw0rd",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.User.Email != "ana@example.com" {
			t.Fatalf("unexpected user: %s", output.User.Email)
		}
	})

	t.Run("wrong password and unknown email report the same code", func(t *testing.T) {
		repo := newRepoWithUser("ana@example.com", "Str0ngPassw0rd")
		uc := NewLoginUserUseCase(repo, fakePasswordService{}, newFakeTokenService())

		_, wrongPassword := uc.Execute(context.Background(), LoginUserInput{
			Email:    "ana@example.com",
			Password: "WrongPassword1",
		})
		assertAuthErrorCode(t, wrongPassword, domainerror.ErrCodeInvalidCredentials)

		_, unknownEmail := uc.Execute(context.Background(), LoginUserInput{
			Email:    "nobody@example.com",
			Password: "Str0ngPassw0rd",
		})
		assertAuthErrorCode(t, unknownEmail, domainerror.ErrCodeInvalidCredentials)
	})
}

func TestRefreshTokenUseCase_Execute(t *testing.T) {
	t.Run("rotates the pair and revokes the used token", func(t *testing.T) {
		tokens := newFakeTokenService()
		pair, err := tokens.GenerateTokenPair(context.Background(), uuid.New(), "ana@example.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		uc := NewRefreshTokenUseCase(tokens)
		output, err := uc.Execute(context.Background(), RefreshTokenInput{RefreshToken: pair.RefreshToken})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.RefreshToken == pair.RefreshToken {
			t.Fatal("expected a new refresh token")
		}
		if !tokens.invalidated[pair.RefreshToken] {
			t.Fatal("used refresh token was not invalidated")
		}

		// The revoked token must not be accepted a second time.
		_, err = uc.Execute(context.Background(), RefreshTokenInput{RefreshToken: pair.RefreshToken})
		assertAuthErrorCode(t, err, domainerror.ErrCodeInvalidToken)
	})

	t.Run("rejects an unknown token", func(t *testing.T) {
		uc := NewRefreshTokenUseCase(newFakeTokenService())

		_, err := uc.Execute(context.Background(), RefreshTokenInput{RefreshToken: "forged"})
		assertAuthErrorCode(t, err, domainerror.ErrCodeInvalidToken)
	})
}
