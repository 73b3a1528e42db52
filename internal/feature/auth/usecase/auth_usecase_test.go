package usecase

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/KoheiTanihara/Gado-back/internal/feature/auth/domain/entity"
)

// mockUserRepository is a mock implementation of the UserRepository interface.
// It simulates database operations during testing.
type mockUserRepository struct {
	// CreateFunc is called when the Create method is invoked.
	CreateFunc func(ctx context.Context, user *entity.User) error
	// FindByUsernameFunc is called when the FindByUsername method is invoked.
	FindByUsernameFunc func(ctx context.Context, username string) (*entity.User, error)
	// FindByEmailFunc is called when the FindByEmail method is invoked.
	FindByEmailFunc func(ctx context.Context, email string) (*entity.User, error)
}

// Create is the mock implementation of the Create method.
func (m *mockUserRepository) Create(ctx context.Context, user *entity.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return nil // Default: success
}

// FindByUsername is the mock implementation of the FindByUsername method.
func (m *mockUserRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	if m.FindByUsernameFunc != nil {
		return m.FindByUsernameFunc(ctx, username)
	}
	return nil, ErrUserNotFound // Default: not found
}

// FindByEmail is the mock implementation of the FindByEmail method.
func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, ErrUserNotFound // Default: not found
}

// mockTokenIssuer is a mock implementation of the TokenIssuer interface.
type mockTokenIssuer struct {
	// IssueFunc is called when the Issue method is invoked.
	IssueFunc func(username string) (string, error)
}

// Issue is the mock implementation of the Issue method.
func (m *mockTokenIssuer) Issue(username string) (string, error) {
	if m.IssueFunc != nil {
		return m.IssueFunc(username)
	}
	return "mock-token", nil
}

func TestAuthUsecase_Register(t *testing.T) {
	t.Run("successful registration", func(t *testing.T) {
		mockRepo := &mockUserRepository{
			CreateFunc: func(ctx context.Context, user *entity.User) error {
				// Verify that the password is hashed
				if len(user.PasswordHash) == 0 || user.PasswordHash == "password123" {
					t.Errorf("password is not hashed")
				}
				// Verify that it's a valid bcrypt hash
				if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("password123")); err != nil {
					t.Errorf("invalid bcrypt hash: %v", err)
				}
				if !user.IsActive {
					t.Error("new user should be active")
				}
				return nil
			},
		}

		uc := NewAuthUsecase(mockRepo, &mockTokenIssuer{})
		user, err := uc.Register(context.Background(), "alice", "alice@example.com", "password123")

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.Username != "alice" || user.Email != "alice@example.com" {
			t.Errorf("unexpected user: %+v", user)
		}
	})

	t.Run("username already taken", func(t *testing.T) {
		mockRepo := &mockUserRepository{
			FindByUsernameFunc: func(ctx context.Context, username string) (*entity.User, error) {
				return &entity.User{ID: 1, Username: username}, nil
			},
		}

		uc := NewAuthUsecase(mockRepo, &mockTokenIssuer{})
		_, err := uc.Register(context.Background(), "alice", "new@example.com", "password123")

		if !errors.Is(err, ErrUsernameTaken) {
			t.Errorf("expected ErrUsernameTaken, got: %v", err)
		}
	})

	t.Run("email already taken", func(t *testing.T) {
		mockRepo := &mockUserRepository{
			FindByEmailFunc: func(ctx context.Context, email string) (*entity.User, error) {
				return &entity.User{ID: 1, Email: email}, nil
			},
		}

		uc := NewAuthUsecase(mockRepo, &mockTokenIssuer{})
		_, err := uc.Register(context.Background(), "newuser", "alice@example.com", "password123")

		if !errors.Is(err, ErrEmailTaken) {
			t.Errorf("expected ErrEmailTaken, got: %v", err)
		}
	})

	t.Run("username checked before email on dual collision", func(t *testing.T) {
		// Both username and email are taken; the username error must win.
		mockRepo := &mockUserRepository{
			FindByUsernameFunc: func(ctx context.Context, username string) (*entity.User, error) {
				return &entity.User{ID: 1, Username: username}, nil
			},
			FindByEmailFunc: func(ctx context.Context, email string) (*entity.User, error) {
				return &entity.User{ID: 2, Email: email}, nil
			},
		}

		uc := NewAuthUsecase(mockRepo, &mockTokenIssuer{})
		_, err := uc.Register(context.Background(), "alice", "alice@example.com", "password123")

		if !errors.Is(err, ErrUsernameTaken) {
			t.Errorf("expected ErrUsernameTaken, got: %v", err)
		}
	})

	t.Run("concurrent duplicate caught by store constraint", func(t *testing.T) {
		// Pre-checks pass but the store rejects the insert (lost race).
		mockRepo := &mockUserRepository{
			CreateFunc: func(ctx context.Context, user *entity.User) error {
				return ErrUsernameTaken
			},
		}

		uc := NewAuthUsecase(mockRepo, &mockTokenIssuer{})
		_, err := uc.Register(context.Background(), "alice", "alice@example.com", "password123")

		if !errors.Is(err, ErrUsernameTaken) {
			t.Errorf("expected ErrUsernameTaken, got: %v", err)
		}
	})

	t.Run("repository lookup failure", func(t *testing.T) {
		expectedErr := errors.New("database error")
		mockRepo := &mockUserRepository{
			FindByUsernameFunc: func(ctx context.Context, username string) (*entity.User, error) {
				return nil, expectedErr
			},
		}

		uc := NewAuthUsecase(mockRepo, &mockTokenIssuer{})
		_, err := uc.Register(context.Background(), "alice", "alice@example.com", "password123")

		if !errors.Is(err, expectedErr) {
			t.Errorf("expected error '%v', got: %v", expectedErr, err)
		}
		if errors.Is(err, ErrUsernameTaken) || errors.Is(err, ErrEmailTaken) {
			t.Errorf("store failure must not be reported as a conflict: %v", err)
		}
	})
}

func TestAuthUsecase_Login(t *testing.T) {
	// Hashed password for testing
	password := "password123"
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	testUser := &entity.User{
		ID:           1,
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: string(hashedPassword),
		IsActive:     true,
	}

	t.Run("successful login", func(t *testing.T) {
		mockRepo := &mockUserRepository{
			FindByUsernameFunc: func(ctx context.Context, username string) (*entity.User, error) {
				if username == testUser.Username {
					return testUser, nil
				}
				return nil, ErrUserNotFound
			},
		}
		mockIssuer := &mockTokenIssuer{
			IssueFunc: func(username string) (string, error) {
				if username != testUser.Username {
					t.Errorf("unexpected subject: %s", username)
				}
				return "mock-token", nil
			},
		}

		uc := NewAuthUsecase(mockRepo, mockIssuer)
		token, err := uc.Login(context.Background(), "alice", "password123")

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if token != "mock-token" {
			t.Errorf("expected token 'mock-token', got: '%s'", token)
		}
	})

	t.Run("unknown username and wrong password are indistinguishable", func(t *testing.T) {
		mockRepo := &mockUserRepository{
			FindByUsernameFunc: func(ctx context.Context, username string) (*entity.User, error) {
				if username == testUser.Username {
					return testUser, nil
				}
				return nil, ErrUserNotFound
			},
		}

		uc := NewAuthUsecase(mockRepo, &mockTokenIssuer{})

		_, errUnknown := uc.Login(context.Background(), "nobody", "password123")
		_, errWrongPw := uc.Login(context.Background(), "alice", "wrong-password")

		if !errors.Is(errUnknown, ErrInvalidCredentials) {
			t.Errorf("expected ErrInvalidCredentials for unknown user, got: %v", errUnknown)
		}
		if !errors.Is(errWrongPw, ErrInvalidCredentials) {
			t.Errorf("expected ErrInvalidCredentials for wrong password, got: %v", errWrongPw)
		}
		if errUnknown.Error() != errWrongPw.Error() {
			t.Errorf("error messages differ: %q vs %q", errUnknown, errWrongPw)
		}
	})

	t.Run("malformed stored hash fails closed", func(t *testing.T) {
		mockRepo := &mockUserRepository{
			FindByUsernameFunc: func(ctx context.Context, username string) (*entity.User, error) {
				return &entity.User{ID: 2, Username: username, PasswordHash: "not-a-bcrypt-hash"}, nil
			},
		}

		uc := NewAuthUsecase(mockRepo, &mockTokenIssuer{})
		_, err := uc.Login(context.Background(), "broken", "password123")

		if !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("expected ErrInvalidCredentials, got: %v", err)
		}
	})

	t.Run("store failure is not reported as invalid credentials", func(t *testing.T) {
		expectedErr := errors.New("connection refused")
		mockRepo := &mockUserRepository{
			FindByUsernameFunc: func(ctx context.Context, username string) (*entity.User, error) {
				return nil, expectedErr
			},
		}

		uc := NewAuthUsecase(mockRepo, &mockTokenIssuer{})
		_, err := uc.Login(context.Background(), "alice", "password123")

		if !errors.Is(err, expectedErr) {
			t.Errorf("expected error '%v', got: %v", expectedErr, err)
		}
		if errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("store failure must not look like bad credentials: %v", err)
		}
	})

	t.Run("token issue failure", func(t *testing.T) {
		mockRepo := &mockUserRepository{
			FindByUsernameFunc: func(ctx context.Context, username string) (*entity.User, error) {
				return testUser, nil
			},
		}
		mockIssuer := &mockTokenIssuer{
			IssueFunc: func(username string) (string, error) {
				return "", errors.New("failed to sign token")
			},
		}

		uc := NewAuthUsecase(mockRepo, mockIssuer)
		_, err := uc.Login(context.Background(), "alice", "password123")

		if err == nil {
			t.Fatal("expected error but got nil")
		}

		expectedErrMsg := "failed to issue token: failed to sign token"
		if err.Error() != expectedErrMsg {
			t.Errorf("expected error message '%s', got: '%s'", expectedErrMsg, err.Error())
		}
	})
}

func TestAuthUsecase_Logout(t *testing.T) {
	t.Run("logout is a no-op", func(t *testing.T) {
		uc := NewAuthUsecase(&mockUserRepository{}, &mockTokenIssuer{})

		if err := uc.Logout(context.Background()); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})
}
