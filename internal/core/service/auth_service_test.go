package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/pulsedash/dashboard-api/internal/core/domain"
	"github.com/pulsedash/dashboard-api/internal/core/ports"
)

func newAuthFixture(t *testing.T) (*stubUserRepo, *stubPublisher, *TokenService, *AuthService) {
	t.Helper()
	repo := newStubUserRepo()
	pub := &stubPublisher{}
	activities := NewActivityService(&stubActivityRepo{}, pub)
	tokens := NewTokenService("test-secret", time.Hour)
	svc := NewAuthService(repo, activities, tokens, zerolog.Nop())
	return repo, pub, tokens, svc
}

func seedUserRecord(t *testing.T, repo *stubUserRepo, email, password, status string) *domain.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	created, err := repo.Create(context.Background(), &domain.User{
		Name:         "Test User",
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
		Status:       status,
		JoinDate:     time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return created
}

func TestAuthService_Login_Success(t *testing.T) {
	repo, _, tokens, svc := newAuthFixture(t)
	seedUserRecord(t, repo, "alice@example.com", "s3cret", domain.StatusActive)

	token, user, err := svc.Login(context.Background(), "alice@example.com", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if user.LastLogin == nil {
		t.Fatalf("expected last login to be stamped")
	}

	claims, err := tokens.Verify(token)
	if err != nil {
		t.Fatalf("token invalid: %v", err)
	}
	if claims.Email != "alice@example.com" || claims.Role != domain.RoleUser {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	_, _, _, svc := newAuthFixture(t)

	if _, _, err := svc.Login(context.Background(), "ghost@example.com", "pass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_EmptyInput(t *testing.T) {
	_, _, _, svc := newAuthFixture(t)

	if _, _, err := svc.Login(context.Background(), "", "pass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for empty email, got %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "a@b.c", ""); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for empty password, got %v", err)
	}
}

func TestAuthService_Login_WrongPasswordCountsAttempts(t *testing.T) {
	repo, _, _, svc := newAuthFixture(t)
	u := seedUserRecord(t, repo, "bob@example.com", "goodpass", domain.StatusActive)

	if _, _, err := svc.Login(context.Background(), "bob@example.com", "badpass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}

	stored, _ := repo.FindByID(context.Background(), u.ID)
	if stored.LoginAttempts != 1 {
		t.Fatalf("expected 1 attempt recorded, got %d", stored.LoginAttempts)
	}
	if stored.LockUntil != nil {
		t.Fatalf("expected no lock yet, got %v", stored.LockUntil)
	}
}

func TestAuthService_Login_LocksAfterFiveFailures(t *testing.T) {
	repo, _, _, svc := newAuthFixture(t)
	u := seedUserRecord(t, repo, "carol@example.com", "goodpass", domain.StatusActive)

	for i := 0; i < 5; i++ {
		if _, _, err := svc.Login(context.Background(), "carol@example.com", "badpass"); err != domain.ErrInvalidCredentials {
			t.Fatalf("attempt %d: expected ErrInvalidCredentials, got %v", i+1, err)
		}
	}

	stored, _ := repo.FindByID(context.Background(), u.ID)
	if stored.LoginAttempts != 5 {
		t.Fatalf("expected 5 attempts, got %d", stored.LoginAttempts)
	}
	if stored.LockUntil == nil {
		t.Fatalf("expected lock to be set")
	}
	if remaining := time.Until(*stored.LockUntil); remaining < 29*time.Minute || remaining > 31*time.Minute {
		t.Fatalf("expected roughly 30m lock, got %v", remaining)
	}

	// The correct password is rejected while the lock window is open, and
	// the counter stays where it was.
	if _, _, err := svc.Login(context.Background(), "carol@example.com", "goodpass"); err != domain.ErrAccountLocked {
		t.Fatalf("expected ErrAccountLocked, got %v", err)
	}
	stored, _ = repo.FindByID(context.Background(), u.ID)
	if stored.LoginAttempts != 5 {
		t.Fatalf("locked attempt must not touch the counter, got %d", stored.LoginAttempts)
	}
}

func TestAuthService_Login_ExpiredLockAdmitsUser(t *testing.T) {
	repo, _, _, svc := newAuthFixture(t)
	u := seedUserRecord(t, repo, "dave@example.com", "goodpass", domain.StatusActive)

	past := time.Now().UTC().Add(-time.Minute)
	if err := repo.SetLoginState(context.Background(), u.ID, ports.LoginState{Attempts: 5, LockUntil: &past}); err != nil {
		t.Fatalf("set login state: %v", err)
	}

	token, _, err := svc.Login(context.Background(), "dave@example.com", "goodpass")
	if err != nil {
		t.Fatalf("expected login after lock expiry, got %v", err)
	}
	if token == "" {
		t.Fatalf("expected token")
	}

	stored, _ := repo.FindByID(context.Background(), u.ID)
	if stored.LoginAttempts != 0 || stored.LockUntil != nil {
		t.Fatalf("expected counter reset and lock cleared, got attempts=%d lock=%v", stored.LoginAttempts, stored.LockUntil)
	}
}

func TestAuthService_Login_NotActive(t *testing.T) {
	repo, _, _, svc := newAuthFixture(t)
	seedUserRecord(t, repo, "eve@example.com", "goodpass", domain.StatusInactive)

	if _, _, err := svc.Login(context.Background(), "eve@example.com", "goodpass"); err != domain.ErrAccountNotActive {
		t.Fatalf("expected ErrAccountNotActive, got %v", err)
	}
}

func TestAuthService_Register_DefaultsAndActivity(t *testing.T) {
	_, pub, _, svc := newAuthFixture(t)

	user, err := svc.Register(context.Background(), ports.RegisterInput{
		Name:     "Frank",
		Email:    "frank@example.com",
		Password: "hunter22",
	}, "Admin User")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if user.Role != domain.RoleUser {
		t.Fatalf("expected default role user, got %s", user.Role)
	}
	if user.Status != domain.StatusActive {
		t.Fatalf("expected active status, got %s", user.Status)
	}
	if user.PasswordHash == "hunter22" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("hunter22")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}

	names := pub.names()
	if len(names) != 1 || names[0] != domain.EventNewActivity {
		t.Fatalf("expected one newActivity event, got %v", names)
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	_, _, _, svc := newAuthFixture(t)

	input := ports.RegisterInput{Name: "Grace", Email: "grace@example.com", Password: "pass123"}
	if _, err := svc.Register(context.Background(), input, "Admin"); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, err := svc.Register(context.Background(), input, "Admin"); err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Register_BadRole(t *testing.T) {
	_, _, _, svc := newAuthFixture(t)

	input := ports.RegisterInput{Name: "Heidi", Email: "heidi@example.com", Password: "pass123", Role: "superuser"}
	if _, err := svc.Register(context.Background(), input, "Admin"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for unknown role, got %v", err)
	}
}

func TestAuthService_ChangePassword(t *testing.T) {
	repo, _, _, svc := newAuthFixture(t)
	u := seedUserRecord(t, repo, "ivan@example.com", "oldpass", domain.StatusActive)

	if err := svc.ChangePassword(context.Background(), u.ID, "wrongpass", "newpass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for wrong current password, got %v", err)
	}

	if err := svc.ChangePassword(context.Background(), u.ID, "oldpass", "newpass"); err != nil {
		t.Fatalf("change password failed: %v", err)
	}

	if _, _, err := svc.Login(context.Background(), "ivan@example.com", "newpass"); err != nil {
		t.Fatalf("login with new password failed: %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "ivan@example.com", "oldpass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected old password to stop working, got %v", err)
	}
}
