package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"jobboard/internal/common"
	"jobboard/internal/common/security"
	"jobboard/internal/domain/model"
)

func newAuthService(repo *memUserRepo) *AuthService {
	tokens := security.NewTokenService([]byte("test-secret"), 24*time.Hour)
	return NewAuthService(repo, tokens)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := newMemUserRepo()
	svc := newAuthService(repo)
	ctx := context.Background()

	req := RegisterRequest{
		Name:     "Tech Corp",
		Email:    "employer@example.com",
		Password: "secret123",
		Role:     model.RoleEmployer,
	}

	if _, err := svc.Register(ctx, req); err != nil {
		t.Fatalf("first registration failed: %v", err)
	}
	if len(repo.users) != 1 {
		t.Fatalf("expected 1 user, got %d", len(repo.users))
	}

	_, err := svc.Register(ctx, req)
	if !errors.Is(err, common.ErrConflict) {
		t.Errorf("expected ErrConflict, got %v", err)
	}
	if len(repo.users) != 1 {
		t.Errorf("duplicate registration must not create a user, got %d", len(repo.users))
	}
}

func TestRegisterRequiresFields(t *testing.T) {
	svc := newAuthService(newMemUserRepo())

	_, err := svc.Register(context.Background(), RegisterRequest{Email: "x@example.com"})
	if !errors.Is(err, common.ErrBadRequest) {
		t.Errorf("expected ErrBadRequest, got %v", err)
	}
}

func TestLogin(t *testing.T) {
	repo := newMemUserRepo()
	svc := newAuthService(repo)
	ctx := context.Background()

	if _, err := svc.Register(ctx, RegisterRequest{
		Name:     "Tech Corp",
		Email:    "employer@example.com",
		Password: "secret123",
		Role:     model.RoleEmployer,
	}); err != nil {
		t.Fatalf("registration failed: %v", err)
	}

	resp, err := svc.Login(ctx, LoginRequest{Email: "employer@example.com", Password: "secret123"})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if resp.Token == "" {
		t.Error("expected a token")
	}

	_, err = svc.Login(ctx, LoginRequest{Email: "employer@example.com", Password: "wrong"})
	if !errors.Is(err, common.ErrUnauthorized) {
		t.Errorf("expected ErrUnauthorized on bad password, got %v", err)
	}

	_, err = svc.Login(ctx, LoginRequest{Email: "nobody@example.com", Password: "secret123"})
	if !errors.Is(err, common.ErrUnauthorized) {
		t.Errorf("expected ErrUnauthorized on unknown email, got %v", err)
	}
}
