package service

import (
	"context"
	"fmt"

	"jobboard/internal/domain/model"
	"jobboard/internal/domain/repository"
)

type AdminService struct {
	userRepo repository.UserRepository
}

func NewAdminService(userRepo repository.UserRepository) *AdminService {
	return &AdminService{userRepo: userRepo}
}

// ListUsers returns every account. Password hashes never serialize, so
// the listing is safe to hand to the admin UI as-is.
func (s *AdminService) ListUsers(ctx context.Context) ([]model.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}
