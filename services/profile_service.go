package services

import (
	"context"
	"strings"

	"marketplace/entity"
	"marketplace/repository"
)

// ProfileUpdate is already validated by the HTTP layer.
type ProfileUpdate struct {
	Nombre   string
	Apellido string
	Telefono string
}

type ProfileService struct {
	userRepo *repository.UserRepository
}

func NewProfileService(repo *repository.UserRepository) *ProfileService {
	return &ProfileService{userRepo: repo}
}

func (s *ProfileService) GetProfile(ctx context.Context, userID uint) (*entity.User, error) {
	u, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, notFoundOr(err, "user not found")
	}
	return u, nil
}

// UpdateProfile overwrites name, surname and phone and leaves every other
// column alone.
func (s *ProfileService) UpdateProfile(ctx context.Context, userID uint, in ProfileUpdate) (*entity.User, error) {
	if _, err := s.GetProfile(ctx, userID); err != nil {
		return nil, err
	}

	// map so that an empty telefono is written too
	updates := map[string]any{
		"nombre":   strings.TrimSpace(in.Nombre),
		"apellido": strings.TrimSpace(in.Apellido),
		"telefono": strings.TrimSpace(in.Telefono),
	}
	if err := s.userRepo.Update(ctx, userID, updates); err != nil {
		return nil, err
	}
	return s.GetProfile(ctx, userID)
}
