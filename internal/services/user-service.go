package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/revtext/backend/internal/domain"
	"github.com/revtext/backend/internal/dto"
	"github.com/revtext/backend/internal/repository"
)

type UserService interface {
	CreateUser(ctx context.Context, input dto.CreateUserRequest) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	GetUser(ctx context.Context, id string) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
}

type userService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) CreateUser(ctx context.Context, input dto.CreateUserRequest) (*domain.User, error) {
	email := strings.TrimSpace(strings.ToLower(input.Email))
	if email == "" {
		return nil, errors.New("missing required field: email")
	}

	return s.repo.CreateUser(ctx, &domain.User{
		Email:         email,
		GoogleID:      input.GoogleID,
		Nombre:        input.Nombre,
		FechaRegistro: time.Now(),
	})
}

func (s *userService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.repo.ListUsers(ctx)
}

func (s *userService) GetUser(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindUserByID(ctx, id)
}

func (s *userService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.repo.FindUserByEmail(ctx, strings.TrimSpace(strings.ToLower(email)))
}
