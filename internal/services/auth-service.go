package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/revtext/backend/internal/clients/oauth"
	"github.com/revtext/backend/internal/domain"
	"github.com/revtext/backend/internal/dto"
	"github.com/revtext/backend/internal/helper"
	"github.com/revtext/backend/internal/repository"
)

type GoogleVerifier interface {
	Verify(ctx context.Context, rawIDToken string) (*oauth.Identity, error)
}

type GitHubExchanger interface {
	ExchangeCode(ctx context.Context, code string) (*oauth.Identity, error)
}

// AuthService performs federated login: the provider proves the identity, the
// user is created lazily on first login, and a bearer token is issued.
type AuthService interface {
	LoginWithGoogle(ctx context.Context, idToken string) (*dto.LoginResponse, error)
	LoginWithGitHub(ctx context.Context, code string) (*dto.LoginResponse, error)
}

type authService struct {
	users  repository.UserRepository
	auth   helper.Auth
	google GoogleVerifier
	github GitHubExchanger
}

func NewAuthService(
	users repository.UserRepository,
	auth helper.Auth,
	google GoogleVerifier,
	github GitHubExchanger,
) AuthService {
	return &authService{
		users:  users,
		auth:   auth,
		google: google,
		github: github,
	}
}

func (s *authService) LoginWithGoogle(ctx context.Context, idToken string) (*dto.LoginResponse, error) {
	if strings.TrimSpace(idToken) == "" {
		return nil, errors.New("missing idToken")
	}

	identity, err := s.google.Verify(ctx, idToken)
	if err != nil {
		return nil, ErrUnauthorized
	}

	return s.loginFederated(ctx, identity, "google")
}

func (s *authService) LoginWithGitHub(ctx context.Context, code string) (*dto.LoginResponse, error) {
	if strings.TrimSpace(code) == "" {
		return nil, errors.New("missing code")
	}

	identity, err := s.github.ExchangeCode(ctx, code)
	if err != nil {
		return nil, ErrUnauthorized
	}

	return s.loginFederated(ctx, identity, "github")
}

func (s *authService) loginFederated(ctx context.Context, identity *oauth.Identity, provider string) (*dto.LoginResponse, error) {
	email := strings.TrimSpace(strings.ToLower(identity.Email))

	user, err := s.users.FindUserByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		candidate := &domain.User{
			Email:         email,
			Nombre:        identity.Nombre,
			FechaRegistro: time.Now(),
		}
		switch provider {
		case "google":
			candidate.GoogleID = identity.ProviderID
		case "github":
			candidate.GitHubID = identity.ProviderID
		}

		user, err = s.users.CreateUser(ctx, candidate)
		if errors.Is(err, repository.ErrDuplicate) {
			// concurrent first login for the same email; the other one won
			user, err = s.users.FindUserByEmail(ctx, email)
		}
	}
	if err != nil {
		return nil, err
	}

	token, err := s.auth.GenerateToken(user)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Token: token,
		User: dto.LoginUser{
			ID:     user.ID.Hex(),
			Email:  user.Email,
			Nombre: user.Nombre,
		},
	}, nil
}
