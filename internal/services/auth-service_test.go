package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/revtext/backend/internal/clients/oauth"
	"github.com/revtext/backend/internal/domain"
	"github.com/revtext/backend/internal/helper"
	"github.com/revtext/backend/internal/repository"
)

type fakeUserRepo struct {
	byEmail     map[string]*domain.User
	createCalls int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: map[string]*domain.User{}}
}

func (f *fakeUserRepo) EnsureIndexes(ctx context.Context) error { return nil }

func (f *fakeUserRepo) CreateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	f.createCalls++
	if _, exists := f.byEmail[user.Email]; exists {
		return nil, repository.ErrDuplicate
	}
	user.ID = primitive.NewObjectID()
	f.byEmail[user.Email] = user
	return user, nil
}

func (f *fakeUserRepo) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) FindUserByID(ctx context.Context, id string) (*domain.User, error) {
	for _, u := range f.byEmail {
		if u.ID.Hex() == id {
			return u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserRepo) ListUsers(ctx context.Context) ([]domain.User, error) {
	out := []domain.User{}
	for _, u := range f.byEmail {
		out = append(out, *u)
	}
	return out, nil
}

var _ repository.UserRepository = (*fakeUserRepo)(nil)

type fakeGoogle struct {
	identity *oauth.Identity
	err      error
}

func (f *fakeGoogle) Verify(ctx context.Context, rawIDToken string) (*oauth.Identity, error) {
	return f.identity, f.err
}

type fakeGitHub struct {
	identity *oauth.Identity
	err      error
}

func (f *fakeGitHub) ExchangeCode(ctx context.Context, code string) (*oauth.Identity, error) {
	return f.identity, f.err
}

func TestLoginWithGoogleCreatesUserLazily(t *testing.T) {
	repo := newFakeUserRepo()
	auth := helper.SetupAuth("test_secret")
	google := &fakeGoogle{identity: &oauth.Identity{
		Email:      "Ana@Example.com",
		Nombre:     "Ana",
		ProviderID: "g-123",
	}}
	svc := NewAuthService(repo, auth, google, &fakeGitHub{err: errors.New("unused")})

	resp, err := svc.LoginWithGoogle(context.Background(), "id-token")
	if err != nil {
		t.Fatalf("LoginWithGoogle: %v", err)
	}

	// email is normalized to lower case and becomes the unique key
	user, err := repo.FindUserByEmail(context.Background(), "ana@example.com")
	if err != nil {
		t.Fatalf("user not created: %v", err)
	}
	if user.GoogleID != "g-123" {
		t.Errorf("googleId = %q, want g-123", user.GoogleID)
	}
	if user.FechaRegistro.IsZero() || user.FechaRegistro.After(time.Now()) {
		t.Errorf("fechaRegistro = %v, want a past timestamp", user.FechaRegistro)
	}

	claims, err := auth.VerifyToken(resp.Token)
	if err != nil {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if claims.Email != "ana@example.com" {
		t.Errorf("token email = %q, want ana@example.com", claims.Email)
	}

	// second login reuses the same user
	if _, err := svc.LoginWithGoogle(context.Background(), "id-token"); err != nil {
		t.Fatalf("second login: %v", err)
	}
	if repo.createCalls != 1 {
		t.Errorf("createCalls = %d, want 1", repo.createCalls)
	}
}

func TestLoginFailsWhenProviderRejects(t *testing.T) {
	repo := newFakeUserRepo()
	auth := helper.SetupAuth("test_secret")
	svc := NewAuthService(repo, auth,
		&fakeGoogle{err: errors.New("bad token")},
		&fakeGitHub{err: errors.New("bad code")},
	)

	if _, err := svc.LoginWithGoogle(context.Background(), "nope"); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("google err = %v, want ErrUnauthorized", err)
	}
	if _, err := svc.LoginWithGitHub(context.Background(), "nope"); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("github err = %v, want ErrUnauthorized", err)
	}
	if repo.createCalls != 0 {
		t.Errorf("createCalls = %d, want 0", repo.createCalls)
	}
}

func TestLoginWithGitHubSetsProviderID(t *testing.T) {
	repo := newFakeUserRepo()
	auth := helper.SetupAuth("test_secret")
	github := &fakeGitHub{identity: &oauth.Identity{
		Email:      "bob@x.com",
		Nombre:     "bob",
		ProviderID: "github_bob@x.com",
	}}
	svc := NewAuthService(repo, auth, &fakeGoogle{err: errors.New("unused")}, github)

	if _, err := svc.LoginWithGitHub(context.Background(), "code"); err != nil {
		t.Fatalf("LoginWithGitHub: %v", err)
	}

	user, err := repo.FindUserByEmail(context.Background(), "bob@x.com")
	if err != nil {
		t.Fatalf("user not created: %v", err)
	}
	if user.GitHubID != "github_bob@x.com" {
		t.Errorf("githubId = %q, want github_bob@x.com", user.GitHubID)
	}
	if user.GoogleID != "" {
		t.Errorf("googleId = %q, want empty", user.GoogleID)
	}
}
