package oauth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/github"
)

type GitHubClient struct {
	conf      *oauth2.Config
	emailsURL string
}

func NewGitHubClient(clientID, clientSecret string) *GitHubClient {
	return &GitHubClient{
		conf: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			Endpoint:     github.Endpoint,
		},
		emailsURL: "https://api.github.com/user/emails",
	}
}

type githubEmail struct {
	Email   string `json:"email"`
	Primary bool   `json:"primary"`
}

// ExchangeCode swaps an OAuth code for an access token and resolves the
// account's primary email.
func (c *GitHubClient) ExchangeCode(ctx context.Context, code string) (*Identity, error) {
	if c.conf.ClientID == "" || c.conf.ClientSecret == "" {
		return nil, errors.New("GitHub OAuth not configured")
	}

	tok, err := c.conf.Exchange(ctx, code)
	if err != nil {
		return nil, errors.New("could not exchange GitHub code")
	}

	httpClient := c.conf.Client(ctx, tok)
	httpClient.Timeout = 10 * time.Second

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.emailsURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, errors.New("could not fetch GitHub emails")
	}
	defer resp.Body.Close()

	var emails []githubEmail
	if err := json.NewDecoder(resp.Body).Decode(&emails); err != nil {
		return nil, errors.New("could not parse GitHub emails")
	}

	email := ""
	for _, e := range emails {
		if e.Primary {
			email = e.Email
			break
		}
	}
	if email == "" && len(emails) > 0 {
		email = emails[0].Email
	}
	if email == "" {
		return nil, errors.New("GitHub account has no email")
	}

	return &Identity{
		Email:      email,
		Nombre:     strings.SplitN(email, "@", 2)[0],
		ProviderID: "github_" + email,
	}, nil
}
