package oauth

import (
	"context"
	"errors"

	"google.golang.org/api/idtoken"
)

// Identity is what a federated provider proved about the caller.
type Identity struct {
	Email      string
	Nombre     string
	ProviderID string
}

type GoogleVerifier struct {
	clientID string
}

func NewGoogleVerifier(clientID string) *GoogleVerifier {
	return &GoogleVerifier{clientID: clientID}
}

// Verify validates a Google ID token against the configured client ID.
func (g *GoogleVerifier) Verify(ctx context.Context, rawIDToken string) (*Identity, error) {
	if g.clientID == "" {
		return nil, errors.New("GOOGLE_CLIENT_ID not configured")
	}

	payload, err := idtoken.Validate(ctx, rawIDToken, g.clientID)
	if err != nil {
		return nil, errors.New("could not verify Google token")
	}

	email, _ := payload.Claims["email"].(string)
	if email == "" {
		return nil, errors.New("Google token has no email")
	}
	nombre, _ := payload.Claims["name"].(string)

	return &Identity{
		Email:      email,
		Nombre:     nombre,
		ProviderID: payload.Subject,
	}, nil
}
