package helper

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/revtext/backend/internal/domain"
	"github.com/revtext/backend/internal/dto"
)

// TokenValidity is the fixed lifetime of an issued bearer token.
const TokenValidity = time.Hour

// ErrInvalidToken is the only error VerifyToken returns. Signature, format and
// expiry failures are indistinguishable to the caller.
var ErrInvalidToken = errors.New("invalid or expired token")

type Auth struct {
	Secret string
}

func SetupAuth(s string) Auth {
	return Auth{
		Secret: s,
	}
}

// StripBearer removes an optional "Bearer " prefix from an Authorization value.
func StripBearer(tokenString string) string {
	tokenString = strings.TrimSpace(tokenString)
	if strings.HasPrefix(strings.ToLower(tokenString), "bearer ") {
		parts := strings.SplitN(tokenString, " ", 2)
		if len(parts) == 2 {
			return strings.TrimSpace(parts[1])
		}
	}
	return tokenString
}

func (a Auth) GenerateToken(user *domain.User) (string, error) {
	if user == nil || user.Email == "" {
		return "", errors.New("required inputs are missing to generate token")
	}

	now := time.Now()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":      user.ID.Hex(),
		"email":    user.Email,
		"nombre":   user.Nombre,
		"googleId": user.GoogleID,
		"githubId": user.GitHubID,
		"iat":      now.Unix(),
		"exp":      now.Add(TokenValidity).Unix(),
	})

	tokenStr, err := token.SignedString([]byte(a.Secret))
	if err != nil {
		return "", errors.New("unable to sign the token")
	}

	return tokenStr, nil
}

// VerifyToken checks signature and expiry of a bearer token, with or without
// the "Bearer " prefix.
func (a Auth) VerifyToken(tokenString string) (dto.AuthClaims, error) {
	tokenString = StripBearer(tokenString)
	if tokenString == "" {
		return dto.AuthClaims{}, ErrInvalidToken
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(a.Secret), nil
	})
	if err != nil || !token.Valid {
		return dto.AuthClaims{}, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return dto.AuthClaims{}, ErrInvalidToken
	}

	out := claimsFromMap(claims)
	if out.Email == "" || !out.ExpiresAt.After(time.Now()) {
		return dto.AuthClaims{}, ErrInvalidToken
	}

	return out, nil
}

// DecodeToken parses a token without checking signature or expiry. It exists
// to recover iat/exp for audit fields once VerifyToken has already succeeded
// in the same request, and must never gate access on its own.
func (a Auth) DecodeToken(tokenString string) (dto.AuthClaims, error) {
	tokenString = StripBearer(tokenString)

	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return dto.AuthClaims{}, errors.New("malformed token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return dto.AuthClaims{}, errors.New("malformed token")
	}

	return claimsFromMap(claims), nil
}

func (a Auth) GetCurrentUser(ctx *fiber.Ctx) (dto.AuthClaims, error) {
	u := ctx.Locals("user")
	claims, ok := u.(dto.AuthClaims)
	if !ok {
		return dto.AuthClaims{}, errors.New("missing auth user in context")
	}
	return claims, nil
}

func claimsFromMap(claims jwt.MapClaims) dto.AuthClaims {
	out := dto.AuthClaims{}

	if v, ok := claims["sub"].(string); ok {
		out.Subject = v
	}
	if v, ok := claims["email"].(string); ok {
		out.Email = v
	}
	if v, ok := claims["nombre"].(string); ok {
		out.Nombre = v
	}
	if v, ok := claims["googleId"].(string); ok {
		out.GoogleID = v
	}
	if v, ok := claims["githubId"].(string); ok {
		out.GitHubID = v
	}
	if v, ok := claims["iat"].(float64); ok {
		out.IssuedAt = time.Unix(int64(v), 0)
	}
	if v, ok := claims["exp"].(float64); ok {
		out.ExpiresAt = time.Unix(int64(v), 0)
	}

	return out
}
