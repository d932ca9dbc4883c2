package services

import (
	"context"

	"github.com/revtext/backend/internal/domain"
	"github.com/revtext/backend/internal/dto"
	"github.com/revtext/backend/internal/helper"
	"github.com/revtext/backend/internal/interfaces"
	"github.com/revtext/backend/internal/repository"
)

// QueryService serves the read side of both record kinds.
type QueryService interface {
	ListReviews(ctx context.Context) ([]dto.ReviewSummary, error)
	GetReview(ctx context.Context, id string) (*dto.ReviewDetail, error)
	ListMessagesByUser(ctx context.Context, email string) ([]dto.MessageHeader, error)
	GetMessage(ctx context.Context, id string) (*domain.Message, error)
}

type queryService struct {
	reviews  repository.ReviewRepository
	messages repository.MessageRepository
	auth     helper.Auth
}

func NewQueryService(
	reviews repository.ReviewRepository,
	messages repository.MessageRepository,
	auth helper.Auth,
) QueryService {
	return &queryService{
		reviews:  reviews,
		messages: messages,
		auth:     auth,
	}
}

func (s *queryService) ListReviews(ctx context.Context) ([]dto.ReviewSummary, error) {
	reviews, err := s.reviews.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	out := []dto.ReviewSummary{}
	for _, r := range reviews {
		out = append(out, summaryOf(r))
	}

	return out, nil
}

// GetReview returns the full document including the audit token fields. The
// stored token is decoded for display only; an expired or mangled stored
// token must not fail the read.
func (s *queryService) GetReview(ctx context.Context, id string) (*dto.ReviewDetail, error) {
	review, err := s.reviews.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &dto.ReviewDetail{
		ReviewSummary:  summaryOf(*review),
		AutorEmail:     review.AutorEmail,
		AutorNombre:    review.AutorNombre,
		Token:          review.Token,
		TokenEmision:   review.TokenEmision,
		TokenCaducidad: review.TokenCaducidad,
		Imagenes:       review.Imagenes,
		CreadoEn:       review.CreadoEn,
	}
	if detail.Imagenes == nil {
		detail.Imagenes = []string{}
	}

	if claims, err := s.auth.VerifyToken(review.Token); err == nil {
		detail.TokenInfo = claims
	} else {
		detail.TokenInfo = map[string]bool{"expired": true}
	}

	return detail, nil
}

func (s *queryService) ListMessagesByUser(ctx context.Context, email string) ([]dto.MessageHeader, error) {
	messages, err := s.messages.FindByParticipant(ctx, email)
	if err != nil {
		return nil, err
	}

	headers := []dto.MessageHeader{}
	for _, m := range messages {
		headers = append(headers, dto.MessageHeader{
			ID:     m.Headers.ID,
			De:     m.Headers.De,
			Para:   m.Headers.Para,
			Asunto: m.Headers.Asunto,
			Stamp:  m.Headers.Stamp,
		})
	}

	return headers, nil
}

func (s *queryService) GetMessage(ctx context.Context, id string) (*domain.Message, error) {
	return s.messages.FindByNaturalKey(ctx, id)
}

func summaryOf(r domain.Review) dto.ReviewSummary {
	return dto.ReviewSummary{
		ID:          r.ID.Hex(),
		Nombre:      r.Nombre,
		Direccion:   r.Direccion,
		Coordenadas: interfaces.Coordinates{Lon: r.Coordenadas.Lon(), Lat: r.Coordenadas.Lat()},
		Valoracion:  r.Valoracion,
	}
}
