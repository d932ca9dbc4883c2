package services

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/revtext/backend/internal/domain"
	"github.com/revtext/backend/internal/dto"
	"github.com/revtext/backend/internal/helper"
	"github.com/revtext/backend/internal/interfaces"
	"github.com/revtext/backend/internal/repository"
)

const uploadTimeout = 20 * time.Second

// IngestService runs the submission pipeline for both record kinds:
// authenticate, validate, enrich, bind identity, commit. Steps are strictly
// sequential; within the enrich step the geocode and upload calls run
// concurrently.
type IngestService interface {
	SubmitReview(ctx context.Context, bearer string, sub dto.ReviewSubmission) (*dto.ReviewSummary, error)
	SubmitMessage(ctx context.Context, bearer string, sub dto.MessageSubmission) (*dto.MessageCreated, error)
}

// ingestPolicy makes the per-flow enrichment rules explicit: reviews cannot
// exist without coordinates, messages survive a lost attachment.
type ingestPolicy struct {
	folder         string
	requireGeocode bool
}

var (
	reviewPolicy  = ingestPolicy{folder: "reviews", requireGeocode: true}
	messagePolicy = ingestPolicy{folder: "textme", requireGeocode: false}
)

type ingestService struct {
	reviews  repository.ReviewRepository
	messages repository.MessageRepository
	auth     helper.Auth
	geo      interfaces.Geocoder
	uploader interfaces.Uploader
	producer interfaces.ProducerHandler
}

func NewIngestService(
	reviews repository.ReviewRepository,
	messages repository.MessageRepository,
	auth helper.Auth,
	geo interfaces.Geocoder,
	uploader interfaces.Uploader,
	producer interfaces.ProducerHandler,
) IngestService {
	return &ingestService{
		reviews:  reviews,
		messages: messages,
		auth:     auth,
		geo:      geo,
		uploader: uploader,
		producer: producer,
	}
}

// tokenAudit is the verified identity plus the audit timestamps recovered by
// re-decoding the same token.
type tokenAudit struct {
	claims    dto.AuthClaims
	raw       string
	emision   time.Time
	caducidad time.Time
}

// authenticate verifies the bearer credential and re-decodes it (without
// verifying) for the iat/exp audit fields. The unverified decode is safe only
// because verification just succeeded on the same string.
func (s *ingestService) authenticate(bearer string) (*tokenAudit, error) {
	claims, err := s.auth.VerifyToken(bearer)
	if err != nil {
		return nil, ErrUnauthorized
	}

	raw := helper.StripBearer(bearer)
	decoded, err := s.auth.DecodeToken(raw)
	if err != nil {
		return nil, ErrUnauthorized
	}

	return &tokenAudit{
		claims:    claims,
		raw:       raw,
		emision:   decoded.IssuedAt,
		caducidad: decoded.ExpiresAt,
	}, nil
}

func (s *ingestService) SubmitReview(ctx context.Context, bearer string, sub dto.ReviewSubmission) (*dto.ReviewSummary, error) {
	audit, err := s.authenticate(bearer)
	if err != nil {
		return nil, err
	}

	val, verr := ValidateReview(sub)
	if verr != nil {
		return nil, verr
	}

	var (
		wg     sync.WaitGroup
		coords *interfaces.Coordinates
		urls   []string
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		coords = s.resolveCoords(ctx, sub.Direccion)
	}()
	go func() {
		defer wg.Done()
		urls = s.uploadAll(ctx, reviewPolicy.folder, sub.Imagenes)
	}()
	wg.Wait()

	if reviewPolicy.requireGeocode && coords == nil {
		return nil, ErrGeocodeFailed
	}

	review := &domain.Review{
		Nombre:         sub.Nombre,
		Direccion:      sub.Direccion,
		Coordenadas:    domain.NewGeoPoint(coords.Lon, coords.Lat),
		Valoracion:     val,
		AutorEmail:     audit.claims.Email,
		AutorNombre:    audit.claims.Nombre,
		Token:          audit.raw,
		TokenEmision:   audit.emision,
		TokenCaducidad: audit.caducidad,
		Imagenes:       urls,
		CreadoEn:       time.Now(),
	}

	stored, err := s.reviews.Insert(ctx, review)
	if err != nil {
		return nil, err
	}

	s.publish("review.created", stored.ID.Hex(), map[string]any{
		"id":         stored.ID.Hex(),
		"nombre":     stored.Nombre,
		"autorEmail": stored.AutorEmail,
	})

	return &dto.ReviewSummary{
		ID:          stored.ID.Hex(),
		Nombre:      stored.Nombre,
		Direccion:   stored.Direccion,
		Coordenadas: interfaces.Coordinates{Lon: stored.Coordenadas.Lon(), Lat: stored.Coordenadas.Lat()},
		Valoracion:  stored.Valoracion,
	}, nil
}

func (s *ingestService) SubmitMessage(ctx context.Context, bearer string, sub dto.MessageSubmission) (*dto.MessageCreated, error) {
	audit, err := s.authenticate(bearer)
	if err != nil {
		return nil, err
	}

	if verr := ValidateMessage(sub); verr != nil {
		return nil, verr
	}

	var adjunto *string
	if sub.Adjunto != nil {
		if url := s.uploadOne(ctx, messagePolicy.folder, *sub.Adjunto); url != "" {
			adjunto = &url
		}
		// upload failure degrades to a null attachment, never a rejection
	} else if sub.AdjuntoURL != "" {
		u := sub.AdjuntoURL
		adjunto = &u
	}

	message := &domain.Message{
		Headers: domain.MessageHeaders{
			ID:     "msg_" + uuid.NewString(),
			De:     sub.De,
			Para:   sub.Para,
			Asunto: sub.Asunto,
			Stamp:  time.Now(),
		},
		Body: domain.MessageBody{
			Contenido:      sub.Contenido,
			Adjunto:        adjunto,
			AutorEmail:     audit.claims.Email,
			Token:          audit.raw,
			TokenEmision:   audit.emision,
			TokenCaducidad: audit.caducidad,
		},
	}

	stored, err := s.messages.Insert(ctx, message)
	if err != nil {
		return nil, err
	}

	s.publish("message.created", stored.Headers.ID, map[string]any{
		"id":   stored.Headers.ID,
		"de":   stored.Headers.De,
		"para": stored.Headers.Para,
	})

	return &dto.MessageCreated{
		ID:     stored.Headers.ID,
		De:     stored.Headers.De,
		Para:   stored.Headers.Para,
		Asunto: stored.Headers.Asunto,
		Stamp:  stored.Headers.Stamp,
	}, nil
}

func (s *ingestService) resolveCoords(ctx context.Context, direccion string) *interfaces.Coordinates {
	coords, err := s.geo.Resolve(ctx, direccion)
	if err != nil {
		log.Printf("geocode error for %q: %v", direccion, err)
		return nil
	}
	return coords
}

// uploadAll stores each attachment independently and keeps the subset that
// succeeded, in submission order.
func (s *ingestService) uploadAll(ctx context.Context, folder string, files []dto.FilePart) []string {
	urls := []string{}
	for _, f := range files {
		if url := s.uploadOne(ctx, folder, f); url != "" {
			urls = append(urls, url)
		}
	}
	return urls
}

func (s *ingestService) uploadOne(ctx context.Context, folder string, f dto.FilePart) string {
	ctx, cancel := context.WithTimeout(ctx, uploadTimeout)
	defer cancel()

	url, err := s.uploader.UploadBytes(ctx, folder, f.Filename, f.Data)
	if err != nil {
		log.Printf("upload %q error: %v", f.Filename, err)
		return ""
	}
	return url
}

// publish emits an audit event after a commit. Best-effort: a missing broker
// or a publish error never fails the request.
func (s *ingestService) publish(eventType, id string, payload map[string]any) {
	if s.producer == nil {
		return
	}

	payload["type"] = eventType
	value, err := json.Marshal(payload)
	if err != nil {
		return
	}

	if err := s.producer.PublishMessage([]byte(id), value); err != nil {
		log.Printf("publish %s event error: %v", eventType, err)
	}
}
