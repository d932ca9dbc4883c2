package repository

import (
	"context"
	"errors"
	"log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/revtext/backend/internal/domain"
)

type ReviewRepository interface {
	EnsureIndexes(ctx context.Context) error
	Insert(ctx context.Context, review *domain.Review) (*domain.Review, error)
	FindByID(ctx context.Context, id string) (*domain.Review, error)
	ListAll(ctx context.Context) ([]domain.Review, error)
}

type reviewRepository struct {
	col *mongo.Collection
}

func NewReviewRepository(db *mongo.Database) ReviewRepository {
	return &reviewRepository{col: db.Collection("Review")}
}

func (r *reviewRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.col.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "coordenadas", Value: "2dsphere"}}},
		{Keys: bson.D{{Key: "creadoEn", Value: -1}}},
	})
	return err
}

func (r *reviewRepository) Insert(ctx context.Context, review *domain.Review) (*domain.Review, error) {
	if review == nil {
		return nil, errors.New("nil review")
	}

	res, err := r.col.InsertOne(ctx, review)
	if err != nil {
		log.Printf("insert review error: %v", err)
		return nil, err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		review.ID = oid
	}

	return review, nil
}

func (r *reviewRepository) FindByID(ctx context.Context, id string) (*domain.Review, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	review := &domain.Review{}
	err = r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(review)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		log.Printf("find review by id error: %v", err)
		return nil, err
	}

	return review, nil
}

func (r *reviewRepository) ListAll(ctx context.Context) ([]domain.Review, error) {
	opts := options.Find().SetSort(bson.D{{Key: "creadoEn", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		log.Printf("list reviews error: %v", err)
		return nil, err
	}
	defer cur.Close(ctx)

	reviews := []domain.Review{}
	if err := cur.All(ctx, &reviews); err != nil {
		return nil, err
	}

	return reviews, nil
}
