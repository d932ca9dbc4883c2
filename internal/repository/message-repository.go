package repository

import (
	"context"
	"errors"
	"log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/revtext/backend/internal/domain"
)

type MessageRepository interface {
	EnsureIndexes(ctx context.Context) error
	Insert(ctx context.Context, message *domain.Message) (*domain.Message, error)
	FindByNaturalKey(ctx context.Context, id string) (*domain.Message, error)
	FindByParticipant(ctx context.Context, email string) ([]domain.Message, error)
}

type messageRepository struct {
	col *mongo.Collection
}

func NewMessageRepository(db *mongo.Database) MessageRepository {
	return &messageRepository{col: db.Collection("Message")}
}

func (r *messageRepository) EnsureIndexes(ctx context.Context) error {
	unique := true
	_, err := r.col.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "headers.id", Value: 1}},
			Options: &options.IndexOptions{Unique: &unique},
		},
		{Keys: bson.D{{Key: "headers.de", Value: 1}, {Key: "headers.stamp", Value: -1}}},
		{Keys: bson.D{{Key: "headers.para", Value: 1}, {Key: "headers.stamp", Value: -1}}},
	})
	return err
}

func (r *messageRepository) Insert(ctx context.Context, message *domain.Message) (*domain.Message, error) {
	if message == nil {
		return nil, errors.New("nil message")
	}

	if _, err := r.col.InsertOne(ctx, message); err != nil {
		if isDuplicate(err) {
			return nil, ErrDuplicate
		}
		log.Printf("insert message error: %v", err)
		return nil, err
	}

	return message, nil
}

func (r *messageRepository) FindByNaturalKey(ctx context.Context, id string) (*domain.Message, error) {
	message := &domain.Message{}
	err := r.col.FindOne(ctx, bson.M{"headers.id": id}).Decode(message)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		log.Printf("find message by id error: %v", err)
		return nil, err
	}

	return message, nil
}

// FindByParticipant returns messages sent or received by the email, newest
// first.
func (r *messageRepository) FindByParticipant(ctx context.Context, email string) ([]domain.Message, error) {
	filter := bson.M{"$or": []bson.M{
		{"headers.de": email},
		{"headers.para": email},
	}}
	opts := options.Find().SetSort(bson.D{{Key: "headers.stamp", Value: -1}})

	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		log.Printf("find messages by participant error: %v", err)
		return nil, err
	}
	defer cur.Close(ctx)

	messages := []domain.Message{}
	if err := cur.All(ctx, &messages); err != nil {
		return nil, err
	}

	return messages, nil
}
