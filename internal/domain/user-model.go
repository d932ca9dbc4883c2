package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is created lazily on first federated login and looked up by email on
// every subsequent login. Email is the unique key.
type User struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email         string             `bson:"email" json:"email"`
	GoogleID      string             `bson:"googleId,omitempty" json:"googleId,omitempty"`
	GitHubID      string             `bson:"githubId,omitempty" json:"githubId,omitempty"`
	Nombre        string             `bson:"nombre,omitempty" json:"nombre,omitempty"`
	FechaRegistro time.Time          `bson:"fechaRegistro" json:"fechaRegistro"`
}
