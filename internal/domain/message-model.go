package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MessageHeaders carry the routable part of a message. Headers.ID is the
// natural key (msg_<uuid>) and is unique across the collection.
type MessageHeaders struct {
	ID     string    `bson:"id" json:"id"`
	De     string    `bson:"de" json:"de"`
	Para   string    `bson:"para" json:"para"`
	Asunto string    `bson:"asunto" json:"asunto"`
	Stamp  time.Time `bson:"stamp" json:"stamp"`
}

type MessageBody struct {
	Contenido string  `bson:"contenido" json:"contenido"`
	Adjunto   *string `bson:"adjunto" json:"adjunto"`

	AutorEmail     string    `bson:"autorEmail,omitempty" json:"autorEmail,omitempty"`
	Token          string    `bson:"token,omitempty" json:"token,omitempty"`
	TokenEmision   time.Time `bson:"tokenEmision,omitempty" json:"tokenEmision,omitempty"`
	TokenCaducidad time.Time `bson:"tokenCaducidad,omitempty" json:"tokenCaducidad,omitempty"`
}

type Message struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Headers MessageHeaders     `bson:"headers" json:"headers"`
	Body    MessageBody        `bson:"body" json:"body"`
}
