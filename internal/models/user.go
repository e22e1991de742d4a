package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User struct matches the document in MongoDB. Password holds the bcrypt hash
// and is empty for federated accounts.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email     string             `bson:"email" json:"email"`
	Name      string             `bson:"name" json:"name"`
	Password  string             `bson:"password" json:"-"`
	Provider  string             `bson:"provider" json:"provider"` // "password" or "google"
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}
