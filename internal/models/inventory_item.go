package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// InventoryItem is a single pantry item owned by one user.
// ExpirationDate is optional; CreatedAt is set once at creation and never mutated.
type InventoryItem struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID         string             `bson:"userID" json:"-"`
	Name           string             `bson:"name" json:"name"`
	Category       Category           `bson:"category" json:"category"`
	Quantity       float64            `bson:"quantity" json:"quantity"`
	Unit           Unit               `bson:"unit" json:"unit"`
	ExpirationDate *time.Time         `bson:"expiration_date" json:"expiration_date"`
	CreatedAt      time.Time          `bson:"created_at" json:"created_at"`
}
