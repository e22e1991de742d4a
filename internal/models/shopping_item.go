package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ShoppingItem is an entry on a user's shopping list. Checked items can be
// moved into the inventory collection and are deleted from the list afterwards.
type ShoppingItem struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    string             `bson:"userID" json:"-"`
	Name      string             `bson:"name" json:"name"`
	Quantity  float64            `bson:"quantity" json:"quantity"`
	Unit      Unit               `bson:"unit" json:"unit"`
	Checked   bool               `bson:"checked" json:"checked"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}
