// Package usage computes the outcome of consuming part of an inventory item's
// quantity. Outcomes are pure values; persisting them is the caller's job.
package usage

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/SaharI12/PantryChef/internal/models"
)

type Action string

const (
	ActionRemove         Action = "remove"
	ActionUpdateQuantity Action = "update_quantity"
)

// Outcome describes what should happen to one item after usage is applied.
// NewQuantity is only meaningful for ActionUpdateQuantity.
type Outcome struct {
	ItemID      primitive.ObjectID `json:"itemID"`
	Action      Action             `json:"action"`
	NewQuantity float64            `json:"newQuantity,omitempty"`
}

// Apply computes the outcome of consuming amountUsed from item. The amount is
// clamped to [0, item.Quantity], so a negative amount is a no-op update and an
// oversized amount drains the item. A quantity driven to zero or below removes
// the record rather than persisting a non-positive quantity.
func Apply(item models.InventoryItem, amountUsed float64) Outcome {
	if amountUsed < 0 {
		amountUsed = 0
	}
	if amountUsed > item.Quantity {
		amountUsed = item.Quantity
	}

	newQuantity := item.Quantity - amountUsed
	if newQuantity <= 0 {
		return Outcome{ItemID: item.ID, Action: ActionRemove}
	}
	return Outcome{ItemID: item.ID, Action: ActionUpdateQuantity, NewQuantity: newQuantity}
}
