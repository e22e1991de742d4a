package usage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/SaharI12/PantryChef/internal/models"
)

func TestApply(t *testing.T) {
	id := primitive.NewObjectID()

	tests := []struct {
		name        string
		quantity    float64
		amountUsed  float64
		expected    Action
		newQuantity float64
	}{
		{
			name:       "using everything removes the item",
			quantity:   5,
			amountUsed: 5,
			expected:   ActionRemove,
		},
		{
			name:        "partial usage updates the quantity",
			quantity:    5,
			amountUsed:  3,
			expected:    ActionUpdateQuantity,
			newQuantity: 2,
		},
		{
			name:       "overspend is clamped to available quantity",
			quantity:   5,
			amountUsed: 7,
			expected:   ActionRemove,
		},
		{
			name:        "negative amount is clamped to zero",
			quantity:    5,
			amountUsed:  -2,
			expected:    ActionUpdateQuantity,
			newQuantity: 5,
		},
		{
			name:        "fractional usage",
			quantity:    1.5,
			amountUsed:  0.5,
			expected:    ActionUpdateQuantity,
			newQuantity: 1,
		},
		{
			name:       "zero quantity item is removed",
			quantity:   0,
			amountUsed: 0,
			expected:   ActionRemove,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := models.InventoryItem{ID: id, Name: "Milk", Quantity: tt.quantity}
			outcome := Apply(item, tt.amountUsed)

			assert.Equal(t, id, outcome.ItemID)
			assert.Equal(t, tt.expected, outcome.Action)
			if tt.expected == ActionUpdateQuantity {
				assert.Equal(t, tt.newQuantity, outcome.NewQuantity)
			}
		})
	}
}
