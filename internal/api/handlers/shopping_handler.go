package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/SaharI12/PantryChef/internal/database"
	"github.com/SaharI12/PantryChef/internal/models"
	"github.com/SaharI12/PantryChef/internal/socket"
)

type ShoppingHandler struct {
	DB  *mongo.Database
	Hub *socket.Hub
}

type ShoppingItemRequest struct {
	Name     string      `json:"name" binding:"required"`
	Quantity float64     `json:"quantity" binding:"gte=0"`
	Unit     models.Unit `json:"unit" binding:"required"`
}

// quantity applies the default of 1 when the client sent none.
func (r *ShoppingItemRequest) quantity() float64 {
	if r.Quantity == 0 {
		return 1
	}
	return r.Quantity
}

// ListItems returns the user's shopping list, unchecked items first, newest
// first within each group.
func (h *ShoppingHandler) ListItems(c *gin.Context) {
	userID := c.GetString("user_id")

	collection := h.DB.Collection(database.ShoppingCollection)
	findOptions := options.Find().SetSort(bson.D{
		{Key: "checked", Value: 1},
		{Key: "created_at", Value: -1},
	})

	cursor, err := collection.Find(context.Background(), bson.M{"userID": userID}, findOptions)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query shopping list"})
		return
	}
	defer cursor.Close(context.Background())

	var items []models.ShoppingItem
	if err = cursor.All(context.Background(), &items); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode shopping list"})
		return
	}
	if items == nil {
		items = []models.ShoppingItem{}
	}

	c.JSON(http.StatusOK, items)
}

// CreateItem adds an unchecked entry to the shopping list.
func (h *ShoppingHandler) CreateItem(c *gin.Context) {
	userID := c.GetString("user_id")

	var req ShoppingItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !req.Unit.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid unit: " + string(req.Unit)})
		return
	}

	newItem := models.ShoppingItem{
		UserID:    userID,
		Name:      req.Name,
		Quantity:  req.quantity(),
		Unit:      req.Unit,
		Checked:   false,
		CreatedAt: time.Now(),
	}

	collection := h.DB.Collection(database.ShoppingCollection)
	result, err := collection.InsertOne(context.Background(), newItem)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create shopping item"})
		return
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		newItem.ID = oid
	}

	c.JSON(http.StatusCreated, newItem)
}

// UpdateItem edits name, quantity and unit of one entry.
func (h *ShoppingHandler) UpdateItem(c *gin.Context) {
	userID := c.GetString("user_id")

	itemID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item id"})
		return
	}

	var req ShoppingItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !req.Unit.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid unit: " + string(req.Unit)})
		return
	}

	collection := h.DB.Collection(database.ShoppingCollection)
	result, err := collection.UpdateOne(context.Background(),
		bson.M{"_id": itemID, "userID": userID},
		bson.M{"$set": bson.M{
			"name":     req.Name,
			"quantity": req.quantity(),
			"unit":     req.Unit,
		}})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update shopping item"})
		return
	}
	if result.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Shopping item not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Shopping item updated successfully"})
}

// DeleteItem removes one entry from the shopping list.
func (h *ShoppingHandler) DeleteItem(c *gin.Context) {
	userID := c.GetString("user_id")

	itemID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item id"})
		return
	}

	collection := h.DB.Collection(database.ShoppingCollection)
	result, err := collection.DeleteOne(context.Background(), bson.M{"_id": itemID, "userID": userID})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete shopping item"})
		return
	}
	if result.DeletedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Shopping item not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Shopping item deleted successfully"})
}

// ToggleChecked flips the checked flag of one entry.
func (h *ShoppingHandler) ToggleChecked(c *gin.Context) {
	userID := c.GetString("user_id")

	itemID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item id"})
		return
	}

	collection := h.DB.Collection(database.ShoppingCollection)

	var item models.ShoppingItem
	err = collection.FindOne(context.Background(), bson.M{"_id": itemID, "userID": userID}).Decode(&item)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "Shopping item not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load shopping item"})
		}
		return
	}

	_, err = collection.UpdateOne(context.Background(),
		bson.M{"_id": itemID, "userID": userID},
		bson.M{"$set": bson.M{"checked": !item.Checked}})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update shopping item"})
		return
	}

	item.Checked = !item.Checked
	c.JSON(http.StatusOK, item)
}

// ClearChecked deletes all checked entries. Deletes are independent; failures
// are collected and reported without stopping the rest.
func (h *ShoppingHandler) ClearChecked(c *gin.Context) {
	userID := c.GetString("user_id")

	collection := h.DB.Collection(database.ShoppingCollection)
	checked, err := h.findChecked(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query shopping list"})
		return
	}

	removed := 0
	failed := []BatchFailure{}
	for _, item := range checked {
		_, err := collection.DeleteOne(context.Background(), bson.M{"_id": item.ID, "userID": userID})
		if err != nil {
			log.Printf("Failed to clear shopping item %s (user %s): %v", item.ID.Hex(), userID, err)
			failed = append(failed, BatchFailure{ID: item.ID.Hex(), Error: "Failed to delete item"})
			continue
		}
		removed++
	}

	status := http.StatusOK
	if len(failed) > 0 {
		status = http.StatusMultiStatus
	}
	c.JSON(status, gin.H{"removed": removed, "failed": failed})
}

// MoveCheckedToInventory converts all checked entries into inventory items
// (category defaulted to Pantry, no expiration date) and removes them from
// the shopping list. The move is a pair of independent point-writes per item
// with no cross-item transaction; an entry whose insert failed keeps its
// shopping-list record so nothing is lost.
func (h *ShoppingHandler) MoveCheckedToInventory(c *gin.Context) {
	userID := c.GetString("user_id")

	checked, err := h.findChecked(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query shopping list"})
		return
	}

	inventory := h.DB.Collection(database.InventoryCollection)
	shopping := h.DB.Collection(database.ShoppingCollection)

	moved := []models.InventoryItem{}
	failed := []BatchFailure{}

	for _, item := range checked {
		newItem := models.InventoryItem{
			UserID:         userID,
			Name:           item.Name,
			Category:       models.CategoryPantry,
			Quantity:       item.Quantity,
			Unit:           item.Unit,
			ExpirationDate: nil,
			CreatedAt:      time.Now(),
		}

		result, err := inventory.InsertOne(context.Background(), newItem)
		if err != nil {
			log.Printf("Failed to move shopping item %s to inventory (user %s): %v", item.ID.Hex(), userID, err)
			failed = append(failed, BatchFailure{ID: item.ID.Hex(), Error: "Failed to add to inventory"})
			continue
		}
		if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
			newItem.ID = oid
		}

		if _, err := shopping.DeleteOne(context.Background(), bson.M{"_id": item.ID, "userID": userID}); err != nil {
			log.Printf("Failed to remove moved shopping item %s (user %s): %v", item.ID.Hex(), userID, err)
			failed = append(failed, BatchFailure{ID: item.ID.Hex(), Error: "Added to inventory but not removed from shopping list"})
		}

		moved = append(moved, newItem)
	}

	go pushInventorySnapshot(h.DB, h.Hub, userID)

	status := http.StatusOK
	if len(failed) > 0 {
		status = http.StatusMultiStatus
	}
	c.JSON(status, gin.H{"moved": moved, "failed": failed})
}

func (h *ShoppingHandler) findChecked(userID string) ([]models.ShoppingItem, error) {
	collection := h.DB.Collection(database.ShoppingCollection)

	cursor, err := collection.Find(context.Background(), bson.M{"userID": userID, "checked": true})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(context.Background())

	var items []models.ShoppingItem
	if err := cursor.All(context.Background(), &items); err != nil {
		return nil, err
	}
	return items, nil
}
