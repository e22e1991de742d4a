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

	"github.com/SaharI12/PantryChef/internal/database"
	"github.com/SaharI12/PantryChef/internal/models"
	"github.com/SaharI12/PantryChef/internal/socket"
	"github.com/SaharI12/PantryChef/internal/usage"
)

type InventoryHandler struct {
	DB  *mongo.Database
	Hub *socket.Hub
}

type ItemRequest struct {
	Name           string          `json:"name" binding:"required"`
	Category       models.Category `json:"category" binding:"required"`
	Quantity       float64         `json:"quantity" binding:"gte=0"`
	Unit           models.Unit     `json:"unit" binding:"required"`
	ExpirationDate *time.Time      `json:"expiration_date"`
}

type BatchCreateRequest struct {
	Items []ItemRequest `json:"items" binding:"required,min=1,dive"`
}

type UsageEntry struct {
	ItemID     string  `json:"itemID" binding:"required"`
	AmountUsed float64 `json:"amountUsed"`
}

type ApplyUsageRequest struct {
	Entries []UsageEntry `json:"entries" binding:"required,min=1,dive"`
}

// BatchFailure reports one failed point-write in a batch operation.
type BatchFailure struct {
	ID    string `json:"id"`
	Error string `json:"error"`
}

func (r *ItemRequest) validate() string {
	if !r.Category.Valid() {
		return "Invalid category: " + string(r.Category)
	}
	if !r.Unit.Valid() {
		return "Invalid unit: " + string(r.Unit)
	}
	return ""
}

// quantity applies the default of 1 when the client sent none.
func (r *ItemRequest) quantity() float64 {
	if r.Quantity == 0 {
		return 1
	}
	return r.Quantity
}

func (r *ItemRequest) toItem(userID string) models.InventoryItem {
	return models.InventoryItem{
		UserID:         userID,
		Name:           r.Name,
		Category:       r.Category,
		Quantity:       r.quantity(),
		Unit:           r.Unit,
		ExpirationDate: r.ExpirationDate,
		CreatedAt:      time.Now(),
	}
}

// ListItems returns the user's inventory sorted by expiration urgency, each
// item annotated with its current freshness status. An optional "category"
// query parameter filters the result.
func (h *InventoryHandler) ListItems(c *gin.Context) {
	userID := c.GetString("user_id")

	items, err := loadInventory(context.Background(), h.DB, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query inventory"})
		return
	}

	if category := c.Query("category"); category != "" {
		filtered := []models.InventoryItem{}
		for _, item := range items {
			if item.Category == models.Category(category) {
				filtered = append(filtered, item)
			}
		}
		items = filtered
	}

	c.JSON(http.StatusOK, annotateItems(items, time.Now()))
}

// CreateItem adds a single item to the user's inventory.
func (h *InventoryHandler) CreateItem(c *gin.Context) {
	userID := c.GetString("user_id")

	var req ItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if msg := req.validate(); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	newItem := req.toItem(userID)

	collection := h.DB.Collection(database.InventoryCollection)
	result, err := collection.InsertOne(context.Background(), newItem)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create item"})
		return
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		newItem.ID = oid
	}

	go pushInventorySnapshot(h.DB, h.Hub, userID)

	c.JSON(http.StatusCreated, newItem)
}

// BatchCreateItems inserts several items at once, typically the confirmed
// proposals of a photo scan. Inserts are independent point-writes: one failure
// does not stop the rest, and every failure is reported back.
func (h *InventoryHandler) BatchCreateItems(c *gin.Context) {
	userID := c.GetString("user_id")

	var req BatchCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	for _, item := range req.Items {
		if msg := (&item).validate(); msg != "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": msg})
			return
		}
	}

	collection := h.DB.Collection(database.InventoryCollection)
	added := []models.InventoryItem{}
	failed := []BatchFailure{}

	for _, itemReq := range req.Items {
		newItem := itemReq.toItem(userID)
		result, err := collection.InsertOne(context.Background(), newItem)
		if err != nil {
			log.Printf("Batch insert failed for item %q (user %s): %v", itemReq.Name, userID, err)
			failed = append(failed, BatchFailure{ID: itemReq.Name, Error: "Failed to save item"})
			continue
		}
		if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
			newItem.ID = oid
		}
		added = append(added, newItem)
	}

	go pushInventorySnapshot(h.DB, h.Hub, userID)

	status := http.StatusCreated
	if len(failed) > 0 {
		status = http.StatusMultiStatus
	}
	c.JSON(status, gin.H{"added": added, "failed": failed})
}

// UpdateItem replaces the editable fields of one item.
func (h *InventoryHandler) UpdateItem(c *gin.Context) {
	userID := c.GetString("user_id")

	itemID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item id"})
		return
	}

	var req ItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if msg := req.validate(); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	collection := h.DB.Collection(database.InventoryCollection)
	result, err := collection.UpdateOne(context.Background(),
		bson.M{"_id": itemID, "userID": userID},
		bson.M{"$set": bson.M{
			"name":            req.Name,
			"category":        req.Category,
			"quantity":        req.quantity(),
			"unit":            req.Unit,
			"expiration_date": req.ExpirationDate,
		}})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update item"})
		return
	}
	if result.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		return
	}

	go pushInventorySnapshot(h.DB, h.Hub, userID)

	c.JSON(http.StatusOK, gin.H{"message": "Item updated successfully"})
}

// DeleteItem removes one item from the user's inventory.
func (h *InventoryHandler) DeleteItem(c *gin.Context) {
	userID := c.GetString("user_id")

	itemID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item id"})
		return
	}

	collection := h.DB.Collection(database.InventoryCollection)
	result, err := collection.DeleteOne(context.Background(), bson.M{"_id": itemID, "userID": userID})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
		return
	}
	if result.DeletedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		return
	}

	go pushInventorySnapshot(h.DB, h.Hub, userID)

	c.JSON(http.StatusOK, gin.H{"message": "Item deleted successfully"})
}

// ApplyUsage records consumed amounts for a batch of items. Each entry is
// evaluated independently: the amount is clamped to the available quantity,
// an item drained to zero is deleted, anything else gets a point update.
// A failed entry never blocks the rest of the batch.
func (h *InventoryHandler) ApplyUsage(c *gin.Context) {
	userID := c.GetString("user_id")

	var req ApplyUsageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	collection := h.DB.Collection(database.InventoryCollection)
	applied := []usage.Outcome{}
	failed := []BatchFailure{}

	for _, entry := range req.Entries {
		itemID, err := primitive.ObjectIDFromHex(entry.ItemID)
		if err != nil {
			failed = append(failed, BatchFailure{ID: entry.ItemID, Error: "Invalid item id"})
			continue
		}

		var item models.InventoryItem
		err = collection.FindOne(context.Background(), bson.M{"_id": itemID, "userID": userID}).Decode(&item)
		if err != nil {
			if err == mongo.ErrNoDocuments {
				failed = append(failed, BatchFailure{ID: entry.ItemID, Error: "Item not found"})
			} else {
				log.Printf("Usage lookup failed for item %s (user %s): %v", entry.ItemID, userID, err)
				failed = append(failed, BatchFailure{ID: entry.ItemID, Error: "Failed to load item"})
			}
			continue
		}

		outcome := usage.Apply(item, entry.AmountUsed)
		switch outcome.Action {
		case usage.ActionRemove:
			_, err = collection.DeleteOne(context.Background(), bson.M{"_id": itemID, "userID": userID})
		case usage.ActionUpdateQuantity:
			_, err = collection.UpdateOne(context.Background(),
				bson.M{"_id": itemID, "userID": userID},
				bson.M{"$set": bson.M{"quantity": outcome.NewQuantity}})
		}
		if err != nil {
			log.Printf("Usage write failed for item %s (user %s): %v", entry.ItemID, userID, err)
			failed = append(failed, BatchFailure{ID: entry.ItemID, Error: "Failed to apply usage"})
			continue
		}

		applied = append(applied, outcome)
	}

	go pushInventorySnapshot(h.DB, h.Hub, userID)

	status := http.StatusOK
	if len(failed) > 0 {
		status = http.StatusMultiStatus
	}
	c.JSON(status, gin.H{"applied": applied, "failed": failed})
}
