package handlers

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/SaharI12/PantryChef/internal/database"
	"github.com/SaharI12/PantryChef/internal/freshness"
	"github.com/SaharI12/PantryChef/internal/models"
	"github.com/SaharI12/PantryChef/internal/socket"
)

// inventoryItemView is an item annotated with its derived freshness status.
// The status is recomputed on every read and never persisted.
type inventoryItemView struct {
	models.InventoryItem
	Status freshness.Status `json:"status"`
}

type inventorySnapshot struct {
	Type  string              `json:"type"`
	Items []inventoryItemView `json:"items"`
}

func annotateItems(items []models.InventoryItem, now time.Time) []inventoryItemView {
	views := make([]inventoryItemView, len(items))
	for i, item := range items {
		views[i] = inventoryItemView{
			InventoryItem: item,
			Status:        freshness.Classify(item.ExpirationDate, now),
		}
	}
	return views
}

// loadInventory reads a user's full inventory, urgency-sorted.
func loadInventory(ctx context.Context, db *mongo.Database, userID string) ([]models.InventoryItem, error) {
	cursor, err := db.Collection(database.InventoryCollection).Find(ctx, bson.M{"userID": userID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var items []models.InventoryItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []models.InventoryItem{}
	}

	return freshness.SortByUrgency(items, time.Now()), nil
}

// pushInventorySnapshot re-reads the user's inventory and pushes it to all
// connected clients. Called after every inventory mutation; failures only log.
func pushInventorySnapshot(db *mongo.Database, hub *socket.Hub, userID string) {
	if hub == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	items, err := loadInventory(ctx, db, userID)
	if err != nil {
		log.Printf("Failed to load inventory snapshot for user %s: %v", userID, err)
		return
	}

	message, err := json.Marshal(inventorySnapshot{
		Type:  "inventory_snapshot",
		Items: annotateItems(items, time.Now()),
	})
	if err != nil {
		log.Printf("Failed to encode inventory snapshot for user %s: %v", userID, err)
		return
	}

	hub.Broadcast(userID, message)
}
