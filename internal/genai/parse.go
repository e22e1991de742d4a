package genai

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/SaharI12/PantryChef/internal/models"
)

// DefaultShelfLifeDays is used when the model omits a shelf-life estimate.
const DefaultShelfLifeDays = 7

// ErrNoJSONArray means the model reply contained no JSON array to extract.
// The error is fatal to the single request only; the caller can retry.
var ErrNoJSONArray = errors.New("no JSON array found in model response")

// ScannedItem is one item proposal parsed out of a vision reply. The ID is a
// transient identifier for the client's confirmation screen, not a stored id.
type ScannedItem struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Category       models.Category `json:"category"`
	Quantity       float64         `json:"quantity"`
	Unit           models.Unit     `json:"unit"`
	ShelfLifeDays  int             `json:"shelf_life_days"`
	ExpirationDate time.Time       `json:"expiration_date"`
}

// ExtractJSONArray locates the bracketed JSON array inside a reply that may be
// wrapped in commentary, from the first '[' to the last ']'.
func ExtractJSONArray(text string) (string, error) {
	first := strings.Index(text, "[")
	if first == -1 {
		return "", ErrNoJSONArray
	}
	last := strings.LastIndex(text, "]")
	if last < first {
		return "", ErrNoJSONArray
	}
	return text[first : last+1], nil
}

// ParseScanResponse extracts item proposals from a raw vision reply. Missing or
// invalid fields fall back to defaults: quantity 1, unit "units", category
// Pantry, and a shelf life of DefaultShelfLifeDays from now.
func ParseScanResponse(text string, now time.Time) ([]ScannedItem, error) {
	raw, err := ExtractJSONArray(text)
	if err != nil {
		return nil, err
	}

	var parsed []struct {
		Name          string  `json:"name"`
		Category      string  `json:"category"`
		Quantity      float64 `json:"quantity"`
		Unit          string  `json:"unit"`
		ShelfLifeDays int     `json:"shelf_life_days"`
	}
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse item data from model response: %w", err)
	}

	items := make([]ScannedItem, 0, len(parsed))
	for _, p := range parsed {
		if strings.TrimSpace(p.Name) == "" {
			continue
		}

		category := models.Category(p.Category)
		if !category.Valid() {
			category = models.CategoryPantry
		}
		unit := models.Unit(p.Unit)
		if !unit.Valid() {
			unit = models.UnitUnits
		}
		quantity := p.Quantity
		if quantity <= 0 {
			quantity = 1
		}
		days := p.ShelfLifeDays
		if days <= 0 {
			days = DefaultShelfLifeDays
		}

		items = append(items, ScannedItem{
			ID:             uuid.New().String(),
			Name:           p.Name,
			Category:       category,
			Quantity:       quantity,
			Unit:           unit,
			ShelfLifeDays:  days,
			ExpirationDate: now.AddDate(0, 0, days),
		})
	}

	return items, nil
}
