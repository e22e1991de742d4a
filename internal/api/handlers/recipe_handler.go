package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/SaharI12/PantryChef/internal/freshness"
	"github.com/SaharI12/PantryChef/internal/genai"
	"github.com/SaharI12/PantryChef/internal/models"
)

// maxChatTurns bounds how much conversation history is replayed to the model.
const maxChatTurns = 10

const recipeSystemPrompt = `You are a helpful cooking assistant for a pantry app.
Suggest recipes the user can cook with the ingredients they currently have.
Prefer ingredients that are expiring soon and skip ingredients that are already expired.
Keep answers short and practical.`

type RecipeHandler struct {
	DB *mongo.Database
	AI *genai.Client
}

type ChatTurn struct {
	Role string `json:"role" binding:"required,oneof=user assistant"`
	Text string `json:"text" binding:"required"`
}

type SuggestRequest struct {
	Messages []ChatTurn `json:"messages" binding:"omitempty,dive"`
}

// Suggest composes the system instructions, the recent conversation turns and
// the user's serialized current inventory into one prompt and returns the
// assistant's free-form reply. No structured parsing of the reply is done.
func (h *RecipeHandler) Suggest(c *gin.Context) {
	userID := c.GetString("user_id")

	var req SuggestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	items, err := loadInventory(context.Background(), h.DB, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load inventory"})
		return
	}

	contents := []genai.Content{
		{
			Role: "user",
			Parts: []genai.Part{
				{Text: recipeSystemPrompt + "\n\nCurrent inventory:\n" + serializeInventory(items)},
			},
		},
	}

	turns := req.Messages
	if len(turns) > maxChatTurns {
		turns = turns[len(turns)-maxChatTurns:]
	}
	for _, turn := range turns {
		role := "user"
		if turn.Role == "assistant" {
			role = "model"
		}
		contents = append(contents, genai.Content{
			Role:  role,
			Parts: []genai.Part{{Text: turn.Text}},
		})
	}
	if len(turns) == 0 {
		contents = append(contents, genai.Content{
			Role:  "user",
			Parts: []genai.Part{{Text: "What can I cook today?"}},
		})
	}

	reply, err := h.AI.Generate(c.Request.Context(), contents)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Recipe suggestion failed, please try again"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"reply": reply})
}

// serializeInventory renders items as one line each for prompt composition.
func serializeInventory(items []models.InventoryItem) string {
	if len(items) == 0 {
		return "(the pantry is empty)"
	}

	now := time.Now()
	var b strings.Builder
	for _, item := range items {
		line := fmt.Sprintf("- %g %s %s (%s)", item.Quantity, item.Unit, item.Name, item.Category.Label())
		if item.ExpirationDate != nil {
			line += fmt.Sprintf(", expires %s", item.ExpirationDate.Format("2006-01-02"))
			if freshness.Classify(item.ExpirationDate, now) == freshness.StatusExpired {
				line += " (already expired)"
			}
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}
