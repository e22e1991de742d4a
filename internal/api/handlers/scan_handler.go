package handlers

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/SaharI12/PantryChef/internal/genai"
	"github.com/SaharI12/PantryChef/internal/s3"
)

// maxImageSize caps uploaded photos at 10 MB.
const maxImageSize = 10 << 20

const scanPrompt = `Analyze this food image. Identify ALL food items visible.
Return a STRICT JSON ARRAY of objects. Do not use Markdown.
Example format: [{"name": "Apple", "category": "FruitVeg", "quantity": 1, "unit": "units", "shelf_life_days": 14}]
Categories: [Pantry, FruitVeg, Freezer, Refrigerator].
shelf_life_days should be an integer estimate.`

type ScanHandler struct {
	AI       *genai.Client
	Uploader *s3.Uploader
}

// ScanImage sends an uploaded grocery photo to the vision model and returns
// item proposals for the client's confirmation screen. Nothing is persisted
// here; the client confirms via the inventory batch endpoint. A parse failure
// is fatal to this request only and the capture can simply be retried.
func (h *ScanHandler) ScanImage(c *gin.Context) {
	userID := c.GetString("user_id")

	file, header, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "An image file is required"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxImageSize+1))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read image"})
		return
	}
	if len(data) > maxImageSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "Image is too large"})
		return
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/jpeg"
	}

	// Archive the photo; scanning still works when the archive is down.
	photoURL := h.archivePhoto(c, userID, data, contentType)

	encoded := base64.StdEncoding.EncodeToString(data)
	responseText, err := h.AI.GenerateFromImage(c.Request.Context(), scanPrompt, encoded, contentType)
	if err != nil {
		log.Printf("Vision inference failed for user %s: %v", userID, err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Image analysis failed, please try again"})
		return
	}

	items, err := genai.ParseScanResponse(responseText, time.Now())
	if err != nil {
		if errors.Is(err, genai.ErrNoJSONArray) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "No item data found in AI response, please retry the capture"})
			return
		}
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Could not parse AI response", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items, "photoURL": photoURL})
}

func (h *ScanHandler) archivePhoto(c *gin.Context, userID string, data []byte, contentType string) string {
	if h.Uploader == nil {
		return ""
	}

	objectKey := fmt.Sprintf("scans/%s/%s", userID, uuid.New().String())
	photoURL, err := h.Uploader.UploadPhoto(c.Request.Context(), bytes.NewReader(data), objectKey, contentType)
	if err != nil {
		log.Printf("Failed to archive scan photo for user %s: %v", userID, err)
		return ""
	}
	return photoURL
}
