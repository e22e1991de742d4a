package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/SaharI12/PantryChef/config"
	"github.com/SaharI12/PantryChef/internal/api/handlers"
	"github.com/SaharI12/PantryChef/internal/api/middleware"
	"github.com/SaharI12/PantryChef/internal/genai"
	"github.com/SaharI12/PantryChef/internal/s3"
	"github.com/SaharI12/PantryChef/internal/socket"
)

// SetupRouter wires every handler to its route.
func SetupRouter(
	cfg config.Config,
	db *mongo.Database,
	aiClient *genai.Client,
	s3Uploader *s3.Uploader,
	wsHub *socket.Hub,
) *gin.Engine {
	router := gin.Default()
	router.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	jwtSecret := []byte(cfg.JWT.Secret)

	userHandler := &handlers.UserHandler{DB: db, Cfg: cfg}
	inventoryHandler := &handlers.InventoryHandler{DB: db, Hub: wsHub}
	shoppingHandler := &handlers.ShoppingHandler{DB: db, Hub: wsHub}
	scanHandler := &handlers.ScanHandler{AI: aiClient, Uploader: s3Uploader}
	recipeHandler := &handlers.RecipeHandler{DB: db, AI: aiClient}
	webSocketHandler := &handlers.WebSocketHandler{DB: db, Hub: wsHub, JWTSecret: jwtSecret}

	apiV1 := router.Group("/api/v1")
	{
		// Live inventory snapshot stream (token passed as query parameter)
		apiV1.GET("/ws", webSocketHandler.ServeWs)

		// === PUBLIC ROUTES ===
		auth := apiV1.Group("/auth")
		{
			auth.POST("/register", userHandler.Register)
			auth.POST("/login", userHandler.Login)
			auth.POST("/oauth/google", userHandler.GoogleSignIn)
		}

		// === PROTECTED ROUTES ===
		protected := apiV1.Group("/")
		protected.Use(middleware.Authenticate(jwtSecret))
		{
			protected.GET("/auth/me", userHandler.Me)

			inventory := protected.Group("/inventory")
			{
				inventory.GET("", inventoryHandler.ListItems)
				inventory.POST("", inventoryHandler.CreateItem)
				inventory.POST("/batch", inventoryHandler.BatchCreateItems)
				inventory.POST("/usage", inventoryHandler.ApplyUsage)
				inventory.PUT("/:id", inventoryHandler.UpdateItem)
				inventory.DELETE("/:id", inventoryHandler.DeleteItem)
			}

			shopping := protected.Group("/shopping")
			{
				shopping.GET("", shoppingHandler.ListItems)
				shopping.POST("", shoppingHandler.CreateItem)
				shopping.PUT("/:id", shoppingHandler.UpdateItem)
				shopping.DELETE("/:id", shoppingHandler.DeleteItem)
				shopping.POST("/:id/toggle", shoppingHandler.ToggleChecked)
				shopping.POST("/checked/clear", shoppingHandler.ClearChecked)
				shopping.POST("/checked/to-inventory", shoppingHandler.MoveCheckedToInventory)
			}

			protected.POST("/scan", scanHandler.ScanImage)
			protected.POST("/recipes/suggest", recipeHandler.Suggest)
		}
	}

	return router
}
