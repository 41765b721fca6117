package routing

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"routemarket/internal/handlers"
	"routemarket/internal/managers"
	"routemarket/internal/middleware"
	"routemarket/internal/schemas"
	"routemarket/internal/utils"
)

func InitRouter(storeMgr managers.StoreMgr) *gin.Engine {
	// Initialize router with logging and recovery middleware
	router := gin.New()
	// Initialize middleware
	setupCommonMiddleware(router)
	// Setup routes
	setupRoutes(router, storeMgr)

	return router
}

func setupCommonMiddleware(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.InjectTrace())
	router.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"http://localhost:5173", "http://localhost:19000"},
		AllowMethods:  []string{"GET", "PATCH", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Accept, Authorization", "Content-Type"},
		ExposeHeaders: []string{"Content-Length", "Content-Type", "X-Trace-Id"},
		MaxAge:        12 * time.Hour,
	}))
	router.Use(func(c *gin.Context) {
		c.Header("Content-Type", "application/json")
	})
	router.Use(middleware.SanitizePath())
	router.Use(middleware.LogRequest())
}

func setupRoutes(router *gin.Engine, storeMgr managers.StoreMgr) {
	// Set up version route
	router.GET("/", func(c *gin.Context) {
		apiVersion := os.Getenv("API_VERSION")
		if apiVersion == "" {
			apiVersion = "main:latest"
		}
		metadata := &schemas.MetadataDTO{
			ApiVersion: apiVersion,
			ApiName:    "Route Market",
		}
		utils.WriteAndLogResponse(c, metadata, http.StatusOK)
	})

	// Set up health route
	router.GET("/health", func(c *gin.Context) {
		health := &schemas.HealthDTO{
			Status: "ok",
			Users:  storeMgr.UserCount(),
		}
		utils.WriteAndLogResponse(c, health, http.StatusOK)
	})

	// Set up API routes
	apiRouter := router.Group("/api")
	{
		userRouter := apiRouter.Group("/users")

		userHdl := handlers.NewUserHandler(&storeMgr)
		collectionHdl := handlers.NewCollectionHandler(&storeMgr)
		moderationHdl := handlers.NewModerationHandler(&storeMgr)
		progressHdl := handlers.NewProgressHandler(&storeMgr)

		userRoutes(userRouter, userHdl)
		collectionRoutes(userRouter, collectionHdl)
		moderationRoutes(userRouter, moderationHdl)
		progressRoutes(userRouter, progressHdl)
	}
}

func userRoutes(userRouter *gin.RouterGroup, userHdl handlers.UserHdl) {
	// Register on the empty path so POST /api/users matches directly instead
	// of through a trailing-slash redirect the client would not re-follow.
	userRouter.POST("", middleware.ValidateAndSanitizeStruct(&schemas.CreateUserRequest{}), userHdl.CreateUser)
	userRouter.GET("/:nickname", userHdl.HandleGetUserRequest)
	userRouter.GET("/:nickname/collections", userHdl.GetUserCollections)
}

func collectionRoutes(userRouter *gin.RouterGroup, collectionHdl handlers.CollectionHdl) {
	userRouter.POST("/:nickname/collections", middleware.ValidateAndSanitizeStruct(&schemas.CreateCollectionRequest{}), collectionHdl.CreateCollection)
	userRouter.DELETE("/:nickname/collections/:collectionId", collectionHdl.DeleteCollection)
	userRouter.POST("/:nickname/collections/:collectionId/routes", middleware.ValidateAndSanitizeStruct(&schemas.AddRouteRequest{}), collectionHdl.AddRoute)
	userRouter.DELETE("/:nickname/collections/:collectionId/routes/:routeId", collectionHdl.RemoveRoute)
}

func moderationRoutes(userRouter *gin.RouterGroup, moderationHdl handlers.ModerationHdl) {
	userRouter.POST("/:nickname/ban", middleware.ValidateAndSanitizeStruct(&schemas.BanRequest{}), moderationHdl.BanUser)
	userRouter.DELETE("/:nickname/ban", moderationHdl.UnbanUser)
	userRouter.POST("/:nickname/ban/reconcile", moderationHdl.ReconcileExpiration)
}

func progressRoutes(userRouter *gin.RouterGroup, progressHdl handlers.ProgressHdl) {
	userRouter.PUT("/:nickname/progress", middleware.ValidateAndSanitizeStruct(&schemas.RecordProgressRequest{}), progressHdl.RecordProgress)
	userRouter.GET("/:nickname/progress", progressHdl.ListProgress)
	userRouter.GET("/:nickname/progress/:achievementId", progressHdl.GetProgress)
}
