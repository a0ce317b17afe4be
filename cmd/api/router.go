package api

import (
	"net/http"

	"journal-backend/internal/auth/delivery"
	authUsecase "journal-backend/internal/auth/usecase"
	entryDelivery "journal-backend/internal/entry/delivery"
	entryUsecase "journal-backend/internal/entry/usecase"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, authUc authUsecase.AuthUsecase, entryUc entryUsecase.EntryUsecase) {
	authHandler := delivery.NewAuthHandler(authUc)
	entryHandler := entryDelivery.NewEntryHandler(entryUc)

	// Health check (no auth required)
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Session lifecycle routes
	r.POST("/register/", authHandler.Register)
	r.POST("/login/", authHandler.Login)
	r.POST("/session/", authHandler.RenewSession)
	r.POST("/logout/", delivery.AuthMiddleware(authUc), authHandler.Logout)
	r.GET("/me/", delivery.AuthMiddleware(authUc), authHandler.Me)

	// Entry routes (protected)
	entries := r.Group("/entries")
	entries.Use(delivery.AuthMiddleware(authUc))
	{
		entries.GET("/", entryHandler.GetEntries)
		entries.POST("/", entryHandler.CreateEntry)
		entries.GET("/:id/", entryHandler.GetEntry)
		entries.POST("/:id/", entryHandler.UpdateEntry)
		entries.DELETE("/:id/", entryHandler.DeleteEntry)
		entries.POST("/:id/tags/", entryHandler.AttachTag)
	}

	// Tag routes (protected)
	tags := r.Group("/tags")
	tags.Use(delivery.AuthMiddleware(authUc))
	{
		tags.GET("/", entryHandler.GetTags)
		tags.POST("/", entryHandler.CreateTag)
	}
}
