package api

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.Engine, h *Handler) {
	api := r.Group("/api")
	{
		api.GET("/health", health)

		api.GET("/cards", h.listCards)
		api.POST("/cards/filter", h.filterCards)

		api.GET("/decks", h.listDecks)
		api.POST("/decks", h.createDeck)
		api.POST("/decks/validate", h.validateEntries)
		api.GET("/deck-stats", h.userStats)
	}

	d := api.Group("/decks/:id")
	{
		d.GET("", h.getDeck)
		d.PUT("", h.updateDeck)
		d.DELETE("", h.deleteDeck)

		d.POST("/cards", h.addCard)
		d.DELETE("/cards", h.removeCard)
		d.PUT("/cards/:cardId", h.updateCard)
		d.POST("/cards/:cardId/toggle-exclusion", h.toggleExclusion)

		d.GET("/validate", h.validateDeck)
		d.GET("/stats", h.deckStats)
		d.GET("/export", h.exportDeck)
		d.GET("/qr", h.deckQR)

		d.POST("/draw-hand", h.drawHand)
		d.GET("/draw-hand", h.getHand)
		d.POST("/draw-hand/reorder", h.reorderHand)
		d.GET("/draw-hand/image", h.handImage)

		d.GET("/ui-preferences", h.getUIPreferences)
		d.PUT("/ui-preferences", h.updateUIPreferences)
	}
}
