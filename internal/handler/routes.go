package handler

import "github.com/gin-gonic/gin"

// RegisterPropertyRoutes mounts the property endpoints on the given group.
// The stats route is declared alongside :id routes; gin resolves the static
// segment first.
func RegisterPropertyRoutes(rg *gin.RouterGroup, h *PropertyHandler) {
	props := rg.Group("/properties")
	props.GET("", h.List)
	props.GET("/stats", h.Stats)
	props.GET("/:id", h.Get)
	props.POST("", h.Create)
	props.PUT("/:id", h.Update)
	props.DELETE("/:id", h.Delete)
	props.GET("/:id/similar", h.Similar)
	props.POST("/:id/favorite", h.Favorite)
}

// RegisterChatRoutes mounts the chatbot endpoints on the given group.
func RegisterChatRoutes(rg *gin.RouterGroup, h *ChatHandler) {
	chat := rg.Group("/chat")
	chat.POST("/message", h.Message)
	chat.GET("/suggestions", h.Suggestions)
	chat.GET("/stats", h.Stats)
}
