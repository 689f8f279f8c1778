package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"inmomax/internal/model"
	"inmomax/internal/service"
	"inmomax/internal/utils"
)

// frequentQuestions is the static starter list shown before the first message.
var frequentQuestions = []string{
	"¿Qué propiedades tienen disponibles?",
	"¿Cuáles son sus horarios de atención?",
	"¿Cómo puedo contactarlos?",
	"¿En qué zonas trabajan?",
	"¿Ofrecen financiación?",
	"¿Hacen tasaciones?",
	"¿Qué servicios brindan?",
	"¿Tienen propiedades en alquiler temporal?",
}

// ChatHandler handles chatbot HTTP requests
type ChatHandler struct {
	classifier *service.Classifier
	responder  *service.Responder
}

// NewChatHandler creates a new chat handler
func NewChatHandler(classifier *service.Classifier, responder *service.Responder) *ChatHandler {
	return &ChatHandler{
		classifier: classifier,
		responder:  responder,
	}
}

// Message handles POST /api/v1/chat/message
func (h *ChatHandler) Message(c *gin.Context) {
	var req model.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "El mensaje no puede estar vacío"})
		return
	}

	intent := h.classifier.Classify(req.Message)
	reply := h.responder.Respond(intent)

	utils.Logger.WithFields(logrus.Fields{
		"intent":     intent,
		"confidence": reply.Confidence,
	}).Debug("chat message processed")

	c.JSON(http.StatusOK, model.ChatResponse{
		MessageID:   uuid.NewString(),
		Reply:       reply.Text,
		Intent:      intent,
		Confidence:  reply.Confidence,
		Suggestions: reply.Suggestions,
		Timestamp:   time.Now().UTC(),
	})
}

// Suggestions handles GET /api/v1/chat/suggestions
func (h *ChatHandler) Suggestions(c *gin.Context) {
	c.JSON(http.StatusOK, frequentQuestions)
}

// Stats handles GET /api/v1/chat/stats
func (h *ChatHandler) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, h.responder.Stats())
}
