package model

import "time"

// Intent is the classified purpose category of a chat message.
type Intent string

const (
	IntentGreeting   Intent = "greeting"
	IntentProperties Intent = "properties"
	IntentPrices     Intent = "prices"
	IntentRent       Intent = "rent"
	IntentSale       Intent = "sale"
	IntentLocation   Intent = "location"
	IntentContact    Intent = "contact"
	IntentHours      Intent = "hours"
	IntentServices   Intent = "services"
	IntentFinancing  Intent = "financing"
	IntentAppraisal  Intent = "appraisal"
	IntentFarewell   Intent = "farewell"
	IntentDefault    Intent = "default"
)

// ChatRequest represents an incoming chat message.
type ChatRequest struct {
	Message string `json:"message" binding:"required,min=1,max=500"`
	UserID  string `json:"user_id,omitempty"`
}

// ChatResponse represents the bot's reply to a chat message.
type ChatResponse struct {
	MessageID   string    `json:"message_id"`
	Reply       string    `json:"reply"`
	Intent      Intent    `json:"detected_intent"`
	Confidence  float64   `json:"confidence"`
	Suggestions []string  `json:"suggestions"`
	Timestamp   time.Time `json:"timestamp"`
}

// IntentCount pairs an intent with how often it was detected.
type IntentCount struct {
	Intent Intent `json:"intent"`
	Count  int    `json:"count"`
}

// ChatStats reports chatbot usage counters.
type ChatStats struct {
	MessagesProcessed int           `json:"messages_processed"`
	TopIntents        []IntentCount `json:"top_intents"`
}
