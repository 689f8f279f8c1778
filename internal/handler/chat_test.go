package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inmomax/internal/model"
)

func TestChatMessage(t *testing.T) {
	r := newTestRouter(t)

	tests := []struct {
		name       string
		message    string
		wantIntent model.Intent
	}{
		{"Greeting", "Hola, buenos días", model.IntentGreeting},
		{"Properties", "¿Qué casas tienen disponibles?", model.IntentProperties},
		{"Contact", "¿Cuál es su teléfono?", model.IntentContact},
		{"Farewell", "muchas gracias, hasta luego", model.IntentFarewell},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(t, r, http.MethodPost, "/api/v1/chat/message",
				map[string]any{"message": tt.message})
			require.Equal(t, http.StatusOK, w.Code)

			var resp model.ChatResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

			assert.Equal(t, tt.wantIntent, resp.Intent)
			assert.Equal(t, 0.9, resp.Confidence)
			assert.NotEmpty(t, resp.Reply)
			assert.NotEmpty(t, resp.Suggestions)
			assert.False(t, resp.Timestamp.IsZero())

			_, err := uuid.Parse(resp.MessageID)
			assert.NoError(t, err)
		})
	}
}

func TestChatMessageUnrecognized(t *testing.T) {
	r := newTestRouter(t)

	w := doRequest(t, r, http.MethodPost, "/api/v1/chat/message",
		map[string]any{"message": "xyzw 12345 qqq"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp model.ChatResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, model.IntentDefault, resp.Intent)
	assert.Equal(t, 0.3, resp.Confidence)
}

func TestChatMessageValidation(t *testing.T) {
	r := newTestRouter(t)

	tests := []struct {
		name string
		body map[string]any
	}{
		{"Missing message", map[string]any{}},
		{"Empty message", map[string]any{"message": ""}},
		{"Whitespace only", map[string]any{"message": "   "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(t, r, http.MethodPost, "/api/v1/chat/message", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestChatSuggestions(t *testing.T) {
	r := newTestRouter(t)

	w := doRequest(t, r, http.MethodGet, "/api/v1/chat/suggestions", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var suggestions []string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &suggestions))
	assert.Len(t, suggestions, 8)
	assert.Contains(t, suggestions, "¿Hacen tasaciones?")
}

func TestChatStats(t *testing.T) {
	r := newTestRouter(t)

	messages := []string{
		"¿Qué propiedades tienen?",
		"¿Qué departamentos hay?",
		"hola",
	}
	for _, m := range messages {
		w := doRequest(t, r, http.MethodPost, "/api/v1/chat/message",
			map[string]any{"message": m})
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := doRequest(t, r, http.MethodGet, "/api/v1/chat/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var stats model.ChatStats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))

	assert.Equal(t, 3, stats.MessagesProcessed)
	require.NotEmpty(t, stats.TopIntents)
	assert.Equal(t, model.IntentProperties, stats.TopIntents[0].Intent)
	assert.Equal(t, 2, stats.TopIntents[0].Count)
}
