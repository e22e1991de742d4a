package genai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SaharI12/PantryChef/config"
)

func newTestClient(baseURL string) *Client {
	return NewClient(config.GeminiConfig{
		APIKey:  "test-key",
		Model:   "gemini-flash-latest",
		BaseURL: baseURL,
	})
}

func TestGenerate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1beta/models/gemini-flash-latest:generateContent", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		var req generateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Contents, 1)
		assert.Equal(t, "Suggest a recipe", req.Contents[0].Parts[0].Text)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"Try a "},{"text":"risotto."}]}}]}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	text, err := client.Generate(context.Background(), []Content{
		{Role: "user", Parts: []Part{{Text: "Suggest a recipe"}}},
	})

	require.NoError(t, err)
	assert.Equal(t, "Try a risotto.", text)
}

func TestGenerateFromImage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req generateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Contents, 1)
		require.Len(t, req.Contents[0].Parts, 2)
		assert.Equal(t, "identify the items", req.Contents[0].Parts[0].Text)
		require.NotNil(t, req.Contents[0].Parts[1].InlineData)
		assert.Equal(t, "image/jpeg", req.Contents[0].Parts[1].InlineData.MIMEType)
		assert.Equal(t, "aGVsbG8=", req.Contents[0].Parts[1].InlineData.Data)

		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"[]"}]}}]}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	text, err := client.GenerateFromImage(context.Background(), "identify the items", "aGVsbG8=", "image/jpeg")

	require.NoError(t, err)
	assert.Equal(t, "[]", text)
}

func TestGenerateServiceError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"code":429,"message":"Resource has been exhausted"}}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.Generate(context.Background(), []Content{{Parts: []Part{{Text: "hi"}}}})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Resource has been exhausted")
}

func TestGenerateNoCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[]}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.Generate(context.Background(), []Content{{Parts: []Part{{Text: "hi"}}}})
	assert.Error(t, err)
}
