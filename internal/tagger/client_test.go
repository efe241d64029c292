package tagger

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Available(t *testing.T) {
	t.Run("healthy service", func(t *testing.T) {
		var probes int
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/health", r.URL.Path)
			probes++
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := NewClient(Config{BaseURL: server.URL})
		require.NoError(t, client.Available(context.Background()))

		// The probe result is memoized.
		require.NoError(t, client.Available(context.Background()))
		assert.Equal(t, 1, probes)
	})

	t.Run("failing probe is memoized too", func(t *testing.T) {
		var probes int
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			probes++
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		client := NewClient(Config{BaseURL: server.URL})
		require.Error(t, client.Available(context.Background()))
		require.Error(t, client.Available(context.Background()))
		assert.Equal(t, 1, probes)
	})

	t.Run("unreachable service", func(t *testing.T) {
		client := NewClient(Config{BaseURL: "http://127.0.0.1:1"})
		assert.Error(t, client.Available(context.Background()))
	})
}

func TestClient_Annotate(t *testing.T) {
	t.Run("returns annotated tokens", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/annotate", r.URL.Path)
			require.Equal(t, "secret", r.Header.Get("x-api-key"))

			var req annotateRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			require.Equal(t, "Der Hund läuft.", req.Text)

			_ = json.NewEncoder(w).Encode(annotateResponse{
				Tokens: []Token{
					{Text: "Hund", Lemma: "Hund", POS: "NOUN", Gender: "Masc", Sentence: "Der Hund läuft."},
				},
			})
		}))
		defer server.Close()

		client := NewClient(Config{BaseURL: server.URL, APIKey: "secret"})
		tokens, err := client.Annotate(context.Background(), "Der Hund läuft.")
		require.NoError(t, err)
		require.Len(t, tokens, 1)
		assert.Equal(t, "Hund", tokens[0].Text)
		assert.Equal(t, "Masc", tokens[0].Gender)
	})

	t.Run("retries transient failures", func(t *testing.T) {
		var calls int
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
			if calls < 3 {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			_ = json.NewEncoder(w).Encode(annotateResponse{})
		}))
		defer server.Close()

		client := NewClient(Config{BaseURL: server.URL})
		_, err := client.Annotate(context.Background(), "text")
		require.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("gives up after exhausting retries", func(t *testing.T) {
		var calls int
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		client := NewClient(Config{BaseURL: server.URL})
		_, err := client.Annotate(context.Background(), "text")
		require.Error(t, err)
		assert.Equal(t, 3, calls)
	})
}

func TestNewClient_Defaults(t *testing.T) {
	client := NewClient(Config{BaseURL: "http://localhost:9000"})
	assert.Equal(t, defaultChunkSize, client.ChunkSize())
}
