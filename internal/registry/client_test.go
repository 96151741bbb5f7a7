package registry

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_CreateModel(t *testing.T) {
	var received ModelConfig

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/model/create", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient(server.URL, WithToken("test-token"))

	err := client.CreateModel(context.Background(), ModelConfig{
		ModelName: "m1",
		ModelType: ModelTypeEmbedding,
		BaseURL:   "https://x",
		APIKey:    "secret",
	})
	require.NoError(t, err)

	assert.Equal(t, "secret", received.APIKey)
	assert.Equal(t, "m1", received.DisplayName, "display_name should default to model_name")
	assert.Equal(t, DefaultModelFactory, received.ModelFactory)
}

func TestClient_CreateModelAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"detail":"model already exists"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)

	err := client.CreateModel(context.Background(), ModelConfig{ModelName: "m1", ModelType: ModelTypeLLM, BaseURL: "https://x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "model already exists")
}

func TestClient_ListModels(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/model/list", r.URL.Path)

		w.Write([]byte(`{"data":[
			{"model_name":"m1","model_type":"llm","display_name":"Model One"},
			{"model_name":"m2","model_type":"embedding","display_name":"Model Two"}
		]}`))
	}))
	defer server.Close()

	models, err := NewClient(server.URL).ListModels(context.Background())
	require.NoError(t, err)
	require.Len(t, models, 2)
	assert.Equal(t, "Model One", models[0].Label())
}

func TestClient_DeleteModel(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/model/delete", r.URL.Path)
		assert.Equal(t, "Model One", r.URL.Query().Get("display_name"))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	err := NewClient(server.URL).DeleteModel(context.Background(), "Model One")
	assert.NoError(t, err)
}

func TestClient_HealthCheck(t *testing.T) {
	tests := []struct {
		name         string
		handler      http.HandlerFunc
		wantOK       bool
		wantErr      bool
		errSubstring string
	}{
		{
			name: "connected model",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"data":{"connectivity":true}}`))
			},
			wantOK: true,
		},
		{
			name: "unreachable model",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"data":{"connectivity":false}}`))
			},
			wantOK: false,
		},
		{
			name: "unknown model",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
				w.Write([]byte(`{"detail":"model not found"}`))
			},
			wantErr:      true,
			errSubstring: "model not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			ok, err := NewClient(server.URL).HealthCheck(context.Background(), "m1")

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errSubstring)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestClient_RetriesTransientFailures(t *testing.T) {
	var calls int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(`{"data":[]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, WithRetry(RetryConfig{
		MaxRetries:    3,
		InitialDelay:  time.Millisecond,
		MaxDelay:      5 * time.Millisecond,
		BackoffFactor: 2.0,
	}))

	_, err := client.ListModels(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestClient_DoesNotRetryClientErrors(t *testing.T) {
	var calls int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"detail":"invalid payload"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, WithRetry(RetryConfig{
		MaxRetries:    3,
		InitialDelay:  time.Millisecond,
		MaxDelay:      5 * time.Millisecond,
		BackoffFactor: 2.0,
	}))

	err := client.CreateModel(context.Background(), ModelConfig{ModelName: "m1", ModelType: ModelTypeLLM, BaseURL: "https://x"})
	require.Error(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}
