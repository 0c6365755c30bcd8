// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package compose

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pdiddy/paperforge/pkg/types"
)

type chatRequest struct {
	Model       string  `json:"model"`
	Temperature float64 `json:"temperature"`
	Messages    []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
}

func testBackend(t *testing.T, handler http.HandlerFunc) *OpenAIBackend {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	backend, err := NewOpenAIBackend(types.WriterConfig{
		APIKey:  "test-key",
		BaseURL: srv.URL,
	})
	if err != nil {
		t.Fatalf("NewOpenAIBackend: %v", err)
	}
	return backend
}

func TestOpenAIGenerate(t *testing.T) {
	var gotReq chatRequest
	var gotAuth string

	backend := testBackend(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("decoding request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintln(w, `{"id":"cmpl-1","object":"chat.completion","choices":[{"index":0,"message":{"role":"assistant","content":"# Paper\n\nBody."},"finish_reason":"stop"}]}`)
	})

	paper, err := backend.Generate(context.Background(), "write about shorebirds")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if paper != "# Paper\n\nBody." {
		t.Errorf("paper = %q", paper)
	}
	if gotAuth != "Bearer test-key" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if gotReq.Model != "gpt-4o-mini" {
		t.Errorf("model = %q, want default", gotReq.Model)
	}
	if gotReq.Temperature != 0.7 {
		t.Errorf("temperature = %v, want 0.7 default", gotReq.Temperature)
	}
	if len(gotReq.Messages) != 1 || gotReq.Messages[0].Role != "user" {
		t.Fatalf("messages = %+v, want single user message", gotReq.Messages)
	}
	if gotReq.Messages[0].Content != "write about shorebirds" {
		t.Errorf("prompt = %q", gotReq.Messages[0].Content)
	}
}

func TestOpenAIGenerateNoChoices(t *testing.T) {
	backend := testBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintln(w, `{"id":"cmpl-2","object":"chat.completion","choices":[]}`)
	})

	_, err := backend.Generate(context.Background(), "prompt")
	if err == nil {
		t.Fatal("expected error on empty choices")
	}
	if !strings.Contains(err.Error(), "no choices") {
		t.Errorf("error = %v", err)
	}
}

func TestOpenAIGenerateAPIError(t *testing.T) {
	backend := testBackend(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"bad request"}}`, http.StatusBadRequest)
	})

	_, err := backend.Generate(context.Background(), "prompt")
	if err == nil {
		t.Fatal("expected error on HTTP 400")
	}
	if !strings.Contains(err.Error(), "chat completion") {
		t.Errorf("error = %v, want wrapped completion error", err)
	}
}

func TestNewOpenAIBackendRequiresKey(t *testing.T) {
	_, err := NewOpenAIBackend(types.WriterConfig{})
	if err == nil {
		t.Fatal("expected error when API key is missing")
	}
	if !strings.Contains(err.Error(), "API key") {
		t.Errorf("error = %v", err)
	}
}

func TestNewOpenAIBackendOverrides(t *testing.T) {
	backend, err := NewOpenAIBackend(types.WriterConfig{
		APIKey:      "k",
		Model:       "gpt-4.1",
		Temperature: 0.2,
	})
	if err != nil {
		t.Fatalf("NewOpenAIBackend: %v", err)
	}
	if backend.model != "gpt-4.1" {
		t.Errorf("model = %q", backend.model)
	}
	if backend.temperature != 0.2 {
		t.Errorf("temperature = %v", backend.temperature)
	}
}
