package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(endpoint string) Config {
	return Config{
		APIKey:   "test-key",
		Model:    "gemini-test",
		Endpoint: endpoint,
		Timeout:  2 * time.Second,
	}
}

func TestGeminiClient_Generate_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/models/gemini-test:generateContent", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))

		var req geminiRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.NotNil(t, req.SystemInstruction)
		assert.Equal(t, "be kind", req.SystemInstruction.Parts[0].Text)
		require.Len(t, req.Contents, 1)
		assert.Equal(t, "user", req.Contents[0].Role)
		assert.Equal(t, "hello", req.Contents[0].Parts[0].Text)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"ආයුබෝවන්"},{"text":"!"}]},"finishReason":"STOP"}],"modelVersion":"gemini-test-001"}`))
	}))
	defer srv.Close()

	client := NewGeminiClient(testConfig(srv.URL+"/"), NoopObserver{})
	resp, err := client.Generate(context.Background(), GenerateRequest{
		Operation:         "chat",
		SystemInstruction: "be kind",
		Prompt:            "hello",
	})

	require.NoError(t, err)
	assert.Equal(t, "ආයුබෝවන්!", resp.Text)
	assert.Equal(t, "gemini-test-001", resp.Model)
	assert.GreaterOrEqual(t, resp.LatencyMs, int64(0))
}

func TestGeminiClient_Generate_NoSystemInstruction(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var raw map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
		_, present := raw["systemInstruction"]
		assert.False(t, present)
		w.Write([]byte(`{"candidates":[]}`))
	}))
	defer srv.Close()

	client := NewGeminiClient(testConfig(srv.URL), nil)
	resp, err := client.Generate(context.Background(), GenerateRequest{Prompt: "translate"})
	require.NoError(t, err)
	assert.Empty(t, resp.Text)
	assert.Equal(t, "gemini-test", resp.Model)
}

func TestGeminiClient_Generate_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"code":400,"message":"API key not valid","status":"INVALID_ARGUMENT"}}`))
	}))
	defer srv.Close()

	client := NewGeminiClient(testConfig(srv.URL), NoopObserver{})
	_, err := client.Generate(context.Background(), GenerateRequest{Prompt: "x"})

	assert.ErrorIs(t, err, ErrUpstreamStatus)
	assert.Contains(t, err.Error(), "API key not valid")
}

func TestGeminiClient_Generate_BadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>`))
	}))
	defer srv.Close()

	client := NewGeminiClient(testConfig(srv.URL), NoopObserver{})
	_, err := client.Generate(context.Background(), GenerateRequest{Prompt: "x"})
	assert.ErrorIs(t, err, ErrUpstreamDecode)
}

func TestGeminiClient_Generate_Blocked(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"promptFeedback":{"blockReason":"SAFETY"}}`))
	}))
	defer srv.Close()

	client := NewGeminiClient(testConfig(srv.URL), NoopObserver{})
	_, err := client.Generate(context.Background(), GenerateRequest{Prompt: "x"})
	assert.ErrorIs(t, err, ErrUpstreamBlocked)
}

func TestGeminiClient_Generate_Unreachable(t *testing.T) {
	var buf bytes.Buffer
	client := NewGeminiClient(testConfig("http://127.0.0.1:1"), NewLogObserver(log.New(&buf, "", 0)))
	_, err := client.Generate(context.Background(), GenerateRequest{Operation: "email", Prompt: "x"})

	assert.ErrorIs(t, err, ErrUpstreamTransport)
	assert.Contains(t, buf.String(), "op=email")
	assert.Contains(t, buf.String(), "status=err:TRANSPORT")
}

func TestGeminiClient_Generate_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewGeminiClient(testConfig("http://127.0.0.1:1"), NoopObserver{})
	_, err := client.Generate(ctx, GenerateRequest{Prompt: "x"})
	assert.ErrorIs(t, err, ErrUpstreamTransport)
}

func TestLogObserver_Success(t *testing.T) {
	var buf bytes.Buffer
	NewLogObserver(log.New(&buf, "", 0)).OnCallComplete(LLMCallEvent{
		Operation: "chat", Model: "m", LatencyMs: 12, Success: true,
	})
	assert.Equal(t, "llm_call op=chat model=m latency_ms=12 status=ok\n", buf.String())
}
