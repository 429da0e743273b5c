package genai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// candidateResponse builds a generateContent response whose single part
// carries the given text.
func candidateResponse(text string) string {
	body, _ := json.Marshal(map[string]any{
		"candidates": []map[string]any{
			{
				"content": map[string]any{
					"parts": []map[string]string{{"text": text}},
				},
				"finishReason": "STOP",
			},
		},
	})
	return string(body)
}

func TestGenerate_Success(t *testing.T) {
	var gotPath string
	var gotReq geminiRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("failed to decode request body: %v", err)
		}
		if key := r.Header.Get("x-goog-api-key"); key != "test-key" {
			t.Errorf("expected api key header 'test-key', got %q", key)
		}
		w.Write([]byte(candidateResponse(
			`[{"year":"BC 108","title":"Gojoseon falls","description":"s","details":"d"}]`)))
	}))
	defer server.Close()

	c := NewClient("test-key", Options{BaseURL: server.URL})

	events, err := c.Generate(context.Background(), "Korean history")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if events[0].Title != "Gojoseon falls" {
		t.Errorf("unexpected event title %q", events[0].Title)
	}

	if gotPath != "/models/gemini-2.0-flash:generateContent" {
		t.Errorf("unexpected request path %q", gotPath)
	}
	if !strings.Contains(gotReq.Contents[0].Parts[0].Text, "Korean history") {
		t.Error("prompt does not embed the topic")
	}
	if gotReq.GenerationConfig.ResponseMIMEType != "application/json" {
		t.Errorf("expected JSON response mime type, got %q", gotReq.GenerationConfig.ResponseMIMEType)
	}
	schema := gotReq.GenerationConfig.ResponseSchema
	if schema == nil || schema.Type != "ARRAY" {
		t.Fatal("expected ARRAY response schema")
	}
	if len(schema.Items.Required) != 4 {
		t.Errorf("expected 4 required fields, got %v", schema.Items.Required)
	}
}

func TestGenerate_MissingAPIKey(t *testing.T) {
	c := NewClient("", Options{})
	if _, err := c.Generate(context.Background(), "anything"); err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestGenerate_ServiceError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"code":400,"message":"API key not valid","status":"INVALID_ARGUMENT"}}`))
	}))
	defer server.Close()

	c := NewClient("bad-key", Options{BaseURL: server.URL})

	_, err := c.Generate(context.Background(), "topic")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "API key not valid") {
		t.Errorf("expected service error message, got: %v", err)
	}
}

func TestGenerate_UndecodableText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(candidateResponse("not json")))
	}))
	defer server.Close()

	c := NewClient("test-key", Options{BaseURL: server.URL})

	events, err := c.Generate(context.Background(), "topic")
	if err == nil {
		t.Fatal("expected decode error, got nil")
	}
	if events != nil {
		t.Errorf("expected no events on decode failure, got %d", len(events))
	}
}

func TestGenerate_EmptyCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[]}`))
	}))
	defer server.Close()

	c := NewClient("test-key", Options{BaseURL: server.URL})

	if _, err := c.Generate(context.Background(), "topic"); err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestGenerate_FencedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fenced := "```json\n[{\"year\":\"935\",\"title\":\"t\",\"description\":\"s\",\"details\":\"d\"}]\n```"
		w.Write([]byte(candidateResponse(fenced)))
	}))
	defer server.Close()

	c := NewClient("test-key", Options{BaseURL: server.URL})

	events, err := c.Generate(context.Background(), "topic")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(events) != 1 {
		t.Errorf("expected 1 event, got %d", len(events))
	}
}

func TestNewClient_Options(t *testing.T) {
	c := NewClient("k", Options{Model: "gemini-2.5-pro"})
	if c.Model() != "gemini-2.5-pro" {
		t.Errorf("expected model override, got %q", c.Model())
	}

	def := NewClient("k", Options{})
	if def.Model() != "gemini-2.0-flash" {
		t.Errorf("expected default model, got %q", def.Model())
	}
}

func TestBuildPrompt(t *testing.T) {
	p := BuildPrompt("Silk Road")
	if !strings.Contains(p, `"Silk Road"`) {
		t.Error("prompt does not quote the topic")
	}
	if !strings.Contains(p, "BC") {
		t.Error("prompt does not explain the BC year convention")
	}
	if !strings.Contains(p, "JSON array") {
		t.Error("prompt does not request a JSON array")
	}
}
