package genai

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestGenerateAssetSendsImageAndInstruction(t *testing.T) {
	fakeImage := []byte{0x89, 0x50, 0x4e, 0x47}
	generated := []byte("generated-image-bytes")

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, "test-model:generateContent") {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("key"); got != "test-key" {
			t.Fatalf("unexpected api key: %s", got)
		}
		var payload geminiGenerateContentRequest
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("failed to decode request: %v", err)
		}
		if len(payload.Contents) != 1 || len(payload.Contents[0].Parts) != 2 {
			t.Fatalf("unexpected contents shape: %+v", payload.Contents)
		}
		if got := payload.Contents[0].Parts[0].Text; got != "make a poster" {
			t.Fatalf("instruction mismatch: %s", got)
		}
		inline := payload.Contents[0].Parts[1].InlineData
		if inline == nil || inline.MimeType != "image/png" {
			t.Fatalf("inline data mismatch: %+v", inline)
		}
		if decoded, _ := base64.StdEncoding.DecodeString(inline.Data); string(decoded) != string(fakeImage) {
			t.Fatalf("image payload mismatch")
		}
		if payload.GenerationConfig == nil || len(payload.GenerationConfig.ResponseModalities) != 2 {
			t.Fatalf("modalities mismatch: %+v", payload.GenerationConfig)
		}

		resp := geminiGenerateContentResponse{Candidates: []geminiCandidate{{
			Content: geminiContent{Parts: []geminiPart{
				{Text: "A bold poster."},
				{InlineData: &geminiInlineData{
					MimeType: "image/png",
					Data:     base64.StdEncoding.EncodeToString(generated),
				}},
			}},
		}}}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer ts.Close()

	client, err := NewClient(Options{APIKey: "test-key", BaseURL: ts.URL, Model: "test-model"})
	if err != nil {
		t.Fatalf("NewClient error: %v", err)
	}
	result, err := client.GenerateAsset(context.Background(), fakeImage, "image/png", "make a poster")
	if err != nil {
		t.Fatalf("GenerateAsset error: %v", err)
	}
	if result.Text != "A bold poster." {
		t.Fatalf("unexpected text: %q", result.Text)
	}
	if len(result.Images) != 1 || string(result.Images[0]) != string(generated) {
		t.Fatalf("unexpected images: %d", len(result.Images))
	}
}

func TestGenerateAssetSurfacesAPIError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"code":429,"message":"quota exhausted"}}`))
	}))
	defer ts.Close()

	client, err := NewClient(Options{APIKey: "test-key", BaseURL: ts.URL, Model: "test-model"})
	if err != nil {
		t.Fatalf("NewClient error: %v", err)
	}
	_, err = client.GenerateAsset(context.Background(), []byte("img"), "image/png", "prompt")
	if err == nil || !strings.Contains(err.Error(), "quota exhausted") {
		t.Fatalf("expected api error, got: %v", err)
	}
	if !strings.Contains(err.Error(), "429") {
		t.Fatalf("error should carry the status code: %v", err)
	}
}

func TestGenerateAssetRequiresAPIKey(t *testing.T) {
	client, err := NewClient(Options{})
	if err != nil {
		t.Fatalf("NewClient error: %v", err)
	}
	if _, err := client.GenerateAsset(context.Background(), []byte("img"), "image/png", "prompt"); err == nil {
		t.Fatal("expected error without api key")
	}
}

func TestAltTextReturnsTrimmedText(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload geminiGenerateContentRequest
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("failed to decode request: %v", err)
		}
		if got := payload.GenerationConfig.ResponseModalities; len(got) != 1 || got[0] != "TEXT" {
			t.Fatalf("alt text should request TEXT only: %v", got)
		}
		resp := geminiGenerateContentResponse{Candidates: []geminiCandidate{{
			Content: geminiContent{Parts: []geminiPart{{Text: "  A red sneaker on a white table.  "}}},
		}}}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer ts.Close()

	client, err := NewClient(Options{APIKey: "test-key", BaseURL: ts.URL})
	if err != nil {
		t.Fatalf("NewClient error: %v", err)
	}
	text, err := client.AltText(context.Background(), []byte("img"), "image/jpeg", "describe")
	if err != nil {
		t.Fatalf("AltText error: %v", err)
	}
	if text != "A red sneaker on a white table." {
		t.Fatalf("unexpected alt text: %q", text)
	}
}

func TestAltTextFailsOnEmptyResponse(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(geminiGenerateContentResponse{})
	}))
	defer ts.Close()

	client, err := NewClient(Options{APIKey: "test-key", BaseURL: ts.URL})
	if err != nil {
		t.Fatalf("NewClient error: %v", err)
	}
	if _, err := client.AltText(context.Background(), []byte("img"), "image/png", "describe"); err == nil {
		t.Fatal("expected error for empty response")
	}
}
