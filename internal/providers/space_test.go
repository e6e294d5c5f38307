package providers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestSpaceProviderRecognize(t *testing.T) {
	var gotAuth string
	var gotReq spacePredictRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("decode request: %v", err)
		}
		json.NewEncoder(w).Encode(map[string]any{"data": []any{"hello"}})
	}))
	defer server.Close()

	p := NewSpaceProvider(server.URL, "", "secret", 5*time.Second)

	raw, err := p.Recognize(context.Background(), []byte("fake-image"))
	if err != nil {
		t.Fatalf("Recognize: %v", err)
	}
	if got := Normalize(raw); got != "hello" {
		t.Errorf("text: got %q, want %q", got, "hello")
	}
	if gotAuth != "Bearer secret" {
		t.Errorf("authorization: got %q, want %q", gotAuth, "Bearer secret")
	}
	if len(gotReq.Data) != 1 || !strings.HasPrefix(gotReq.Data[0], "data:image/jpeg;base64,") {
		t.Errorf("payload: got %v, want single base64 data URI", gotReq.Data)
	}
}

func TestSpaceProviderServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	p := NewSpaceProvider(server.URL, "", "", 5*time.Second)
	if _, err := p.Recognize(context.Background(), []byte("img")); err == nil {
		t.Error("Recognize: got nil error, want status error")
	}
}

func TestSpaceProviderEmptyPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"data": []any{}})
	}))
	defer server.Close()

	p := NewSpaceProvider(server.URL, "", "", 5*time.Second)
	if _, err := p.Recognize(context.Background(), []byte("img")); err == nil {
		t.Error("Recognize: got nil error, want empty payload error")
	}
}

func TestSpaceProviderNotConfigured(t *testing.T) {
	p := NewSpaceProvider("", "", "", 5*time.Second)
	if p.Configured() {
		t.Error("Configured: got true, want false")
	}
	if _, err := p.Recognize(context.Background(), []byte("img")); err == nil {
		t.Error("Recognize: got nil error, want not configured")
	}
}

func TestSpaceProviderBaseURLFromName(t *testing.T) {
	p := NewSpaceProvider("", "owner/space", "", 5*time.Second)
	if got, want := p.baseURL(), "https://owner-space.hf.space"; got != want {
		t.Errorf("baseURL: got %q, want %q", got, want)
	}
}
