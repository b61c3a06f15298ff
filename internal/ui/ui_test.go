package ui

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestAssetHandler_Index(t *testing.T) {
	handler := AssetHandler()

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	handler(w, req)

	resp := w.Result()
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Expected HTML content type, got %s", ct)
	}
	if resp.Header.Get("Cache-Control") == "" {
		t.Error("Expected index.html to be served with cache control headers")
	}
}

func TestAssetHandler_ContentTypes(t *testing.T) {
	handler := AssetHandler()

	tests := []struct {
		path        string
		contentType string
	}{
		{"/assets/app.css", "text/css; charset=utf-8"},
		{"/assets/app.js", "application/javascript; charset=utf-8"},
	}

	for _, tt := range tests {
		req := httptest.NewRequest("GET", tt.path, nil)
		w := httptest.NewRecorder()

		handler(w, req)

		resp := w.Result()
		if resp.StatusCode != http.StatusOK {
			t.Errorf("%s: expected status 200, got %d", tt.path, resp.StatusCode)
		}
		if ct := resp.Header.Get("Content-Type"); ct != tt.contentType {
			t.Errorf("%s: expected content type %s, got %s", tt.path, tt.contentType, ct)
		}
	}
}

func TestAssetHandler_NotFound(t *testing.T) {
	handler := AssetHandler()

	req := httptest.NewRequest("GET", "/assets/missing.js", nil)
	w := httptest.NewRecorder()

	handler(w, req)

	if w.Result().StatusCode != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", w.Result().StatusCode)
	}
}
