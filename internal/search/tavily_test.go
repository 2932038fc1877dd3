package search

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestTavily_Search(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req map[string]any
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req["api_key"] != "key-123" {
			t.Errorf("api_key = %v", req["api_key"])
		}
		json.NewEncoder(w).Encode(map[string]any{
			"results": []map[string]string{
				{"title": "Syllabus", "url": "https://a.com/s", "content": "details"},
			},
		})
	}))
	defer srv.Close()

	tv := NewTavily("key-123")
	tv.endpoint = srv.URL

	results, err := tv.Search(context.Background(), "exam syllabus")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 || results[0].URL != "https://a.com/s" || results[0].Snippet != "details" {
		t.Errorf("unexpected results: %v", results)
	}
}

func TestTavily_MissingKey(t *testing.T) {
	tv := NewTavily("")
	if _, err := tv.Search(context.Background(), "q"); err == nil {
		t.Error("expected error when api key is missing")
	}
}

func TestTavily_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"invalid key"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	tv := NewTavily("bad")
	tv.endpoint = srv.URL
	if _, err := tv.Search(context.Background(), "q"); err == nil {
		t.Error("expected error for 401 response")
	}
}
