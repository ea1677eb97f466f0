package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"catalog/internal/models"
)

func TestListCategories(t *testing.T) {
	r, db, _ := newTestServer(t)
	seedCategory(t, db, 1, "Books")
	seedCategory(t, db, 2, "Stationery")

	rec := doRequest(r, http.MethodGet, "/categories", nil, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d, body %s", rec.Code, rec.Body.String())
	}
	var items []models.Category
	if err := json.Unmarshal(rec.Body.Bytes(), &items); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(items))
	}
	if items[0].Name != "Books" || items[1].Name != "Stationery" {
		t.Errorf("unexpected categories %+v", items)
	}
}

func TestListCategoriesEmpty(t *testing.T) {
	r, _, _ := newTestServer(t)

	rec := doRequest(r, http.MethodGet, "/categories", nil, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	if rec.Body.String() != "[]" {
		t.Errorf("expected empty array, got %s", rec.Body.String())
	}
}
