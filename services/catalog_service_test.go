package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"loon-backend/models"
)

func TestNormalizeKeyword(t *testing.T) {
	cases := map[string]string{
		"hair cutting":    "Hair Cutting",
		"  hair cutting ": "Hair Cutting",
		"SPA":             "SPA",
		"nail  art":       "Nail Art",
		"":                "",
		"   ":             "",
	}
	for in, want := range cases {
		if got := NormalizeKeyword(in); got != want {
			t.Errorf("NormalizeKeyword(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSearchBlankKeywordSkipsQuery(t *testing.T) {
	svcs := newMemServiceStore()
	s := NewCatalogService(svcs)

	entries, err := s.Search(context.Background(), "   ")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected empty result, got %d entries", len(entries))
	}
	if svcs.listCalls != 0 {
		t.Fatalf("blank keyword must not query the store, got %d calls", svcs.listCalls)
	}
}

func TestSearchNormalizesAndMaps(t *testing.T) {
	svcs := newMemServiceStore()
	id := uuid.New()
	svcs.add(models.Service{ID: id, Name: "Classic Cut", Category: "Hair Cutting", Price: 30})
	s := NewCatalogService(svcs)

	entries, err := s.Search(context.Background(), "hair cutting")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected one entry, got %d", len(entries))
	}
	if entries[0].ID != id || entries[0].Name != "Classic Cut" || entries[0].Price != 30 {
		t.Fatalf("unexpected entry %+v", entries[0])
	}
}

func TestSearchStoreError(t *testing.T) {
	svcs := newMemServiceStore()
	svcs.listErr = errors.New("connection reset")
	s := NewCatalogService(svcs)

	entries, err := s.Search(context.Background(), "spa")
	if err == nil {
		t.Fatalf("expected store error to surface")
	}
	if len(entries) != 0 {
		t.Fatalf("expected empty result alongside the error, got %d entries", len(entries))
	}
}

func TestSearchNoMatches(t *testing.T) {
	s := NewCatalogService(newMemServiceStore())

	entries, err := s.Search(context.Background(), "massage")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected empty result, got %d entries", len(entries))
	}
}
