// services/catalog_service.go
package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

// CatalogEntry is the searchable view of a service: just enough for the
// customer to pick one and book.
type CatalogEntry struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Price float64   `json:"price"`
}

type CatalogService struct {
	services ServiceStore
}

func NewCatalogService(services ServiceStore) *CatalogService {
	return &CatalogService{services: services}
}

// NormalizeKeyword trims the keyword and capitalizes the first letter of each
// word, matching how categories are stored ("hair cutting" -> "Hair Cutting").
func NormalizeKeyword(keyword string) string {
	words := strings.Fields(strings.TrimSpace(keyword))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// Search returns the services whose category exactly matches the normalized
// keyword. A blank keyword returns an empty result without querying the store,
// so an empty search box never turns into an unfiltered scan.
func (s *CatalogService) Search(ctx context.Context, keyword string) ([]CatalogEntry, error) {
	normalized := NormalizeKeyword(keyword)
	if normalized == "" {
		return []CatalogEntry{}, nil
	}

	services, err := s.services.ListByCategory(ctx, normalized)
	if err != nil {
		return []CatalogEntry{}, err
	}

	entries := make([]CatalogEntry, 0, len(services))
	for _, svc := range services {
		entries = append(entries, CatalogEntry{
			ID:    svc.ID,
			Name:  svc.Name,
			Price: svc.Price,
		})
	}
	return entries, nil
}
