package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"loon-backend/models"
)

const serviceTTL = 10 * time.Minute

// ServiceCache keeps salon/service details in redis so that enriching a
// customer's booking list does not hit the database once per booking. A nil
// cache (or nil redis client) is valid and behaves as always-miss.
type ServiceCache struct {
	rdb *redis.Client
}

func NewServiceCache(rdb *redis.Client) *ServiceCache {
	if rdb == nil {
		return nil
	}
	return &ServiceCache{rdb: rdb}
}

func serviceKey(id uuid.UUID) string {
	return "service:" + id.String()
}

func (c *ServiceCache) Get(ctx context.Context, id uuid.UUID) (*models.Service, bool) {
	if c == nil {
		return nil, false
	}
	data, err := c.rdb.Get(ctx, serviceKey(id)).Bytes()
	if err != nil {
		return nil, false
	}
	var service models.Service
	if err := json.Unmarshal(data, &service); err != nil {
		return nil, false
	}
	return &service, true
}

func (c *ServiceCache) Set(ctx context.Context, service *models.Service) {
	if c == nil || service == nil {
		return
	}
	data, err := json.Marshal(service)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, serviceKey(service.ID), data, serviceTTL).Err(); err != nil {
		log.Printf("Failed to cache service %s: %v", service.ID, err)
	}
}

// Invalidate drops a cached service after a profile edit or account deletion.
func (c *ServiceCache) Invalidate(ctx context.Context, id uuid.UUID) {
	if c == nil {
		return
	}
	if err := c.rdb.Del(ctx, serviceKey(id)).Err(); err != nil {
		log.Printf("Failed to invalidate service %s: %v", id, err)
	}
}
